package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	gormlogger "gorm.io/gorm/logger"

	"arcanum/app/models/reading"
	"arcanum/pkg/database"
	"arcanum/pkg/database/migrations"
	"arcanum/pkg/logger"
)

func init() {
	logger.Logger = zap.NewNop()
}

func setupTestRepository(t *testing.T) *ReadingRepository {
	t.Helper()
	database.Connect(sqlite.Open(":memory:"), gormlogger.Default.LogMode(gormlogger.Silent))
	// 内存库只存在于单个连接上
	database.SQLDB.SetMaxOpenConns(1)
	require.NoError(t, database.AutoMigrate(migrations.RegisterTables()))
	return NewReadingRepository()
}

func storedRecord(readingID, sessionID string) *reading.Reading {
	return &reading.Reading{
		ReadingID: readingID,
		SessionID: sessionID,
		SpreadTag: "three_card",
		Question:  "事业如何发展",
		Cards: reading.Cards{
			{CardID: "major_00", Name: "The Fool", Position: "Past/Situation", Orientation: "upright", Meaning: "新的开始"},
		},
		Interpretation: "解读文本",
	}
}

func TestReadingRepositoryGetByReadingID(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, storedRecord("reading_1_aaa", "session_a")))
	require.NoError(t, repo.Create(ctx, storedRecord("reading_2_bbb", "session_a")))
	require.NoError(t, repo.Create(ctx, storedRecord("reading_3_ccc", "session_b")))

	record, err := repo.GetByReadingID(ctx, "session_a", "reading_2_bbb")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "reading_2_bbb", record.ReadingID)
	assert.Equal(t, "session_a", record.SessionID)
	assert.Equal(t, "three_card", record.SpreadTag)
	require.Len(t, record.Cards, 1)
	assert.Equal(t, "The Fool", record.Cards[0].Name)

	// 会话不匹配时不能跨会话读取
	record, err = repo.GetByReadingID(ctx, "session_a", "reading_3_ccc")
	require.NoError(t, err)
	assert.Nil(t, record)

	// 不存在的占卜返回 nil 而不是错误
	record, err = repo.GetByReadingID(ctx, "session_a", "reading_9_zzz")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestReadingRepositoryGetBySessionID(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	for _, id := range []string{"reading_1_aaa", "reading_2_bbb", "reading_3_ccc"} {
		require.NoError(t, repo.Create(ctx, storedRecord(id, "session_a")))
	}
	require.NoError(t, repo.Create(ctx, storedRecord("reading_4_ddd", "session_b")))

	records, total, err := repo.GetBySessionID(ctx, "session_a", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, records, 2)

	records, total, err = repo.GetBySessionID(ctx, "session_c", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
	assert.Empty(t, records)
}
