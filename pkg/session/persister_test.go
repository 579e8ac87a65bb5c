package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"arcanum/app/models/reading"
	"arcanum/pkg/logger"
)

func init() {
	logger.Logger = zap.NewNop()
}

// fakeRepo 内存版仓库
type fakeRepo struct {
	mu      sync.Mutex
	records []*reading.Reading
	err     error
}

func (f *fakeRepo) Create(ctx context.Context, record *reading.Reading) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)
	return nil
}

func (f *fakeRepo) GetBySessionID(ctx context.Context, sessionID string, page, pageSize int) ([]reading.Reading, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []reading.Reading
	for _, r := range f.records {
		if r.SessionID == sessionID {
			out = append(out, *r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) GetByReadingID(ctx context.Context, sessionID, readingID string) (*reading.Reading, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, r := range f.records {
		if r.SessionID == sessionID && r.ReadingID == readingID {
			record := *r
			return &record, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) saved() []*reading.Reading {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*reading.Reading, len(f.records))
	copy(out, f.records)
	return out
}

func testRecord(readingID, sessionID string) *StoredReading {
	return &StoredReading{
		ReadingID:  readingID,
		SessionID:  sessionID,
		SpreadTag:  "three_card",
		SpreadName: "Three Card Spread",
		Question:   "事业如何发展",
		Cards: []reading.CardRecord{
			{CardID: "major_00", Name: "The Fool", Position: "Past/Situation", Orientation: "upright", Meaning: "新的开始"},
		},
		Interpretation: "解读文本",
		CreatedAt:      time.Now(),
	}
}

func TestPersisterSavesRecords(t *testing.T) {
	repo := &fakeRepo{}
	p := newPersister(repo, NewMetrics(), 2)
	p.Start()

	for i := 0; i < 5; i++ {
		p.Enqueue(testRecord(uuid.NewString(), "session_a"))
	}
	p.Stop()

	saved := repo.saved()
	require.Len(t, saved, 5)
	for _, r := range saved {
		assert.Equal(t, "session_a", r.SessionID)
		assert.Equal(t, "three_card", r.SpreadTag)
		assert.NotEmpty(t, r.Cards)
	}
}

func TestPersisterDrainsOnStop(t *testing.T) {
	repo := &fakeRepo{}
	p := newPersister(repo, NewMetrics(), 1)
	p.Start()

	// 连续提交后立即关闭，积压必须被排空
	for i := 0; i < 50; i++ {
		p.Enqueue(testRecord(uuid.NewString(), "session_b"))
	}
	p.Stop()

	assert.Len(t, repo.saved(), 50)
}

func TestPersisterRecordsFailures(t *testing.T) {
	repo := &fakeRepo{err: context.DeadlineExceeded}
	metrics := NewMetrics()
	p := newPersister(repo, metrics, 1)
	p.Start()

	p.Enqueue(testRecord("reading_1", "session_c"))
	p.Stop()

	assert.Empty(t, repo.saved())
	assert.Equal(t, int64(1), metrics.Failed())
}

func TestStoredReadingRoundTrip(t *testing.T) {
	record := testRecord("reading_123", "session_d")

	payload, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded StoredReading
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, record.ReadingID, decoded.ReadingID)
	assert.Equal(t, record.Cards, decoded.Cards)
	assert.Equal(t, record.Question, decoded.Question)
}

func TestNewSessionID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		id := NewSessionID()
		require.True(t, strings.HasPrefix(id, "session_"))
		_, err := uuid.Parse(strings.TrimPrefix(id, "session_"))
		require.NoError(t, err)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
