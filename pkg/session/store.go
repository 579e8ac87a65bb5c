// Package session 会话级占卜历史：Redis 热数据加数据库落盘
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"arcanum/app/models/reading"
	"arcanum/pkg/config"
	"arcanum/pkg/logger"
	"arcanum/pkg/redis"
)

// StoredReading 会话历史中的一条占卜记录
type StoredReading struct {
	ReadingID      string               `json:"reading_id"`
	SessionID      string               `json:"session_id"`
	SpreadTag      string               `json:"spread_tag"`
	SpreadName     string               `json:"spread_name"`
	Question       string               `json:"question"`
	Cards          []reading.CardRecord `json:"cards"`
	Interpretation string               `json:"interpretation"`
	CreatedAt      time.Time            `json:"created_at"`
}

// readingPersister 落盘依赖，由 Store 的后台工作器调用
type readingPersister interface {
	Create(ctx context.Context, record *reading.Reading) error
	GetBySessionID(ctx context.Context, sessionID string, page, pageSize int) ([]reading.Reading, int64, error)
	GetByReadingID(ctx context.Context, sessionID, readingID string) (*reading.Reading, error)
}

// Store 会话存储。Redis 保存每个会话最近的占卜历史，
// 同时经由后台工作器写入数据库作为持久副本
type Store struct {
	client      *redis.Client
	prefix      string
	ttl         time.Duration
	maxHistory  int64
	rateLimiter *rate.Limiter
	metrics     *Metrics
	persister   *persister
}

// NewStore 创建会话存储并启动落盘工作器
func NewStore(repo readingPersister) *Store {
	rateLimit := config.GetInt("session.rate_limit", 1000)
	burst := config.GetInt("session.rate_burst", rateLimit)

	s := &Store{
		client:      redis.GetRedis(redis.SessionDB),
		prefix:      config.GetString("redis.session_prefix", "arcanum"),
		ttl:         time.Duration(config.GetInt("session.ttl", 604800)) * time.Second,
		maxHistory:  int64(config.GetInt("session.max_history", 50)),
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), burst),
		metrics:     NewMetrics(),
	}
	s.persister = newPersister(repo, s.metrics, config.GetInt("session.persist_workers", 4))
	s.persister.Start()
	return s
}

// NewSessionID 生成新的会话标识
func NewSessionID() string {
	return "session_" + uuid.NewString()
}

// historyKey 会话历史在 Redis 中的键
func (s *Store) historyKey(sessionID string) string {
	return fmt.Sprintf("%s:session:%s:readings", s.prefix, sessionID)
}

// AppendReading 把一条占卜记录追加进会话历史。
// Redis 写入是同步的，数据库落盘交给后台工作器，不阻塞调用方
func (s *Store) AppendReading(ctx context.Context, record *StoredReading) error {
	if record.SessionID == "" {
		return fmt.Errorf("session: empty session id")
	}

	if err := s.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("session: rate limit exceeded: %w", err)
	}

	start := time.Now()
	defer func() {
		s.metrics.RecordAppendLatency(time.Since(start))
	}()

	payload, err := json.Marshal(record)
	if err != nil {
		s.metrics.RecordError(OpAppend)
		return fmt.Errorf("session: marshal reading: %w", err)
	}

	key := s.historyKey(record.SessionID)
	pipe := s.client.Client.Pipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, s.maxHistory-1)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		s.metrics.RecordError(OpAppend)
		return fmt.Errorf("session: append reading: %w", err)
	}
	s.metrics.RecordSuccess(OpAppend)

	s.persister.Enqueue(record)
	return nil
}

// Readings 读取会话的最近历史，新在前。
// Redis 过期后回退到数据库中的持久副本
func (s *Store) Readings(ctx context.Context, sessionID string, limit int) ([]StoredReading, error) {
	if limit <= 0 {
		limit = int(s.maxHistory)
	}

	key := s.historyKey(sessionID)
	raw, err := s.client.Client.LRange(ctx, key, 0, int64(limit-1)).Result()
	if err != nil && err != goredis.Nil {
		return nil, fmt.Errorf("session: load history: %w", err)
	}

	if len(raw) > 0 {
		out := make([]StoredReading, 0, len(raw))
		for _, item := range raw {
			var r StoredReading
			if err := json.Unmarshal([]byte(item), &r); err != nil {
				logger.ErrorString("Session", "Readings", fmt.Sprintf("broken history entry in %s: %v", key, err))
				continue
			}
			out = append(out, r)
		}
		return out, nil
	}

	return s.readingsFromDB(ctx, sessionID, limit)
}

// Reading 获取会话中的单条占卜记录，不存在时返回 nil。
// 先在 Redis 热历史中查找，Redis 过期后走数据库持久副本
func (s *Store) Reading(ctx context.Context, sessionID, readingID string) (*StoredReading, error) {
	items, err := s.Readings(ctx, sessionID, 0)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ReadingID == readingID {
			return &items[i], nil
		}
	}

	record, err := s.persister.repo.GetByReadingID(ctx, sessionID, readingID)
	if err != nil {
		return nil, fmt.Errorf("session: load reading: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	return &StoredReading{
		ReadingID:      record.ReadingID,
		SessionID:      record.SessionID,
		SpreadTag:      record.SpreadTag,
		Question:       record.Question,
		Cards:          record.Cards,
		Interpretation: record.Interpretation,
		CreatedAt:      record.CreatedAt,
	}, nil
}

// readingsFromDB 从数据库恢复会话历史
func (s *Store) readingsFromDB(ctx context.Context, sessionID string, limit int) ([]StoredReading, error) {
	records, _, err := s.persister.repo.GetBySessionID(ctx, sessionID, 1, limit)
	if err != nil {
		return nil, fmt.Errorf("session: load history from db: %w", err)
	}

	out := make([]StoredReading, 0, len(records))
	for _, record := range records {
		out = append(out, StoredReading{
			ReadingID:      record.ReadingID,
			SessionID:      record.SessionID,
			SpreadTag:      record.SpreadTag,
			Question:       record.Question,
			Cards:          record.Cards,
			Interpretation: record.Interpretation,
			CreatedAt:      record.CreatedAt,
		})
	}
	return out, nil
}

// Clear 删除会话的热历史，返回会话是否存在。
// 数据库中的持久副本不受影响
func (s *Store) Clear(sessionID string) bool {
	key := s.historyKey(sessionID)
	if !s.client.Has(key) {
		return false
	}
	return s.client.Del(key)
}

// Close 停止落盘工作器，排空积压
func (s *Store) Close() {
	s.persister.Stop()
}
