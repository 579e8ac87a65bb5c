package session

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricOperation 指标操作类型
type MetricOperation string

const (
	OpAppend  MetricOperation = "append"
	OpPersist MetricOperation = "persist"
)

// LatencyStats 延迟统计
type LatencyStats struct {
	mu    sync.Mutex
	count int64
	total time.Duration
	min   time.Duration
	max   time.Duration
}

func (s *LatencyStats) record(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.count++
	s.total += d
	if s.min == 0 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
}

// Snapshot 当前延迟统计快照
func (s *LatencyStats) Snapshot() (count int64, avg, min, max time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count = s.count
	if count > 0 {
		avg = s.total / time.Duration(count)
	}
	return count, avg, s.min, s.max
}

// Metrics 会话存储的性能指标
type Metrics struct {
	totalOps      atomic.Int64
	successfulOps atomic.Int64
	failedOps     atomic.Int64

	appendLatency  *LatencyStats
	persistLatency *LatencyStats
}

// NewMetrics 创建指标收集器
func NewMetrics() *Metrics {
	return &Metrics{
		appendLatency:  &LatencyStats{},
		persistLatency: &LatencyStats{},
	}
}

// RecordSuccess 记录成功操作
func (m *Metrics) RecordSuccess(op MetricOperation) {
	m.successfulOps.Add(1)
	m.totalOps.Add(1)
}

// RecordError 记录失败操作
func (m *Metrics) RecordError(op MetricOperation) {
	m.failedOps.Add(1)
	m.totalOps.Add(1)
}

// RecordAppendLatency 记录 Redis 追加延迟
func (m *Metrics) RecordAppendLatency(d time.Duration) {
	m.appendLatency.record(d)
}

// RecordPersistLatency 记录数据库落盘延迟
func (m *Metrics) RecordPersistLatency(d time.Duration) {
	m.persistLatency.record(d)
}

// Failed 累计失败次数
func (m *Metrics) Failed() int64 {
	return m.failedOps.Load()
}

// Successful 累计成功次数
func (m *Metrics) Successful() int64 {
	return m.successfulOps.Load()
}
