package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"arcanum/app/models/reading"
	"arcanum/pkg/logger"
)

// persister 后台落盘工作器组，把会话历史异步写入数据库
type persister struct {
	repo        readingPersister
	metrics     *Metrics
	tasks       chan *StoredReading
	stopChan    chan struct{}
	workerCount int
	wg          sync.WaitGroup
}

func newPersister(repo readingPersister, metrics *Metrics, workerCount int) *persister {
	if workerCount <= 0 {
		workerCount = 4
	}
	return &persister{
		repo:        repo,
		metrics:     metrics,
		tasks:       make(chan *StoredReading, 1024),
		stopChan:    make(chan struct{}),
		workerCount: workerCount,
	}
}

// Start 启动工作器组
func (p *persister) Start() {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.run(i)
	}
}

func (p *persister) run(id int) {
	defer p.wg.Done()

	logger.InfoString("Session", "Persister", fmt.Sprintf("worker %d started", id))

	for {
		select {
		case <-p.stopChan:
			// 排空通道里剩余的记录再退出
			for {
				select {
				case record := <-p.tasks:
					p.persist(record)
				default:
					logger.InfoString("Session", "Persister", fmt.Sprintf("worker %d stopped", id))
					return
				}
			}
		case record := <-p.tasks:
			p.persist(record)
		}
	}
}

// Enqueue 提交一条待落盘记录，队列满时丢弃并记日志，绝不阻塞调用方
func (p *persister) Enqueue(record *StoredReading) {
	select {
	case p.tasks <- record:
	default:
		p.metrics.RecordError(OpPersist)
		logger.WarnString("Session", "Persister", fmt.Sprintf("persist queue full, dropping reading %s", record.ReadingID))
	}
}

func (p *persister) persist(record *StoredReading) {
	start := time.Now()
	defer func() {
		p.metrics.RecordPersistLatency(time.Since(start))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	row := &reading.Reading{
		ReadingID:      record.ReadingID,
		SessionID:      record.SessionID,
		SpreadTag:      record.SpreadTag,
		Question:       record.Question,
		Cards:          record.Cards,
		Interpretation: record.Interpretation,
	}

	if err := p.repo.Create(ctx, row); err != nil {
		p.metrics.RecordError(OpPersist)
		logger.ErrorString("Session", "Persister", fmt.Sprintf("save reading %s: %v", record.ReadingID, err))
		return
	}
	p.metrics.RecordSuccess(OpPersist)
}

// Stop 优雅关闭工作器组
func (p *persister) Stop() {
	close(p.stopChan)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.InfoString("Session", "Persister", "all workers stopped gracefully")
	case <-time.After(30 * time.Second):
		logger.WarnString("Session", "Persister", "worker shutdown timed out")
	}
}
