// Package repositories 数据访问层
package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"arcanum/app/models/reading"
	"arcanum/pkg/database"
)

// ReadingRepository 塔罗占卜记录仓库
type ReadingRepository struct {
	db *gorm.DB
}

// NewReadingRepository 创建仓库实例
func NewReadingRepository() *ReadingRepository {
	return &ReadingRepository{
		db: database.DB,
	}
}

// Create 创建占卜记录
func (r *ReadingRepository) Create(ctx context.Context, record *reading.Reading) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// GetBySessionID 获取会话的历史记录
func (r *ReadingRepository) GetBySessionID(ctx context.Context, sessionID string, page, pageSize int) ([]reading.Reading, int64, error) {
	var readings []reading.Reading
	var total int64

	query := r.db.WithContext(ctx).Model(&reading.Reading{}).Where("session_id = ?", sessionID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&readings).Error

	return readings, total, err
}

// GetByReadingID 获取单次占卜结果，不存在时返回 nil
func (r *ReadingRepository) GetByReadingID(ctx context.Context, sessionID, readingID string) (*reading.Reading, error) {
	var record reading.Reading

	// 复合条件避免跨会话读取
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND reading_id = ?", sessionID, readingID).
		First(&record).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}
