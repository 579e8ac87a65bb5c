// 塔罗占卜记录
package reading

import (
	"arcanum/app/models"
)

// Reading 塔罗占卜记录模型
type Reading struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ReadingID      string `gorm:"type:varchar(64);uniqueIndex" json:"reading_id"` // 占卜ID，唯一索引
	SessionID      string `gorm:"type:varchar(64);index" json:"session_id"`      // 会话ID，普通索引
	SpreadTag      string `gorm:"type:varchar(64);index" json:"spread_tag"`      // 牌阵标识符或 custom_ 标签
	Question       string `gorm:"type:text" json:"question"`                     // 问题
	Cards          Cards  `gorm:"type:json" json:"cards"`                        // 抽到的牌
	Interpretation string `gorm:"type:text" json:"interpretation"`               // 完整解读报告

	models.CommonTimestampsField // 包含 created_at 和 updated_at
}

// TableName 指定表名
func (Reading) TableName() string {
	return "tarot_readings"
}

// BeforeSave GORM 钩子
func (r *Reading) BeforeSave() error {
	return r.Validate()
}
