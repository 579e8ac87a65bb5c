package reading

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
)

// CardRecord 占卜记录里的一张牌
type CardRecord struct {
	CardID      string `json:"card_id"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	Orientation string `json:"orientation"`
	Meaning     string `json:"meaning"`
}

// Cards 自定义类型用于处理牌数组的JSON序列化
type Cards []CardRecord

// Value 实现 driver.Valuer 接口
func (c Cards) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "[]", nil
	}
	return json.Marshal(c)
}

// Scan 实现 sql.Scanner 接口
func (c *Cards) Scan(value interface{}) error {
	if value == nil {
		*c = Cards{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	default:
		return errors.New("invalid type for cards")
	}
}

// Validate 验证记录
func (r *Reading) Validate() error {
	if r.ReadingID == "" {
		return errors.New("reading_id is required")
	}
	if r.SpreadTag == "" {
		return errors.New("spread_tag is required")
	}
	if len(r.Cards) == 0 {
		return errors.New("cards cannot be empty")
	}
	return nil
}

// IsCustomSpread 是否出自自定义牌阵
func (r *Reading) IsCustomSpread() bool {
	return strings.HasPrefix(r.SpreadTag, "custom_")
}
