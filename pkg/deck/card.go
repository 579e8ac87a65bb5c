// Package deck 塔罗牌目录：标准 78 张韦特牌的元数据与牌义
package deck

// Arcana 牌的大类
type Arcana string

const (
	ArcanaMajor Arcana = "major" // 大阿卡纳
	ArcanaMinor Arcana = "minor" // 小阿卡纳
)

// 小阿卡纳花色
const (
	SuitWands     = "wands"
	SuitCups      = "cups"
	SuitSwords    = "swords"
	SuitPentacles = "pentacles"
)

// 元素
const (
	ElementFire  = "fire"
	ElementWater = "water"
	ElementAir   = "air"
	ElementEarth = "earth"
)

// MeaningSet 一个方向下按主题划分的牌义
type MeaningSet struct {
	General      string `json:"general"`
	Love         string `json:"love"`
	Career       string `json:"career"`
	Health       string `json:"health"`
	Spirituality string `json:"spirituality"`
}

// Keywords 正逆位关键词
type Keywords struct {
	Upright  []string `json:"upright"`
	Reversed []string `json:"reversed"`
}

// Meanings 正逆位牌义
type Meanings struct {
	Upright  MeaningSet `json:"upright"`
	Reversed MeaningSet `json:"reversed"`
}

// Card 一张塔罗牌
// Number 对大阿卡纳为 0-21，对小阿卡纳数字牌为 1-10，宫廷牌为 nil
type Card struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Arcana   Arcana   `json:"arcana"`
	Suit     string   `json:"suit,omitempty"`
	Element  string   `json:"element,omitempty"`
	Number   *int     `json:"number,omitempty"`
	Keywords Keywords `json:"keywords"`
	Meanings Meanings `json:"meanings"`
}

// IsMajor 是否为大阿卡纳
func (c Card) IsMajor() bool {
	return c.Arcana == ArcanaMajor
}

// HasNumber 是否带有数字
func (c Card) HasNumber() bool {
	return c.Number != nil
}
