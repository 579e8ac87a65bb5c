package tarot

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"arcanum/pkg/deck"
)

// Orientation 牌面方向
type Orientation string

const (
	OrientationUpright  Orientation = "upright"
	OrientationReversed Orientation = "reversed"
)

// DrawnCard 一次占卜中落在某个位置上的牌
type DrawnCard struct {
	Card        deck.Card   `json:"card"`
	Position    Position    `json:"position"`
	Orientation Orientation `json:"orientation"`
	Meaning     string      `json:"meaning"`
}

// IsReversed 牌是否为逆位
func (d DrawnCard) IsReversed() bool {
	return d.Orientation == OrientationReversed
}

// Reading 一次完整的占卜结果
type Reading struct {
	ID        string      `json:"id"`
	Question  string      `json:"question"`
	SpreadTag string      `json:"spread_tag"`
	Spread    Spread      `json:"spread"`
	Cards     []DrawnCard `json:"cards"`
	CreatedAt time.Time   `json:"created_at"`
}

var whitespacePattern = regexp.MustCompile(`\s+`)

// customSpreadTag 自定义牌阵的标识符，规则：custom_ 前缀加小写化、
// 空白折叠为下划线的牌阵名
func customSpreadTag(name string) string {
	return "custom_" + whitespacePattern.ReplaceAllString(strings.ToLower(name), "_")
}

// newReadingID 生成占卜 ID：reading_<毫秒时间戳>_<随机 36 进制串>
func newReadingID(now time.Time, random func() float64) string {
	suffix := strconv.FormatInt(int64(random()*1e9), 36)
	return fmt.Sprintf("reading_%d_%s", now.UnixMilli(), suffix)
}

// assembleReading 把抽到的牌依次放进牌阵位置，分配方向并选取牌义
func assembleReading(spreadTag string, spread Spread, question string, cards []deck.Card, now time.Time, random func() float64) Reading {
	drawn := make([]DrawnCard, 0, len(cards))
	for i, card := range cards {
		orientation := OrientationReversed
		if random() < 0.5 {
			orientation = OrientationUpright
		}
		drawn = append(drawn, DrawnCard{
			Card:        card,
			Position:    spread.Positions[i],
			Orientation: orientation,
			Meaning:     selectMeaning(card, orientation, question, spread.Positions[i].Name),
		})
	}

	return Reading{
		ID:        newReadingID(now, random),
		Question:  question,
		SpreadTag: spreadTag,
		Spread:    spread,
		Cards:     drawn,
		CreatedAt: now,
	}
}
