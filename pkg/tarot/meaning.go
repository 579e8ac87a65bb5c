package tarot

import (
	"strings"

	"arcanum/pkg/deck"
)

// 主题关键词表。问题文本按 爱情 → 事业 → 健康 → 灵性 的优先级匹配，
// 未命中再看位置名，最后落回通用牌义。中英文关键词都参与匹配。
var (
	loveQuestionKeywords = []string{
		"love", "relationship", "romance",
		"爱情", "感情", "恋爱", "关系",
	}
	careerQuestionKeywords = []string{
		"career", "job", "work", "money",
		"职业", "工作", "事业", "金钱", "财富",
	}
	healthQuestionKeywords = []string{
		"health", "wellness", "body",
		"健康", "身体", "养生",
	}
	spiritualityQuestionKeywords = []string{
		"spiritual", "purpose", "meaning",
		"灵性", "精神", "目的", "意义",
	}

	lovePositionKeywords = []string{
		"love", "relationship",
		"爱情", "感情", "关系",
	}
	careerPositionKeywords = []string{
		"career", "work",
		"职业", "工作", "事业",
	}
)

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// selectMeaning 按方向取出牌义集合，再根据提问与位置选取最贴合的主题
func selectMeaning(card deck.Card, orientation Orientation, question, positionName string) string {
	meanings := card.Meanings.Upright
	if orientation == OrientationReversed {
		meanings = card.Meanings.Reversed
	}

	questionLower := strings.ToLower(question)
	switch {
	case containsAny(questionLower, loveQuestionKeywords):
		return meanings.Love
	case containsAny(questionLower, careerQuestionKeywords):
		return meanings.Career
	case containsAny(questionLower, healthQuestionKeywords):
		return meanings.Health
	case containsAny(questionLower, spiritualityQuestionKeywords):
		return meanings.Spirituality
	}

	positionLower := strings.ToLower(positionName)
	switch {
	case containsAny(positionLower, lovePositionKeywords):
		return meanings.Love
	case containsAny(positionLower, careerPositionKeywords):
		return meanings.Career
	}

	return meanings.General
}
