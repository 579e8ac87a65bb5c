package tarot

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"arcanum/pkg/deck"
)

func meaningTestCard() deck.Card {
	return deck.Card{
		Name:   "Test Card",
		Arcana: deck.ArcanaMinor,
		Meanings: deck.Meanings{
			Upright: deck.MeaningSet{
				General:      "general-up",
				Love:         "love-up",
				Career:       "career-up",
				Health:       "health-up",
				Spirituality: "spirit-up",
			},
			Reversed: deck.MeaningSet{
				General:      "general-rev",
				Love:         "love-rev",
				Career:       "career-rev",
				Health:       "health-rev",
				Spirituality: "spirit-rev",
			},
		},
	}
}

func TestSelectMeaningQuestionPriority(t *testing.T) {
	card := meaningTestCard()

	cases := []struct {
		question string
		want     string
	}{
		{"Will I find love soon?", "love-up"},
		{"我的感情会好起来吗", "love-up"},
		{"Should I change my job?", "career-up"},
		{"我的财富运势如何", "career-up"},
		{"How is my health?", "health-up"},
		{"身体状况会改善吗", "health-up"},
		{"What is my purpose?", "spirit-up"},
		{"人生的意义是什么", "spirit-up"},
		// 爱情优先于事业
		{"love or career?", "love-up"},
		// 无关键词回落到通用
		{"今天过得怎么样", "general-up"},
	}

	for _, tc := range cases {
		got := selectMeaning(card, OrientationUpright, tc.question, "The Message")
		assert.Equal(t, tc.want, got, "question %q", tc.question)
	}
}

func TestSelectMeaningPositionFallback(t *testing.T) {
	card := meaningTestCard()

	// 问题无主题时由位置名决定
	assert.Equal(t, "love-up", selectMeaning(card, OrientationUpright, "告诉我更多", "The Relationship"))
	assert.Equal(t, "career-up", selectMeaning(card, OrientationUpright, "告诉我更多", "Current Career Situation"))
	assert.Equal(t, "general-up", selectMeaning(card, OrientationUpright, "告诉我更多", "The Message"))

	// 问题主题优先于位置
	assert.Equal(t, "health-up", selectMeaning(card, OrientationUpright, "my health?", "Current Career Situation"))
}

func TestSelectMeaningOrientation(t *testing.T) {
	card := meaningTestCard()
	assert.Equal(t, "love-rev", selectMeaning(card, OrientationReversed, "love?", "The Message"))
	assert.Equal(t, "general-rev", selectMeaning(card, OrientationReversed, "随便看看", "The Message"))
}

func TestCustomSpreadTag(t *testing.T) {
	cases := map[string]string{
		"My Special Spread": "custom_my_special_spread",
		"Alpha":             "custom_alpha",
		"A  B\tC":           "custom_a_b_c",
		"爱情 指引":             "custom_爱情_指引",
	}
	for name, want := range cases {
		assert.Equal(t, want, customSpreadTag(name))
	}
}

func TestNewReadingIDEncoding(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	id := newReadingID(now, func() float64 { return 0 })
	assert.Equal(t, "reading_1700000000000_0", id)

	id = newReadingID(now, func() float64 { return 0.5 })
	// 0.5 * 1e9 = 500000000 的 36 进制
	assert.Equal(t, "reading_1700000000000_"+strconv.FormatInt(500000000, 36), id)
}
