package tarot

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arcanum/pkg/deck"
)

// sequenceRandom 按预设序列循环取值的随机源
func sequenceRandom(values ...float64) func() float64 {
	idx := 0
	return func() float64 {
		v := values[idx%len(values)]
		idx++
		return v
	}
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	return NewEngine(deck.NewCatalog(), opts...)
}

func TestPerformReadingCardCount(t *testing.T) {
	engine := newTestEngine(t)

	for _, tag := range spreadOrder {
		spread, ok := GetSpread(tag)
		require.True(t, ok)

		report, reading, err := engine.PerformReading(tag, "我的生活方向是什么？")
		require.NoError(t, err)
		require.NotNil(t, reading, "spread %s", tag)
		assert.Len(t, reading.Cards, spread.CardCount, "spread %s", tag)
		assert.Contains(t, report, "# "+spread.Name+" Reading")

		seen := map[string]bool{}
		for _, c := range reading.Cards {
			assert.False(t, seen[c.Card.ID], "duplicate card %s in spread %s", c.Card.ID, tag)
			seen[c.Card.ID] = true
		}
	}
}

func TestPerformReadingInvalidSpread(t *testing.T) {
	engine := newTestEngine(t)

	report, reading, err := engine.PerformReading("bogus_spread", "任意问题")
	require.NoError(t, err)
	assert.Nil(t, reading)
	assert.Equal(t, "无效的牌阵类型：bogus_spread。请使用 list_available_spreads 查看有效选项。", report)
}

func TestPerformReadingIDFormat(t *testing.T) {
	engine := newTestEngine(t)

	pattern := regexp.MustCompile(`^reading_\d+_[0-9a-z]+$`)
	for i := 0; i < 20; i++ {
		_, reading, err := engine.PerformReading(SpreadSingleCard, "今天的指引")
		require.NoError(t, err)
		require.NotNil(t, reading)
		assert.Regexp(t, pattern, reading.ID)
	}
}

func TestPerformReadingOrientationDistribution(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	engine := newTestEngine(t, WithRandom(rng.Float64))

	upright := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		_, reading, err := engine.PerformReading(SpreadSingleCard, "方向")
		require.NoError(t, err)
		require.NotNil(t, reading)
		if reading.Cards[0].Orientation == OrientationUpright {
			upright++
		}
	}

	ratio := float64(upright) / trials
	assert.InDelta(t, 0.5, ratio, 0.06, "upright ratio %f", ratio)
}

func TestPerformReadingFixedClock(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	engine := newTestEngine(t,
		WithClock(func() time.Time { return now }),
		WithRandom(sequenceRandom(0.25)),
	)

	report, reading, err := engine.PerformReading(SpreadThreeCard, "事业如何发展")
	require.NoError(t, err)
	require.NotNil(t, reading)
	assert.Equal(t, now, reading.CreatedAt)
	assert.Contains(t, report, fmt.Sprintf("reading_%d_", now.UnixMilli()))
	// 注入 0.25 时所有牌都是正位
	for _, c := range reading.Cards {
		assert.Equal(t, OrientationUpright, c.Orientation)
	}
}

func TestPerformCustomReading(t *testing.T) {
	engine := newTestEngine(t)

	positions := []Position{
		{Name: "过去", Meaning: "事情的起因"},
		{Name: "现在", Meaning: "当下的状态"},
		{Name: "未来", Meaning: "可能的走向"},
	}
	report, reading, err := engine.PerformCustomReading("My Special Spread", "自定义三牌阵", positions, "我该怎么做")
	require.NoError(t, err)
	require.NotNil(t, reading)

	assert.Equal(t, "custom_my_special_spread", reading.SpreadTag)
	assert.Len(t, reading.Cards, 3)
	assert.Contains(t, report, "# My Special Spread Reading")
	// 自定义牌阵不做结构分析
	assert.NotContains(t, report, "Analysis:**")
}

func TestPerformCustomReadingValidation(t *testing.T) {
	// 校验失败必须发生在抽牌之前
	engine := newTestEngine(t, WithRandom(func() float64 {
		panic("random source must not be used when validation fails")
	}))

	tooMany := make([]Position, 16)
	for i := range tooMany {
		tooMany[i] = Position{Name: fmt.Sprintf("位置%d", i+1), Meaning: "含义"}
	}

	cases := []struct {
		name      string
		spread    string
		desc      string
		positions []Position
		question  string
		want      string
	}{
		{
			name: "missing name", spread: "", desc: "描述",
			positions: []Position{{Name: "a", Meaning: "b"}}, question: "问题",
			want: "错误：牌阵名称是必需的，且必须是字符串。",
		},
		{
			name: "missing description", spread: "阵", desc: "",
			positions: []Position{{Name: "a", Meaning: "b"}}, question: "问题",
			want: "错误：牌阵描述是必需的，且必须是字符串。",
		},
		{
			name: "empty positions", spread: "阵", desc: "描述",
			positions: nil, question: "问题",
			want: "错误：位置必须是非空数组。",
		},
		{
			name: "too many positions", spread: "阵", desc: "描述",
			positions: tooMany, question: "问题",
			want: "错误：自定义牌阵最多允许15个位置。",
		},
		{
			name: "missing question", spread: "阵", desc: "描述",
			positions: []Position{{Name: "a", Meaning: "b"}}, question: "",
			want: "错误：问题是必需的，且必须是字符串。",
		},
		{
			name: "position missing name", spread: "阵", desc: "描述",
			positions: []Position{{Name: "a", Meaning: "b"}, {Name: "", Meaning: "b"}}, question: "问题",
			want: "错误：位置 2 必须有一个字符串类型的'name'属性。",
		},
		{
			name: "position missing meaning", spread: "阵", desc: "描述",
			positions: []Position{{Name: "a", Meaning: ""}}, question: "问题",
			want: "错误：位置 1 必须有一个字符串类型的'meaning'属性。",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report, reading, err := engine.PerformCustomReading(tc.spread, tc.desc, tc.positions, tc.question)
			require.NoError(t, err)
			assert.Nil(t, reading)
			assert.Equal(t, tc.want, report)
		})
	}
}

func TestInterpretDeterminism(t *testing.T) {
	engine := newTestEngine(t)

	_, reading, err := engine.PerformReading(SpreadCelticCross, "我的感情会如何")
	require.NoError(t, err)
	require.NotNil(t, reading)

	first := engine.Interpret(reading.Cards, reading.Question, reading.Spread.Name, reading.SpreadTag)
	second := engine.Interpret(reading.Cards, reading.Question, reading.Spread.Name, reading.SpreadTag)
	assert.Equal(t, first, second)
}

func TestInterpretCardCombination(t *testing.T) {
	engine := newTestEngine(t)

	cards := []CombinationCard{
		{Name: "The Fool"},
		{Name: "The Magician", Orientation: OrientationReversed},
	}
	result := engine.InterpretCardCombination(cards, "新项目的开端")

	assert.Contains(t, result, "# 牌组合解读")
	assert.Contains(t, result, "**背景：** 新项目的开端")
	assert.Contains(t, result, "**The Fool** (正位)")
	assert.Contains(t, result, "**The Magician** (逆位)")
	assert.Contains(t, result, "愚者和魔术师的同时出现")

	// 相同输入必须产生相同输出
	assert.Equal(t, result, engine.InterpretCardCombination(cards, "新项目的开端"))
}

func TestInterpretCardCombinationUnknownCard(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.InterpretCardCombination([]CombinationCard{{Name: "The Lost Card"}}, "背景")
	assert.Equal(t, "未找到牌\"The Lost Card\"。请使用 list_all_cards 查看可用的牌。", result)
}

func TestListAvailableSpreads(t *testing.T) {
	engine := newTestEngine(t)
	listing := engine.ListAvailableSpreads()

	assert.True(t, strings.HasPrefix(listing, "# 可用的塔罗牌阵"))
	for _, s := range ListSpreads() {
		assert.Contains(t, listing, fmt.Sprintf("## %s (%d 张牌)", s.Name, s.CardCount))
	}
	assert.Contains(t, listing, "使用 `perform_reading` 工具")
}

func TestListSpreadsStableOrder(t *testing.T) {
	first := ListSpreads()
	second := ListSpreads()
	require.Equal(t, len(spreadOrder), len(first))
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
		assert.Len(t, first[i].Positions, first[i].CardCount)
	}
}
