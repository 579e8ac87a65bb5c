package tarot

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"arcanum/pkg/deck"
)

// 自定义牌阵位置数上限
const maxCustomPositions = 15

// Engine 占卜引擎。并发安全：内部状态只读，随机源由调用方注入
type Engine struct {
	catalog *deck.Catalog
	random  func() float64
	now     func() time.Time
}

// Option 引擎可选配置
type Option func(*Engine)

// WithRandom 注入随机源，区间 [0, 1)
func WithRandom(random func() float64) Option {
	return func(e *Engine) {
		e.random = random
	}
}

// WithClock 注入时钟
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// NewEngine 创建占卜引擎
func NewEngine(catalog *deck.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		random:  rand.Float64,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PerformReading 执行一次内置牌阵占卜。
// 牌阵标识符无效时返回提示文本且 Reading 为 nil，不视为错误。
func (e *Engine) PerformReading(spreadType, question string) (string, *Reading, error) {
	spread, ok := GetSpread(spreadType)
	if !ok {
		return fmt.Sprintf("无效的牌阵类型：%s。请使用 list_available_spreads 查看有效选项。", spreadType), nil, nil
	}

	cards, err := e.catalog.Sample(spread.CardCount)
	if err != nil {
		return "", nil, err
	}

	reading := assembleReading(spreadType, spread, question, cards, e.now(), e.random)
	interpretation := interpret(reading.Cards, question, spread.Name, spreadType)
	return formatReading(reading, interpretation), &reading, nil
}

// PerformCustomReading 按调用方给出的位置定义执行自定义牌阵占卜。
// 校验失败时返回固定的中文提示文本且 Reading 为 nil，校验先于抽牌。
func (e *Engine) PerformCustomReading(spreadName, description string, positions []Position, question string) (string, *Reading, error) {
	if msg, ok := validateCustomSpread(spreadName, description, positions, question); !ok {
		return msg, nil, nil
	}

	spread := Spread{
		Name:        spreadName,
		Description: description,
		CardCount:   len(positions),
		Positions:   positions,
	}

	cards, err := e.catalog.Sample(spread.CardCount)
	if err != nil {
		return fmt.Sprintf("创建自定义牌阵时出错：%s", err.Error()), nil, nil
	}

	tag := customSpreadTag(spreadName)
	reading := assembleReading(tag, spread, question, cards, e.now(), e.random)
	interpretation := interpret(reading.Cards, question, spread.Name, tag)
	return formatReading(reading, interpretation), &reading, nil
}

// validateCustomSpread 自定义牌阵入参校验，返回首个失败项的提示文本
func validateCustomSpread(spreadName, description string, positions []Position, question string) (string, bool) {
	if spreadName == "" {
		return "错误：牌阵名称是必需的，且必须是字符串。", false
	}
	if description == "" {
		return "错误：牌阵描述是必需的，且必须是字符串。", false
	}
	if len(positions) == 0 {
		return "错误：位置必须是非空数组。", false
	}
	if len(positions) > maxCustomPositions {
		return "错误：自定义牌阵最多允许15个位置。", false
	}
	if question == "" {
		return "错误：问题是必需的，且必须是字符串。", false
	}
	for i, p := range positions {
		if p.Name == "" {
			return fmt.Sprintf("错误：位置 %d 必须有一个字符串类型的'name'属性。", i+1), false
		}
		if p.Meaning == "" {
			return fmt.Sprintf("错误：位置 %d 必须有一个字符串类型的'meaning'属性。", i+1), false
		}
	}
	return "", true
}

// ListAvailableSpreads 返回全部内置牌阵的清单文本
func (e *Engine) ListAvailableSpreads() string {
	return formatSpreadList(ListSpreads())
}

// CombinationCard 牌组合解读的输入项，Orientation 为空时视为正位
type CombinationCard struct {
	Name        string      `json:"name"`
	Orientation Orientation `json:"orientation,omitempty"`
}

// InterpretCardCombination 对给定的一组牌做无牌阵的组合解读。
// 同一解读对相同输入是确定性的，不涉及任何随机抽取。
func (e *Engine) InterpretCardCombination(cards []CombinationCard, context string) string {
	drawn := make([]DrawnCard, 0, len(cards))
	for _, input := range cards {
		card, ok := e.catalog.FindByName(input.Name)
		if !ok {
			return fmt.Sprintf("未找到牌\"%s\"。请使用 list_all_cards 查看可用的牌。", input.Name)
		}
		orientation := input.Orientation
		if orientation == "" {
			orientation = OrientationUpright
		}
		drawn = append(drawn, DrawnCard{Card: card, Orientation: orientation})
	}

	var b strings.Builder
	b.WriteString("# 牌组合解读\n\n")
	fmt.Fprintf(&b, "**背景：** %s\n\n", context)
	b.WriteString("## 本次占卜中的牌\n\n")
	for i, d := range drawn {
		fmt.Fprintf(&b, "%d. **%s** (%s)\n", i+1, d.Card.Name, orientationLabel(d.Orientation))
		keywords := d.Card.Keywords.Upright
		if d.IsReversed() {
			keywords = d.Card.Keywords.Reversed
		}
		fmt.Fprintf(&b, "   *关键词: %s*\n\n", strings.Join(keywords, "、"))
	}
	b.WriteString("## 解读\n\n")
	b.WriteString(combinationSynthesis(drawn))

	return b.String()
}

// Interpret 对固定的一组已抽牌生成解读，用于对既有占卜的重新解读
func (e *Engine) Interpret(cards []DrawnCard, question, spreadName, analysisTag string) string {
	return interpret(cards, question, spreadName, analysisTag)
}
