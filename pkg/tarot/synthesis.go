package tarot

import (
	"fmt"
	"sort"
	"strings"

	"arcanum/pkg/deck"
)

// synthesisRule 跨牌全局综合的一条规则。规则彼此独立，
// 不适用时返回空串，按 synthesisRules 的固定顺序拼接。
type synthesisRule func(cards []DrawnCard) string

// readingRules 仅在完整占卜的整体解读中执行
var readingRules = []synthesisRule{
	arcanaBalanceRule,
	orientationBalanceRule,
}

// combinationRules 完整占卜和牌组合解读共用的跨牌规则
var combinationRules = []synthesisRule{
	elementalBalanceRule,
	dominantSuitRule,
	numericalPatternRule,
	courtCardRule,
	majorArcanaPatternRule,
}

// combinationSynthesis 跨牌组合解读，末尾附固定结语
func combinationSynthesis(cards []DrawnCard) string {
	var b strings.Builder
	for _, rule := range combinationRules {
		b.WriteString(rule(cards))
	}
	b.WriteString("\n\n在反思这些洞察以及它们如何适用于你的具体情况时，请相信你的直觉。")
	return b.String()
}

// synthesize 生成整体解读：先占卜级规则再组合规则
func synthesize(cards []DrawnCard) string {
	var b strings.Builder
	b.WriteString("**整体解读：**\n\n")
	for _, rule := range readingRules {
		b.WriteString(rule(cards))
	}
	b.WriteString(combinationSynthesis(cards))
	return b.String()
}

// arcanaBalanceRule 大小阿卡纳占比
func arcanaBalanceRule(cards []DrawnCard) string {
	majorCount := 0
	for _, c := range cards {
		if c.Card.IsMajor() {
			majorCount++
		}
	}

	switch {
	case majorCount*2 > len(cards):
		return "这次占卜受到大阿卡纳牌的强烈影响，表明重要的灵性力量、人生课题和业力影响正在发挥作用。宇宙正在引导你经历重要的转变。"
	case majorCount == 0:
		return "这次占卜只包含小阿卡纳牌，表明情况主要在你的掌控之中，与日常事务和实际关切相关。"
	default:
		return "大阿卡纳和小阿卡纳牌的平衡表明需要将灵性指导与实际行动相结合。"
	}
}

// orientationBalanceRule 正位比例分档：80/60/40/20
func orientationBalanceRule(cards []DrawnCard) string {
	uprightPercentage := float64(uprightCount(cards)) / float64(len(cards)) * 100

	switch {
	case uprightPercentage >= 80:
		return "正位牌的主导地位表明积极的能量、清晰的方向和有利的环境。你与事件的自然流动保持一致。"
	case uprightPercentage >= 60:
		return "大多数牌都是正位，表明总体上是积极的能量，但有些领域需要关注或内在工作。"
	case uprightPercentage >= 40:
		return "正位和逆位牌的平衡表明这是一个复杂的情况，既有机会也有挑战。"
	case uprightPercentage >= 20:
		return "大多数逆位牌表明内在阻碍、延迟，或需要进行重要的内省和内在工作。"
	default:
		return "逆位牌的主导地位表明这是一个深度内在转变、灵性危机或重大障碍的时期，需要耐心和自我反思。"
	}
}

// elementalBalanceRule 元素分布：单一元素过半时点名，缺失元素列举
func elementalBalanceRule(cards []DrawnCard) string {
	counts := map[string]int{
		deck.ElementFire:  0,
		deck.ElementWater: 0,
		deck.ElementAir:   0,
		deck.ElementEarth: 0,
	}
	total := 0
	for _, c := range cards {
		if c.Card.Element != "" {
			counts[c.Card.Element]++
			total++
		}
	}
	if total == 0 {
		return ""
	}

	var b strings.Builder

	dominantTexts := map[string]string{
		deck.ElementFire:  "火元素的主导地位表明这是一个需要行动、创造力和热情追求目标的时期。",
		deck.ElementWater: "水元素的盛行表明这种情况深具情感性和直觉性，需要你相信自己的感受。",
		deck.ElementAir:   "风元素的丰富表明这主要是一个心理问题，需要清晰的思考、沟通和理性的方法。",
		deck.ElementEarth: "土元素的强势表明这种情况需要实际行动、耐心和对物质关切的关注。",
	}
	for _, element := range []string{deck.ElementFire, deck.ElementWater, deck.ElementAir, deck.ElementEarth} {
		if counts[element]*2 > total {
			b.WriteString(dominantTexts[element])
			break
		}
	}

	var missing []string
	for _, element := range []string{deck.ElementFire, deck.ElementWater, deck.ElementAir, deck.ElementEarth} {
		if counts[element] == 0 {
			missing = append(missing, element)
		}
	}
	if len(missing) > 0 {
		fmt.Fprintf(&b, "缺乏%s元素能量表明你可能需要培养这些品质来实现平衡。", strings.Join(missing, "和"))
	}

	return b.String()
}

// dominantSuitRule 主导花色：某一花色出现两张及以上时触发
func dominantSuitRule(cards []DrawnCard) string {
	counts := map[string]int{}
	for _, c := range cards {
		if c.Card.Suit != "" {
			counts[c.Card.Suit]++
		}
	}

	dominantSuit := ""
	dominantCount := 0
	for _, suit := range []string{deck.SuitWands, deck.SuitCups, deck.SuitSwords, deck.SuitPentacles} {
		if counts[suit] > dominantCount {
			dominantSuit = suit
			dominantCount = counts[suit]
		}
	}
	if dominantCount <= 1 {
		return ""
	}

	switch dominantSuit {
	case deck.SuitWands:
		return "多张权杖牌表明这种情况涉及创意项目、事业雄心和需要果断行动。"
	case deck.SuitCups:
		return "多张圣杯牌的出现表明这根本上关于情感、关系和精神事务。"
	case deck.SuitSwords:
		return "宝剑牌的主导地位揭示了这种情况涉及心理挑战、冲突和需要清晰沟通。"
	case deck.SuitPentacles:
		return "多张星币牌强调物质关切、财务事务和需要实际、脚踏实地的行动。"
	}
	return ""
}

// repeatedNumberThemes 重复数字对应的主题短语
var repeatedNumberThemes = map[int]string{
	1:  "新开始和潜力",
	2:  "平衡和伙伴关系",
	3:  "创造力和成长",
	4:  "稳定和基础",
	5:  "变化和挑战",
	6:  "和谐和责任",
	7:  "精神发展和内省",
	8:  "物质掌握和成就",
	9:  "完成和智慧",
	10: "满足和新循环",
}

// numericalPatternRule 数字模式：带数字的牌不足两张时跳过
func numericalPatternRule(cards []DrawnCard) string {
	var numbers []int
	for _, c := range cards {
		if c.Card.HasNumber() {
			numbers = append(numbers, *c.Card.Number)
		}
	}
	if len(numbers) < 2 {
		return ""
	}

	var b strings.Builder

	sum := 0
	for _, n := range numbers {
		sum += n
	}
	avg := float64(sum) / float64(len(numbers))
	switch {
	case avg <= 3:
		b.WriteString("低数字牌表明这种情况处于初始阶段，充满潜力和新能量。")
	case avg <= 6:
		b.WriteString("中等数字表明这种情况处于发展阶段，需要稳步进展和耐心。")
	case avg <= 9:
		b.WriteString("较高的数字表明这种情况正在接近完成或掌握，需要最后的努力。")
	default:
		b.WriteString("高数字和宫廷牌的出现表明掌握、完成或重要人物的参与。")
	}

	numberCounts := map[int]int{}
	for _, n := range numbers {
		numberCounts[n]++
	}
	var repeated []int
	for n, count := range numberCounts {
		if count > 1 {
			repeated = append(repeated, n)
		}
	}
	sort.Ints(repeated)

	if len(repeated) > 0 {
		labels := make([]string, 0, len(repeated))
		for _, n := range repeated {
			labels = append(labels, fmt.Sprintf("%d", n))
		}
		fmt.Fprintf(&b, "数字%s的重复强调了以下主题：", strings.Join(labels, "和"))
		themes := make([]string, 0, len(repeated))
		for _, n := range repeated {
			if theme, ok := repeatedNumberThemes[n]; ok {
				themes = append(themes, theme)
			}
		}
		b.WriteString(strings.Join(themes, "，"))
		b.WriteString("。")
	}

	return b.String()
}

// courtCardRule 宫廷牌：按牌名中的头衔识别
func courtCardRule(cards []DrawnCard) string {
	count := 0
	for _, c := range cards {
		name := c.Card.Name
		if strings.Contains(name, "Page") || strings.Contains(name, "Knight") ||
			strings.Contains(name, "Queen") || strings.Contains(name, "King") {
			count++
		}
	}

	switch {
	case count == 0:
		return ""
	case count == 1:
		return "宫廷牌的出现表明特定的人或人格方面对这种情况很重要。"
	default:
		return fmt.Sprintf("%d张宫廷牌表明多个人或人格方面正在影响这种情况。", count)
	}
}

// majorArcanaPatternRule 大阿卡纳的旅程跨度与原型组合
func majorArcanaPatternRule(cards []DrawnCard) string {
	var majors []DrawnCard
	for _, c := range cards {
		if c.Card.IsMajor() {
			majors = append(majors, c)
		}
	}
	if len(majors) == 0 {
		return ""
	}

	var b strings.Builder

	// 远程牌库的大阿卡纳可能缺少编号，跨度只统计有编号的牌
	var numbers []int
	for _, c := range majors {
		if c.Card.Number != nil {
			numbers = append(numbers, *c.Card.Number)
		}
	}
	if len(numbers) > 1 {
		minNum, maxNum := numbers[0], numbers[0]
		for _, n := range numbers[1:] {
			if n < minNum {
				minNum = n
			}
			if n > maxNum {
				maxNum = n
			}
		}
		span := maxNum - minNum
		if span > 10 {
			b.WriteString("大阿卡纳牌的广泛跨度表明你正在经历一个重大的生命转变，触及你精神旅程的许多方面。")
		} else if span < 5 {
			b.WriteString("大阿卡纳牌的紧密分组表明你正在经历精神发展的特定阶段。")
		}
	}

	names := map[string]bool{}
	for _, c := range majors {
		names[strings.ToLower(c.Card.Name)] = true
	}

	if names["the fool"] && names["the magician"] {
		b.WriteString("愚者和魔术师的同时出现表明新开始和实现愿望能力的强大结合。")
	}
	if names["the high priestess"] && names["the hierophant"] {
		b.WriteString("女祭司和教皇一起出现表明内在智慧和传统教导之间的平衡。")
	}

	return b.String()
}
