package tarot

import (
	"fmt"
	"strings"
)

// structuralAnalyzer 针对某一牌阵结构的专属分析。
// 每个分析器自行守卫牌数，不匹配时返回空串。
type structuralAnalyzer func(cards []DrawnCard) string

// structuralAnalyzers 牌阵标识符到分析器的静态映射。
// 没有条目的牌阵（horseshoe、decision_making、shadow_work、single_card
// 以及所有 custom_ 前缀的自定义牌阵）跳过结构分析。
var structuralAnalyzers = map[string]structuralAnalyzer{
	SpreadCelticCross:        celticCrossAnalysis,
	SpreadThreeCard:          threeCardAnalysis,
	SpreadRelationshipCross:  relationshipAnalysis,
	SpreadCareerPath:         careerAnalysis,
	SpreadSpiritualGuidance:  spiritualAnalysis,
	SpreadChakraAlignment:    chakraAnalysis,
	SpreadYearAhead:          yearAheadAnalysis,
	SpreadVenusLove:          venusLoveAnalysis,
	SpreadTreeOfLife:         treeOfLifeAnalysis,
	SpreadAstrologicalHouses: astrologicalAnalysis,
	SpreadMandala:            mandalaAnalysis,
	SpreadPentagram:          pentagramAnalysis,
	SpreadMirrorOfTruth:      mirrorOfTruthAnalysis,
}

// structuralAnalysis 按牌阵标识符分发结构分析，未注册的牌阵返回空串
func structuralAnalysis(spreadTag string, cards []DrawnCard) string {
	analyzer, ok := structuralAnalyzers[spreadTag]
	if !ok {
		return ""
	}
	return analyzer(cards)
}

func uprightCount(cards []DrawnCard) int {
	n := 0
	for _, c := range cards {
		if c.Orientation == OrientationUpright {
			n++
		}
	}
	return n
}

// similarEnergy 同方向且同花色或同阿卡纳时认为两张牌能量相近
func similarEnergy(a, b DrawnCard) bool {
	if a.Orientation != b.Orientation {
		return false
	}
	if a.Card.Suit != "" && b.Card.Suit != "" && a.Card.Suit == b.Card.Suit {
		return true
	}
	return a.Card.Arcana == b.Card.Arcana
}

func celticCrossAnalysis(cards []DrawnCard) string {
	if len(cards) != 10 {
		return ""
	}

	var b strings.Builder
	b.WriteString("**Celtic Cross Analysis:**\n\n")

	above := cards[4]
	below := cards[5]
	future := cards[3]
	outcome := cards[9]

	fmt.Fprintf(&b, "**Conscious vs Subconscious:** The %s above represents your conscious goals, while the %s below reveals your subconscious drives. ", above.Card.Name, below.Card.Name)
	if above.Orientation == below.Orientation {
		b.WriteString("These are aligned, suggesting harmony between your conscious desires and unconscious motivations. ")
	} else {
		b.WriteString("The different orientations suggest some tension between what you consciously want and what unconsciously drives you. ")
	}

	fmt.Fprintf(&b, "**Goal vs Outcome:** Your conscious goal (%s) ", above.Card.Name)
	if similarEnergy(above, outcome) {
		b.WriteString("aligns well with the likely outcome, suggesting you're on the right path. ")
	} else {
		b.WriteString("differs from the projected outcome, indicating you may need to adjust your approach. ")
	}

	fmt.Fprintf(&b, "**Near Future Impact:** The %s in your near future will ", future.Card.Name)
	if future.Orientation == OrientationUpright {
		b.WriteString("support your journey toward the final outcome. ")
	} else {
		b.WriteString("present challenges that need to be navigated carefully to reach your desired outcome. ")
	}

	b.WriteString("\n")
	return b.String()
}

func threeCardAnalysis(cards []DrawnCard) string {
	if len(cards) != 3 {
		return ""
	}

	var b strings.Builder
	b.WriteString("**Three Card Flow Analysis:**\n\n")

	past, present, future := cards[0], cards[1], cards[2]
	fmt.Fprintf(&b, "**The Journey:** From %s in the past, through %s in the present, to %s in the future, ", past.Card.Name, present.Card.Name, future.Card.Name)

	pastUp := past.Orientation == OrientationUpright
	presentUp := present.Orientation == OrientationUpright
	futureUp := future.Orientation == OrientationUpright

	switch {
	case !pastUp && presentUp && futureUp:
		b.WriteString("shows a clear progression from difficulty to resolution and success. ")
	case pastUp && !presentUp && futureUp:
		b.WriteString("indicates a temporary setback that will resolve positively. ")
	case pastUp && presentUp && futureUp:
		b.WriteString("reveals a consistently positive trajectory with continued growth. ")
	default:
		b.WriteString("shows a complex journey requiring careful attention to the lessons each phase offers. ")
	}

	b.WriteString("\n")
	return b.String()
}

func relationshipAnalysis(cards []DrawnCard) string {
	if len(cards) != 7 {
		return ""
	}

	var b strings.Builder
	b.WriteString("**Relationship Dynamics Analysis:**\n\n")

	you, partner := cards[0], cards[1]

	b.WriteString("**Compatibility Assessment:** ")
	if you.Orientation == partner.Orientation {
		b.WriteString("You and your partner are currently in similar emotional states, which can create harmony. ")
	} else {
		b.WriteString("You and your partner are in different emotional phases, which requires understanding and patience. ")
	}

	if uprightCount(cards[:4]) >= 3 {
		b.WriteString("The overall energy of the relationship is positive and supportive. ")
	} else {
		b.WriteString("The relationship may need attention and conscious effort to improve dynamics. ")
	}

	b.WriteString("\n")
	return b.String()
}

func careerAnalysis(cards []DrawnCard) string {
	if len(cards) != 6 {
		return ""
	}

	var b strings.Builder
	b.WriteString("**Career Path Analysis:**\n\n")

	skills := cards[1]
	challenges := cards[2]
	opportunities := cards[3]

	b.WriteString("**Career Readiness:** ")
	switch {
	case skills.Orientation == OrientationUpright && opportunities.Orientation == OrientationUpright:
		b.WriteString("You have strong skills and good opportunities ahead. This is a favorable time for career advancement. ")
	case challenges.Orientation == OrientationReversed:
		b.WriteString("Previous obstacles are clearing, making way for new professional growth. ")
	default:
		b.WriteString("Focus on developing your skills and overcoming current challenges before pursuing new opportunities. ")
	}

	b.WriteString("\n")
	return b.String()
}

func spiritualAnalysis(cards []DrawnCard) string {
	if len(cards) != 6 {
		return ""
	}

	var b strings.Builder
	b.WriteString("**Spiritual Development Analysis:**\n\n")

	spiritualState := cards[0]
	blocks := cards[2]

	b.WriteString("**Spiritual Progress:** ")
	if spiritualState.Orientation == OrientationUpright {
		b.WriteString("You are in a positive phase of spiritual growth and awareness. ")
	} else {
		b.WriteString("You may be experiencing spiritual challenges or confusion that require inner work. ")
	}

	if blocks.Orientation == OrientationReversed {
		b.WriteString("Previous spiritual blocks are dissolving, allowing for greater growth. ")
	}

	b.WriteString("\n")
	return b.String()
}

func chakraAnalysis(cards []DrawnCard) string {
	if len(cards) != 7 {
		return ""
	}

	var b strings.Builder
	b.WriteString("**Chakra Energy Analysis:**\n\n")

	balancePercentage := float64(uprightCount(cards)) / 7 * 100

	b.WriteString("**Overall Energy Balance:** ")
	switch {
	case balancePercentage >= 70:
		b.WriteString("Your chakras are well-balanced with strong energy flow. ")
	case balancePercentage >= 50:
		b.WriteString("Your energy centers have moderate balance with some areas needing attention. ")
	default:
		b.WriteString("Several chakras need healing and rebalancing for optimal energy flow. ")
	}

	lower := uprightCount(cards[0:3])
	upper := uprightCount(cards[4:7])
	if lower > upper {
		b.WriteString("Your grounding and physical energy centers are stronger than your spiritual centers. ")
	} else if upper > lower {
		b.WriteString("Your spiritual and intuitive centers are more active than your grounding centers. ")
	}

	b.WriteString("\n")
	return b.String()
}

func yearAheadAnalysis(cards []DrawnCard) string {
	if len(cards) != 13 {
		return ""
	}

	var b strings.Builder
	b.WriteString("**Year Ahead Overview:**\n\n")

	overallTheme := cards[0]
	months := cards[1:]

	fmt.Fprintf(&b, "**Year Theme:** The %s sets the tone for your year, ", overallTheme.Card.Name)
	if overallTheme.Orientation == OrientationUpright {
		b.WriteString("indicating a positive and growth-oriented period ahead. ")
	} else {
		b.WriteString("suggesting a year of inner work and overcoming challenges. ")
	}

	quarterNames := []string{"First Quarter", "Second Quarter", "Third Quarter", "Fourth Quarter"}
	for i, name := range quarterNames {
		quarter := months[i*3 : i*3+3]
		fmt.Fprintf(&b, "**%s:** ", name)
		if uprightCount(quarter) >= 2 {
			b.WriteString("A positive and productive period. ")
		} else {
			b.WriteString("A time for patience and inner work. ")
		}
	}

	b.WriteString("\n")
	return b.String()
}

func venusLoveAnalysis(cards []DrawnCard) string {
	if len(cards) != 7 {
		return ""
	}

	var b strings.Builder
	b.WriteString("**Venus Love Energy Analysis:**\n\n")

	currentEnergy := cards[0]
	selfLove := cards[1]
	attraction := cards[2]
	blocks := cards[3]
	future := cards[6]

	fmt.Fprintf(&b, "**Love Energy Flow:** Your current relationship energy (%s) ", currentEnergy.Card.Name)
	if currentEnergy.Orientation == OrientationUpright {
		b.WriteString("shows positive romantic vibrations and openness to love. ")
	} else {
		b.WriteString("suggests some healing or inner work is needed before fully opening to love. ")
	}

	fmt.Fprintf(&b, "Your self-love foundation (%s) ", selfLove.Card.Name)
	if selfLove.Orientation == OrientationUpright {
		b.WriteString("indicates healthy self-worth that attracts genuine love. ")
	} else {
		b.WriteString("reveals areas where self-compassion and self-acceptance need attention. ")
	}

	fmt.Fprintf(&b, "What attracts love to you (%s) works in harmony with ", attraction.Card.Name)
	fmt.Fprintf(&b, "overcoming blocks (%s) to create a path forward. ", blocks.Card.Name)

	fmt.Fprintf(&b, "The future potential (%s) ", future.Card.Name)
	if future.Orientation == OrientationUpright {
		b.WriteString("promises beautiful developments in your love life. ")
	} else {
		b.WriteString("suggests patience and continued inner work will lead to love. ")
	}

	b.WriteString("\n")
	return b.String()
}

func treeOfLifeAnalysis(cards []DrawnCard) string {
	if len(cards) != 10 {
		return ""
	}

	var b strings.Builder
	b.WriteString("**Tree of Life Spiritual Analysis:**\n\n")

	kether := cards[0]
	malkuth := cards[9]

	// 三柱：左柱严厉（Binah/Geburah/Hod），右柱仁慈（Chokmah/Chesed/Netzach）
	leftUpright := uprightCount([]DrawnCard{cards[2], cards[4], cards[7]})
	rightUpright := uprightCount([]DrawnCard{cards[1], cards[3], cards[6]})

	b.WriteString("**Pillar Balance:** ")
	switch {
	case rightUpright > leftUpright:
		b.WriteString("The Pillar of Mercy dominates, indicating expansion, growth, and positive energy. ")
	case leftUpright > rightUpright:
		b.WriteString("The Pillar of Severity is prominent, suggesting discipline, boundaries, and necessary restrictions. ")
	default:
		b.WriteString("The pillars are balanced, showing harmony between expansion and contraction. ")
	}

	fmt.Fprintf(&b, "**Divine Flow:** From Kether (%s) to Malkuth (%s), ", kether.Card.Name, malkuth.Card.Name)
	if kether.Orientation == malkuth.Orientation {
		b.WriteString("there's alignment between your highest purpose and material manifestation. ")
	} else {
		b.WriteString("there's a need to bridge the gap between spiritual ideals and earthly reality. ")
	}

	b.WriteString("\n")
	return b.String()
}

func astrologicalAnalysis(cards []DrawnCard) string {
	if len(cards) != 12 {
		return ""
	}

	var b strings.Builder
	b.WriteString("**Astrological Houses Analysis:**\n\n")

	// 按元素分组宫位：火 1/5/9，土 2/6/10，风 3/7/11，水 4/8/12
	elements := []struct {
		name  string
		count int
	}{
		{"Fire (Identity/Creativity/Philosophy)", uprightCount([]DrawnCard{cards[0], cards[4], cards[8]})},
		{"Earth (Resources/Work/Career)", uprightCount([]DrawnCard{cards[1], cards[5], cards[9]})},
		{"Air (Communication/Partnerships/Community)", uprightCount([]DrawnCard{cards[2], cards[6], cards[10]})},
		{"Water (Home/Transformation/Spirituality)", uprightCount([]DrawnCard{cards[3], cards[7], cards[11]})},
	}

	strongest := elements[0]
	for _, e := range elements[1:] {
		if e.count > strongest.count {
			strongest = e
		}
	}

	b.WriteString("**Elemental Balance:** ")
	fmt.Fprintf(&b, "%s energy is strongest in your chart, ", strongest.name)
	b.WriteString("indicating focus in these life areas. ")

	// 角宫：1/4/7/10
	angularUpright := uprightCount([]DrawnCard{cards[0], cards[3], cards[6], cards[9]})
	fmt.Fprintf(&b, "**Life Direction:** With %d out of 4 angular houses upright, ", angularUpright)
	switch {
	case angularUpright >= 3:
		b.WriteString("you have strong momentum and clear direction in major life areas. ")
	case angularUpright >= 2:
		b.WriteString("you have moderate stability with some areas needing attention. ")
	default:
		b.WriteString("focus on building stronger foundations in key life areas. ")
	}

	b.WriteString("\n")
	return b.String()
}

func mandalaAnalysis(cards []DrawnCard) string {
	if len(cards) != 9 {
		return ""
	}

	var b strings.Builder
	b.WriteString("**Mandala Wholeness Analysis:**\n\n")

	center := cards[0]
	directions := cards[1:]

	fmt.Fprintf(&b, "**Core Integration:** Your center (%s) ", center.Card.Name)
	if center.Orientation == OrientationUpright {
		b.WriteString("shows a strong, balanced core that can integrate the surrounding energies. ")
	} else {
		b.WriteString("suggests the need for inner healing before achieving wholeness. ")
	}

	uprightDirections := uprightCount(directions)
	fmt.Fprintf(&b, "**Directional Balance:** With %d out of 8 directions upright, ", uprightDirections)
	switch {
	case uprightDirections >= 6:
		b.WriteString("your life energies are well-balanced and flowing harmoniously. ")
	case uprightDirections >= 4:
		b.WriteString("you have good balance with some areas needing attention. ")
	default:
		b.WriteString("focus on healing and balancing multiple life areas. ")
	}

	// 对向方位：北/南，东/西，东北/西南，东南/西北
	opposites := [][2]DrawnCard{
		{directions[0], directions[4]},
		{directions[2], directions[6]},
		{directions[1], directions[5]},
		{directions[3], directions[7]},
	}
	balancedPairs := 0
	for _, pair := range opposites {
		if pair[0].Orientation == pair[1].Orientation {
			balancedPairs++
		}
	}

	fmt.Fprintf(&b, "**Polarity Integration:** %d out of 4 opposite pairs are balanced, ", balancedPairs)
	if balancedPairs >= 3 {
		b.WriteString("showing excellent integration of opposing forces. ")
	} else {
		b.WriteString("indicating opportunities to harmonize conflicting energies. ")
	}

	b.WriteString("\n")
	return b.String()
}

func pentagramAnalysis(cards []DrawnCard) string {
	if len(cards) != 5 {
		return ""
	}

	var b strings.Builder
	b.WriteString("**Pentagram Elemental Analysis:**\n\n")

	spirit := cards[0]
	air, fire, earth, water := cards[1], cards[2], cards[3], cards[4]

	uprightElements := uprightCount(cards[1:])
	fmt.Fprintf(&b, "**Elemental Harmony:** With %d out of 4 elements upright, ", uprightElements)
	switch {
	case uprightElements == 4:
		b.WriteString("all elements are in perfect harmony, creating powerful manifestation energy. ")
	case uprightElements >= 3:
		b.WriteString("strong elemental balance with minor adjustments needed. ")
	case uprightElements >= 2:
		b.WriteString("moderate balance requiring attention to weaker elements. ")
	default:
		b.WriteString("significant elemental imbalance requiring healing and rebalancing. ")
	}

	fmt.Fprintf(&b, "**Divine Connection:** Spirit (%s) ", spirit.Card.Name)
	if spirit.Orientation == OrientationUpright {
		b.WriteString("shows strong divine connection guiding your elemental balance. ")
	} else {
		b.WriteString("suggests the need to strengthen your spiritual foundation. ")
	}

	b.WriteString("**Elemental Flow:** ")
	if air.Orientation == OrientationUpright {
		b.WriteString("Clear thinking and communication support your goals. ")
	}
	if fire.Orientation == OrientationUpright {
		b.WriteString("Passionate energy drives your actions. ")
	}
	if earth.Orientation == OrientationUpright {
		b.WriteString("Practical foundations support manifestation. ")
	}
	if water.Orientation == OrientationUpright {
		b.WriteString("Emotional wisdom guides your intuition. ")
	}

	b.WriteString("\n")
	return b.String()
}

func mirrorOfTruthAnalysis(cards []DrawnCard) string {
	if len(cards) != 4 {
		return ""
	}

	var b strings.Builder
	b.WriteString("**Mirror of Truth - Four Beams of Light Analysis:**\n\n")

	yourPerspective := cards[0]
	theirIntention := cards[1]
	objectiveTruth := cards[2]
	futureGuidance := cards[3]

	fmt.Fprintf(&b, "**First Light - Illuminate Yourself:** %s (%s)\n", yourPerspective.Card.Name, yourPerspective.Orientation)
	b.WriteString("Your current emotional state and inner filters show: ")
	if yourPerspective.Orientation == OrientationUpright {
		b.WriteString("Your perception of the situation is relatively clear, your emotional state is stable, and you can view the problem objectively.")
	} else {
		b.WriteString("Your perspective may be influenced by strong emotions, anxiety, or expectations, requiring inner calm to see the truth clearly.")
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "**Second Light - Explore Their Heart:** %s (%s)\n", theirIntention.Card.Name, theirIntention.Orientation)
	b.WriteString("Their true intentions and inner state indicate: ")
	if theirIntention.Orientation == OrientationUpright {
		b.WriteString("Their motivations are relatively positive and sincere, with good intentions or at least neutral intent behind their actions.")
	} else {
		b.WriteString("They may have complex inner states, their true intentions might not align with surface behavior, or they themselves are confused.")
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "**Third Light - Restore Original Truth:** %s (%s)\n", objectiveTruth.Card.Name, objectiveTruth.Orientation)
	b.WriteString("Stripping away all subjective emotions, the truth is: ")
	if objectiveTruth.Orientation == OrientationUpright {
		b.WriteString("The situation itself is relatively simple and clear, you and the other person may have over-interpreted it. The facts are more direct than imagined.")
	} else {
		b.WriteString("The situation does have complexity and hidden layers, requiring more time and information to fully understand.")
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "**Fourth Light - Guide Future Direction:** %s (%s)\n", futureGuidance.Card.Name, futureGuidance.Orientation)
	b.WriteString("Based on understanding the truth, you should: ")
	if futureGuidance.Orientation == OrientationUpright {
		b.WriteString("Take positive and proactive action, now is a good time to clarify misunderstandings, improve relationships, or make decisions.")
	} else {
		b.WriteString("Maintain patience and observation, don't rush into action, let time and more information reveal the best path forward.")
	}
	b.WriteString("\n\n")

	b.WriteString("**Comprehensive Insights from Four Lights:**\n")
	if yourPerspective.Orientation == theirIntention.Orientation {
		b.WriteString("Your perception and their intention are in similar energy states, indicating some synchronicity between you. ")
	} else {
		b.WriteString("Your perception and their intention have energy differences, which may be the source of misunderstanding. ")
	}

	if objectiveTruth.Orientation == futureGuidance.Orientation {
		b.WriteString("The nature of the facts aligns with future guidance, indicating you can trust this direction. ")
	} else {
		b.WriteString("The complexity of the facts requires flexibility and openness in your actions. ")
	}

	clear := uprightCount(cards)
	fmt.Fprintf(&b, "\n\n**Clarity of Truth:** %d out of 4 lights shine clearly, ", clear)
	switch clear {
	case 4:
		b.WriteString("all dimensions are clear, this is a moment of complete truth where decisive action can be taken.")
	case 3:
		b.WriteString("most of the truth has been revealed, requiring only patience and understanding in one dimension.")
	case 2:
		b.WriteString("truth is gradually emerging, requiring balance of information from different dimensions to make judgments.")
	case 1:
		b.WriteString("currently only one dimension is relatively clear, more time is needed for other truths to surface.")
	default:
		b.WriteString("all dimensions are still in fog, this is a period requiring great patience and inner calm.")
	}

	b.WriteString("\n")
	return b.String()
}
