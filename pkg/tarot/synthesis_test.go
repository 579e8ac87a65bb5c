package tarot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arcanum/pkg/deck"
)

func intPtr(n int) *int {
	return &n
}

func majorCard(name string, number int, orientation Orientation) DrawnCard {
	return DrawnCard{
		Card:        deck.Card{Name: name, Arcana: deck.ArcanaMajor, Number: intPtr(number)},
		Orientation: orientation,
	}
}

func minorCard(name, suit, element string, number int, orientation Orientation) DrawnCard {
	c := deck.Card{Name: name, Arcana: deck.ArcanaMinor, Suit: suit, Element: element}
	if number > 0 {
		c.Number = intPtr(number)
	}
	return DrawnCard{Card: c, Orientation: orientation}
}

func TestArcanaBalanceRule(t *testing.T) {
	majorHeavy := []DrawnCard{
		majorCard("The Fool", 0, OrientationUpright),
		majorCard("The Magician", 1, OrientationUpright),
		minorCard("Two of Cups", deck.SuitCups, deck.ElementWater, 2, OrientationUpright),
	}
	assert.Contains(t, arcanaBalanceRule(majorHeavy), "大阿卡纳牌的强烈影响")

	minorOnly := []DrawnCard{
		minorCard("Two of Cups", deck.SuitCups, deck.ElementWater, 2, OrientationUpright),
		minorCard("Three of Wands", deck.SuitWands, deck.ElementFire, 3, OrientationUpright),
	}
	assert.Contains(t, arcanaBalanceRule(minorOnly), "只包含小阿卡纳牌")

	balanced := []DrawnCard{
		majorCard("The Fool", 0, OrientationUpright),
		minorCard("Two of Cups", deck.SuitCups, deck.ElementWater, 2, OrientationUpright),
	}
	assert.Contains(t, arcanaBalanceRule(balanced), "大阿卡纳和小阿卡纳牌的平衡")
}

func TestOrientationBalanceBuckets(t *testing.T) {
	cases := []struct {
		uprights, total int
		want            string
	}{
		{10, 10, "正位牌的主导地位"}, // 100%
		{8, 10, "正位牌的主导地位"},  // 恰好 80%
		{7, 10, "大多数牌都是正位"},  // 70%
		{6, 10, "大多数牌都是正位"},  // 恰好 60%
		{5, 10, "正位和逆位牌的平衡"}, // 50%
		{4, 10, "正位和逆位牌的平衡"}, // 恰好 40%
		{3, 10, "大多数逆位牌"},    // 30%
		{2, 10, "大多数逆位牌"},    // 恰好 20%
		{1, 10, "逆位牌的主导地位"},  // 10%
		{0, 10, "逆位牌的主导地位"},  // 0%
	}

	for _, tc := range cases {
		cards := drawnN(tc.total, OrientationReversed)
		for i := 0; i < tc.uprights; i++ {
			cards[i].Orientation = OrientationUpright
		}
		assert.Contains(t, orientationBalanceRule(cards), tc.want, "uprights=%d", tc.uprights)
	}
}

func TestElementalBalanceRule(t *testing.T) {
	// 火元素过半
	fireHeavy := []DrawnCard{
		minorCard("Two of Wands", deck.SuitWands, deck.ElementFire, 2, OrientationUpright),
		minorCard("Three of Wands", deck.SuitWands, deck.ElementFire, 3, OrientationUpright),
		minorCard("Two of Cups", deck.SuitCups, deck.ElementWater, 2, OrientationUpright),
	}
	out := elementalBalanceRule(fireHeavy)
	assert.Contains(t, out, "火元素的主导地位")
	assert.Contains(t, out, "缺乏air和earth元素能量")

	// 纯大阿卡纳没有元素，规则跳过
	majorsOnly := []DrawnCard{majorCard("The Fool", 0, OrientationUpright)}
	assert.Empty(t, elementalBalanceRule(majorsOnly))
}

func TestDominantSuitRule(t *testing.T) {
	// 单张不触发
	single := []DrawnCard{
		minorCard("Two of Cups", deck.SuitCups, deck.ElementWater, 2, OrientationUpright),
	}
	assert.Empty(t, dominantSuitRule(single))

	cases := []struct {
		suit, element, want string
	}{
		{deck.SuitWands, deck.ElementFire, "多张权杖牌"},
		{deck.SuitCups, deck.ElementWater, "多张圣杯牌"},
		{deck.SuitSwords, deck.ElementAir, "宝剑牌的主导地位"},
		{deck.SuitPentacles, deck.ElementEarth, "多张星币牌"},
	}
	for _, tc := range cases {
		cards := []DrawnCard{
			minorCard("Two", tc.suit, tc.element, 2, OrientationUpright),
			minorCard("Three", tc.suit, tc.element, 3, OrientationUpright),
		}
		assert.Contains(t, dominantSuitRule(cards), tc.want)
	}
}

func TestNumericalPatternAverages(t *testing.T) {
	// 单张带数字的牌不触发
	one := []DrawnCard{minorCard("Five of Cups", deck.SuitCups, deck.ElementWater, 5, OrientationUpright)}
	assert.Empty(t, numericalPatternRule(one))

	cases := []struct {
		numbers []int
		want    string
	}{
		{[]int{1, 2, 3}, "低数字牌"},      // 平均 2
		{[]int{3, 3}, "低数字牌"},         // 恰好 3
		{[]int{4, 6}, "中等数字"},         // 平均 5
		{[]int{6, 6}, "中等数字"},         // 恰好 6
		{[]int{7, 9}, "较高的数字"},        // 平均 8
		{[]int{10, 10}, "高数字和宫廷牌的出现"}, // 平均 10
	}
	for _, tc := range cases {
		cards := make([]DrawnCard, 0, len(tc.numbers))
		for _, n := range tc.numbers {
			cards = append(cards, minorCard("Numbered", deck.SuitCups, deck.ElementWater, n, OrientationUpright))
		}
		assert.Contains(t, numericalPatternRule(cards), tc.want, "numbers=%v", tc.numbers)
	}
}

func TestNumericalPatternRepeatedNumbers(t *testing.T) {
	cards := []DrawnCard{
		minorCard("Two of Cups", deck.SuitCups, deck.ElementWater, 2, OrientationUpright),
		minorCard("Two of Wands", deck.SuitWands, deck.ElementFire, 2, OrientationUpright),
		minorCard("Seven of Swords", deck.SuitSwords, deck.ElementAir, 7, OrientationUpright),
		minorCard("Seven of Cups", deck.SuitCups, deck.ElementWater, 7, OrientationUpright),
	}

	out := numericalPatternRule(cards)
	assert.Contains(t, out, "数字2和7的重复强调了以下主题：平衡和伙伴关系，精神发展和内省。")
}

func TestCourtCardRule(t *testing.T) {
	none := []DrawnCard{minorCard("Two of Cups", deck.SuitCups, deck.ElementWater, 2, OrientationUpright)}
	assert.Empty(t, courtCardRule(none))

	oneCourt := []DrawnCard{minorCard("Queen of Cups", deck.SuitCups, deck.ElementWater, 0, OrientationUpright)}
	assert.Contains(t, courtCardRule(oneCourt), "宫廷牌的出现表明特定的人")

	twoCourts := []DrawnCard{
		minorCard("Queen of Cups", deck.SuitCups, deck.ElementWater, 0, OrientationUpright),
		minorCard("King of Wands", deck.SuitWands, deck.ElementFire, 0, OrientationReversed),
	}
	assert.Contains(t, courtCardRule(twoCourts), "2张宫廷牌表明多个人")
}

func TestMajorArcanaPatternRule(t *testing.T) {
	// 跨度 > 10
	wide := []DrawnCard{
		majorCard("The Fool", 0, OrientationUpright),
		majorCard("The World", 21, OrientationUpright),
	}
	assert.Contains(t, majorArcanaPatternRule(wide), "广泛跨度")

	// 跨度 < 5
	tight := []DrawnCard{
		majorCard("The Emperor", 4, OrientationUpright),
		majorCard("The Hierophant", 5, OrientationUpright),
	}
	assert.Contains(t, majorArcanaPatternRule(tight), "紧密分组")

	// 原型组合
	archetypes := []DrawnCard{
		majorCard("The Fool", 0, OrientationUpright),
		majorCard("The Magician", 1, OrientationReversed),
		majorCard("The High Priestess", 2, OrientationUpright),
		majorCard("The Hierophant", 5, OrientationUpright),
	}
	out := majorArcanaPatternRule(archetypes)
	assert.Contains(t, out, "愚者和魔术师的同时出现")
	assert.Contains(t, out, "女祭司和教皇一起出现")

	// 没有大阿卡纳则跳过
	assert.Empty(t, majorArcanaPatternRule([]DrawnCard{minorCard("Two of Cups", deck.SuitCups, deck.ElementWater, 2, OrientationUpright)}))
}

func TestMajorArcanaPatternRuleMissingNumbers(t *testing.T) {
	// 外部牌库可能给出没有编号的大阿卡纳，跨度统计跳过它们
	unnumbered := []DrawnCard{
		{Card: deck.Card{Name: "The Star", Arcana: deck.ArcanaMajor}, Orientation: OrientationUpright},
		{Card: deck.Card{Name: "The Moon", Arcana: deck.ArcanaMajor}, Orientation: OrientationReversed},
	}

	var out string
	assert.NotPanics(t, func() {
		out = majorArcanaPatternRule(unnumbered)
	})
	assert.NotContains(t, out, "跨度")
	assert.NotContains(t, out, "紧密分组")

	// 只有一张有编号时同样不产生跨度描述，原型组合仍然生效
	mixed := []DrawnCard{
		majorCard("The Fool", 0, OrientationUpright),
		{Card: deck.Card{Name: "The Magician", Arcana: deck.ArcanaMajor}, Orientation: OrientationUpright},
	}
	out = majorArcanaPatternRule(mixed)
	assert.NotContains(t, out, "紧密分组")
	assert.Contains(t, out, "愚者和魔术师的同时出现")
}

func TestSynthesizeStructure(t *testing.T) {
	cards := []DrawnCard{
		majorCard("The Fool", 0, OrientationUpright),
		minorCard("Two of Cups", deck.SuitCups, deck.ElementWater, 2, OrientationReversed),
	}
	out := synthesize(cards)

	assert.True(t, len(out) > 0)
	assert.Contains(t, out, "**整体解读：**")
	assert.Contains(t, out, "请相信你的直觉")

	// 组合解读不带整体头部，但带结语
	comb := combinationSynthesis(cards)
	assert.NotContains(t, comb, "**整体解读：**")
	assert.Contains(t, comb, "请相信你的直觉")
}
