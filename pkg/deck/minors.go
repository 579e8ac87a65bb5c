package deck

// suitDef 花色定义：元素归属与主题关键词
type suitDef struct {
	suit     string
	element  string
	label    string // 名称中的花色词
	theme    string // 正位主题词
	shadow   string // 逆位主题词
	domain   string // 牌义场景描述
}

var suitDefs = []suitDef{
	{SuitWands, ElementFire, "Wands", "行动力", "动力受阻", "创造、事业与热情的领域"},
	{SuitCups, ElementWater, "Cups", "情感流动", "情感淤塞", "情感、关系与心灵的领域"},
	{SuitSwords, ElementAir, "Swords", "清晰思维", "思绪纷乱", "思想、沟通与抉择的领域"},
	{SuitPentacles, ElementEarth, "Pentacles", "务实根基", "物质焦虑", "物质、财务与身体的领域"},
}

// rankDef 点数定义：ace 到 king，宫廷牌无数字
type rankDef struct {
	label    string // 名称中的点数词
	number   int    // 0 表示宫廷牌（无数字）
	upright  []string
	reversed []string
}

var rankDefs = []rankDef{
	{"Ace", 1, []string{"新的契机", "潜能"}, []string{"错失良机", "起步受挫"}},
	{"Two", 2, []string{"平衡", "伙伴"}, []string{"摇摆不定", "失衡"}},
	{"Three", 3, []string{"成长", "协作"}, []string{"进展迟缓", "各行其是"}},
	{"Four", 4, []string{"稳定", "基础"}, []string{"停滞", "固守"}},
	{"Five", 5, []string{"变化", "挑战"}, []string{"冲突化解", "走出低谷"}},
	{"Six", 6, []string{"和谐", "给予"}, []string{"失调", "亏欠感"}},
	{"Seven", 7, []string{"审视", "坚持"}, []string{"自我怀疑", "方向动摇"}},
	{"Eight", 8, []string{"精进", "成就"}, []string{"倦怠", "徒劳"}},
	{"Nine", 9, []string{"接近圆满", "智慧"}, []string{"过度防备", "患得患失"}},
	{"Ten", 10, []string{"完成", "新循环"}, []string{"负荷过重", "难以收尾"}},
	{"Page", 0, []string{"讯息", "学习心态"}, []string{"消息延迟", "心浮气躁"}},
	{"Knight", 0, []string{"行动", "追寻"}, []string{"冒进", "停滞不前"}},
	{"Queen", 0, []string{"包容", "成熟掌握"}, []string{"情绪化", "过度干涉"}},
	{"King", 0, []string{"主导", "权威驾驭"}, []string{"滥用权威", "掌控失度"}},
}

// buildMinors 构建小阿卡纳 56 张牌
// 关键词由点数含义与花色主题合成，牌义基于同一套模板生成
func buildMinors() []Card {
	cards := make([]Card, 0, len(suitDefs)*len(rankDefs))
	for _, s := range suitDefs {
		for _, r := range rankDefs {
			name := r.label + " of " + s.label

			upright := append(append([]string{}, r.upright...), s.theme)
			reversed := append(append([]string{}, r.reversed...), s.shadow)

			card := Card{
				ID:      minorID(s.suit, r.label),
				Name:    name,
				Arcana:  ArcanaMinor,
				Suit:    s.suit,
				Element: s.element,
				Keywords: Keywords{
					Upright:  upright,
					Reversed: reversed,
				},
			}
			if r.number > 0 {
				number := r.number
				card.Number = &number
			}
			card.Meanings = Meanings{
				Upright:  composeMeanings(name, upright, "此牌落在"+s.domain),
				Reversed: composeMeanings(name, reversed, "逆位时"+s.domain+"的能量受阻"),
			}
			cards = append(cards, card)
		}
	}
	return cards
}
