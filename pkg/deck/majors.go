package deck

// majorDef 大阿卡纳的静态定义
type majorDef struct {
	number   int
	name     string
	upright  []string
	reversed []string
}

// 大阿卡纳 22 张，编号 0-21
var majorDefs = []majorDef{
	{0, "The Fool", []string{"新的开始", "纯真", "自由精神"}, []string{"鲁莽", "停滞不前", "轻率冒险"}},
	{1, "The Magician", []string{"显化", "意志力", "资源整合"}, []string{"操纵", "计划不周", "才能未展"}},
	{2, "The High Priestess", []string{"直觉", "潜意识", "内在智慧"}, []string{"秘密", "直觉受阻", "自我封闭"}},
	{3, "The Empress", []string{"丰饶", "滋养", "创造力"}, []string{"创造受阻", "过度依赖", "停滞"}},
	{4, "The Emperor", []string{"权威", "结构", "掌控"}, []string{"专制", "僵化", "失控"}},
	{5, "The Hierophant", []string{"传统", "灵性教导", "体制"}, []string{"反叛", "颠覆常规", "另辟蹊径"}},
	{6, "The Lovers", []string{"爱", "和谐", "抉择"}, []string{"失衡", "价值观冲突", "关系紧张"}},
	{7, "The Chariot", []string{"意志", "胜利", "前进"}, []string{"方向迷失", "阻力", "缺乏自律"}},
	{8, "Strength", []string{"勇气", "柔性力量", "慈悲"}, []string{"自我怀疑", "软弱", "不安全感"}},
	{9, "The Hermit", []string{"内省", "求索", "指引"}, []string{"孤立", "封闭", "逃避"}},
	{10, "Wheel of Fortune", []string{"转机", "因果循环", "命运"}, []string{"厄运", "抗拒变化", "循环受阻"}},
	{11, "Justice", []string{"公正", "真相", "因果"}, []string{"不公", "失衡", "逃避责任"}},
	{12, "The Hanged Man", []string{"放下", "换位视角", "暂停"}, []string{"拖延", "抗拒", "徒劳牺牲"}},
	{13, "Death", []string{"结束", "转化", "蜕变"}, []string{"恐惧改变", "停滞", "难以放手"}},
	{14, "Temperance", []string{"平衡", "节制", "耐心"}, []string{"失衡", "过度", "需要修复"}},
	{15, "The Devil", []string{"束缚", "欲望", "物质执念"}, []string{"解脱", "挣脱枷锁", "重获力量"}},
	{16, "The Tower", []string{"剧变", "觉醒", "真相揭露"}, []string{"灾难延缓", "恐惧改变", "勉强维持"}},
	{17, "The Star", []string{"希望", "疗愈", "灵感"}, []string{"失去信心", "沮丧", "灵感枯竭"}},
	{18, "The Moon", []string{"幻象", "直觉", "潜藏恐惧"}, []string{"迷雾散去", "情绪释放", "真相浮现"}},
	{19, "The Sun", []string{"成功", "活力", "喜悦"}, []string{"暂时低落", "过度乐观", "内在小孩"}},
	{20, "Judgement", []string{"觉醒", "重生", "内在召唤"}, []string{"自我怀疑", "忽视召唤", "犹疑不决"}},
	{21, "The World", []string{"圆满", "成就", "完成"}, []string{"未竟之事", "缺乏收尾", "延迟的成功"}},
}

// buildMajors 构建大阿卡纳牌
func buildMajors() []Card {
	cards := make([]Card, 0, len(majorDefs))
	for _, def := range majorDefs {
		number := def.number
		card := Card{
			ID:     majorID(def.number),
			Name:   def.name,
			Arcana: ArcanaMajor,
			Number: &number,
			Keywords: Keywords{
				Upright:  def.upright,
				Reversed: def.reversed,
			},
		}
		card.Meanings = Meanings{
			Upright:  composeMeanings(def.name, def.upright, "这张大阿卡纳牌指向人生课题与灵性力量"),
			Reversed: composeMeanings(def.name, def.reversed, "逆位提示该课题的能量受阻或走向内化"),
		}
		cards = append(cards, card)
	}
	return cards
}
