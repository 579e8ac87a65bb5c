package deck

import (
	"fmt"
	"strings"
)

// composeMeanings 由关键词合成五个主题的牌义文本
// 牌义数据库按同一套模板生成，保证全牌组文本结构一致
func composeMeanings(name string, keywords []string, context string) MeaningSet {
	kw := strings.Join(keywords, "、")

	return MeaningSet{
		General: fmt.Sprintf("%s的核心能量是%s。%s，提示你留意这股力量在当下处境中的表现。",
			name, kw, context),
		Love: fmt.Sprintf("在感情层面，%s带来%s的讯息，关系中的互动正受到这股能量影响。",
			name, kw),
		Career: fmt.Sprintf("在事业与财务层面，%s指向%s，工作与金钱事务宜顺应这一主题行事。",
			name, kw),
		Health: fmt.Sprintf("在健康层面，%s提醒你关注%s对身心状态的作用，调整节奏与习惯。",
			name, kw),
		Spirituality: fmt.Sprintf("在灵性层面，%s象征%s，这是内在成长旅程中值得静心体会的一课。",
			name, kw),
	}
}

// majorID 大阿卡纳的规范 ID，例如 major_00
func majorID(number int) string {
	return fmt.Sprintf("major_%02d", number)
}

// minorID 小阿卡纳的规范 ID，例如 minor_wands_ace
func minorID(suit, rankLabel string) string {
	return fmt.Sprintf("minor_%s_%s", suit, strings.ToLower(rankLabel))
}
