package tarot

import (
	"fmt"
	"strings"
)

func orientationLabel(o Orientation) string {
	if o == OrientationUpright {
		return "正位"
	}
	return "逆位"
}

// interpret 生成一次占卜的完整解读：逐位牌义、结构分析、整体综合。
// analysisTag 为内置牌阵标识符或 custom_ 前缀的自定义标签。
func interpret(cards []DrawnCard, question, spreadName, analysisTag string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "这个%s占卜回答你的问题：\"%s\"\n\n", spreadName, question)

	for _, c := range cards {
		fmt.Fprintf(&b, "**%s**: %s (%s)\n", c.Position.Name, c.Card.Name, orientationLabel(c.Orientation))
		fmt.Fprintf(&b, "%s\n\n", c.Meaning)
	}

	b.WriteString(structuralAnalysis(analysisTag, cards))
	b.WriteString(synthesize(cards))

	return b.String()
}

// formatReading 渲染最终的占卜报告
func formatReading(r Reading, interpretation string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Reading\n\n", r.Spread.Name)
	fmt.Fprintf(&b, "**Question:** %s\n", r.Question)
	fmt.Fprintf(&b, "**Date:** %s\n", r.CreatedAt.Format("2006/1/2 15:04:05"))
	fmt.Fprintf(&b, "**Reading ID:** %s\n\n", r.ID)
	fmt.Fprintf(&b, "*%s*\n\n", r.Spread.Description)

	b.WriteString("## Your Cards\n\n")
	for i, c := range r.Cards {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, c.Position.Name)
		if c.Position.Meaning != "" {
			fmt.Fprintf(&b, "*%s*\n\n", c.Position.Meaning)
		}
		fmt.Fprintf(&b, "**%s** (%s)\n\n", c.Card.Name, c.Orientation)

		keywords := c.Card.Keywords.Upright
		if c.IsReversed() {
			keywords = c.Card.Keywords.Reversed
		}
		fmt.Fprintf(&b, "*Keywords: %s*\n\n", strings.Join(keywords, ", "))
	}

	b.WriteString("## Interpretation\n\n")
	b.WriteString(interpretation)

	return b.String()
}

// formatSpreadList 渲染全部内置牌阵的清单
func formatSpreadList(spreads []Spread) string {
	var b strings.Builder
	b.WriteString("# 可用的塔罗牌阵\n\n")

	for _, s := range spreads {
		fmt.Fprintf(&b, "## %s (%d 张牌)\n\n", s.Name, s.CardCount)
		fmt.Fprintf(&b, "%s\n\n", s.Description)
		b.WriteString("**位置：**\n")
		for i, p := range s.Positions {
			fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, p.Name, p.Meaning)
		}
		b.WriteString("\n")
	}

	b.WriteString("使用 `perform_reading` 工具和其中一种牌阵类型来获取占卜。")
	return b.String()
}
