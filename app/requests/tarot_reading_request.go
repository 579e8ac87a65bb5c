package requests

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// PerformReadingRequest 内置牌阵占卜请求
type PerformReadingRequest struct {
	SpreadType string `json:"spread_type" valid:"required"`
	Question   string `json:"question" valid:"required"`
	SessionID  string `json:"session_id"`
}

// ValidatePerformReading 校验内置牌阵占卜请求
func ValidatePerformReading(c *gin.Context) (*PerformReadingRequest, error) {
	var req PerformReadingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}

	rules := govalidator.MapData{
		"spread_type": []string{"required"},
		"question":    []string{"required", "min:1"},
	}

	messages := govalidator.MapData{
		"spread_type": []string{
			"required:牌阵类型不能为空",
		},
		"question": []string{
			"required:问题不能为空",
			"min:问题长度不能小于 1 个字符",
		},
	}

	opts := govalidator.Options{
		Data:     &req,
		Rules:    rules,
		Messages: messages,
	}

	if errs := govalidator.New(opts).ValidateStruct(); len(errs) > 0 {
		return nil, fmt.Errorf("验证失败: %v", errs)
	}

	return &req, nil
}

// PositionPayload 自定义牌阵的一个位置
type PositionPayload struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
}

// CustomReadingRequest 自定义牌阵占卜请求
// 字段内容的逐项校验交给占卜引擎，保持引擎的固定提示文案
type CustomReadingRequest struct {
	SpreadName  string            `json:"spread_name"`
	Description string            `json:"description"`
	Positions   []PositionPayload `json:"positions"`
	Question    string            `json:"question"`
	SessionID   string            `json:"session_id"`
}

// BindCustomReading 只做 JSON 绑定，业务校验由引擎完成
func BindCustomReading(c *gin.Context) (*CustomReadingRequest, error) {
	var req CustomReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}
	return &req, nil
}

// CombinationCardPayload 组合解读中的一张牌
type CombinationCardPayload struct {
	Name        string `json:"name"`
	Orientation string `json:"orientation"`
}

// CombinationRequest 牌组合解读请求
type CombinationRequest struct {
	Cards   []CombinationCardPayload `json:"cards"`
	Context string                   `json:"context"`
}

// ValidateCombination 校验牌组合解读请求
func ValidateCombination(c *gin.Context) (*CombinationRequest, error) {
	var req CombinationRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}

	if len(req.Cards) == 0 {
		return nil, fmt.Errorf("至少需要选择一张牌")
	}

	for i, card := range req.Cards {
		if card.Name == "" {
			return nil, fmt.Errorf("第 %d 张牌缺少名称", i+1)
		}
		if card.Orientation != "" && card.Orientation != "upright" && card.Orientation != "reversed" {
			return nil, fmt.Errorf("无效的牌面方向: %s", card.Orientation)
		}
	}

	return &req, nil
}
