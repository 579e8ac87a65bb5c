package deck

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"arcanum/pkg/logger"

	"github.com/go-resty/resty/v2"
)

// remoteDeck 远程牌库接口返回的结构
type remoteDeck struct {
	Name  string `json:"name"`
	Cards []Card `json:"cards"`
}

// RefreshFromRemote 从远程牌库拉取整副牌并替换内置数据
// 拉取失败时保留当前牌组，调用方只需记录日志
func (c *Catalog) RefreshFromRemote(ctx context.Context, url string, timeout time.Duration) error {
	if url == "" {
		return nil
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(3).
		SetRetryWaitTime(500 * time.Millisecond)

	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		Get(url)
	if err != nil {
		return fmt.Errorf("failed to fetch remote deck: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("remote deck returned non-200 status: %d", resp.StatusCode())
	}

	var remote remoteDeck
	if err := json.Unmarshal(resp.Body(), &remote); err != nil {
		return fmt.Errorf("failed to unmarshal remote deck: %w", err)
	}

	// 残缺的牌库不可用于占卜，整体拒绝
	if len(remote.Cards) < 2 {
		return fmt.Errorf("remote deck too small: %d cards", len(remote.Cards))
	}
	for _, card := range remote.Cards {
		if card.Name == "" {
			return fmt.Errorf("remote deck contains unnamed card (id=%s)", card.ID)
		}
		if card.IsMajor() && card.Number == nil {
			return fmt.Errorf("remote deck major arcana card missing number: %s", card.Name)
		}
	}

	c.replace(remote.Cards)
	logger.InfoString("牌库", "远程刷新", fmt.Sprintf("已加载远程牌库 %s，共 %d 张", remote.Name, len(remote.Cards)))
	return nil
}
