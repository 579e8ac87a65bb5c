package bootstrap

import (
	"context"
	"time"

	"arcanum/app/repositories"
	"arcanum/pkg/config"
	"arcanum/pkg/deck"
	"arcanum/pkg/logger"
	"arcanum/pkg/session"
)

// SetupTarot 初始化牌库与会话存储
// 牌库内置 78 张牌，可按配置在启动时用远端数据覆盖牌义
func SetupTarot() {
	if config.GetBool("deck.remote_refresh") {
		refreshDeck()
	}

	session.InitDefault(repositories.NewReadingRepository())
}

// refreshDeck 从远端刷新牌库，失败时继续使用内置数据
func refreshDeck() {
	url := config.GetString("deck.remote_url")
	if url == "" {
		logger.WarnString("牌库", "远端刷新", "未配置 DECK_REMOTE_URL，跳过刷新")
		return
	}

	timeout := time.Duration(config.GetInt("deck.remote_timeout", 10)) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := deck.Default().RefreshFromRemote(ctx, url, timeout); err != nil {
		logger.ErrorString("牌库", "远端刷新", "刷新失败，使用内置数据："+err.Error())
		return
	}
	logger.InfoString("牌库", "远端刷新", "牌库数据刷新成功")
}
