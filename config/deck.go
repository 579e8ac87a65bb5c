package config

import "arcanum/pkg/config"

func init() {
	config.Add("deck", func() map[string]interface{} {
		return map[string]interface{}{
			// 是否在启动时从远端刷新牌库数据
			"remote_refresh": config.Env("DECK_REMOTE_REFRESH", false),

			// 远端牌库数据地址
			"remote_url": config.Env("DECK_REMOTE_URL", ""),

			// 远端请求超时，单位秒
			"remote_timeout": config.Env("DECK_REMOTE_TIMEOUT", 10),
		}
	})
}
