package config

import "arcanum/pkg/config"

func init() {
	config.Add("session", func() map[string]interface{} {
		return map[string]interface{}{
			// 会话历史保留时长，单位秒，默认 7 天
			"ttl": config.Env("SESSION_TTL", 604800),

			// 每个会话最多保留多少条占卜记录
			"max_history": config.Env("SESSION_MAX_HISTORY", 50),

			// 历史落盘后台工作器数量
			"persist_workers": config.Env("SESSION_PERSIST_WORKERS", 4),

			// 写入限流（每秒）及突发量
			"rate_limit": config.Env("SESSION_RATE_LIMIT", 1000),
			"rate_burst": config.Env("SESSION_RATE_BURST", 1000),
		}
	})
}
