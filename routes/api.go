package routes

import (
	"arcanum/app/http/controllers/api/v1/tarot"
	"arcanum/app/http/middlewares"

	"github.com/gin-gonic/gin"
)

// 路由限流配置
const (
	// 全局限流：每小时每IP 30000 请求
	GlobalRateLimit = "30000-H"
	// 创建占卜限流：每小时每IP 100 请求
	CreateReadingLimit = "100-H"
	// 查询接口限流：每分钟每IP 300 请求
	QueryLimit = "300-M"
)

// RegisterAPIRoutes 注册所有 API 路由
func RegisterAPIRoutes(r *gin.Engine) {
	v1 := r.Group("/v1")

	v1.Use(
		middlewares.Recovery(),
		middlewares.SecurityHeaders(),
		middlewares.LimitIP(GlobalRateLimit),
		middlewares.Cors(),
	)

	// 塔罗相关路由
	tarotRoutes := v1.Group("/tarot")
	{
		rc := tarot.NewReadingController()

		// 执行内置牌阵占卜
		// POST /v1/tarot/readings
		tarotRoutes.POST("/readings",
			middlewares.LimitIP(CreateReadingLimit),
			rc.Store,
		)

		// 执行自定义牌阵占卜
		// POST /v1/tarot/readings/custom
		tarotRoutes.POST("/readings/custom",
			middlewares.LimitIP(CreateReadingLimit),
			rc.StoreCustom,
		)

		// 牌组合解读
		// POST /v1/tarot/combinations
		tarotRoutes.POST("/combinations",
			middlewares.LimitIP(CreateReadingLimit),
			rc.Combinations,
		)

		// 列出全部内置牌阵
		// GET /v1/tarot/spreads
		tarotRoutes.GET("/spreads",
			middlewares.LimitIP(QueryLimit),
			rc.Spreads,
		)

		// 按牌名查询单张牌
		// GET /v1/tarot/cards/:name
		tarotRoutes.GET("/cards/:name",
			middlewares.LimitIP(QueryLimit),
			rc.ShowCard,
		)

		// 会话管理
		v1.POST("/sessions", rc.NewSession)
		v1.GET("/sessions/:session_id/readings",
			middlewares.LimitIP(QueryLimit),
			rc.GetSessionReadings,
		)
		v1.GET("/sessions/:session_id/readings/:reading_id",
			middlewares.LimitIP(QueryLimit),
			rc.GetReadingDetail,
		)
		v1.DELETE("/sessions/:session_id",
			middlewares.LimitIP(QueryLimit),
			rc.DeleteSession,
		)

		// 健康检查
		r.GET("/healthz", rc.HealthCheck)
	}
}
