package tarot

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"arcanum/app/models/reading"
	"arcanum/app/requests"
	"arcanum/pkg/deck"
	"arcanum/pkg/logger"
	"arcanum/pkg/response"
	"arcanum/pkg/session"
	enginepkg "arcanum/pkg/tarot"
)

// ReadingController 占卜接口
type ReadingController struct {
	engine  *enginepkg.Engine
	catalog *deck.Catalog
}

// NewReadingController 创建控制器实例
func NewReadingController() *ReadingController {
	catalog := deck.Default()
	return &ReadingController{
		engine:  enginepkg.NewEngine(catalog),
		catalog: catalog,
	}
}

// Store 执行内置牌阵占卜
// POST /v1/tarot/readings
func (rc *ReadingController) Store(c *gin.Context) {
	request, err := requests.ValidatePerformReading(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	report, result, err := rc.engine.PerformReading(request.SpreadType, request.Question)
	if err != nil {
		response.Abort500(c, "占卜执行失败")
		return
	}

	// 牌阵标识符无效：引擎返回提示文本，作为正常输出响应
	if result == nil {
		response.Text(c, report)
		return
	}

	rc.appendToSession(c, request.SessionID, result, report)

	response.Data(c, gin.H{
		"reading_id": result.ID,
		"session_id": request.SessionID,
		"spread_tag": result.SpreadTag,
		"report":     report,
	})
}

// StoreCustom 执行自定义牌阵占卜
// POST /v1/tarot/readings/custom
func (rc *ReadingController) StoreCustom(c *gin.Context) {
	request, err := requests.BindCustomReading(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	positions := make([]enginepkg.Position, 0, len(request.Positions))
	for _, p := range request.Positions {
		positions = append(positions, enginepkg.Position{Name: p.Name, Meaning: p.Meaning})
	}

	report, result, err := rc.engine.PerformCustomReading(request.SpreadName, request.Description, positions, request.Question)
	if err != nil {
		response.Abort500(c, "占卜执行失败")
		return
	}

	// 校验失败：引擎返回固定提示文本，作为正常输出响应
	if result == nil {
		response.Text(c, report)
		return
	}

	rc.appendToSession(c, request.SessionID, result, report)

	response.Data(c, gin.H{
		"reading_id": result.ID,
		"session_id": request.SessionID,
		"spread_tag": result.SpreadTag,
		"report":     report,
	})
}

// Combinations 对一组指定的牌做组合解读
// POST /v1/tarot/combinations
func (rc *ReadingController) Combinations(c *gin.Context) {
	request, err := requests.ValidateCombination(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	cards := make([]enginepkg.CombinationCard, 0, len(request.Cards))
	for _, card := range request.Cards {
		cards = append(cards, enginepkg.CombinationCard{
			Name:        card.Name,
			Orientation: enginepkg.Orientation(card.Orientation),
		})
	}

	response.Text(c, rc.engine.InterpretCardCombination(cards, request.Context))
}

// Spreads 列出全部内置牌阵
// GET /v1/tarot/spreads
func (rc *ReadingController) Spreads(c *gin.Context) {
	response.Text(c, rc.engine.ListAvailableSpreads())
}

// ShowCard 按牌名查询单张牌
// GET /v1/tarot/cards/:name
func (rc *ReadingController) ShowCard(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		response.Abort400(c, "缺少牌名")
		return
	}

	card, ok := rc.catalog.FindByName(name)
	if !ok {
		response.Abort404(c, "未找到牌\""+name+"\"")
		return
	}

	response.Data(c, card)
}

// GetSessionReadings 获取会话的占卜历史
// GET /v1/sessions/:session_id/readings
func (rc *ReadingController) GetSessionReadings(c *gin.Context) {
	sessionID := c.Param("session_id")
	if sessionID == "" {
		response.Abort400(c, "会话ID不能为空")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 100 {
		limit = 10
	}

	readings, err := session.Default().Readings(c.Request.Context(), sessionID, limit)
	if err != nil {
		response.Abort500(c, "获取历史记录失败")
		return
	}

	response.Data(c, gin.H{
		"session_id": sessionID,
		"readings":   readings,
	})
}

// GetReadingDetail 获取会话中单次占卜的详情
// GET /v1/sessions/:session_id/readings/:reading_id
func (rc *ReadingController) GetReadingDetail(c *gin.Context) {
	sessionID := c.Param("session_id")
	readingID := c.Param("reading_id")
	if sessionID == "" || readingID == "" {
		response.Abort400(c, "会话ID和占卜ID不能为空")
		return
	}

	record, err := session.Default().Reading(c.Request.Context(), sessionID, readingID)
	if err != nil {
		response.Abort500(c, "获取占卜记录失败")
		return
	}
	if record == nil {
		response.Abort404(c, "未找到该占卜记录")
		return
	}

	response.Data(c, record)
}

// NewSession 分配新的会话标识
// POST /v1/sessions
func (rc *ReadingController) NewSession(c *gin.Context) {
	response.Created(c, gin.H{
		"session_id": session.NewSessionID(),
	})
}

// DeleteSession 清除会话的热历史，数据库持久副本保留
// DELETE /v1/sessions/:session_id
func (rc *ReadingController) DeleteSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	if sessionID == "" {
		response.Abort400(c, "会话ID不能为空")
		return
	}

	if !session.Default().Clear(sessionID) {
		response.Abort404(c, "会话不存在或历史已过期")
		return
	}

	response.Data(c, gin.H{
		"session_id": sessionID,
		"cleared":    true,
	})
}

// HealthCheck 健康检查端点
// GET /healthz
func (rc *ReadingController) HealthCheck(c *gin.Context) {
	response.Data(c, gin.H{
		"status": "ok",
		"cards":  rc.catalog.Size(),
		"time":   time.Now().Unix(),
	})
}

// appendToSession 把占卜写入会话历史，失败只记日志不影响响应
func (rc *ReadingController) appendToSession(c *gin.Context, sessionID string, result *enginepkg.Reading, report string) {
	if sessionID == "" {
		return
	}

	cards := make([]reading.CardRecord, 0, len(result.Cards))
	for _, d := range result.Cards {
		cards = append(cards, reading.CardRecord{
			CardID:      d.Card.ID,
			Name:        d.Card.Name,
			Position:    d.Position.Name,
			Orientation: string(d.Orientation),
			Meaning:     d.Meaning,
		})
	}

	record := &session.StoredReading{
		ReadingID:      result.ID,
		SessionID:      sessionID,
		SpreadTag:      result.SpreadTag,
		SpreadName:     result.Spread.Name,
		Question:       result.Question,
		Cards:          cards,
		Interpretation: report,
		CreatedAt:      result.CreatedAt,
	}

	if err := session.Default().AppendReading(c.Request.Context(), record); err != nil {
		logger.ErrorString("Tarot", "AppendSession", err.Error())
	}
}
