package controller

import (
	"errors"
	"io"
	"net/http"

	"clerk-user-sync/api/middleware"
	domainErrors "clerk-user-sync/domain/errors"
	"clerk-user-sync/domain/event"
	"clerk-user-sync/internal/metrics"
	"clerk-user-sync/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxWebhookBodyBytes Clerk 用户事件远小于这个上限
const maxWebhookBodyBytes = 1 << 20

// WebhookVerifier 校验 Svix 签名（*svix.Webhook 实现了该接口）
// 需要覆盖时间戳容忍窗口，防止重放
type WebhookVerifier interface {
	Verify(payload []byte, headers http.Header) error
}

// WebhookController 处理 Clerk Webhook 回调
type WebhookController struct {
	verifier WebhookVerifier
	syncUC   *usecase.UserSyncUseCase
	log      *zap.Logger
}

// NewWebhookController 构造函数
func NewWebhookController(verifier WebhookVerifier, syncUC *usecase.UserSyncUseCase, log *zap.Logger) *WebhookController {
	return &WebhookController{
		verifier: verifier,
		syncUC:   syncUC,
		log:      log,
	}
}

// HandleClerkWebhook 处理 Clerk Webhook 回调
// POST /webhook/clerk
// user.created / user.updated 写库，其余事件直接确认
//
// 状态码决定 Svix 是否重投：4xx 表示请求本身无效，5xx 表示应重试
func (wc *WebhookController) HandleClerkWebhook(c *gin.Context) {
	log := middleware.RequestLog(c, wc.log)
	log.Info("[Webhook] 收到请求")

	// 1. 检查签名请求头，缺任何一个都不处理
	headers := event.HeadersFromRequest(c.Request.Header)
	if !headers.Complete() {
		log.Warn("[Webhook] 缺少 svix 请求头", zap.Error(domainErrors.ErrMissingSignatureHeaders))
		metrics.WebhookDeliveries.WithLabelValues(metrics.OutcomeMissingHeaders).Inc()
		c.String(http.StatusBadRequest, msgMissingHeaders)
		return
	}
	log = log.With(zap.String("svix_id", headers.ID))

	// 2. 读取原始请求体，验签必须使用未经修改的字节
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		log.Warn("[Webhook] 读取请求体失败", zap.Error(err))
		metrics.WebhookDeliveries.WithLabelValues(metrics.OutcomeMalformed).Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgBodyUnreadable})
		return
	}

	// 3. 验证签名
	if err := wc.verifier.Verify(body, headers.HTTP()); err != nil {
		log.Warn("[Webhook] 签名验证失败",
			zap.Error(domainErrors.ErrSignatureVerificationFailed),
			zap.NamedError("cause", err),
		)
		metrics.WebhookDeliveries.WithLabelValues(metrics.OutcomeInvalidSignature).Inc()
		c.String(http.StatusBadRequest, msgVerifyFailed)
		return
	}

	// 4. 解析事件
	evt, err := event.Parse(body)
	if err != nil {
		log.Warn("[Webhook] 解析事件失败", zap.Error(err))
		metrics.WebhookDeliveries.WithLabelValues(metrics.OutcomeMalformed).Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidPayload})
		return
	}
	log.Info("[Webhook] 事件类型", zap.String("event_type", string(evt.Type())))

	// 5. 同步到用户表
	result, err := wc.syncUC.Sync(c.Request.Context(), evt)
	if err != nil {
		wc.respondSyncError(c, log, result, err)
		return
	}

	if result.Skipped {
		log.Info("[Webhook] 忽略事件", zap.String("event_type", string(result.EventType)))
		metrics.WebhookDeliveries.WithLabelValues(metrics.OutcomeSkipped).Inc()
		c.JSON(http.StatusOK, SuccessResponse{Success: true})
		return
	}

	log.Info("[Webhook] 用户同步成功",
		zap.String("event_type", string(result.EventType)),
		zap.String("user_id", result.User.ID),
		zap.String("email", result.User.EmailOrEmpty()),
	)
	metrics.WebhookDeliveries.WithLabelValues(metrics.OutcomeSynced).Inc()
	metrics.UserUpserts.WithLabelValues(string(result.EventType)).Inc()
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (wc *WebhookController) respondSyncError(c *gin.Context, log *zap.Logger, result usecase.SyncResult, err error) {
	fields := []zap.Field{zap.Error(err), zap.String("event_type", string(result.EventType))}
	if result.User != nil {
		fields = append(fields, zap.String("user_id", result.User.ID), zap.String("email", result.User.EmailOrEmpty()))
	}

	if errors.Is(err, domainErrors.ErrMalformedPayload) {
		log.Warn("[Webhook] 事件无法处理", fields...)
		metrics.WebhookDeliveries.WithLabelValues(metrics.OutcomeMalformed).Inc()
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidPayload})
		return
	}

	// 未消费，交给 Svix 重投
	log.Error("[Webhook] 用户同步失败", fields...)
	metrics.WebhookDeliveries.WithLabelValues(metrics.OutcomeStoreError).Inc()
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msgUserSyncFailed, Details: err.Error()})
}
