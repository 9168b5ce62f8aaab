package route

import (
	"net/http"

	"clerk-user-sync/api/controller"
	"clerk-user-sync/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies 路由依赖注入结构
type Dependencies struct {
	WebhookController *controller.WebhookController
	UserController    *controller.UserController
	TokenVerifier     middleware.TokenVerifier
	MetricsHandler    http.Handler // 为空时使用 promhttp 默认 Handler
}

// Setup 配置所有路由
func Setup(router *gin.Engine, deps *Dependencies) {
	// --- 公开路由 ---

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "clerk-user-sync",
		})
	})

	metricsHandler := deps.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	router.GET("/metrics", gin.WrapH(metricsHandler))

	// Clerk Webhook（使用 Svix 签名验证，不使用 JWT）
	router.POST("/webhook/clerk", deps.WebhookController.HandleClerkWebhook)

	// --- API 路由（需要 Clerk JWT 认证）---
	api := router.Group("/api")
	api.Use(middleware.ClerkAuth(deps.TokenVerifier))
	{
		api.GET("/users/me", deps.UserController.GetMe)
	}
}
