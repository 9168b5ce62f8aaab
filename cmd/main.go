package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clerk-user-sync/api/controller"
	"clerk-user-sync/api/middleware"
	"clerk-user-sync/api/route"
	"clerk-user-sync/bootstrap"
	"clerk-user-sync/internal/logger"
	"clerk-user-sync/internal/metrics"
	"clerk-user-sync/repository"
	"clerk-user-sync/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	// 加载环境变量，缺少必需配置直接退出
	env, err := bootstrap.LoadEnv()
	if err != nil {
		log.Fatalf("[Server] %v", err)
	}

	zl, err := logger.New(env.LogLevel)
	if err != nil {
		log.Fatalf("[Server] 初始化日志失败: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	zl.Info("[Server] Clerk User Sync 启动中...", zap.String("port", env.Port))

	// 启动时构造验签器，密钥无效不允许启动
	verifier, err := bootstrap.NewWebhookVerifier(env.WebhookSecret)
	if err != nil {
		zl.Fatal("[Server] Webhook 验签器初始化失败", zap.Error(err))
	}

	// 初始化 Clerk（/api 的 JWT 校验）
	bootstrap.InitClerk(env.ClerkSecretKey)

	// 连接数据库
	dsn, err := bootstrap.BuildDSN(env.DatabaseURL, env.DatabaseServiceKey)
	if err != nil {
		zl.Fatal("[Server] 数据库配置错误", zap.Error(err))
	}
	db, err := bootstrap.NewDatabase(dsn, bootstrap.GormLogLevel(env.LogLevel))
	if err != nil {
		zl.Fatal("[Server] 数据库初始化失败", zap.Error(err))
	}
	zl.Info("[Server] PostgreSQL 连接成功，表结构已同步")

	// 依赖注入 - Repository 层
	userRepo := repository.NewUserRepository(db)

	// 依赖注入 - UseCase 层
	syncUseCase := usecase.NewUserSyncUseCase(userRepo, time.Now)

	// 依赖注入 - Controller 层
	webhookController := controller.NewWebhookController(verifier, syncUseCase, zl)
	userController := controller.NewUserController(syncUseCase, zl)

	metrics.MustRegister(prometheus.DefaultRegisterer)

	// 配置 Gin 路由
	gin.SetMode(env.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(zl))

	// CORS 配置（市场客户端的 Web 预览调用 /api）
	router.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 设置路由
	route.Setup(router, &route.Dependencies{
		WebhookController: webhookController,
		UserController:    userController,
		TokenVerifier:     middleware.VerifyClerkToken,
	})

	// 启动 HTTP 服务，超时由运行环境和数据库连接超时兜底
	srv := &http.Server{
		Addr:              ":" + env.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zl.Info("[Server] 服务已启动",
			zap.String("addr", srv.Addr),
			zap.Strings("routes", []string{
				"GET  /health",
				"GET  /metrics",
				"POST /webhook/clerk",
				"GET  /api/users/me",
			}),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// 优雅停机，等待进行中的 upsert 完成
	// 监听失败也走同一条关闭路径，保证日志刷盘和数据库连接关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := waitForStop(quit, serveErr, zl)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := srv.Shutdown(ctx); err != nil {
		zl.Error("[Server] 服务强制关闭", zap.Error(err))
	}
	cancel()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	zl.Info("[Server] 服务已安全停止")
	if exitCode != 0 {
		_ = zl.Sync()
		os.Exit(exitCode)
	}
}

// waitForStop 阻塞到收到停机信号或监听失败，返回进程退出码
// 不在这里退出进程，调用方负责关闭服务和数据库
func waitForStop(quit <-chan os.Signal, serveErr <-chan error, zl *zap.Logger) int {
	select {
	case <-quit:
		zl.Info("[Server] 收到停机信号，正在优雅关闭...")
		return 0
	case err := <-serveErr:
		zl.Error("[Server] 服务启动失败", zap.Error(err))
		return 1
	}
}
