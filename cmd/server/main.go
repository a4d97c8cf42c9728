package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"

	"github.com/faithwalk/anonboard/internal/auth"
	"github.com/faithwalk/anonboard/internal/config"
	"github.com/faithwalk/anonboard/internal/database"
	"github.com/faithwalk/anonboard/internal/handler"
	"github.com/faithwalk/anonboard/internal/middleware"
	"github.com/faithwalk/anonboard/internal/notify"
	"github.com/faithwalk/anonboard/internal/pkg/logger"
	"github.com/faithwalk/anonboard/internal/pkg/validator"
	"github.com/faithwalk/anonboard/internal/repository"
	"github.com/faithwalk/anonboard/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志
	logger.Init(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	logger.Info().Msg("Starting Anonboard...")

	// 初始化验证器
	validator.Init()

	// 连接数据库
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	// 连接 Redis
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(rdb)

	// 建表与默认数据
	if cfg.AutoMigrate {
		ctx := context.Background()
		if err := database.Migrate(ctx, db); err != nil {
			logger.Fatal().Err(err).Msg("Failed to migrate database")
		}
		if err := database.Seed(ctx, db); err != nil {
			logger.Fatal().Err(err).Msg("Failed to seed database")
		}
	}

	if cfg.Auth.JWTSecret == "" {
		if cfg.IsProduction() {
			logger.Fatal().Msg("JWT_SECRET must be set in production")
		}
		logger.Warn().Msg("JWT_SECRET not set, using insecure development default")
		cfg.Auth.JWTSecret = "dev-insecure-secret"
	}

	// 创建 Gin 引擎
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := setupRouter(cfg, db, rdb)

	// 创建 HTTP 服务器
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 启动服务器
	go func() {
		logger.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Server listening")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	// 优雅关闭
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

// setupRouter 组装依赖并设置路由
func setupRouter(cfg *config.Config, db *bun.DB, rdb *redis.Client) *gin.Engine {
	// Repository 层
	repos := repository.NewFactory(db)

	// 业务逻辑层
	jwtManager := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	notifier := notify.NewWebhookNotifier(cfg.Moderation.WebhookURL, cfg.Moderation.WebhookTimeout)
	tx := service.NewDBTransactor(db)

	postService := service.NewPostService(repos.Post(), repos.WordFilter(), notifier)
	moderationService := service.NewModerationService(tx, repos.Post(), repos.ModerationLog())
	filterService := service.NewWordFilterService(repos.WordFilter())
	adminService := service.NewAdminService(repos.AdminUser(), jwtManager)

	// HTTP 处理层
	postHandler := handler.NewPostHandler(postService)
	moderationHandler := handler.NewModerationHandler(moderationService)
	filterHandler := handler.NewFilterHandler(filterService)
	adminHandler := handler.NewAdminHandler(adminService)

	router := gin.New()

	// 添加中间件
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())

	// 健康检查
	router.GET("/health", healthCheck(db, rdb))

	// 公共 API 路由组
	api := router.Group("/api")
	if cfg.RateLimit.Enabled {
		global := middleware.NewRateLimiter(rdb, "global", cfg.RateLimit.GlobalLimit, cfg.RateLimit.GlobalWindow)
		api.Use(global.Middleware())
	}
	{
		submitHandlers := []gin.HandlerFunc{postHandler.Submit}
		if cfg.RateLimit.Enabled {
			submit := middleware.NewRateLimiter(rdb, "submit", cfg.RateLimit.SubmitLimit, cfg.RateLimit.SubmitWindow)
			submitHandlers = append([]gin.HandlerFunc{submit.Middleware()}, submitHandlers...)
		}

		api.POST("/posts", submitHandlers...)
		api.GET("/posts", postHandler.List)
	}

	// 管理 API 路由组
	admin := api.Group("/admin")
	{
		admin.POST("/login", adminHandler.Login)
		admin.POST("/refresh-token", adminHandler.RefreshToken)

		authed := admin.Group("")
		authed.Use(middleware.AdminAuth(jwtManager))
		{
			authed.PUT("/change-password", adminHandler.ChangePassword)

			authed.GET("/posts", moderationHandler.ListPosts)
			authed.PUT("/posts/:id", moderationHandler.Moderate)
			authed.DELETE("/posts/:id", moderationHandler.Delete)

			authed.GET("/filters", filterHandler.List)
			authed.POST("/filters", filterHandler.Create)
			authed.DELETE("/filters/:id", filterHandler.Delete)

			authed.GET("/stats", moderationHandler.Stats)
		}
	}

	return router
}

// healthCheck 健康检查处理器
func healthCheck(db *bun.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		// 检查数据库连接
		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "disconnected",
				"error":    err.Error(),
			})
			return
		}

		// 检查 Redis 连接
		if err := rdb.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"redis":    "disconnected",
				"database": "connected",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "connected",
			"redis":    "connected",
		})
	}
}
