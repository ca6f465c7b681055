package api

import (
	"fmt"

	"meal-planner/internal/api/handlers/health"
	mealplanHandler "meal-planner/internal/api/handlers/mealplan"
	recipeHandler "meal-planner/internal/api/handlers/recipe"
	"meal-planner/internal/api/handlers/web"
	"meal-planner/internal/api/middleware"
	"meal-planner/internal/core/cache"
	"meal-planner/internal/core/catalog"
	"meal-planner/internal/core/mealplan"
	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services 路由需要的服務
type Services struct {
	Catalog  *catalog.Service
	MealPlan *mealplan.Service
	DB       health.Pinger
	Cache    cache.Store
}

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, svc Services) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if svc.Catalog == nil || svc.MealPlan == nil || svc.DB == nil {
		return nil, fmt.Errorf("router requires catalog, meal plan and database services")
	}

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(requestid.New())
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	router.Use(middleware.CORS("/api/"))
	if cfg.Server.MaxBodyBytes > 0 {
		router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))
	}
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	dedup := middleware.NewDeduplicator(cfg.DedupWindow)

	// 健康檢查路由
	healthHandler := health.NewHandler(svc.DB, svc.Cache, cfg.App.Version)
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	// HTML 頁面
	web.NewHandler(svc.Catalog, svc.MealPlan).Register(router, dedup.MiddlewareWith(web.DuplicateSubmit))

	// API 路由組
	api := router.Group("/api/v1")
	{
		recipeHandler.NewHandler(svc.Catalog).Register(api)
		mealplanHandler.NewHandler(svc.MealPlan).Register(api, dedup.Middleware())
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
		zap.Duration("request_timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router, nil
}
