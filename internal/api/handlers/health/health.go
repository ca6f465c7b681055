package health

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"meal-planner/internal/core/cache"
	"meal-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger 可檢查連線的依賴
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Database  string                 `json:"database"`
	Cache     map[string]interface{} `json:"cache"`
	Runtime   map[string]interface{} `json:"runtime"`
}

// Handler 健康檢查處理器
type Handler struct {
	db      Pinger
	cache   cache.Store
	version string
}

// NewHandler 創建健康檢查處理器
func NewHandler(db Pinger, store cache.Store, version string) *Handler {
	if store == nil {
		store = cache.Noop{}
	}
	return &Handler{db: db, cache: store, version: version}
}

func (h *Handler) pingDB(c *gin.Context) error {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	return h.db.Ping(ctx)
}

// HealthCheck 回傳服務狀態、資料庫狀態與快取統計
func (h *Handler) HealthCheck(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	status, dbStatus := "ok", "up"
	if err := h.pingDB(c); err != nil {
		status, dbStatus = "degraded", "down"
		common.LogWarn("Database ping failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   h.version,
		Database:  dbStatus,
		Cache:     h.cache.Stats(),
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	})
}

// ReadinessCheck 資料庫可用時才算就緒
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if err := h.pingDB(c); err != nil {
		common.LogWarn("Readiness check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
