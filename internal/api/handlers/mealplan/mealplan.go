package mealplan

import (
	"net/http"
	"strconv"

	"meal-planner/internal/api/handlers"
	mealplanService "meal-planner/internal/core/mealplan"

	"github.com/gin-gonic/gin"
)

// Handler 目標、菜單與採買清單 JSON API
type Handler struct {
	plans *mealplanService.Service
}

// NewHandler 創建菜單處理器
func NewHandler(svc *mealplanService.Service) *Handler {
	return &Handler{plans: svc}
}

// Register 註冊路由，dedup 掛在建立目標的 POST 上
func (h *Handler) Register(rg *gin.RouterGroup, dedup gin.HandlerFunc) {
	rg.GET("/goals", h.ListGoals)
	rg.POST("/goals", dedup, h.CreateGoal)
	rg.DELETE("/goals/:id", h.DeleteGoal)
	rg.GET("/plans/:id", h.GetPlan)
	rg.GET("/plans/:id/grocery", h.GetGrocery)
	rg.POST("/grocery/:id/toggle", h.ToggleGrocery)
}

// ListGoals 列出所有目標
func (h *Handler) ListGoals(c *gin.Context) {
	goals, err := h.plans.ListGoals(c.Request.Context())
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// CreateGoal 建立目標並回傳產生的菜單
func (h *Handler) CreateGoal(c *gin.Context) {
	var in mealplanService.GoalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		handlers.RespondBindError(c, err)
		return
	}
	plan, err := h.plans.CreateGoalWithPlan(c.Request.Context(), in)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	view, err := h.plans.GetPlan(c.Request.Context(), plan.ID)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.Header("Location", "/api/v1/plans/"+uintString(plan.ID))
	c.JSON(http.StatusCreated, view)
}

// DeleteGoal 刪除目標及其菜單
func (h *Handler) DeleteGoal(c *gin.Context) {
	id, err := handlers.ParseID(c, "id")
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	if err := h.plans.DeleteGoal(c.Request.Context(), id); err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPlan 取得菜單
func (h *Handler) GetPlan(c *gin.Context) {
	id, err := handlers.ParseID(c, "id")
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	view, err := h.plans.GetPlan(c.Request.Context(), id)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetGrocery 取得分類後的採買清單
func (h *Handler) GetGrocery(c *gin.Context) {
	id, err := handlers.ParseID(c, "id")
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	view, err := h.plans.GroceryList(c.Request.Context(), id)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ToggleGrocery 切換採買項目的已購買狀態
func (h *Handler) ToggleGrocery(c *gin.Context) {
	id, err := handlers.ParseID(c, "id")
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	item, err := h.plans.ToggleGroceryItem(c.Request.Context(), id)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func uintString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
