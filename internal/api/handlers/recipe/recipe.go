package recipe

import (
	"net/http"

	"meal-planner/internal/api/handlers"
	"meal-planner/internal/core/catalog"
	"meal-planner/internal/core/models"

	"github.com/gin-gonic/gin"
)

// Handler 食譜 JSON API
type Handler struct {
	catalog *catalog.Service
}

// NewHandler 創建食譜處理器
func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{catalog: svc}
}

// Register 註冊路由
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/recipes", h.List)
	rg.POST("/recipes", h.Create)
	rg.GET("/recipes/:id", h.Get)
	rg.DELETE("/recipes/:id", h.Delete)
}

// List 列出食譜，可用 meal_type 篩選
func (h *Handler) List(c *gin.Context) {
	recipes, err := h.catalog.List(c.Request.Context(), models.MealType(c.Query("meal_type")))
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recipes": recipes,
		"count":   len(recipes),
	})
}

// Get 取得單一食譜與拆分後的食材
func (h *Handler) Get(c *gin.Context) {
	id, err := handlers.ParseID(c, "id")
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	recipe, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"recipe":      recipe,
		"ingredients": catalog.IngredientList(recipe.Ingredients),
	})
}

// Create 新增食譜
func (h *Handler) Create(c *gin.Context) {
	var in catalog.RecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		handlers.RespondBindError(c, err)
		return
	}
	recipe, err := h.catalog.Create(c.Request.Context(), in)
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

// Delete 刪除食譜
func (h *Handler) Delete(c *gin.Context) {
	id, err := handlers.ParseID(c, "id")
	if err != nil {
		handlers.RespondError(c, err)
		return
	}
	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		handlers.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
