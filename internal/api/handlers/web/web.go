package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"meal-planner/internal/api/handlers"
	"meal-planner/internal/core/catalog"
	"meal-planner/internal/core/mealplan"
	"meal-planner/internal/core/models"
	"meal-planner/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates 解析內嵌的頁面模板
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// Handler HTML 頁面
type Handler struct {
	catalog *catalog.Service
	plans   *mealplan.Service
}

// NewHandler 創建頁面處理器
func NewHandler(catalogSvc *catalog.Service, plans *mealplan.Service) *Handler {
	return &Handler{catalog: catalogSvc, plans: plans}
}

// Register 註冊頁面路由，dedup 掛在目標表單提交上
func (h *Handler) Register(r gin.IRouter, dedup gin.HandlerFunc) {
	r.GET("/", h.Dashboard)
	r.GET("/create-goal/", h.GoalForm)
	r.POST("/create-goal/", dedup, h.CreateGoal)
	r.GET("/meal-plan/:id/", h.MealPlan)
	r.GET("/grocery-list/:id/", h.GroceryList)
	r.GET("/recipes/", h.Recipes)
	r.GET("/recipe/:id/", h.RecipeDetail)
	r.POST("/grocery/:id/toggle/", h.ToggleGrocery)
}

// Dashboard 首頁：所有目標與最近的菜單
func (h *Handler) Dashboard(c *gin.Context) {
	dash, err := h.plans.GetDashboard(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":     "Dashboard",
		"Dashboard": dash,
	})
}

// GoalForm 顯示空白目標表單
func (h *Handler) GoalForm(c *gin.Context) {
	h.renderGoalForm(c, http.StatusOK, mealplan.GoalInput{
		Goal:          string(models.GoalWeightLoss),
		DietType:      string(models.DietBalanced),
		DailyCalories: intPtr(mealplan.DefaultDailyCalories),
	}, nil)
}

// CreateGoal 表單提交：成功時導向新菜單，失敗時帶欄位錯誤重新顯示
func (h *Handler) CreateGoal(c *gin.Context) {
	// 空白的熱量欄位視為未填
	if err := c.Request.ParseForm(); err == nil && c.Request.PostForm.Get("daily_calories") == "" {
		c.Request.PostForm.Del("daily_calories")
		c.Request.Form.Del("daily_calories")
	}

	var in mealplan.GoalInput
	if err := c.ShouldBind(&in); err != nil {
		h.renderGoalForm(c, http.StatusBadRequest, in, goalFieldErrors(err))
		return
	}

	plan, err := h.plans.CreateGoalWithPlan(c.Request.Context(), in)
	if err != nil {
		if fields := handlers.BindingFields(err); fields != nil {
			h.renderGoalForm(c, http.StatusBadRequest, in, fields)
			return
		}
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/meal-plan/%d/", plan.ID))
}

func goalFieldErrors(err error) map[string]string {
	if fields := handlers.BindingFields(err); fields != nil {
		return fields
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return map[string]string{"daily_calories": "Enter a whole number."}
	}
	return map[string]string{"user_name": "Invalid form submission."}
}

func (h *Handler) renderGoalForm(c *gin.Context, status int, in mealplan.GoalInput, fieldErrors map[string]string) {
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}
	calories := ""
	if in.DailyCalories != nil {
		calories = strconv.Itoa(*in.DailyCalories)
	}
	c.HTML(status, "create_goal.html", gin.H{
		"Title":    "Create Health Goal",
		"Form":     in,
		"Calories": calories,
		"Errors":   fieldErrors,
		"Goals":    models.GoalChoices,
		"Diets":    models.DietChoices,
	})
}

// MealPlan 菜單頁
func (h *Handler) MealPlan(c *gin.Context) {
	id, err := handlers.ParseID(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	view, err := h.plans.GetPlan(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "meal_plan.html", gin.H{
		"Title": "Meal Plan",
		"View":  view,
	})
}

// GroceryList 採買清單頁
func (h *Handler) GroceryList(c *gin.Context) {
	id, err := handlers.ParseID(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	view, err := h.plans.GroceryList(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "grocery_list.html", gin.H{
		"Title": "Grocery List",
		"View":  view,
	})
}

// Recipes 食譜列表，可用 meal_type 篩選
func (h *Handler) Recipes(c *gin.Context) {
	selected := c.Query("meal_type")
	recipes, err := h.catalog.List(c.Request.Context(), models.MealType(selected))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "recipe_list.html", gin.H{
		"Title":     "Recipes",
		"Recipes":   recipes,
		"MealTypes": models.MealTypeChoices,
		"Selected":  selected,
	})
}

// RecipeDetail 食譜詳細頁
func (h *Handler) RecipeDetail(c *gin.Context) {
	id, err := handlers.ParseID(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	recipe, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.HTML(http.StatusOK, "recipe_detail.html", gin.H{
		"Title":       recipe.Name,
		"Recipe":      recipe,
		"Ingredients": catalog.IngredientList(recipe.Ingredients),
	})
}

// ToggleGrocery 切換已購買後回到採買清單
func (h *Handler) ToggleGrocery(c *gin.Context) {
	id, err := handlers.ParseID(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}
	item, err := h.plans.ToggleGroceryItem(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/grocery-list/%d/", item.MealPlanID))
}

// DuplicateSubmit 重複送出表單時顯示錯誤頁，給去重中間件使用
func DuplicateSubmit(c *gin.Context) {
	c.HTML(http.StatusTooManyRequests, "error.html", gin.H{
		"Title":   http.StatusText(http.StatusTooManyRequests),
		"Status":  http.StatusTooManyRequests,
		"Message": "This form was already submitted. Your meal plan is listed on the dashboard.",
	})
}

// fail 顯示錯誤頁
func (h *Handler) fail(c *gin.Context, err error) {
	status, ce := common.StatusOf(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
		common.LogError("Page failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	c.HTML(status, "error.html", gin.H{
		"Title":   http.StatusText(status),
		"Status":  status,
		"Message": ce.Message,
	})
}

func intPtr(v int) *int { return &v }
