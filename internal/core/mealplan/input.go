package mealplan

import (
	"strings"

	"meal-planner/internal/core/models"
	"meal-planner/internal/pkg/common"
)

// DefaultDailyCalories 未填每日熱量時使用
const DefaultDailyCalories = 2000

// GoalInput 目標表單與 JSON API 共用的輸入
type GoalInput struct {
	UserName      string `json:"user_name" form:"user_name" binding:"required,max=100"`
	Goal          string `json:"goal" form:"goal" binding:"required,oneof=weight_loss muscle_gain maintenance energy general_health"`
	DietType      string `json:"diet_type" form:"diet_type" binding:"required,oneof=balanced vegetarian vegan keto paleo gluten_free mediterranean"`
	DailyCalories *int   `json:"daily_calories" form:"daily_calories" binding:"omitempty,lte=20000"`
	Allergies     string `json:"allergies" form:"allergies"`
	Dislikes      string `json:"dislikes" form:"dislikes"`
}

// ToGoal 去除前後空白並套用預設熱量；名稱只有空白時回傳驗證錯誤
func (in GoalInput) ToGoal() (*models.HealthGoal, error) {
	name := strings.TrimSpace(in.UserName)
	if name == "" {
		return nil, common.NewValidationError("invalid goal", map[string]string{
			"user_name": "This field is required.",
		})
	}
	calories := DefaultDailyCalories
	if in.DailyCalories != nil {
		calories = *in.DailyCalories
	}
	return &models.HealthGoal{
		UserName:      name,
		Goal:          models.GoalCategory(in.Goal),
		DietType:      models.DietType(in.DietType),
		DailyCalories: calories,
		Allergies:     strings.TrimSpace(in.Allergies),
		Dislikes:      strings.TrimSpace(in.Dislikes),
	}, nil
}
