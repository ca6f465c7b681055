package catalog

import (
	"strings"

	"meal-planner/internal/core/models"
)

// DefaultPrepTime 未填準備時間時使用的分鐘數
const DefaultPrepTime = 15

// RecipeInput 新增食譜的輸入，表單、JSON API 與目錄匯入共用同一組驗證規則
type RecipeInput struct {
	Name         string  `json:"name" form:"name" binding:"required,max=200"`
	Description  string  `json:"description" form:"description" binding:"required"`
	Calories     *int    `json:"calories" form:"calories" binding:"required,gte=0"`
	ProteinG     float64 `json:"protein_g" form:"protein_g" binding:"gte=0"`
	CarbsG       float64 `json:"carbs_g" form:"carbs_g" binding:"gte=0"`
	FatG         float64 `json:"fat_g" form:"fat_g" binding:"gte=0"`
	PrepTimeMin  *int    `json:"prep_time_min" form:"prep_time_min" binding:"omitempty,gte=0"`
	Ingredients  string  `json:"ingredients" form:"ingredients" binding:"required"`
	Instructions string  `json:"instructions" form:"instructions" binding:"required"`
	DietTypes    string  `json:"diet_types" form:"diet_types" binding:"max=100"`
	MealType     string  `json:"meal_type" form:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
}

// ToRecipe 轉為資料模型
func (in RecipeInput) ToRecipe() models.Recipe {
	prep := DefaultPrepTime
	if in.PrepTimeMin != nil {
		prep = *in.PrepTimeMin
	}
	calories := 0
	if in.Calories != nil {
		calories = *in.Calories
	}
	return models.Recipe{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Calories:     calories,
		ProteinG:     in.ProteinG,
		CarbsG:       in.CarbsG,
		FatG:         in.FatG,
		PrepTimeMin:  prep,
		Ingredients:  in.Ingredients,
		Instructions: in.Instructions,
		DietTypes:    in.DietTypes,
		MealType:     models.MealType(in.MealType),
	}
}

// IngredientList 詳細頁顯示用的食材清單，每項去除前後空白
func IngredientList(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
