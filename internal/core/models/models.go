package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// HealthGoal 使用者提交的飲食目標
type HealthGoal struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	UserName      string       `gorm:"size:100;not null" json:"user_name"`
	Goal          GoalCategory `gorm:"size:20;not null" json:"goal"`
	DietType      DietType     `gorm:"size:20;not null" json:"diet_type"`
	DailyCalories int          `gorm:"not null" json:"daily_calories"`
	Allergies     string       `gorm:"type:text" json:"allergies"`
	Dislikes      string       `gorm:"type:text" json:"dislikes"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`

	MealPlans []MealPlan `gorm:"foreignKey:HealthGoalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (g HealthGoal) String() string {
	return fmt.Sprintf("%s - %s", g.UserName, g.Goal.Label())
}

// Recipe 食譜目錄中的一筆資料，種子匯入後唯讀
type Recipe struct {
	ID           uint     `gorm:"primaryKey" json:"id"`
	Name         string   `gorm:"size:200;not null;uniqueIndex" json:"name"`
	Description  string   `gorm:"type:text" json:"description"`
	Calories     int      `gorm:"not null" json:"calories"`
	ProteinG     float64  `json:"protein_g"`
	CarbsG       float64  `json:"carbs_g"`
	FatG         float64  `json:"fat_g"`
	PrepTimeMin  int      `json:"prep_time_min"`
	Ingredients  string   `gorm:"type:text;not null" json:"ingredients"`
	Instructions string   `gorm:"type:text" json:"instructions"`
	DietTypes    string   `gorm:"size:100" json:"diet_types"`
	MealType     MealType `gorm:"size:20;not null;index" json:"meal_type"`
}

func (r Recipe) String() string {
	return r.Name
}

// MealPlan 一個目標對應的七日菜單
type MealPlan struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	HealthGoalID uint       `gorm:"not null;index" json:"health_goal_id"`
	HealthGoal   HealthGoal `json:"health_goal"`
	StartDate    time.Time  `gorm:"not null" json:"start_date"`
	CreatedAt    time.Time  `json:"created_at"`

	Days         []DailyMeal   `gorm:"foreignKey:MealPlanID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"days,omitempty"`
	GroceryItems []GroceryItem `gorm:"foreignKey:MealPlanID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (p MealPlan) String() string {
	return fmt.Sprintf("Meal Plan for %s - %s", p.HealthGoal.UserName, p.StartDate.Format("2006-01-02"))
}

// DailyMeal 菜單中的一天，每個餐點欄位可為空
type DailyMeal struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	MealPlanID  uint    `gorm:"not null;uniqueIndex:idx_meal_plan_day" json:"meal_plan_id"`
	DayNumber   int     `gorm:"not null;uniqueIndex:idx_meal_plan_day" json:"day_number"`
	BreakfastID *uint   `gorm:"index" json:"breakfast_id"`
	Breakfast   *Recipe `gorm:"foreignKey:BreakfastID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"breakfast,omitempty"`
	LunchID     *uint   `gorm:"index" json:"lunch_id"`
	Lunch       *Recipe `gorm:"foreignKey:LunchID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"lunch,omitempty"`
	DinnerID    *uint   `gorm:"index" json:"dinner_id"`
	Dinner      *Recipe `gorm:"foreignKey:DinnerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"dinner,omitempty"`
	SnackID     *uint   `gorm:"index" json:"snack_id"`
	Snack       *Recipe `gorm:"foreignKey:SnackID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"snack,omitempty"`
}

// Slot 取得指定餐別的食譜
func (d *DailyMeal) Slot(meal MealType) *Recipe {
	switch meal {
	case MealBreakfast:
		return d.Breakfast
	case MealLunch:
		return d.Lunch
	case MealDinner:
		return d.Dinner
	case MealSnack:
		return d.Snack
	}
	return nil
}

// SetSlot 設定指定餐別的食譜，nil 代表該餐為空
func (d *DailyMeal) SetSlot(meal MealType, r *Recipe) {
	var id *uint
	if r != nil {
		v := r.ID
		id = &v
	}
	switch meal {
	case MealBreakfast:
		d.Breakfast, d.BreakfastID = r, id
	case MealLunch:
		d.Lunch, d.LunchID = r, id
	case MealDinner:
		d.Dinner, d.DinnerID = r, id
	case MealSnack:
		d.Snack, d.SnackID = r, id
	}
}

// Recipes 依早、午、晚、點心順序回傳非空的食譜
func (d *DailyMeal) Recipes() []*Recipe {
	out := make([]*Recipe, 0, len(MealTypes))
	for _, m := range MealTypes {
		if r := d.Slot(m); r != nil {
			out = append(out, r)
		}
	}
	return out
}

// Nutrition 一日的巨量營養素總和（公克）
type Nutrition struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// TotalCalories 一日熱量總和
func (d *DailyMeal) TotalCalories() int {
	total := 0
	for _, r := range d.Recipes() {
		total += r.Calories
	}
	return total
}

// TotalNutrition 一日營養素總和
func (d *DailyMeal) TotalNutrition() Nutrition {
	var n Nutrition
	for _, r := range d.Recipes() {
		n.Protein += r.ProteinG
		n.Carbs += r.CarbsG
		n.Fat += r.FatG
	}
	return n
}

// GroceryItem 彙整後的採買項目
type GroceryItem struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	MealPlanID     uint            `gorm:"not null;index" json:"meal_plan_id"`
	Name           string          `gorm:"size:200;not null" json:"name"`
	Quantity       string          `gorm:"size:100" json:"quantity"`
	Category       GroceryCategory `gorm:"size:50;not null" json:"category"`
	EstimatedPrice decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"estimated_price"`
	Purchased      bool            `gorm:"not null" json:"purchased"`
}

func (g GroceryItem) String() string {
	return g.Name
}
