package planner

import (
	"strings"

	"meal-planner/internal/core/models"
)

const (
	// DaysPerPlan 每份菜單的天數
	DaysPerPlan = 7

	// DefaultPerMeal daily_calories 不為正數時的單餐熱量
	DefaultPerMeal = 500.0

	mealsPerDay = 3.5
	lowerBound  = 0.8
	upperBound  = 1.2
)

// slotShares 各餐佔單餐熱量的比例
var slotShares = map[models.MealType]float64{
	models.MealBreakfast: 0.25,
	models.MealLunch:     0.35,
	models.MealDinner:    0.35,
	models.MealSnack:     0.05,
}

// SlotTarget 單一餐別的熱量目標
type SlotTarget struct {
	Meal   models.MealType
	Target float64
}

// PerMealTarget 每日熱量除以 3.5
func PerMealTarget(dailyCalories int) float64 {
	if dailyCalories <= 0 {
		return DefaultPerMeal
	}
	return float64(dailyCalories) / mealsPerDay
}

// SlotTargets 依早、午、晚、點心順序回傳各餐熱量目標
func SlotTargets(dailyCalories int) []SlotTarget {
	perMeal := PerMealTarget(dailyCalories)
	targets := make([]SlotTarget, 0, len(models.MealTypes))
	for _, m := range models.MealTypes {
		targets = append(targets, SlotTarget{Meal: m, Target: perMeal * slotShares[m]})
	}
	return targets
}

// Options 菜單產生選項
type Options struct {
	// DietFilter 開啟時優先選擇 diet_types 含有目標飲食類型的食譜
	DietFilter bool
}

// Generator 菜單產生器
type Generator struct {
	picker Picker
	opts   Options
}

// NewGenerator 創建菜單產生器
func NewGenerator(picker Picker, opts Options) *Generator {
	return &Generator{picker: picker, opts: opts}
}

// Pick 從候選食譜中挑選熱量落在目標 ±20% 的一道；沒有符合的就從全部候選中挑；候選為空回傳 nil
func (g *Generator) Pick(candidates []models.Recipe, target float64) *models.Recipe {
	if len(candidates) == 0 {
		return nil
	}
	low, high := target*lowerBound, target*upperBound
	inRange := make([]int, 0, len(candidates))
	for i := range candidates {
		c := float64(candidates[i].Calories)
		if c >= low && c <= high {
			inRange = append(inRange, i)
		}
	}

	var idx int
	if len(inRange) > 0 {
		idx = inRange[g.picker.Intn(len(inRange))]
	} else {
		idx = g.picker.Intn(len(candidates))
	}
	picked := candidates[idx]
	return &picked
}

// Generate 為目標產生七天的每日餐點（尚未寫入資料庫，MealPlanID 由呼叫端設定）
func (g *Generator) Generate(goal *models.HealthGoal, catalog []models.Recipe) []models.DailyMeal {
	byMeal := make(map[models.MealType][]models.Recipe, len(models.MealTypes))
	for _, r := range catalog {
		byMeal[r.MealType] = append(byMeal[r.MealType], r)
	}
	if g.opts.DietFilter {
		for meal, recipes := range byMeal {
			byMeal[meal] = preferDiet(recipes, goal.DietType)
		}
	}

	targets := SlotTargets(goal.DailyCalories)
	days := make([]models.DailyMeal, 0, DaysPerPlan)
	for day := 1; day <= DaysPerPlan; day++ {
		d := models.DailyMeal{DayNumber: day}
		for _, t := range targets {
			d.SetSlot(t.Meal, g.Pick(byMeal[t.Meal], t.Target))
		}
		days = append(days, d)
	}
	return days
}

// preferDiet 保留標記了指定飲食類型的食譜，全部不符合時原樣回傳
func preferDiet(recipes []models.Recipe, diet models.DietType) []models.Recipe {
	if diet == "" {
		return recipes
	}
	matched := make([]models.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if HasDietLabel(r.DietTypes, diet) {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return recipes
	}
	return matched
}

// HasDietLabel diet_types 以逗號分隔，比對時忽略大小寫與空白
func HasDietLabel(labels string, diet models.DietType) bool {
	for _, l := range strings.Split(labels, ",") {
		if strings.EqualFold(strings.TrimSpace(l), string(diet)) {
			return true
		}
	}
	return false
}
