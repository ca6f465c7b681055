package models

// GoalCategory 健康目標類別
type GoalCategory string

const (
	GoalWeightLoss    GoalCategory = "weight_loss"
	GoalMuscleGain    GoalCategory = "muscle_gain"
	GoalMaintenance   GoalCategory = "maintenance"
	GoalEnergy        GoalCategory = "energy"
	GoalGeneralHealth GoalCategory = "general_health"
)

// Choice 表單下拉選項
type Choice struct {
	Value string
	Label string
}

// GoalChoices 依表單顯示順序排列
var GoalChoices = []Choice{
	{string(GoalWeightLoss), "Weight Loss"},
	{string(GoalMuscleGain), "Muscle Gain"},
	{string(GoalMaintenance), "Maintenance"},
	{string(GoalEnergy), "Increase Energy"},
	{string(GoalGeneralHealth), "General Health"},
}

// Label 顯示名稱
func (g GoalCategory) Label() string {
	return labelOf(GoalChoices, string(g))
}

// DietType 飲食類型
type DietType string

const (
	DietBalanced      DietType = "balanced"
	DietVegetarian    DietType = "vegetarian"
	DietVegan         DietType = "vegan"
	DietKeto          DietType = "keto"
	DietPaleo         DietType = "paleo"
	DietGlutenFree    DietType = "gluten_free"
	DietMediterranean DietType = "mediterranean"
)

var DietChoices = []Choice{
	{string(DietBalanced), "Balanced Diet"},
	{string(DietVegetarian), "Vegetarian"},
	{string(DietVegan), "Vegan"},
	{string(DietKeto), "Keto"},
	{string(DietPaleo), "Paleo"},
	{string(DietGlutenFree), "Gluten Free"},
	{string(DietMediterranean), "Mediterranean"},
}

func (d DietType) Label() string {
	return labelOf(DietChoices, string(d))
}

// MealType 餐別，同時也是每日的餐點欄位
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes 依一天中的順序排列
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

var MealTypeChoices = []Choice{
	{string(MealBreakfast), "Breakfast"},
	{string(MealLunch), "Lunch"},
	{string(MealDinner), "Dinner"},
	{string(MealSnack), "Snack"},
}

func (m MealType) Label() string {
	return labelOf(MealTypeChoices, string(m))
}

// Valid 是否為已知餐別
func (m MealType) Valid() bool {
	for _, t := range MealTypes {
		if t == m {
			return true
		}
	}
	return false
}

// GroceryCategory 採買分類
type GroceryCategory string

const (
	CategoryProduce   GroceryCategory = "produce"
	CategoryDairy     GroceryCategory = "dairy"
	CategoryMeat      GroceryCategory = "meat"
	CategoryGrains    GroceryCategory = "grains"
	CategoryPantry    GroceryCategory = "pantry"
	CategoryFrozen    GroceryCategory = "frozen"
	CategoryBeverages GroceryCategory = "beverages"
)

var GroceryCategoryChoices = []Choice{
	{string(CategoryProduce), "Produce"},
	{string(CategoryDairy), "Dairy"},
	{string(CategoryMeat), "Meat & Fish"},
	{string(CategoryGrains), "Grains & Cereals"},
	{string(CategoryPantry), "Pantry"},
	{string(CategoryFrozen), "Frozen"},
	{string(CategoryBeverages), "Beverages"},
}

func (c GroceryCategory) Label() string {
	return labelOf(GroceryCategoryChoices, string(c))
}

func labelOf(choices []Choice, value string) string {
	for _, c := range choices {
		if c.Value == value {
			return c.Label
		}
	}
	return value
}
