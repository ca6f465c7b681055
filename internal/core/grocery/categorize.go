package grocery

import (
	"strings"

	"meal-planner/internal/core/models"
)

type keywordEntry struct {
	keyword  string
	category models.GroceryCategory
}

// keywordTable 依序比對，第一個命中的關鍵字決定分類
var keywordTable = []keywordEntry{
	{"vegetable", models.CategoryProduce},
	{"fruit", models.CategoryProduce},
	{"chicken", models.CategoryMeat},
	{"beef", models.CategoryMeat},
	{"fish", models.CategoryMeat},
	{"milk", models.CategoryDairy},
	{"cheese", models.CategoryDairy},
	{"yogurt", models.CategoryDairy},
	{"rice", models.CategoryGrains},
	{"bread", models.CategoryGrains},
	{"oil", models.CategoryPantry},
	{"salt", models.CategoryPantry},
}

// Categorize 依 keywordTable 順序做不分大小寫的子字串比對，第一個命中者為分類，皆未命中為 pantry
func Categorize(name string) models.GroceryCategory {
	lower := strings.ToLower(name)
	for _, e := range keywordTable {
		if strings.Contains(lower, e.keyword) {
			return e.category
		}
	}
	return models.CategoryPantry
}
