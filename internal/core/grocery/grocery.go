package grocery

import (
	"fmt"
	"strconv"
	"strings"

	"meal-planner/internal/core/models"

	"github.com/shopspring/decimal"
)

// SplitIngredients 以逗號切開食材字串，去除前後空白並略過空項目
func SplitIngredients(text string) []string {
	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseIngredient 將最後一個空白後的純數字視為數量，例如 "milk 2" → ("milk", 2)
// 其他格式整項為名稱，數量為 1
func ParseIngredient(entry string) (name string, quantity int) {
	i := strings.LastIndexByte(entry, ' ')
	if i < 0 {
		return entry, 1
	}
	token := entry[i+1:]
	if !isDigits(token) {
		return entry, 1
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		// 超出 int 範圍
		return entry, 1
	}
	return entry[:i], n
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// QuantityText 採買數量的顯示文字
func QuantityText(total int) string {
	return fmt.Sprintf("%d units", total)
}

// Consolidate 彙整各天各餐的食材，同名（區分大小寫）項目數量加總，依第一次出現的順序回傳
func Consolidate(days []models.DailyMeal) []models.GroceryItem {
	totals := make(map[string]int)
	var order []string

	for i := range days {
		for _, r := range days[i].Recipes() {
			for _, entry := range SplitIngredients(r.Ingredients) {
				name, qty := ParseIngredient(entry)
				if _, ok := totals[name]; !ok {
					order = append(order, name)
				}
				totals[name] += qty
			}
		}
	}

	items := make([]models.GroceryItem, 0, len(order))
	for _, name := range order {
		items = append(items, models.GroceryItem{
			Name:           name,
			Quantity:       QuantityText(totals[name]),
			Category:       Categorize(name),
			EstimatedPrice: decimal.Zero,
		})
	}
	return items
}

// CategoryGroup 同一分類的採買項目
type CategoryGroup struct {
	Category models.GroceryCategory `json:"category"`
	Label    string                 `json:"label"`
	Items    []models.GroceryItem   `json:"items"`
	Total    decimal.Decimal        `json:"total"`
}

// List 依分類分組後的採買清單
type List struct {
	Groups []CategoryGroup `json:"groups"`
	Total  decimal.Decimal `json:"total"`
}

// Group 依分類分組，分組順序跟隨輸入中分類第一次出現的位置
func Group(items []models.GroceryItem) List {
	list := List{Groups: []CategoryGroup{}, Total: decimal.Zero}
	index := make(map[models.GroceryCategory]int)
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(list.Groups)
			index[item.Category] = i
			list.Groups = append(list.Groups, CategoryGroup{
				Category: item.Category,
				Label:    item.Category.Label(),
				Total:    decimal.Zero,
			})
		}
		g := &list.Groups[i]
		g.Items = append(g.Items, item)
		g.Total = g.Total.Add(item.EstimatedPrice)
		list.Total = list.Total.Add(item.EstimatedPrice)
	}
	return list
}
