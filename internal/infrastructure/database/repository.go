package database

import (
	"context"
	"errors"
	"fmt"

	"meal-planner/internal/core/models"
	"meal-planner/internal/pkg/common"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository 封裝所有資料表的讀寫
type Repository struct {
	db *gorm.DB
}

// NewRepository 創建資料存取層
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// DB 取得底層連線
func (r *Repository) DB() *gorm.DB {
	return r.db
}

// Ping 檢查資料庫連線
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Transaction 在同一個交易中執行 fn，fn 回傳錯誤時整筆回滾
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

// ---- Recipe ----

// ListRecipes 依餐別、名稱排序列出食譜，mealType 為空時列出全部
func (r *Repository) ListRecipes(ctx context.Context, mealType models.MealType) ([]models.Recipe, error) {
	var recipes []models.Recipe
	q := r.db.WithContext(ctx).Order("meal_type").Order("name")
	if mealType != "" {
		q = q.Where("meal_type = ?", mealType)
	}
	if err := q.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// GetRecipe 取得單一食譜
func (r *Repository) GetRecipe(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := r.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return &recipe, nil
}

// CreateRecipe 新增食譜，名稱重複時回傳 ErrRecipeExists
func (r *Repository) CreateRecipe(ctx context.Context, recipe *models.Recipe) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Recipe{}).Where("name = ?", recipe.Name).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check recipe name: %w", err)
	}
	if count > 0 {
		return common.ErrRecipeExists
	}
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return common.ErrRecipeExists
		}
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	return nil
}

// FirstOrCreateRecipe 以名稱查找食譜，不存在時新增；created 表示是否為新建
func (r *Repository) FirstOrCreateRecipe(ctx context.Context, recipe *models.Recipe) (created bool, err error) {
	var existing models.Recipe
	err = r.db.WithContext(ctx).Where("name = ?", recipe.Name).Take(&existing).Error
	switch {
	case err == nil:
		*recipe = existing
		return false, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return false, fmt.Errorf("failed to look up recipe %q: %w", recipe.Name, err)
	}
	if err := r.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return false, fmt.Errorf("failed to seed recipe %q: %w", recipe.Name, err)
	}
	return true, nil
}

// DeleteRecipe 刪除食譜，引用它的餐點欄位改為空值
func (r *Repository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.Transaction(ctx, func(tx *Repository) error {
		for _, col := range []string{"breakfast_id", "lunch_id", "dinner_id", "snack_id"} {
			if err := tx.db.Model(&models.DailyMeal{}).Where(col+" = ?", id).Update(col, nil).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", col, err)
			}
		}
		res := tx.db.Delete(&models.Recipe{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete recipe: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return common.ErrRecipeNotFound
		}
		return nil
	})
}

// ---- HealthGoal ----

// CreateGoal 新增健康目標
func (r *Repository) CreateGoal(ctx context.Context, goal *models.HealthGoal) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// ListGoals 依建立時間新到舊列出目標
func (r *Repository) ListGoals(ctx context.Context) ([]models.HealthGoal, error) {
	var goals []models.HealthGoal
	if err := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}

// DeleteGoal 刪除目標及其所有菜單、每日餐點與採買項目
func (r *Repository) DeleteGoal(ctx context.Context, id uint) error {
	return r.Transaction(ctx, func(tx *Repository) error {
		planIDs := tx.db.Model(&models.MealPlan{}).Select("id").Where("health_goal_id = ?", id)
		if err := tx.db.Where("meal_plan_id IN (?)", planIDs).Delete(&models.GroceryItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete grocery items: %w", err)
		}
		if err := tx.db.Where("meal_plan_id IN (?)", planIDs).Delete(&models.DailyMeal{}).Error; err != nil {
			return fmt.Errorf("failed to delete daily meals: %w", err)
		}
		if err := tx.db.Where("health_goal_id = ?", id).Delete(&models.MealPlan{}).Error; err != nil {
			return fmt.Errorf("failed to delete meal plans: %w", err)
		}
		res := tx.db.Delete(&models.HealthGoal{}, id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete goal: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return common.ErrGoalNotFound
		}
		return nil
	})
}

// ---- MealPlan ----

// CreatePlan 新增菜單
func (r *Repository) CreatePlan(ctx context.Context, plan *models.MealPlan) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create meal plan: %w", err)
	}
	return nil
}

// CreateDays 新增每日餐點，只寫入欄位 ID，不回寫食譜
func (r *Repository) CreateDays(ctx context.Context, days []models.DailyMeal) error {
	if len(days) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&days).Error; err != nil {
		return fmt.Errorf("failed to create daily meals: %w", err)
	}
	return nil
}

// GetPlan 取得菜單，每日餐點依天數排序並載入四餐食譜
func (r *Repository) GetPlan(ctx context.Context, id uint) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.db.WithContext(ctx).
		Preload("HealthGoal").
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number")
		}).
		Preload("Days.Breakfast").
		Preload("Days.Lunch").
		Preload("Days.Dinner").
		Preload("Days.Snack").
		First(&plan, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}
	return &plan, nil
}

// RecentPlans 最近建立的菜單
func (r *Repository) RecentPlans(ctx context.Context, limit int) ([]models.MealPlan, error) {
	var plans []models.MealPlan
	err := r.db.WithContext(ctx).
		Preload("HealthGoal").
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent plans: %w", err)
	}
	return plans, nil
}

// ---- GroceryItem ----

// CreateGroceryItems 新增採買項目
func (r *Repository) CreateGroceryItems(ctx context.Context, items []models.GroceryItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return fmt.Errorf("failed to create grocery items: %w", err)
	}
	return nil
}

// ListGroceryItems 依分類、名稱列出菜單的採買項目
func (r *Repository) ListGroceryItems(ctx context.Context, planID uint) ([]models.GroceryItem, error) {
	var items []models.GroceryItem
	err := r.db.WithContext(ctx).
		Where("meal_plan_id = ?", planID).
		Order("category").Order("name").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list grocery items: %w", err)
	}
	return items, nil
}

// ToggleGroceryItem 以單一 UPDATE 反轉已購買狀態並回傳更新後的項目
func (r *Repository) ToggleGroceryItem(ctx context.Context, id uint) (*models.GroceryItem, error) {
	var item models.GroceryItem
	err := r.Transaction(ctx, func(tx *Repository) error {
		res := tx.db.Model(&models.GroceryItem{}).
			Where("id = ?", id).
			Update("purchased", gorm.Expr("NOT purchased"))
		if res.Error != nil {
			return fmt.Errorf("failed to toggle grocery item: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return common.ErrGroceryItemNotFound
		}
		return tx.db.First(&item, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
