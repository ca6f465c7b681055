package mealplan

import (
	"context"
	"fmt"
	"time"

	"meal-planner/internal/core/grocery"
	"meal-planner/internal/core/models"
	"meal-planner/internal/core/planner"
	"meal-planner/internal/infrastructure/database"
	"meal-planner/internal/pkg/common"

	"go.uber.org/zap"
)

// RecentPlanLimit 儀表板顯示的菜單數量
const RecentPlanLimit = 5

// Service 目標與菜單服務
type Service struct {
	repo      *database.Repository
	generator *planner.Generator
	now       func() time.Time
}

// NewService 創建菜單服務
func NewService(repo *database.Repository, generator *planner.Generator) *Service {
	return &Service{repo: repo, generator: generator, now: time.Now}
}

// CreateGoalWithPlan 建立目標並產生七日菜單與採買清單，全部在同一個交易內完成
func (s *Service) CreateGoalWithPlan(ctx context.Context, in GoalInput) (*models.MealPlan, error) {
	goal, err := in.ToGoal()
	if err != nil {
		return nil, err
	}

	var plan *models.MealPlan
	err = s.repo.Transaction(ctx, func(tx *database.Repository) error {
		if err := tx.CreateGoal(ctx, goal); err != nil {
			return err
		}

		catalog, err := tx.ListRecipes(ctx, "")
		if err != nil {
			return err
		}

		plan = &models.MealPlan{
			HealthGoalID: goal.ID,
			StartDate:    startOfDay(s.now()),
		}
		if err := tx.CreatePlan(ctx, plan); err != nil {
			return err
		}

		days := s.generator.Generate(goal, catalog)
		for i := range days {
			days[i].MealPlanID = plan.ID
		}
		if err := tx.CreateDays(ctx, days); err != nil {
			return err
		}

		items := grocery.Consolidate(days)
		for i := range items {
			items[i].MealPlanID = plan.ID
		}
		if err := tx.CreateGroceryItems(ctx, items); err != nil {
			return err
		}

		plan.HealthGoal = *goal
		plan.Days = days
		plan.GroceryItems = items
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create meal plan: %w", err)
	}

	common.LogInfo("菜單已產生",
		zap.Uint("goal_id", goal.ID),
		zap.Uint("plan_id", plan.ID),
		zap.Int("grocery_items", len(plan.GroceryItems)),
	)
	return plan, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DayView 單日餐點與當日總和
type DayView struct {
	models.DailyMeal
	TotalCalories int              `json:"total_calories"`
	Nutrition     models.Nutrition `json:"nutrition"`
}

// PlanView 菜單詳細內容
type PlanView struct {
	Plan *models.MealPlan `json:"plan"`
	Days []DayView        `json:"days"`
}

// GetPlan 取得菜單及每日總和
func (s *Service) GetPlan(ctx context.Context, id uint) (*PlanView, error) {
	plan, err := s.repo.GetPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &PlanView{Plan: plan, Days: make([]DayView, 0, len(plan.Days))}
	for i := range plan.Days {
		d := &plan.Days[i]
		view.Days = append(view.Days, DayView{
			DailyMeal:     *d,
			TotalCalories: d.TotalCalories(),
			Nutrition:     d.TotalNutrition(),
		})
	}
	plan.Days = nil
	return view, nil
}

// GroceryView 菜單的分類採買清單
type GroceryView struct {
	Plan *models.MealPlan `json:"plan"`
	grocery.List
}

// GroceryList 取得依分類分組的採買清單
func (s *Service) GroceryList(ctx context.Context, planID uint) (*GroceryView, error) {
	plan, err := s.repo.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListGroceryItems(ctx, planID)
	if err != nil {
		return nil, err
	}
	plan.Days = nil
	return &GroceryView{Plan: plan, List: grocery.Group(items)}, nil
}

// ToggleGroceryItem 反轉採買項目的已購買狀態
func (s *Service) ToggleGroceryItem(ctx context.Context, id uint) (*models.GroceryItem, error) {
	item, err := s.repo.ToggleGroceryItem(ctx, id)
	if err != nil {
		return nil, err
	}
	common.LogDebug("採買項目已切換", zap.Uint("id", id), zap.Bool("purchased", item.Purchased))
	return item, nil
}

// Dashboard 儀表板資料
type Dashboard struct {
	Goals       []models.HealthGoal `json:"goals"`
	RecentPlans []models.MealPlan   `json:"recent_plans"`
}

// GetDashboard 所有目標（新到舊）與最近的菜單
func (s *Service) GetDashboard(ctx context.Context) (*Dashboard, error) {
	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := s.repo.RecentPlans(ctx, RecentPlanLimit)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Goals: goals, RecentPlans: plans}, nil
}

// ListGoals 列出所有目標
func (s *Service) ListGoals(ctx context.Context) ([]models.HealthGoal, error) {
	return s.repo.ListGoals(ctx)
}

// DeleteGoal 刪除目標及其所有菜單
func (s *Service) DeleteGoal(ctx context.Context, id uint) error {
	if err := s.repo.DeleteGoal(ctx, id); err != nil {
		return err
	}
	common.LogInfo("目標已刪除", zap.Uint("id", id))
	return nil
}
