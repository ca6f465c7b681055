package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"meal-planner/internal/core/models"
	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/pkg/common"

	"github.com/shopspring/decimal"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := Connect(config.DatabaseConfig{Driver: "sqlite", DSN: "file::memory:?_pragma=foreign_keys(1)"})
	if err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewRepository(db)
}

func mustRecipe(t *testing.T, repo *Repository, name string, meal models.MealType) *models.Recipe {
	t.Helper()
	r := &models.Recipe{Name: name, MealType: meal, Calories: 300, Ingredients: "Eggs, milk 2"}
	if err := repo.CreateRecipe(context.Background(), r); err != nil {
		t.Fatalf("CreateRecipe(%s): %v", name, err)
	}
	return r
}

// seedPlan 建立目標、菜單、七天餐點與一筆採買項目
func seedPlan(t *testing.T, repo *Repository, breakfast *models.Recipe) (*models.HealthGoal, *models.MealPlan) {
	t.Helper()
	ctx := context.Background()
	goal := &models.HealthGoal{UserName: "ann", Goal: models.GoalEnergy, DietType: models.DietBalanced, DailyCalories: 2000}
	if err := repo.CreateGoal(ctx, goal); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	plan := &models.MealPlan{HealthGoalID: goal.ID, StartDate: time.Now()}
	if err := repo.CreatePlan(ctx, plan); err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	days := make([]models.DailyMeal, 0, 7)
	for n := 7; n >= 1; n-- {
		d := models.DailyMeal{MealPlanID: plan.ID, DayNumber: n}
		d.SetSlot(models.MealBreakfast, breakfast)
		days = append(days, d)
	}
	if err := repo.CreateDays(ctx, days); err != nil {
		t.Fatalf("CreateDays: %v", err)
	}
	items := []models.GroceryItem{{MealPlanID: plan.ID, Name: "milk", Quantity: "2 units", Category: models.CategoryDairy, EstimatedPrice: decimal.Zero}}
	if err := repo.CreateGroceryItems(ctx, items); err != nil {
		t.Fatalf("CreateGroceryItems: %v", err)
	}
	return goal, plan
}

func count(t *testing.T, repo *Repository, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := repo.DB().Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestRecipeOrderingAndFilter(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	mustRecipe(t, repo, "Zucchini Soup", models.MealLunch)
	mustRecipe(t, repo, "Pancakes", models.MealBreakfast)
	mustRecipe(t, repo, "Apple Salad", models.MealLunch)

	all, err := repo.ListRecipes(ctx, "")
	if err != nil {
		t.Fatalf("ListRecipes: %v", err)
	}
	want := []string{"Pancakes", "Apple Salad", "Zucchini Soup"}
	for i, name := range want {
		if all[i].Name != name {
			t.Errorf("recipe %d = %q, want %q", i, all[i].Name, name)
		}
	}

	lunch, _ := repo.ListRecipes(ctx, models.MealLunch)
	if len(lunch) != 2 {
		t.Errorf("lunch filter returned %d recipes, want 2", len(lunch))
	}
}

func TestCreateRecipeDuplicateName(t *testing.T) {
	repo := newTestRepo(t)
	mustRecipe(t, repo, "Protein Bar", models.MealSnack)

	err := repo.CreateRecipe(context.Background(), &models.Recipe{Name: "Protein Bar", MealType: models.MealSnack, Ingredients: "bar"})
	if !errors.Is(err, common.ErrRecipeExists) {
		t.Fatalf("duplicate create = %v, want ErrRecipeExists", err)
	}
}

func TestFirstOrCreateRecipe(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	r := &models.Recipe{Name: "Oatmeal", MealType: models.MealBreakfast, Calories: 350, Ingredients: "Oats"}
	created, err := repo.FirstOrCreateRecipe(ctx, r)
	if err != nil || !created {
		t.Fatalf("first call created=%v err=%v", created, err)
	}

	again := &models.Recipe{Name: "Oatmeal", MealType: models.MealBreakfast, Calories: 999, Ingredients: "changed"}
	created, err = repo.FirstOrCreateRecipe(ctx, again)
	if err != nil || created {
		t.Fatalf("second call created=%v err=%v", created, err)
	}
	if again.ID != r.ID || again.Calories != 350 {
		t.Errorf("existing recipe should be returned unchanged, got %+v", again)
	}
	if n := count(t, repo, &models.Recipe{}); n != 1 {
		t.Errorf("recipes = %d, want 1", n)
	}
}

func TestGetPlanOrdersDays(t *testing.T) {
	repo := newTestRepo(t)
	oats := mustRecipe(t, repo, "Oatmeal", models.MealBreakfast)
	_, plan := seedPlan(t, repo, oats)

	got, err := repo.GetPlan(context.Background(), plan.ID)
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if len(got.Days) != 7 {
		t.Fatalf("days = %d, want 7", len(got.Days))
	}
	for i, d := range got.Days {
		if d.DayNumber != i+1 {
			t.Errorf("day %d has number %d", i, d.DayNumber)
		}
		if d.Breakfast == nil || d.Breakfast.Name != "Oatmeal" {
			t.Errorf("day %d breakfast not loaded", d.DayNumber)
		}
		if d.Lunch != nil {
			t.Errorf("day %d lunch should be empty", d.DayNumber)
		}
	}
	if got.HealthGoal.UserName != "ann" {
		t.Errorf("goal not loaded: %+v", got.HealthGoal)
	}

	if _, err := repo.GetPlan(context.Background(), 9999); !errors.Is(err, common.ErrPlanNotFound) {
		t.Errorf("missing plan = %v, want ErrPlanNotFound", err)
	}
}

func TestDayNumberUniquePerPlan(t *testing.T) {
	repo := newTestRepo(t)
	oats := mustRecipe(t, repo, "Oatmeal", models.MealBreakfast)
	_, plan := seedPlan(t, repo, oats)

	err := repo.CreateDays(context.Background(), []models.DailyMeal{{MealPlanID: plan.ID, DayNumber: 3}})
	if err == nil {
		t.Fatal("duplicate day number should fail")
	}
}

func TestDeleteGoalCascades(t *testing.T) {
	repo := newTestRepo(t)
	oats := mustRecipe(t, repo, "Oatmeal", models.MealBreakfast)
	goal, _ := seedPlan(t, repo, oats)
	seedPlan(t, repo, oats)

	if err := repo.DeleteGoal(context.Background(), goal.ID); err != nil {
		t.Fatalf("DeleteGoal: %v", err)
	}
	if n := count(t, repo, &models.HealthGoal{}); n != 1 {
		t.Errorf("goals = %d, want 1", n)
	}
	if n := count(t, repo, &models.MealPlan{}); n != 1 {
		t.Errorf("plans = %d, want 1", n)
	}
	if n := count(t, repo, &models.DailyMeal{}); n != 7 {
		t.Errorf("daily meals = %d, want 7", n)
	}
	if n := count(t, repo, &models.GroceryItem{}); n != 1 {
		t.Errorf("grocery items = %d, want 1", n)
	}
	if n := count(t, repo, &models.Recipe{}); n != 1 {
		t.Errorf("recipes should be untouched, got %d", n)
	}

	if err := repo.DeleteGoal(context.Background(), goal.ID); !errors.Is(err, common.ErrGoalNotFound) {
		t.Errorf("second delete = %v, want ErrGoalNotFound", err)
	}
}

func TestDeleteRecipeNullsSlots(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	oats := mustRecipe(t, repo, "Oatmeal", models.MealBreakfast)
	_, plan := seedPlan(t, repo, oats)

	if err := repo.DeleteRecipe(ctx, oats.ID); err != nil {
		t.Fatalf("DeleteRecipe: %v", err)
	}
	got, err := repo.GetPlan(ctx, plan.ID)
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if len(got.Days) != 7 {
		t.Fatalf("days = %d, want 7", len(got.Days))
	}
	for _, d := range got.Days {
		if d.BreakfastID != nil || d.Breakfast != nil {
			t.Errorf("day %d breakfast should be null", d.DayNumber)
		}
	}
	if err := repo.DeleteRecipe(ctx, oats.ID); !errors.Is(err, common.ErrRecipeNotFound) {
		t.Errorf("second delete = %v, want ErrRecipeNotFound", err)
	}
}

func TestToggleGroceryItem(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	oats := mustRecipe(t, repo, "Oatmeal", models.MealBreakfast)
	_, plan := seedPlan(t, repo, oats)

	items, err := repo.ListGroceryItems(ctx, plan.ID)
	if err != nil || len(items) != 1 {
		t.Fatalf("ListGroceryItems = %v, %v", items, err)
	}
	id := items[0].ID

	first, err := repo.ToggleGroceryItem(ctx, id)
	if err != nil || !first.Purchased {
		t.Fatalf("first toggle = %+v, %v", first, err)
	}
	if first.MealPlanID != plan.ID {
		t.Errorf("toggled item plan = %d, want %d", first.MealPlanID, plan.ID)
	}
	second, err := repo.ToggleGroceryItem(ctx, id)
	if err != nil || second.Purchased {
		t.Fatalf("second toggle = %+v, %v", second, err)
	}

	if _, err := repo.ToggleGroceryItem(ctx, 9999); !errors.Is(err, common.ErrGroceryItemNotFound) {
		t.Errorf("missing item = %v, want ErrGroceryItemNotFound", err)
	}
}

func TestTransactionRollback(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	boom := errors.New("boom")

	err := repo.Transaction(ctx, func(tx *Repository) error {
		if err := tx.CreateGoal(ctx, &models.HealthGoal{UserName: "x", Goal: models.GoalEnergy, DietType: models.DietKeto, DailyCalories: 1}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Transaction = %v, want boom", err)
	}
	if n := count(t, repo, &models.HealthGoal{}); n != 0 {
		t.Errorf("goals = %d after rollback, want 0", n)
	}
}

func TestRecentPlans(t *testing.T) {
	repo := newTestRepo(t)
	oats := mustRecipe(t, repo, "Oatmeal", models.MealBreakfast)
	var last *models.MealPlan
	for i := 0; i < 6; i++ {
		_, last = seedPlan(t, repo, oats)
	}
	plans, err := repo.RecentPlans(context.Background(), 5)
	if err != nil {
		t.Fatalf("RecentPlans: %v", err)
	}
	if len(plans) != 5 {
		t.Fatalf("plans = %d, want 5", len(plans))
	}
	if plans[0].ID != last.ID {
		t.Errorf("newest plan = %d, want %d", plans[0].ID, last.ID)
	}
}

func TestPing(t *testing.T) {
	if err := newTestRepo(t).Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
