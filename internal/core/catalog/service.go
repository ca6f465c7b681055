package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"meal-planner/internal/core/cache"
	"meal-planner/internal/core/models"
	"meal-planner/internal/infrastructure/database"
	"meal-planner/internal/pkg/common"

	"go.uber.org/zap"
)

const cachePrefix = "recipes:"

// Service 食譜目錄服務
type Service struct {
	repo  *database.Repository
	cache cache.Store
}

// NewService 創建食譜目錄服務，store 可為 nil
func NewService(repo *database.Repository, store cache.Store) *Service {
	if store == nil {
		store = cache.Noop{}
	}
	return &Service{repo: repo, cache: store}
}

func listKey(mealType models.MealType) string {
	if mealType == "" {
		return cachePrefix + "all"
	}
	return cachePrefix + string(mealType)
}

// List 依餐別列出食譜，結果會被快取直到目錄變動
func (s *Service) List(ctx context.Context, mealType models.MealType) ([]models.Recipe, error) {
	key := listKey(mealType)
	if data, err := s.cache.Get(ctx, key); err == nil {
		var recipes []models.Recipe
		if err := json.Unmarshal(data, &recipes); err == nil {
			return recipes, nil
		}
		common.LogWarn("快取內容無法解析", zap.String("key", key))
	} else if !errors.Is(err, common.ErrCacheMiss) {
		common.LogWarn("讀取快取失敗", zap.String("key", key), zap.Error(err))
	}

	recipes, err := s.repo.ListRecipes(ctx, mealType)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(recipes); err == nil {
		if err := s.cache.Set(ctx, key, data); err != nil {
			common.LogWarn("寫入快取失敗", zap.String("key", key), zap.Error(err))
		}
	}
	return recipes, nil
}

// Get 取得單一食譜
func (s *Service) Get(ctx context.Context, id uint) (*models.Recipe, error) {
	return s.repo.GetRecipe(ctx, id)
}

// Create 新增食譜
func (s *Service) Create(ctx context.Context, in RecipeInput) (*models.Recipe, error) {
	recipe := in.ToRecipe()
	if err := s.repo.CreateRecipe(ctx, &recipe); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	common.LogInfo("食譜已新增", zap.Uint("id", recipe.ID), zap.String("name", recipe.Name))
	return &recipe, nil
}

// Delete 刪除食譜，菜單中引用它的餐點變為空
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.DeleteRecipe(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	common.LogInfo("食譜已刪除", zap.Uint("id", id))
	return nil
}

// SeedResult 單筆種子匯入結果
type SeedResult struct {
	Name    string
	Created bool
}

// Seed 以名稱為鍵匯入食譜，已存在的不會重複建立也不會被覆寫
func (s *Service) Seed(ctx context.Context, recipes []models.Recipe) ([]SeedResult, error) {
	results := make([]SeedResult, 0, len(recipes))
	created := 0
	for i := range recipes {
		r := recipes[i]
		r.ID = 0
		ok, err := s.repo.FirstOrCreateRecipe(ctx, &r)
		if err != nil {
			return results, err
		}
		if ok {
			created++
		}
		results = append(results, SeedResult{Name: r.Name, Created: ok})
	}
	if created > 0 {
		s.invalidate(ctx)
	}
	common.LogInfo("食譜種子匯入完成",
		zap.Int("total", len(recipes)),
		zap.Int("created", created),
	)
	return results, nil
}

func (s *Service) invalidate(ctx context.Context) {
	if err := s.cache.DeletePrefix(ctx, cachePrefix); err != nil {
		common.LogWarn("清除食譜快取失敗", zap.Error(err))
	}
}
