// seed 將食譜寫入目錄，同名食譜不會重複建立
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"meal-planner/internal/core/cache"
	"meal-planner/internal/core/catalog"
	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/infrastructure/database"
	"meal-planner/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	source := flag.String("source", cfg.Catalog.Source, "JSON recipe catalog (file path or http(s) URL); empty uses the built-in recipes")
	flag.Parse()

	if err := common.InitLogger(common.LogOptions{Level: cfg.LogLevel, Service: cfg.App.Name + "-seed"}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	if err := run(context.Background(), cfg, *source, os.Stdout); err != nil {
		common.LogError("Seed failed", zap.Error(err))
		fmt.Printf("Seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, source string, out io.Writer) error {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	recipes := catalog.BuiltinRecipes()
	if source != "" {
		recipes, err = catalog.NewImporter(cfg.Catalog.Timeout).Load(ctx, source)
		if err != nil {
			return err
		}
	}

	// 共用快取（redis）需要一併清除，其他情況不影響執行中的服務
	var store cache.Store = cache.Noop{}
	if cfg.Cache.Enabled && cfg.Cache.Driver == "redis" {
		redisStore, err := cache.NewRedisStore(cfg.Redis, cfg.Cache.TTL)
		if err != nil {
			common.LogWarn("Redis unavailable, skip cache invalidation", zap.Error(err))
		} else {
			store = redisStore
		}
	}
	defer store.Close()

	results, err := catalog.NewService(database.NewRepository(db), store).Seed(ctx, recipes)
	report(out, results)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Successfully loaded all recipes")
	return nil
}

// report 每筆食譜輸出一行建立結果
func report(out io.Writer, results []catalog.SeedResult) {
	for _, r := range results {
		if r.Created {
			fmt.Fprintf(out, "Successfully created recipe: %s\n", r.Name)
		} else {
			fmt.Fprintf(out, "Recipe already exists: %s\n", r.Name)
		}
	}
}
