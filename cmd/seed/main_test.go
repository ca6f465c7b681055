package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"meal-planner/internal/core/catalog"
	"meal-planner/internal/infrastructure/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "seed.db") + "?_pragma=foreign_keys(1)"
	return &config.Config{
		Database: config.DatabaseConfig{Driver: "sqlite", DSN: dsn},
		Catalog:  config.CatalogConfig{Timeout: 5 * time.Second},
	}
}

func TestRunTwiceReportsExistingRecipes(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	builtin := catalog.BuiltinRecipes()

	var first bytes.Buffer
	if err := run(ctx, cfg, "", &first); err != nil {
		t.Fatalf("first run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(first.String()), "\n")
	if len(lines) != len(builtin)+1 {
		t.Fatalf("lines = %d, want %d", len(lines), len(builtin)+1)
	}
	if lines[0] != "Successfully created recipe: "+builtin[0].Name {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[len(lines)-1] != "Successfully loaded all recipes" {
		t.Errorf("last line = %q", lines[len(lines)-1])
	}

	var second bytes.Buffer
	if err := run(ctx, cfg, "", &second); err != nil {
		t.Fatalf("second run: %v", err)
	}
	for _, r := range builtin {
		if !strings.Contains(second.String(), "Recipe already exists: "+r.Name+"\n") {
			t.Errorf("second run missing existing line for %q", r.Name)
		}
	}
	if strings.Contains(second.String(), "Successfully created recipe:") {
		t.Errorf("second run created recipes:\n%s", second.String())
	}
}

func TestRunFromSource(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "recipes.json")
	data := `[{"name":"Miso Soup","description":"Light soup","calories":90,"ingredients":"Miso 1, Tofu","instructions":"Simmer.","meal_type":"snack"}]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := run(context.Background(), cfg, path, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "Successfully created recipe: Miso Soup\nSuccessfully loaded all recipes\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRunBadSourcePrintsNothing(t *testing.T) {
	cfg := testConfig(t)
	var out bytes.Buffer
	if err := run(context.Background(), cfg, filepath.Join(t.TempDir(), "missing.json"), &out); err == nil {
		t.Fatal("expected error for missing source")
	}
	if out.Len() != 0 {
		t.Errorf("output = %q", out.String())
	}
}
