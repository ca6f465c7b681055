package catalog

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"meal-planner/internal/core/models"
	"meal-planner/internal/pkg/common"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Importer 從檔案或 http(s) URL 讀取 JSON 食譜目錄
type Importer struct {
	client   *resty.Client
	validate *validator.Validate
}

// NewImporter 創建目錄匯入器
func NewImporter(timeout time.Duration) *Importer {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	v := validator.New()
	v.SetTagName("binding")

	return &Importer{client: client, validate: v}
}

// Load 讀取並驗證目錄，內容為 RecipeInput 的 JSON 陣列
func (i *Importer) Load(ctx context.Context, source string) ([]models.Recipe, error) {
	data, err := i.fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	var inputs []RecipeInput
	if err := common.DecodeJSONStrict(bytes.NewReader(data), &inputs); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", source, err)
	}

	recipes := make([]models.Recipe, 0, len(inputs))
	for idx, in := range inputs {
		if err := i.validate.Struct(in); err != nil {
			return nil, common.NewValidationError(
				fmt.Sprintf("catalog entry %d (%q) is invalid", idx, in.Name),
				common.FieldErrors(err),
			)
		}
		recipes = append(recipes, in.ToRecipe())
	}

	common.LogInfo("食譜目錄已讀取",
		zap.String("source", source),
		zap.Int("count", len(recipes)),
	)
	return recipes, nil
}

func (i *Importer) fetch(ctx context.Context, source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		return data, nil
	}

	resp, err := i.client.R().
		SetContext(ctx).
		Get(source)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}
