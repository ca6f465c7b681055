package cache

import (
	"context"
	"fmt"

	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/pkg/common"
)

// Store 快取後端
type Store interface {
	// Get 取得快取值，不存在或已過期時回傳 common.ErrCacheMiss
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// DeletePrefix 刪除所有以 prefix 開頭的鍵
	DeletePrefix(ctx context.Context, prefix string) error
	Stats() map[string]interface{}
	Close() error
}

// New 依設定建立快取後端；停用時回傳永遠未命中的 Noop
func New(cfg *config.Config) (Store, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return Noop{}, nil
	}
	switch cfg.Cache.Driver {
	case "memory":
		return NewManager(cfg.Cache), nil
	case "redis":
		return NewRedisStore(cfg.Redis, cfg.Cache.TTL)
	default:
		return nil, fmt.Errorf("unsupported cache driver %q", cfg.Cache.Driver)
	}
}

// Noop 停用快取時使用
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, error) { return nil, common.ErrCacheMiss }
func (Noop) Set(context.Context, string, []byte) error   { return nil }
func (Noop) DeletePrefix(context.Context, string) error  { return nil }
func (Noop) Stats() map[string]interface{}               { return map[string]interface{}{"enabled": false} }
func (Noop) Close() error                                { return nil }
