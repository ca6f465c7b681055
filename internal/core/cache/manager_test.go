package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"meal-planner/internal/infrastructure/config"
	"meal-planner/internal/pkg/common"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestManager(maxSize int) (*Manager, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := newManager(config.CacheConfig{Enabled: true, MaxSize: maxSize, TTL: time.Minute}, clock.Now)
	return m, clock
}

func TestManagerGetSet(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(4)

	if _, err := m.Get(ctx, "recipes:all"); !errors.Is(err, common.ErrCacheMiss) {
		t.Fatalf("Get on empty cache = %v, want ErrCacheMiss", err)
	}
	if err := m.Set(ctx, "recipes:all", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := m.Get(ctx, "recipes:all")
	if err != nil || string(got) != "v1" {
		t.Fatalf("Get = %q, %v; want v1", got, err)
	}

	stats := m.Stats()
	if stats["hits"].(int64) != 1 || stats["misses"].(int64) != 1 {
		t.Errorf("stats = %v", stats)
	}
}

func TestManagerExpiry(t *testing.T) {
	ctx := context.Background()
	m, clock := newTestManager(4)

	_ = m.Set(ctx, "k", []byte("v"))
	clock.Advance(59 * time.Second)
	if _, err := m.Get(ctx, "k"); err != nil {
		t.Fatalf("entry expired early: %v", err)
	}
	clock.Advance(2 * time.Second)
	if _, err := m.Get(ctx, "k"); !errors.Is(err, common.ErrCacheMiss) {
		t.Fatalf("Get after ttl = %v, want ErrCacheMiss", err)
	}
}

func TestManagerEvictsLeastUsed(t *testing.T) {
	ctx := context.Background()
	m, clock := newTestManager(2)

	_ = m.Set(ctx, "a", []byte("a"))
	clock.Advance(time.Second)
	_ = m.Set(ctx, "b", []byte("b"))
	_, _ = m.Get(ctx, "a")

	if err := m.Set(ctx, "c", []byte("c")); err != nil {
		t.Fatalf("Set at capacity: %v", err)
	}
	if _, err := m.Get(ctx, "b"); !errors.Is(err, common.ErrCacheMiss) {
		t.Error("least used entry b should have been evicted")
	}
	if _, err := m.Get(ctx, "a"); err != nil {
		t.Error("entry a should survive eviction")
	}
}

func TestManagerOverwriteAtCapacity(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(1)

	_ = m.Set(ctx, "a", []byte("1"))
	if err := m.Set(ctx, "a", []byte("2")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ := m.Get(ctx, "a")
	if string(got) != "2" {
		t.Errorf("Get = %q, want 2", got)
	}
}

func TestManagerDeletePrefix(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(8)

	_ = m.Set(ctx, "recipes:all", []byte("x"))
	_ = m.Set(ctx, "recipes:lunch", []byte("y"))
	_ = m.Set(ctx, "other", []byte("z"))

	if err := m.DeletePrefix(ctx, "recipes:"); err != nil {
		t.Fatalf("DeletePrefix: %v", err)
	}
	if _, err := m.Get(ctx, "recipes:lunch"); !errors.Is(err, common.ErrCacheMiss) {
		t.Error("recipes:lunch should be gone")
	}
	if _, err := m.Get(ctx, "other"); err != nil {
		t.Error("other should remain")
	}
}

func TestNewManagerCloseStopsCleanup(t *testing.T) {
	m := NewManager(config.CacheConfig{Enabled: true, MaxSize: 2, TTL: time.Minute, CleanupInterval: time.Millisecond})
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// 重複關閉不應 panic
	if err := m.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestNewDisabled(t *testing.T) {
	store, err := New(&config.Config{Cache: config.CacheConfig{Enabled: false}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := store.(Noop); !ok {
		t.Fatalf("New returned %T, want Noop", store)
	}
	if _, err := store.Get(context.Background(), "k"); !errors.Is(err, common.ErrCacheMiss) {
		t.Errorf("Noop Get = %v, want ErrCacheMiss", err)
	}
}
