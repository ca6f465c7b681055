package planner

import (
	"math/rand"
	"sync"
	"time"

	"meal-planner/internal/pkg/common"

	"go.uber.org/zap"
)

// Picker 隨機選擇來源，回傳 [0, n) 之間的整數
type Picker interface {
	Intn(n int) int
}

// lockedRand 多個請求共用的隨機來源
type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedRand 建立以 seed 初始化的隨機來源；seed 為 0 時以目前時間為種子並記錄下來
func NewLockedRand(seed int64) Picker {
	if seed == 0 {
		seed = time.Now().UnixNano()
		common.LogInfo("菜單隨機種子", zap.Int64("seed", seed))
	}
	return &lockedRand{rnd: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rnd.Intn(n)
}
