package mentor

import (
	"math/rand"
	"sync"
)

// LockedRand is a Rand that can be shared between request goroutines.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewLockedRand(seed int64) *LockedRand {
	return &LockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *LockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}
