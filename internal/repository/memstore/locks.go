package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DREXATROLL/muzrent-pro/internal/domain"
)

// lockTable hands out one exclusive slot per item id.
type lockTable struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func newLockTable() *lockTable {
	return &lockTable{slots: make(map[string]chan struct{})}
}

func (t *lockTable) slot(key string) chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.slots[key]
	if !ok {
		s = make(chan struct{}, 1)
		t.slots[key] = s
	}
	return s
}

// acquire waits at most timeout (or until ctx is done) for the item slot.
// A zero timeout waits on ctx alone.
func (t *lockTable) acquire(ctx context.Context, key string, timeout time.Duration) (func(), error) {
	s := t.slot(key)

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case s <- struct{}{}:
		return func() { <-s }, nil
	case <-expired:
		return nil, fmt.Errorf("lock item %s: %w: wait exceeded %s", key, domain.ErrTransient, timeout)
	case <-ctx.Done():
		return nil, fmt.Errorf("lock item %s: %w: %v", key, domain.ErrTransient, ctx.Err())
	}
}
