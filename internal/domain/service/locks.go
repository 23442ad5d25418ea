package service

import (
	"slices"
	"sync"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/puzpuzpuz/xsync/v4"
)

// lockSet serializes writers. A user lock is always taken before any hour lock,
// and hour locks are taken in ascending order.
type lockSet struct {
	hours [domain.HoursPerDay]sync.Mutex
	users *xsync.Map[int64, *sync.Mutex]
}

func newLockSet() *lockSet {
	return &lockSet{users: xsync.NewMap[int64, *sync.Mutex]()}
}

func (l *lockSet) lockUser(userID int64) (unlock func()) {
	mu, ok := l.users.Load(userID)
	if !ok {
		mu, _ = l.users.LoadOrStore(userID, &sync.Mutex{})
	}
	mu.Lock()
	return mu.Unlock
}

func (l *lockSet) lockHours(hours ...int) (unlock func()) {
	sorted := slices.Clone(hours)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	for _, h := range sorted {
		l.hours[h].Lock()
	}
	return func() {
		for i := len(sorted) - 1; i >= 0; i-- {
			l.hours[sorted[i]].Unlock()
		}
	}
}

func (l *lockSet) lockAllHours() (unlock func()) {
	all := make([]int, domain.HoursPerDay)
	for i := range all {
		all[i] = i
	}
	return l.lockHours(all...)
}
