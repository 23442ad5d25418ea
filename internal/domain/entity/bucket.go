package entity

import (
	"maps"
	"slices"
	"sort"
)

// HourBucket holds, for one UTC hour, the users due at each minute.
// Slot keys are two-digit minutes and each slot is an ordered set of user ids.
// Empty slots are never kept. Revision grows by one on every save.
type HourBucket struct {
	Hour     int
	Slots    map[string][]int64
	Revision int64
}

func NewHourBucket(hour int) *HourBucket {
	return &HourBucket{Hour: hour, Slots: map[string][]int64{}}
}

// Add appends userID to the minute slot. It reports false if the user was already there.
func (b *HourBucket) Add(minute string, userID int64) bool {
	if b.Slots == nil {
		b.Slots = map[string][]int64{}
	}
	if slices.Contains(b.Slots[minute], userID) {
		return false
	}
	b.Slots[minute] = append(b.Slots[minute], userID)
	return true
}

// Remove drops userID from the minute slot and prunes the slot once empty.
// It reports false if the user was not there.
func (b *HourBucket) Remove(minute string, userID int64) bool {
	users, ok := b.Slots[minute]
	if !ok {
		return false
	}
	i := slices.Index(users, userID)
	if i < 0 {
		return false
	}
	users = slices.Delete(slices.Clone(users), i, i+1)
	if len(users) == 0 {
		delete(b.Slots, minute)
		return true
	}
	b.Slots[minute] = users
	return true
}

func (b *HourBucket) Contains(minute string, userID int64) bool {
	return slices.Contains(b.Slots[minute], userID)
}

// Users returns a copy of the minute slot.
func (b *HourBucket) Users(minute string) []int64 {
	return slices.Clone(b.Slots[minute])
}

// Minutes returns the occupied minute keys in order.
func (b *HourBucket) Minutes() []string {
	keys := make([]string, 0, len(b.Slots))
	for k := range b.Slots {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (b *HourBucket) Empty() bool {
	return len(b.Slots) == 0
}

// Equal compares slot contents, ignoring revision.
func (b *HourBucket) Equal(other *HourBucket) bool {
	if other == nil {
		return b.Empty()
	}
	return maps.EqualFunc(b.Slots, other.Slots, func(x, y []int64) bool {
		return slices.Equal(x, y)
	})
}

func (b *HourBucket) Clone() *HourBucket {
	if b == nil {
		return nil
	}
	cp := &HourBucket{Hour: b.Hour, Revision: b.Revision, Slots: make(map[string][]int64, len(b.Slots))}
	for k, v := range b.Slots {
		cp.Slots[k] = slices.Clone(v)
	}
	return cp
}
