package entity

import (
	"slices"
	"time"
)

// ScheduleMode tells whether the active hour has anything to dispatch.
type ScheduleMode int

const (
	ModeEmpty ScheduleMode = iota
	ModeActive
)

func (m ScheduleMode) String() string {
	if m == ModeActive {
		return "active"
	}
	return "empty"
}

// Wake is one dispatch instant for a minute slot of the active hour,
// expressed in the home zone.
type Wake struct {
	At     time.Time
	Minute string
}

// DispatchState is a point-in-time copy of what the dispatcher is working from.
// Hour is -1 until the first roll.
type DispatchState struct {
	Hour      int
	HourStart time.Time
	Mode      ScheduleMode
	Wakes     []Wake
	Slots     map[string][]int64
	Revision  int64
	Cursor    time.Time
	LastFired Wake
	RolledAt  time.Time
}

// Pending returns the wakes not yet fired.
func (s DispatchState) Pending() []Wake {
	var out []Wake
	for _, w := range s.Wakes {
		if !w.At.Before(s.Cursor) {
			out = append(out, w)
		}
	}
	return out
}

func (s DispatchState) Clone() DispatchState {
	cp := s
	cp.Wakes = slices.Clone(s.Wakes)
	if s.Slots != nil {
		cp.Slots = make(map[string][]int64, len(s.Slots))
		for k, v := range s.Slots {
			cp.Slots[k] = slices.Clone(v)
		}
	}
	return cp
}
