package entity

import "time"

// LogEntry is the time logged for one activity on one local day.
type LogEntry struct {
	Day      string
	Activity string
	Duration time.Duration
}

// ActivityTotal sums every day logged for an activity.
type ActivityTotal struct {
	Activity string
	Total    time.Duration
}

// LogResult reports what a single log call did.
type LogResult struct {
	Activity  string
	Day       string
	Added     time.Duration
	DayTotal  time.Duration
	Created   bool
	Clamped   bool
	SlotsUsed int
}
