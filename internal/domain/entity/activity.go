package entity

import "time"

// Activity is what a user is doing right now, as reported by the chat platform.
type Activity struct {
	UserID    int64
	Name      string
	StartedAt time.Time
}
