package domain

import "time"

// HoursPerDay is the number of hour buckets kept by the store.
const HoursPerDay = 24

// UTC offset bounds accepted for a user timezone.
const (
	MinUTCOffset = -11
	MaxUTCOffset = 14
)

// DefaultPromptTime and DefaultPromptText form the prompt every new profile starts with.
const (
	DefaultPromptTime = "20:00"
	DefaultPromptText = "What's something you did today that you're proud of?"
)

// Break settings
const (
	DefaultBreakKey      = "default"
	DefaultBreakMinutes  = 70
	MaxCustomBreaks      = 10
	MaxActivityNameLen   = 30
	MaxPromptTextLen     = 1000
	DefaultBreakReminder = "Time for a break? If you need,\n- Get some food\n- Get some water\n- Stretch or move around! :)"
)

// DefaultHomeUTCOffset is the offset of the zone the dispatcher reports wall-clock times in.
const DefaultHomeUTCOffset = -7

// DeliveryTimeout bounds a single Slack API call. Waiting for a rate limit
// token is not included.
const DeliveryTimeout = 30 * time.Second

// Activity log limits
const (
	MaxLogActivities = 10
	MaxLoggedPerDay  = 24*time.Hour - time.Second
	LogDayLayout     = "2006-01-02"
)
