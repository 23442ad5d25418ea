package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// LocalTime is an hour and minute in a user's own timezone.
type LocalTime struct {
	Hour   int
	Minute int
}

// ParseLocalTime accepts "H:MM" or "HH:MM" on a 24-hour clock.
func ParseLocalTime(s string) (LocalTime, error) {
	s = strings.TrimSpace(s)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || !isDigits(hh) || !isDigits(mm) || len(hh) > 2 || len(mm) != 2 {
		return LocalTime{}, NewValidationError("time", "%q is not in H:MM or HH:MM form", s)
	}

	hour, _ := strconv.Atoi(hh)
	minute, _ := strconv.Atoi(mm)
	if hour > 23 || minute > 59 {
		return LocalTime{}, NewValidationError("time", "%q is out of range", s)
	}

	return LocalTime{Hour: hour, Minute: minute}, nil
}

// String renders the canonical "HH:MM" key used in profiles.
func (t LocalTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// MinuteKey renders the two-digit minute used as a bucket slot key.
func (t LocalTime) MinuteKey() string {
	return MinuteKey(t.Minute)
}

// UTCHour maps a local hour to the UTC hour for the given offset.
func (t LocalTime) UTCHour(offset int) int {
	return UTCHour(t.Hour, offset)
}

func MinuteKey(minute int) string {
	return fmt.Sprintf("%02d", minute)
}

// ParseMinuteKey reads a bucket slot key back into a minute.
func ParseMinuteKey(key string) (int, error) {
	if len(key) != 2 || !isDigits(key) {
		return 0, NewValidationError("minute", "%q is not a two-digit minute", key)
	}
	m, _ := strconv.Atoi(key)
	if m > 59 {
		return 0, NewValidationError("minute", "%q is out of range", key)
	}
	return m, nil
}

// UTCHour returns (localHour - offset) mod 24.
func UTCHour(localHour, offset int) int {
	return mod(localHour-offset, HoursPerDay)
}

// LocalHour returns (utcHour + offset) mod 24.
func LocalHour(utcHour, offset int) int {
	return mod(utcHour+offset, HoursPerDay)
}

// ValidateOffset checks a UTC offset against the supported range.
func ValidateOffset(offset int) error {
	if offset < MinUTCOffset || offset > MaxUTCOffset {
		return NewValidationError("timezone", "UTC%+d is outside UTC%+d..UTC%+d", offset, MinUTCOffset, MaxUTCOffset)
	}
	return nil
}

// ParseOffset reads "+5", "-4" or "3" as a UTC offset and validates its range.
func ParseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if digits == "" || !isDigits(digits) || len(s)-len(digits) > 1 {
		return 0, NewValidationError("timezone", "%q is not a signed whole number", s)
	}

	offset, err := strconv.Atoi(s)
	if err != nil {
		return 0, NewValidationError("timezone", "%q is not a signed whole number", s)
	}
	if err := ValidateOffset(offset); err != nil {
		return 0, err
	}
	return offset, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
