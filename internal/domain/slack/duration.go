package slack

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/alanwells064/cornbot/internal/domain"
)

type unit struct {
	name string
	size time.Duration
}

var (
	breakUnits = []unit{{"hours", time.Hour}, {"minutes", time.Minute}}
	logUnits   = []unit{{"hours", time.Hour}, {"minutes", time.Minute}, {"seconds", time.Second}}
)

// ParseBreakArgs splits "<activity words> <duration>" into the activity name and
// the interval. The duration is the longest run of trailing words made only of
// number/unit pairs, such as "1h 10m", "70 minutes" or "1hour10min". Units are
// any prefix of "hours" or "minutes".
func ParseBreakArgs(args []string) (string, time.Duration, error) {
	words := make([]string, len(args))
	for i, a := range args {
		words[i] = strings.ToLower(a)
	}

	split := -1
	var interval time.Duration
	for i := len(words) - 1; i >= 1; i-- {
		d, ok := parseDuration(strings.Join(words[i:], " "), breakUnits)
		if !ok {
			continue
		}
		split, interval = i, d
	}

	if split < 0 {
		if len(words) > 0 {
			if _, ok := parseDuration(strings.Join(words, " "), breakUnits); ok {
				return "", 0, domain.NewValidationError("activity", "missing activity name")
			}
		}
		return "", 0, domain.NewValidationError("duration", "accepts hours and minutes (can be abbreviated)")
	}

	return strings.Join(words[:split], " "), interval, nil
}

// ParseLogArgs splits "<activity> <duration>" for the log command. The activity
// is one word; the rest is the duration, with hours, minutes and seconds.
func ParseLogArgs(args []string) (string, time.Duration, error) {
	if len(args) < 2 {
		return "", 0, domain.NewValidationError("log", "usage is log <activity> <time>")
	}
	d, ok := parseDuration(strings.ToLower(strings.Join(args[1:], " ")), logUnits)
	if !ok {
		return "", 0, domain.NewValidationError("duration", "accepts hours, minutes and seconds (can be abbreviated)")
	}
	return strings.ToLower(args[0]), d, nil
}

// parseDuration reads s as number/unit pairs, where a unit is any prefix of one
// of units. Whitespace between tokens is ignored.
func parseDuration(s string, units []unit) (time.Duration, bool) {
	tokens, ok := splitAlphaNum(s)
	if !ok || len(tokens) == 0 || len(tokens)%2 != 0 {
		return 0, false
	}

	var total time.Duration
	for i := 0; i < len(tokens); i += 2 {
		n, err := strconv.Atoi(tokens[i])
		if err != nil {
			return 0, false
		}
		size, ok := unitSize(tokens[i+1], units)
		if !ok {
			return 0, false
		}
		total += time.Duration(n) * size
	}
	return total, true
}

func unitSize(word string, units []unit) (time.Duration, bool) {
	for _, u := range units {
		if strings.HasPrefix(u.name, word) {
			return u.size, true
		}
	}
	return 0, false
}

// splitAlphaNum breaks s into runs of digits and runs of letters:
// "1hour10 min" becomes [1 hour 10 min]. Any other character fails.
func splitAlphaNum(s string) ([]string, bool) {
	var tokens []string
	var cur strings.Builder
	curDigit := false

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			flush()
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z':
			isDigit := r <= '9'
			if cur.Len() > 0 && isDigit != curDigit {
				flush()
			}
			curDigit = isDigit
			cur.WriteRune(r)
		default:
			return nil, false
		}
	}
	flush()
	return tokens, true
}
