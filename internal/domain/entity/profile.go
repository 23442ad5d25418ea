package entity

import (
	"maps"
	"sort"
	"strings"
	"time"

	"github.com/alanwells064/cornbot/internal/domain"
)

// Profile is a registered user's timezone, prompts and break intervals.
// Prompts are keyed by local "HH:MM"; Breaks by lowercase activity name in minutes.
type Profile struct {
	ID          int64
	SlackUserID string
	TZ          int
	Prompts     map[string]string
	Breaks      map[string]int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProfile returns a profile carrying the default prompt and break interval.
func NewProfile(slackUserID string, tz int, defaultPrompt string) *Profile {
	if defaultPrompt == "" {
		defaultPrompt = domain.DefaultPromptText
	}
	return &Profile{
		SlackUserID: slackUserID,
		TZ:          tz,
		Prompts:     map[string]string{domain.DefaultPromptTime: defaultPrompt},
		Breaks:      DefaultBreaks(),
	}
}

func DefaultBreaks() map[string]int {
	return map[string]int{domain.DefaultBreakKey: domain.DefaultBreakMinutes}
}

// PromptTimes returns the prompt keys in clock order.
func (p *Profile) PromptTimes() []string {
	keys := make([]string, 0, len(p.Prompts))
	for k := range p.Prompts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BreakNames returns "default" first, then the custom activities alphabetically.
func (p *Profile) BreakNames() []string {
	names := make([]string, 0, len(p.Breaks))
	for k := range p.Breaks {
		if k != domain.DefaultBreakKey {
			names = append(names, k)
		}
	}
	sort.Strings(names)
	if _, ok := p.Breaks[domain.DefaultBreakKey]; ok {
		names = append([]string{domain.DefaultBreakKey}, names...)
	}
	return names
}

// CustomBreakCount excludes the default entry.
func (p *Profile) CustomBreakCount() int {
	n := len(p.Breaks)
	if _, ok := p.Breaks[domain.DefaultBreakKey]; ok {
		n--
	}
	return n
}

// BreakInterval resolves the reminder interval for an activity. Zero disables reminders.
func (p *Profile) BreakInterval(activity string) time.Duration {
	if m, ok := p.Breaks[NormalizeActivity(activity)]; ok {
		return time.Duration(m) * time.Minute
	}
	if m, ok := p.Breaks[domain.DefaultBreakKey]; ok {
		return time.Duration(m) * time.Minute
	}
	return time.Duration(domain.DefaultBreakMinutes) * time.Minute
}

func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Prompts = maps.Clone(p.Prompts)
	cp.Breaks = maps.Clone(p.Breaks)
	if cp.Prompts == nil {
		cp.Prompts = map[string]string{}
	}
	if cp.Breaks == nil {
		cp.Breaks = map[string]int{}
	}
	return &cp
}

// NormalizeActivity lowercases and collapses whitespace in an activity name.
func NormalizeActivity(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
