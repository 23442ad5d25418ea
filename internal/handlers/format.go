package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/alanwells064/cornbot/internal/domain/entity"
)

const logHistoryDays = 7

func formatOffset(tz int) string {
	if tz >= 0 {
		return fmt.Sprintf("+%d", tz)
	}
	return fmt.Sprintf("%d", tz)
}

// localClock renders now as HH:MM at the given UTC offset.
func localClock(now time.Time, tz int) string {
	return now.UTC().Add(time.Duration(tz) * time.Hour).Format("15:04")
}

func formatInterval(d time.Duration) string {
	if d <= 0 {
		return "off"
	}
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

// formatLogged renders d as H:MM:SS.
func formatLogged(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	sec := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
}

func formatLogSummary(totals []entity.ActivityTotal) string {
	var b strings.Builder
	b.WriteString("*Your logs:*\n")
	b.WriteString("```\nACTIVITY                        TOTAL TIME\n")
	for _, t := range totals {
		fmt.Fprintf(&b, "%-31s %s\n", t.Activity, formatLogged(t.Total))
	}
	b.WriteString("```")
	return b.String()
}

// formatLogHistory shows the newest days of one activity and its total over all days.
func formatLogHistory(entries []entity.LogEntry) string {
	var total time.Duration
	for _, e := range entries {
		total += e.Duration
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Logs for* `%s`:\n```\n", entries[0].Activity)
	for i, e := range entries {
		if i == logHistoryDays {
			fmt.Fprintf(&b, "... %d older %s\n", len(entries)-i, plural(len(entries)-i, "day", "days"))
			break
		}
		fmt.Fprintf(&b, "%s  %s\n", e.Day, formatLogged(e.Duration))
	}
	fmt.Fprintf(&b, "TOTAL       %s\n```", formatLogged(total))
	return b.String()
}

func formatPrompts(p *entity.Profile) string {
	times := p.PromptTimes()
	if len(times) == 0 {
		return "No prompts found."
	}

	var b strings.Builder
	b.WriteString("*Your prompts:*\n")
	for i, t := range times {
		fmt.Fprintf(&b, "%d) %s - %s\n", i+1, t, p.Prompts[t])
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatBreaks(p *entity.Profile) string {
	var b strings.Builder
	b.WriteString("*Your break reminders:*\n")
	for _, name := range p.BreakNames() {
		d := time.Duration(p.Breaks[name]) * time.Minute
		if name == domain.DefaultBreakKey {
			fmt.Fprintf(&b, "default - %s\n", formatInterval(d))
			continue
		}
		fmt.Fprintf(&b, "`%s` - %s\n", name, formatInterval(d))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatTimezones(now time.Time) string {
	var b strings.Builder
	b.WriteString("*Timezones:*\n")
	for tz := domain.MinUTCOffset; tz <= domain.MaxUTCOffset; tz++ {
		local := now.UTC().Add(time.Duration(tz) * time.Hour)
		fmt.Fprintf(&b, "*%s* = %s\n", formatOffset(tz), local.Format("2006-01-02 15:04"))
	}
	b.WriteString("\nCheck https://timeanddate.com/time/map/ for more info.")
	return b.String()
}

func formatStatus(state entity.DispatchState, now time.Time) string {
	if state.Hour < 0 {
		return "The scheduler has not started yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Active hour:* %02d:00 UTC (%s)\n", state.Hour, state.Mode)
	fmt.Fprintf(&b, "*Prompt slots:* %d, *revision:* %d\n", len(state.Wakes), state.Revision)
	if state.LastFired.Minute != "" {
		fmt.Fprintf(&b, "*Last sent:* %02d:%s UTC\n", state.Hour, state.LastFired.Minute)
	}

	pending := state.Pending()
	if len(pending) == 0 {
		b.WriteString("Nothing left to send this hour.")
		return b.String()
	}

	b.WriteString("*Up next:*\n")
	for _, w := range pending {
		users := len(state.Slots[w.Minute])
		fmt.Fprintf(&b, "• %02d:%s UTC - %d %s, in %s\n",
			state.Hour, w.Minute, users, plural(users, "user", "users"), w.At.Sub(now).Round(time.Second))
	}
	return strings.TrimRight(b.String(), "\n")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
