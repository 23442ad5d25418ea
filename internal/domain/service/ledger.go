package service

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/alanwells064/cornbot/internal/domain/contract"
	"github.com/alanwells064/cornbot/internal/domain/entity"
	"github.com/rs/zerolog"
)

// activityLedger records how long users spent on their activities, per local day.
// Writes for one user are serialized with the user lock.
type activityLedger struct {
	dm    contract.DataManager
	locks *lockSet
	now   func() time.Time
	log   zerolog.Logger
}

func newActivityLedger(dm contract.DataManager, locks *lockSet, now func() time.Time, log zerolog.Logger) *activityLedger {
	return &activityLedger{
		dm:    dm,
		locks: locks,
		now:   now,
		log:   log.With().Str("comp", "ledger").Logger(),
	}
}

// Log adds d to today's entry for activity. The day total is capped just under
// 24 hours, and a new activity needs a free slot.
func (l *activityLedger) Log(ctx context.Context, profile *entity.Profile, activity string, d time.Duration) (entity.LogResult, error) {
	if profile == nil {
		return entity.LogResult{}, domain.NewValidationError("profile", "is required")
	}
	name, err := logActivityName(activity)
	if err != nil {
		return entity.LogResult{}, err
	}
	d = d.Truncate(time.Second)
	if d <= 0 {
		return entity.LogResult{}, domain.NewValidationError("log", "time must be more than zero")
	}
	if d >= 24*time.Hour {
		return entity.LogResult{}, domain.NewValidationError("log", "can't log 24 hours or more at once")
	}

	unlock := l.locks.lockUser(profile.ID)
	defer unlock()

	res := entity.LogResult{Activity: name, Day: l.localDay(profile), Added: d}
	err = l.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		activities, err := tx.Log().Activities(ctx, profile.ID)
		if err != nil {
			return err
		}
		res.SlotsUsed = len(activities)
		if !slices.Contains(activities, name) {
			if len(activities) >= domain.MaxLogActivities {
				return domain.NewValidationError("log", "couldn't create activity %q, %d/%d slots used", name, len(activities), domain.MaxLogActivities)
			}
			res.Created = true
			res.SlotsUsed++
		}

		current, err := tx.Log().Get(ctx, profile.ID, res.Day, name)
		if err != nil {
			return err
		}
		res.DayTotal = current + d
		if res.DayTotal > domain.MaxLoggedPerDay {
			res.DayTotal = domain.MaxLoggedPerDay
			res.Clamped = true
		}
		return tx.Log().Set(ctx, profile.ID, res.Day, name, res.DayTotal)
	})
	if err != nil {
		return entity.LogResult{}, fmt.Errorf("failed to log activity: %w", err)
	}

	l.log.Debug().
		Int64("user_id", profile.ID).
		Str("activity", name).
		Str("day", res.Day).
		Dur("added", d).
		Bool("clamped", res.Clamped).
		Msg("activity logged")
	return res, nil
}

// Merge folds first and second into one activity named into, day by day. into
// may be one of the two, but not another existing activity.
func (l *activityLedger) Merge(ctx context.Context, profile *entity.Profile, first, second, into string) (int, error) {
	if profile == nil {
		return 0, domain.NewValidationError("profile", "is required")
	}
	a := entity.NormalizeActivity(first)
	b := entity.NormalizeActivity(second)
	target, err := logActivityName(into)
	if err != nil {
		return 0, err
	}
	if a == b {
		return 0, domain.NewValidationError("merge", "can't merge activity %q with itself", a)
	}

	unlock := l.locks.lockUser(profile.ID)
	defer unlock()

	var slots int
	err = l.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		activities, err := tx.Log().Activities(ctx, profile.ID)
		if err != nil {
			return err
		}
		for _, name := range []string{a, b} {
			if !slices.Contains(activities, name) {
				return &domain.NotFoundError{What: "activity", Key: name}
			}
		}
		if target != a && target != b && slices.Contains(activities, target) {
			return domain.NewValidationError("merge", "activity %q already exists", target)
		}

		totals := map[string]time.Duration{}
		for _, name := range []string{a, b} {
			entries, err := tx.Log().Entries(ctx, profile.ID, name)
			if err != nil {
				return err
			}
			for _, e := range entries {
				totals[e.Day] += e.Duration
			}
			if _, err := tx.Log().DeleteActivity(ctx, profile.ID, name); err != nil {
				return err
			}
		}

		for day, total := range totals {
			total = min(total, domain.MaxLoggedPerDay)
			if err := tx.Log().Set(ctx, profile.ID, day, target, total); err != nil {
				return err
			}
		}

		// two activities become one
		slots = len(activities) - 1
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to merge activities: %w", err)
	}

	l.log.Info().Int64("user_id", profile.ID).Str("first", a).Str("second", b).Str("into", target).Msg("activities merged")
	return slots, nil
}

// DeleteActivity drops every entry of one activity and returns the slots still used.
func (l *activityLedger) DeleteActivity(ctx context.Context, profile *entity.Profile, activity string) (int, error) {
	if profile == nil {
		return 0, domain.NewValidationError("profile", "is required")
	}
	name := entity.NormalizeActivity(activity)

	unlock := l.locks.lockUser(profile.ID)
	defer unlock()

	var slots int
	err := l.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		n, err := tx.Log().DeleteActivity(ctx, profile.ID, name)
		if err != nil {
			return err
		}
		if n == 0 {
			return &domain.NotFoundError{What: "activity", Key: name}
		}
		activities, err := tx.Log().Activities(ctx, profile.ID)
		slots = len(activities)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete activity: %w", err)
	}
	return slots, nil
}

// Summary totals every activity over all days, sorted by name.
func (l *activityLedger) Summary(ctx context.Context, profile *entity.Profile) ([]entity.ActivityTotal, error) {
	if profile == nil {
		return nil, domain.NewValidationError("profile", "is required")
	}
	entries, err := l.dm.Log().Entries(ctx, profile.ID, "")
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &domain.NotFoundError{What: "logs", Key: profile.SlackUserID}
	}

	byName := map[string]time.Duration{}
	for _, e := range entries {
		byName[e.Activity] += e.Duration
	}
	totals := make([]entity.ActivityTotal, 0, len(byName))
	for name, total := range byName {
		totals = append(totals, entity.ActivityTotal{Activity: name, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Activity < totals[j].Activity })
	return totals, nil
}

// History lists one activity's entries, newest day first.
func (l *activityLedger) History(ctx context.Context, profile *entity.Profile, activity string) ([]entity.LogEntry, error) {
	if profile == nil {
		return nil, domain.NewValidationError("profile", "is required")
	}
	name := entity.NormalizeActivity(activity)
	entries, err := l.dm.Log().Entries(ctx, profile.ID, name)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &domain.NotFoundError{What: "activity", Key: name}
	}
	return entries, nil
}

// Reset deletes the whole log of the user.
func (l *activityLedger) Reset(ctx context.Context, profile *entity.Profile) error {
	if profile == nil {
		return domain.NewValidationError("profile", "is required")
	}

	unlock := l.locks.lockUser(profile.ID)
	defer unlock()

	n, err := l.dm.Log().DeleteAll(ctx, profile.ID)
	if err != nil {
		return fmt.Errorf("failed to reset logs: %w", err)
	}
	if n == 0 {
		return &domain.NotFoundError{What: "logs", Key: profile.SlackUserID}
	}
	l.log.Info().Int64("user_id", profile.ID).Int64("entries", n).Msg("logs reset")
	return nil
}

func (l *activityLedger) localDay(profile *entity.Profile) string {
	return l.now().UTC().Add(time.Duration(profile.TZ) * time.Hour).Format(domain.LogDayLayout)
}

// logActivityName normalizes a log activity, which is a single word.
func logActivityName(activity string) (string, error) {
	name := entity.NormalizeActivity(activity)
	switch {
	case name == "":
		return "", domain.NewValidationError("activity", "name is empty")
	case strings.Contains(name, " "):
		return "", domain.NewValidationError("activity", "name must be a single word")
	case utf8.RuneCountInString(name) > domain.MaxActivityNameLen:
		return "", domain.NewValidationError("activity", "names must be %d characters or less", domain.MaxActivityNameLen)
	}
	return name, nil
}
