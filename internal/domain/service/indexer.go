package service

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/alanwells064/cornbot/internal/domain/contract"
	"github.com/alanwells064/cornbot/internal/domain/entity"
	"github.com/rs/zerolog"
)

// promptIndexer keeps profile prompts and the hour buckets in step. Every
// operation writes both inside one transaction while holding the user lock
// and the locks of every hour it touches, then publishes the changed buckets.
type promptIndexer struct {
	dm       contract.DataManager
	locks    *lockSet
	listener contract.BucketListener
	metrics  contract.Metrics
	log      zerolog.Logger
}

func newPromptIndexer(dm contract.DataManager, locks *lockSet, listener contract.BucketListener, metrics contract.Metrics, log zerolog.Logger) *promptIndexer {
	return &promptIndexer{
		dm:       dm,
		locks:    locks,
		listener: listener,
		metrics:  metrics,
		log:      log.With().Str("comp", "indexer").Logger(),
	}
}

// Schedule sets the prompt at localTime. It reports whether an existing prompt
// was overwritten, in which case bucket membership is left alone.
func (i *promptIndexer) Schedule(ctx context.Context, profile *entity.Profile, localTime, content string) (bool, error) {
	if profile == nil {
		return false, domain.NewValidationError("profile", "is required")
	}
	lt, err := domain.ParseLocalTime(localTime)
	if err != nil {
		return false, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return false, domain.NewValidationError("prompt", "message is empty")
	}
	if utf8.RuneCountInString(content) > domain.MaxPromptTextLen {
		return false, domain.NewValidationError("prompt", "message is longer than %d characters", domain.MaxPromptTextLen)
	}

	unlockUser := i.locks.lockUser(profile.ID)
	defer unlockUser()

	fresh, err := i.loadProfile(ctx, profile.ID)
	if err != nil {
		return false, err
	}

	key := lt.String()
	_, overwritten := fresh.Prompts[key]
	hour := lt.UTCHour(fresh.TZ)

	unlockHours := i.locks.lockHours(hour)
	defer unlockHours()

	changed := map[int]*entity.HourBucket{}
	err = i.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		fresh.Prompts[key] = content
		if err := tx.Profile().Update(ctx, fresh); err != nil {
			return err
		}

		bucket, added, err := tx.Bucket().AddUser(ctx, hour, lt.MinuteKey(), fresh.ID)
		if err != nil {
			return err
		}
		if added {
			changed[hour] = bucket
		}
		if added == overwritten {
			i.reportDrift(fresh.ID, hour, lt.MinuteKey(), overwritten)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to schedule prompt: %w", err)
	}

	i.publish(changed)
	*profile = *fresh

	i.log.Info().
		Int64("user_id", fresh.ID).
		Str("local_time", key).
		Int("utc_hour", hour).
		Bool("overwritten", overwritten).
		Msg("prompt scheduled")

	return overwritten, nil
}

// Unschedule removes the prompt at localTime.
func (i *promptIndexer) Unschedule(ctx context.Context, profile *entity.Profile, localTime string) error {
	if profile == nil {
		return domain.NewValidationError("profile", "is required")
	}
	lt, err := domain.ParseLocalTime(localTime)
	if err != nil {
		return err
	}

	unlockUser := i.locks.lockUser(profile.ID)
	defer unlockUser()

	fresh, err := i.loadProfile(ctx, profile.ID)
	if err != nil {
		return err
	}

	key := lt.String()
	if _, ok := fresh.Prompts[key]; !ok {
		return &domain.NotFoundError{What: "prompt", Key: key}
	}
	hour := lt.UTCHour(fresh.TZ)

	unlockHours := i.locks.lockHours(hour)
	defer unlockHours()

	changed := map[int]*entity.HourBucket{}
	err = i.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		delete(fresh.Prompts, key)
		if err := tx.Profile().Update(ctx, fresh); err != nil {
			return err
		}
		return i.removeEntries(ctx, tx, changed, fresh.ID, []domain.LocalTime{lt}, fresh.TZ)
	})
	if err != nil {
		return fmt.Errorf("failed to unschedule prompt: %w", err)
	}

	i.publish(changed)
	*profile = *fresh

	i.log.Info().Int64("user_id", fresh.ID).Str("local_time", key).Int("utc_hour", hour).Msg("prompt unscheduled")
	return nil
}

// Retimezone moves every prompt of the profile from its current offset to newOffset.
// All removals and insertions commit together.
func (i *promptIndexer) Retimezone(ctx context.Context, profile *entity.Profile, newOffset int) error {
	if profile == nil {
		return domain.NewValidationError("profile", "is required")
	}
	if err := domain.ValidateOffset(newOffset); err != nil {
		return err
	}

	unlockUser := i.locks.lockUser(profile.ID)
	defer unlockUser()

	fresh, err := i.loadProfile(ctx, profile.ID)
	if err != nil {
		return err
	}
	if fresh.TZ == newOffset {
		*profile = *fresh
		return nil
	}

	times := i.promptTimes(fresh)
	oldOffset := fresh.TZ
	hours := append(hoursFor(times, oldOffset), hoursFor(times, newOffset)...)

	unlockHours := i.locks.lockHours(hours...)
	defer unlockHours()

	changed := map[int]*entity.HourBucket{}
	err = i.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := i.removeEntries(ctx, tx, changed, fresh.ID, times, oldOffset); err != nil {
			return err
		}
		fresh.TZ = newOffset
		if err := tx.Profile().Update(ctx, fresh); err != nil {
			return err
		}
		return i.addEntries(ctx, tx, changed, fresh.ID, times, newOffset)
	})
	if err != nil {
		return fmt.Errorf("failed to change timezone: %w", err)
	}

	i.publish(changed)
	*profile = *fresh

	i.log.Info().
		Int64("user_id", fresh.ID).
		Int("old_tz", oldOffset).
		Int("new_tz", newOffset).
		Int("prompts", len(times)).
		Msg("timezone changed")
	return nil
}

func (i *promptIndexer) loadProfile(ctx context.Context, id int64) (*entity.Profile, error) {
	profile, err := i.dm.Profile().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, &domain.NotFoundError{What: "profile", Key: strconv.FormatInt(id, 10)}
	}
	return profile, nil
}

// promptTimes parses the profile's prompt keys. Keys that do not parse were never
// indexed and are skipped.
func (i *promptIndexer) promptTimes(profile *entity.Profile) []domain.LocalTime {
	times := make([]domain.LocalTime, 0, len(profile.Prompts))
	for _, key := range profile.PromptTimes() {
		lt, err := domain.ParseLocalTime(key)
		if err != nil {
			i.log.Warn().Err(err).Int64("user_id", profile.ID).Str("local_time", key).Msg("skipping malformed prompt key")
			continue
		}
		times = append(times, lt)
	}
	return times
}

func (i *promptIndexer) addEntries(ctx context.Context, tx contract.DataManager, changed map[int]*entity.HourBucket, userID int64, times []domain.LocalTime, offset int) error {
	for _, lt := range times {
		hour := lt.UTCHour(offset)
		bucket, added, err := tx.Bucket().AddUser(ctx, hour, lt.MinuteKey(), userID)
		if err != nil {
			return err
		}
		if !added {
			i.reportDrift(userID, hour, lt.MinuteKey(), false)
			continue
		}
		changed[hour] = bucket
	}
	return nil
}

func (i *promptIndexer) removeEntries(ctx context.Context, tx contract.DataManager, changed map[int]*entity.HourBucket, userID int64, times []domain.LocalTime, offset int) error {
	for _, lt := range times {
		hour := lt.UTCHour(offset)
		bucket, removed, err := tx.Bucket().RemoveUser(ctx, hour, lt.MinuteKey(), userID)
		if err != nil {
			return err
		}
		if !removed {
			i.reportDrift(userID, hour, lt.MinuteKey(), true)
			continue
		}
		changed[hour] = bucket
	}
	return nil
}

// reportDrift logs a bucket entry that did not match its profile. missing is true
// when the entry should have been there.
func (i *promptIndexer) reportDrift(userID int64, hour int, minute string, missing bool) {
	detail := "bucket entry already present"
	if missing {
		detail = "bucket entry missing"
	}
	err := &domain.ConsistencyError{UserID: userID, Hour: hour, Minute: minute, Detail: detail}
	i.log.Warn().Err(err).Int64("user_id", userID).Msg("repaired bucket drift")
	i.metrics.ConsistencyRepaired(1)
}

func (i *promptIndexer) publish(changed map[int]*entity.HourBucket) {
	if i.listener == nil {
		return
	}
	hours := make([]int, 0, len(changed))
	for h := range changed {
		hours = append(hours, h)
	}
	slices.Sort(hours)
	for _, h := range hours {
		i.listener.BucketChanged(changed[h])
	}
}

func hoursFor(times []domain.LocalTime, offset int) []int {
	hours := make([]int, 0, len(times))
	for _, lt := range times {
		hours = append(hours, lt.UTCHour(offset))
	}
	return hours
}
