package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alanwells064/cornbot/internal/domain/contract"
	"github.com/alanwells064/cornbot/internal/domain/entity"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

type sessionKey struct {
	userID  int64
	name    string
	startNs int64
}

type session struct {
	interval time.Duration
	nextDue  time.Time
}

// breakReminder nudges users who have been on one activity for a full interval.
// Each (user, activity session) keeps its own next-due instant.
type breakReminder struct {
	dm        contract.DataManager
	source    contract.ActivitySource
	messenger contract.Messenger
	texts     contract.Texts
	metrics   contract.Metrics
	tick      time.Duration
	now       func() time.Time
	log       zerolog.Logger
	cron      *cron.Cron

	mu       sync.Mutex
	sessions map[sessionKey]session
}

func newBreakReminder(dm contract.DataManager, source contract.ActivitySource, messenger contract.Messenger, texts contract.Texts, metrics contract.Metrics, tick time.Duration, now func() time.Time, log zerolog.Logger) *breakReminder {
	log = log.With().Str("comp", "breaks").Logger()
	cronLog := cron.PrintfLogger(&log)
	return &breakReminder{
		dm:        dm,
		source:    source,
		messenger: messenger,
		texts:     texts,
		metrics:   metrics,
		tick:      tick,
		now:       now,
		log:       log,
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLog), cron.Recover(cronLog))),
		sessions:  map[sessionKey]session{},
	}
}

func (b *breakReminder) Start(ctx context.Context) error {
	spec := "@every " + b.tick.String()
	if _, err := b.cron.AddFunc(spec, func() { b.Tick(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule break reminders: %w", err)
	}
	b.cron.Start()
	b.log.Info().Dur("tick", b.tick).Msg("break reminder started")
	return nil
}

func (b *breakReminder) Stop() {
	<-b.cron.Stop().Done()
}

// Tick checks every ongoing activity once and sends the reminders that are due.
func (b *breakReminder) Tick(ctx context.Context) {
	activities, err := b.source.ListActiveUsersWithActivity(ctx)
	if err != nil {
		b.log.Warn().Err(err).Msg("failed to list activities")
		return
	}

	now := b.now()
	seen := make(map[sessionKey]struct{}, len(activities))
	var due []entity.Activity
	profiles := map[int64]*entity.Profile{}

	b.mu.Lock()
	for _, a := range activities {
		profile, err := b.dm.Profile().GetByID(ctx, a.UserID)
		if err != nil {
			b.log.Warn().Err(err).Int64("user_id", a.UserID).Msg("failed to load profile for break check")
			continue
		}
		if profile == nil {
			continue
		}

		key := sessionKey{userID: a.UserID, name: entity.NormalizeActivity(a.Name), startNs: a.StartedAt.UnixNano()}
		seen[key] = struct{}{}

		interval := profile.BreakInterval(a.Name)
		if interval <= 0 {
			delete(b.sessions, key)
			continue
		}

		s, ok := b.sessions[key]
		if !ok || s.interval != interval {
			s = session{interval: interval, nextDue: nextDue(a.StartedAt, interval, now.Add(-b.tick))}
		}
		if !now.Before(s.nextDue) {
			due = append(due, a)
			profiles[a.UserID] = profile
			s.nextDue = nextDue(a.StartedAt, interval, now)
		}
		b.sessions[key] = s
	}

	for key := range b.sessions {
		if _, ok := seen[key]; !ok {
			delete(b.sessions, key)
		}
	}
	b.mu.Unlock()

	b.remind(ctx, due, profiles)
}

func (b *breakReminder) remind(ctx context.Context, due []entity.Activity, profiles map[int64]*entity.Profile) {
	text := b.texts.BreakReminder()

	var wg sync.WaitGroup
	for _, a := range due {
		wg.Add(1)
		go func(a entity.Activity) {
			defer wg.Done()

			if err := b.messenger.SendDirectMessage(ctx, profiles[a.UserID], text); err != nil {
				b.log.Warn().Err(err).Int64("user_id", a.UserID).Str("activity", a.Name).Msg("break reminder failed")
				return
			}
			b.metrics.BreakReminderSent()
			b.log.Debug().Int64("user_id", a.UserID).Str("activity", a.Name).Msg("break reminder sent")
		}(a)
	}
	wg.Wait()
}

func (b *breakReminder) sessionCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}

// nextDue returns the first start + k*interval, k >= 1, strictly after after.
func nextDue(start time.Time, interval time.Duration, after time.Time) time.Time {
	if interval <= 0 {
		return time.Time{}
	}
	first := start.Add(interval)
	if after.Before(first) {
		return first
	}
	k := int64(after.Sub(start)/interval) + 1
	return start.Add(time.Duration(k) * interval)
}
