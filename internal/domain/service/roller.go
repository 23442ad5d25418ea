package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alanwells064/cornbot/internal/domain/contract"
	"github.com/alanwells064/cornbot/internal/domain/entity"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// hourlySpec fires at second 0 of minute 0 of every hour.
const hourlySpec = "0 0 * * * *"

type rollTarget interface {
	RollTo(ctx context.Context, hourStart time.Time, bucket *entity.HourBucket, catchUpFrom time.Time) error
}

// hourlyRoller loads each new UTC hour's bucket and hands it to the dispatcher.
type hourlyRoller struct {
	dm     contract.DataManager
	target rollTarget
	cron   *cron.Cron
	now    func() time.Time
	log    zerolog.Logger
}

func newHourlyRoller(dm contract.DataManager, target rollTarget, now func() time.Time, log zerolog.Logger) *hourlyRoller {
	log = log.With().Str("comp", "roller").Logger()
	return &hourlyRoller{
		dm:     dm,
		target: target,
		now:    now,
		log:    log,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(cron.PrintfLogger(&log))),
		),
	}
}

// Start rolls to the current hour without catch-up, then schedules a roll at every boundary.
func (r *hourlyRoller) Start(ctx context.Context) error {
	if err := r.Roll(ctx, r.now(), false); err != nil {
		return err
	}

	var id cron.EntryID
	id, err := r.cron.AddFunc(hourlySpec, func() {
		if err := r.Roll(ctx, r.scheduledAt(id), true); err != nil {
			r.log.Error().Err(err).Msg("hourly roll failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule hourly roll: %w", err)
	}

	r.cron.Start()
	r.log.Info().Str("spec", hourlySpec).Msg("hourly roller started")
	return nil
}

func (r *hourlyRoller) Stop() {
	<-r.cron.Stop().Done()
}

// scheduledAt returns the boundary cron planned the running entry for. Cron sets
// Prev before the job can observe it; now is only a fallback.
func (r *hourlyRoller) scheduledAt(id cron.EntryID) time.Time {
	if prev := r.cron.Entry(id).Prev; !prev.IsZero() {
		return prev
	}
	return r.now()
}

// Roll installs the bucket of the hour containing at. A boundary roll starts
// dispatch from the top of the hour; a startup roll only from at.
func (r *hourlyRoller) Roll(ctx context.Context, at time.Time, boundary bool) error {
	at = at.UTC()
	hourStart := at.Truncate(time.Hour)
	catchUpFrom := at
	if boundary {
		catchUpFrom = hourStart
	}

	bucket, err := r.dm.Bucket().Load(ctx, hourStart.Hour())
	if err != nil {
		return fmt.Errorf("failed to load bucket for hour %d: %w", hourStart.Hour(), err)
	}

	if err := r.target.RollTo(ctx, hourStart, bucket, catchUpFrom); err != nil {
		return fmt.Errorf("failed to roll to hour %d: %w", hourStart.Hour(), err)
	}
	return nil
}
