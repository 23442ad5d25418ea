package service

import (
	"context"
	"fmt"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/alanwells064/cornbot/internal/domain/contract"
	"github.com/alanwells064/cornbot/internal/domain/entity"
)

// Reconcile rebuilds all hour buckets from the profiles and returns how many
// entries had to be added or dropped.
func (i *promptIndexer) Reconcile(ctx context.Context) (int, error) {
	unlock := i.locks.lockAllHours()
	defer unlock()

	repaired := 0
	changed := map[int]*entity.HourBucket{}
	err := i.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		profiles, err := tx.Profile().List(ctx)
		if err != nil {
			return err
		}

		expected := make([]*entity.HourBucket, domain.HoursPerDay)
		for h := range expected {
			expected[h] = entity.NewHourBucket(h)
		}
		for _, p := range profiles {
			for _, lt := range i.promptTimes(p) {
				expected[lt.UTCHour(p.TZ)].Add(lt.MinuteKey(), p.ID)
			}
		}

		for h, want := range expected {
			current, err := tx.Bucket().Load(ctx, h)
			if err != nil {
				return err
			}
			if current.Equal(want) {
				continue
			}

			repaired += i.logDiff(current, want)
			want.Revision = current.Revision
			if err := tx.Bucket().Save(ctx, want); err != nil {
				return err
			}
			changed[h] = want
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to reconcile buckets: %w", err)
	}

	i.publish(changed)
	if repaired > 0 {
		i.metrics.ConsistencyRepaired(repaired)
		i.log.Warn().Int("repaired", repaired).Int("hours", len(changed)).Msg("buckets rebuilt from profiles")
	} else {
		i.log.Info().Msg("buckets match profiles")
	}
	return repaired, nil
}

func (i *promptIndexer) logDiff(current, want *entity.HourBucket) int {
	n := 0
	for minute, users := range want.Slots {
		for _, id := range users {
			if !current.Contains(minute, id) {
				n++
				i.log.Warn().Err(&domain.ConsistencyError{UserID: id, Hour: want.Hour, Minute: minute, Detail: "bucket entry missing"}).Msg("adding bucket entry")
			}
		}
	}
	for minute, users := range current.Slots {
		for _, id := range users {
			if !want.Contains(minute, id) {
				n++
				i.log.Warn().Err(&domain.ConsistencyError{UserID: id, Hour: current.Hour, Minute: minute, Detail: "no matching prompt"}).Msg("dropping bucket entry")
			}
		}
	}
	return n
}
