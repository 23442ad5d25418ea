package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/alanwells064/cornbot/internal/domain/contract"
	"github.com/alanwells064/cornbot/internal/domain/entity"
	"github.com/rs/zerolog"
)

type accountService struct {
	dm      contract.DataManager
	indexer *promptIndexer
	texts   contract.Texts
	log     zerolog.Logger
}

func newAccountService(dm contract.DataManager, indexer *promptIndexer, texts contract.Texts, log zerolog.Logger) *accountService {
	return &accountService{
		dm:      dm,
		indexer: indexer,
		texts:   texts,
		log:     log.With().Str("comp", "account").Logger(),
	}
}

func (s *accountService) GetProfile(ctx context.Context, slackUserID string) (*entity.Profile, error) {
	profile, err := s.dm.Profile().GetBySlackID(ctx, slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, &domain.NotFoundError{What: "profile", Key: slackUserID}
	}
	return profile, nil
}

// SetTimezone registers the user on first use, otherwise moves their prompts to the new offset.
func (s *accountService) SetTimezone(ctx context.Context, slackUserID string, offset int) (*entity.Profile, bool, error) {
	if err := domain.ValidateOffset(offset); err != nil {
		return nil, false, err
	}

	profile, err := s.dm.Profile().GetBySlackID(ctx, slackUserID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile == nil {
		profile, err = s.register(ctx, slackUserID, offset)
		if err == nil {
			return profile, true, nil
		}

		// lost a race with a concurrent registration of the same user
		existing, getErr := s.dm.Profile().GetBySlackID(ctx, slackUserID)
		if getErr != nil || existing == nil {
			return nil, false, err
		}
		profile = existing
	}

	if err := s.indexer.Retimezone(ctx, profile, offset); err != nil {
		return nil, false, err
	}
	return profile, false, nil
}

func (s *accountService) register(ctx context.Context, slackUserID string, offset int) (*entity.Profile, error) {
	profile := entity.NewProfile(slackUserID, offset, s.texts.DefaultPrompt())
	lt, _ := domain.ParseLocalTime(domain.DefaultPromptTime)
	hour := lt.UTCHour(offset)

	unlockHours := s.indexer.locks.lockHours(hour)
	defer unlockHours()

	changed := map[int]*entity.HourBucket{}
	err := s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Profile().Create(ctx, profile); err != nil {
			return err
		}
		return s.indexer.addEntries(ctx, tx, changed, profile.ID, []domain.LocalTime{lt}, offset)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.indexer.publish(changed)
	s.log.Info().Int64("user_id", profile.ID).Str("slack_user_id", slackUserID).Int("tz", offset).Msg("user registered")
	return profile, nil
}

// SetBreak sets the reminder interval for an activity. A zero interval disables reminders.
func (s *accountService) SetBreak(ctx context.Context, profile *entity.Profile, activity string, interval time.Duration) error {
	if profile == nil {
		return domain.NewValidationError("profile", "is required")
	}
	name := entity.NormalizeActivity(activity)
	if name == "" {
		return domain.NewValidationError("break", "activity name is empty")
	}
	if utf8.RuneCountInString(name) > domain.MaxActivityNameLen {
		return domain.NewValidationError("break", "activity name is longer than %d characters", domain.MaxActivityNameLen)
	}
	if interval < 0 {
		return domain.NewValidationError("break", "interval is negative")
	}
	if interval > 0 && interval < time.Minute {
		return domain.NewValidationError("break", "interval must be at least one minute")
	}

	return s.updateBreaks(ctx, profile, func(p *entity.Profile) error {
		if _, exists := p.Breaks[name]; !exists && name != domain.DefaultBreakKey && p.CustomBreakCount() >= domain.MaxCustomBreaks {
			return domain.NewValidationError("break", "at most %d custom breaks are allowed", domain.MaxCustomBreaks)
		}
		p.Breaks[name] = int(interval / time.Minute)
		return nil
	})
}

func (s *accountService) DeleteBreak(ctx context.Context, profile *entity.Profile, activity string) error {
	if profile == nil {
		return domain.NewValidationError("profile", "is required")
	}
	name := entity.NormalizeActivity(activity)
	if name == domain.DefaultBreakKey {
		return domain.NewValidationError("break", "the default break cannot be deleted, set it to 0 to turn reminders off")
	}

	return s.updateBreaks(ctx, profile, func(p *entity.Profile) error {
		if _, ok := p.Breaks[name]; !ok {
			return &domain.NotFoundError{What: "break", Key: name}
		}
		delete(p.Breaks, name)
		return nil
	})
}

func (s *accountService) ResetBreaks(ctx context.Context, profile *entity.Profile) error {
	if profile == nil {
		return domain.NewValidationError("profile", "is required")
	}
	return s.updateBreaks(ctx, profile, func(p *entity.Profile) error {
		p.Breaks = entity.DefaultBreaks()
		return nil
	})
}

func (s *accountService) updateBreaks(ctx context.Context, profile *entity.Profile, mutate func(p *entity.Profile) error) error {
	unlockUser := s.indexer.locks.lockUser(profile.ID)
	defer unlockUser()

	fresh, err := s.indexer.loadProfile(ctx, profile.ID)
	if err != nil {
		return err
	}
	if err := mutate(fresh); err != nil {
		return err
	}
	if err := s.dm.Profile().Update(ctx, fresh); err != nil {
		return fmt.Errorf("failed to update breaks: %w", err)
	}

	*profile = *fresh
	return nil
}

// ResetPrompts replaces every prompt with the default one.
func (s *accountService) ResetPrompts(ctx context.Context, profile *entity.Profile) error {
	if profile == nil {
		return domain.NewValidationError("profile", "is required")
	}

	unlockUser := s.indexer.locks.lockUser(profile.ID)
	defer unlockUser()

	fresh, err := s.indexer.loadProfile(ctx, profile.ID)
	if err != nil {
		return err
	}

	times := s.indexer.promptTimes(fresh)
	def, _ := domain.ParseLocalTime(domain.DefaultPromptTime)
	hours := append(hoursFor(times, fresh.TZ), def.UTCHour(fresh.TZ))

	unlockHours := s.indexer.locks.lockHours(hours...)
	defer unlockHours()

	changed := map[int]*entity.HourBucket{}
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := s.indexer.removeEntries(ctx, tx, changed, fresh.ID, times, fresh.TZ); err != nil {
			return err
		}
		fresh.Prompts = map[string]string{domain.DefaultPromptTime: s.texts.DefaultPrompt()}
		if err := tx.Profile().Update(ctx, fresh); err != nil {
			return err
		}
		return s.indexer.addEntries(ctx, tx, changed, fresh.ID, []domain.LocalTime{def}, fresh.TZ)
	})
	if err != nil {
		return fmt.Errorf("failed to reset prompts: %w", err)
	}

	s.indexer.publish(changed)
	*profile = *fresh
	s.log.Info().Int64("user_id", fresh.ID).Int("removed", len(times)).Msg("prompts reset")
	return nil
}

// DeleteAccount removes the profile and all of its bucket entries.
func (s *accountService) DeleteAccount(ctx context.Context, profile *entity.Profile) error {
	if profile == nil {
		return domain.NewValidationError("profile", "is required")
	}

	unlockUser := s.indexer.locks.lockUser(profile.ID)
	defer unlockUser()

	fresh, err := s.indexer.loadProfile(ctx, profile.ID)
	if err != nil {
		return err
	}

	times := s.indexer.promptTimes(fresh)
	unlockHours := s.indexer.locks.lockHours(hoursFor(times, fresh.TZ)...)
	defer unlockHours()

	changed := map[int]*entity.HourBucket{}
	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := s.indexer.removeEntries(ctx, tx, changed, fresh.ID, times, fresh.TZ); err != nil {
			return err
		}
		if _, err := tx.Log().DeleteAll(ctx, fresh.ID); err != nil {
			return err
		}
		return tx.Profile().Delete(ctx, fresh.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.indexer.publish(changed)
	s.log.Info().Int64("user_id", fresh.ID).Msg("account deleted")
	return nil
}
