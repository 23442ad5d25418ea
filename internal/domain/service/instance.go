package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alanwells064/cornbot/internal/domain/contract"
	"github.com/rs/zerolog"
)

// Deps are the collaborators the services run against.
type Deps struct {
	DataManager   contract.DataManager
	Messenger     contract.Messenger
	Activities    contract.ActivitySource
	Texts         contract.Texts
	Metrics       contract.Metrics
	Logger        zerolog.Logger
	HomeUTCOffset int
	BreakTick     time.Duration
	Now           func() time.Time
}

type Instance struct {
	Prompts  *promptIndexer
	Accounts *accountService
	Dispatch *dispatcher
	Roller   *hourlyRoller
	Breaks   *breakReminder
	Ledger   *activityLedger
}

func NewInstance(d Deps) *Instance {
	now := d.Now
	if now == nil {
		now = time.Now
	}

	locks := newLockSet()
	dispatch := newDispatcher(d.DataManager, d.Messenger, d.Metrics, d.HomeUTCOffset, now, d.Logger)
	prompts := newPromptIndexer(d.DataManager, locks, dispatch, d.Metrics, d.Logger)

	return &Instance{
		Prompts:  prompts,
		Accounts: newAccountService(d.DataManager, prompts, d.Texts, d.Logger),
		Dispatch: dispatch,
		Roller:   newHourlyRoller(d.DataManager, dispatch, now, d.Logger),
		Breaks:   newBreakReminder(d.DataManager, d.Activities, d.Messenger, d.Texts, d.Metrics, d.BreakTick, now, d.Logger),
		Ledger:   newActivityLedger(d.DataManager, locks, now, d.Logger),
	}
}

// Start reconciles the buckets, then starts the dispatcher, the hourly roller and
// the break reminder, in that order.
func (s *Instance) Start(ctx context.Context) error {
	if _, err := s.Prompts.Reconcile(ctx); err != nil {
		return err
	}

	s.Dispatch.Start(ctx)

	if err := s.Roller.Start(ctx); err != nil {
		s.Dispatch.Stop()
		return fmt.Errorf("failed to start roller: %w", err)
	}

	if err := s.Breaks.Start(ctx); err != nil {
		s.Roller.Stop()
		s.Dispatch.Stop()
		return err
	}
	return nil
}

func (s *Instance) Stop() {
	s.Breaks.Stop()
	s.Roller.Stop()
	s.Dispatch.Stop()
}
