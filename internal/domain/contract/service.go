package contract

//go:generate go run go.uber.org/mock/mockgen -source=service.go -destination=../../../mocks/mock_service.go -package=mocks

import (
	"context"
	"time"

	"github.com/alanwells064/cornbot/internal/domain/entity"
)

// PromptService keeps profiles and hour buckets in step.
type PromptService interface {
	Schedule(ctx context.Context, profile *entity.Profile, localTime, content string) (overwritten bool, err error)
	Unschedule(ctx context.Context, profile *entity.Profile, localTime string) error
	Retimezone(ctx context.Context, profile *entity.Profile, newOffset int) error
}

type AccountService interface {
	GetProfile(ctx context.Context, slackUserID string) (*entity.Profile, error)
	SetTimezone(ctx context.Context, slackUserID string, offset int) (profile *entity.Profile, created bool, err error)
	SetBreak(ctx context.Context, profile *entity.Profile, activity string, interval time.Duration) error
	DeleteBreak(ctx context.Context, profile *entity.Profile, activity string) error
	ResetPrompts(ctx context.Context, profile *entity.Profile) error
	ResetBreaks(ctx context.Context, profile *entity.Profile) error
	DeleteAccount(ctx context.Context, profile *entity.Profile) error
}

// LedgerService keeps the per-user activity log.
type LedgerService interface {
	Log(ctx context.Context, profile *entity.Profile, activity string, d time.Duration) (entity.LogResult, error)
	Merge(ctx context.Context, profile *entity.Profile, first, second, into string) (slotsUsed int, err error)
	DeleteActivity(ctx context.Context, profile *entity.Profile, activity string) (slotsUsed int, err error)
	Summary(ctx context.Context, profile *entity.Profile) ([]entity.ActivityTotal, error)
	History(ctx context.Context, profile *entity.Profile, activity string) ([]entity.LogEntry, error)
	Reset(ctx context.Context, profile *entity.Profile) error
}

// StatusService exposes the dispatcher's state for display.
type StatusService interface {
	CurrentDispatchState() entity.DispatchState
}

// BucketListener is told about every committed bucket change.
type BucketListener interface {
	BucketChanged(bucket *entity.HourBucket)
}

// Texts supplies the operator-editable message bodies.
type Texts interface {
	DefaultPrompt() string
	BreakReminder() string
}

// Metrics records scheduling and delivery counters.
type Metrics interface {
	PromptSent()
	PromptDeliveryFailed()
	BreakReminderSent()
	WakeListRebuilt(reason string, hour, size int)
	ConsistencyRepaired(n int)
}
