package contract

//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=../../../mocks/mock_repo.go -package=mocks

import (
	"context"
	"time"

	"github.com/alanwells064/cornbot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Profile() ProfileRepo
	Bucket() BucketRepo
	Log() LogRepo
}

// ProfileRepo defines the contract for profile repository.
// Lookups return nil, nil when the profile does not exist.
type ProfileRepo interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id int64) (*entity.Profile, error)
	GetBySlackID(ctx context.Context, slackUserID string) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*entity.Profile, error)
}

// BucketRepo defines the contract for the per-hour bucket store.
// AddUser and RemoveUser return the bucket as saved and whether it changed.
type BucketRepo interface {
	Load(ctx context.Context, hour int) (*entity.HourBucket, error)
	Save(ctx context.Context, bucket *entity.HourBucket) error
	AddUser(ctx context.Context, hour int, minute string, userID int64) (*entity.HourBucket, bool, error)
	RemoveUser(ctx context.Context, hour int, minute string, userID int64) (*entity.HourBucket, bool, error)
}

// LogRepo stores the activity log, one row per user, local day and activity.
// Entries come back newest day first.
type LogRepo interface {
	Get(ctx context.Context, userID int64, day, activity string) (time.Duration, error)
	Set(ctx context.Context, userID int64, day, activity string, d time.Duration) error
	Activities(ctx context.Context, userID int64) ([]string, error)
	Entries(ctx context.Context, userID int64, activity string) ([]entity.LogEntry, error)
	DeleteActivity(ctx context.Context, userID int64, activity string) (int64, error)
	DeleteAll(ctx context.Context, userID int64) (int64, error)
}
