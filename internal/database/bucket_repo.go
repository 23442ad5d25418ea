package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/alanwells064/cornbot/internal/domain/contract"
	"github.com/alanwells064/cornbot/internal/domain/entity"
)

type bucketRepo struct {
	db dbConn
}

func newBucketRepo(db dbConn) contract.BucketRepo {
	return &bucketRepo{db: db}
}

// Load returns the bucket for a UTC hour. A missing row reads as an empty bucket.
func (r *bucketRepo) Load(ctx context.Context, hour int) (*entity.HourBucket, error) {
	if err := validateHour(hour); err != nil {
		return nil, err
	}

	query := `SELECT slots, revision FROM hour_buckets WHERE hour = ?`

	var slotsJSON string
	bucket := entity.NewHourBucket(hour)
	err := r.db.QueryRowContext(ctx, query, hour).Scan(&slotsJSON, &bucket.Revision)
	if errors.Is(err, sql.ErrNoRows) {
		return bucket, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load bucket %d: %w", hour, err)
	}

	if err := json.Unmarshal([]byte(slotsJSON), &bucket.Slots); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bucket %d: %w", hour, err)
	}
	if bucket.Slots == nil {
		bucket.Slots = map[string][]int64{}
	}
	for minute, users := range bucket.Slots {
		if len(users) == 0 {
			delete(bucket.Slots, minute)
		}
	}

	return bucket, nil
}

// Save writes the bucket and bumps its revision.
func (r *bucketRepo) Save(ctx context.Context, bucket *entity.HourBucket) error {
	if err := validateHour(bucket.Hour); err != nil {
		return err
	}

	slots := bucket.Slots
	if slots == nil {
		slots = map[string][]int64{}
	}
	slotsJSON, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("failed to marshal bucket %d: %w", bucket.Hour, err)
	}

	query := `
		INSERT INTO hour_buckets (hour, slots, revision, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(hour) DO UPDATE SET
			slots = excluded.slots,
			revision = excluded.revision,
			updated_at = excluded.updated_at
	`

	revision := bucket.Revision + 1
	if _, err := r.db.ExecContext(ctx, query, bucket.Hour, string(slotsJSON), revision); err != nil {
		return fmt.Errorf("failed to save bucket %d: %w", bucket.Hour, err)
	}

	bucket.Revision = revision
	return nil
}

func (r *bucketRepo) AddUser(ctx context.Context, hour int, minute string, userID int64) (*entity.HourBucket, bool, error) {
	if _, err := domain.ParseMinuteKey(minute); err != nil {
		return nil, false, err
	}

	bucket, err := r.Load(ctx, hour)
	if err != nil {
		return nil, false, err
	}
	if !bucket.Add(minute, userID) {
		return bucket, false, nil
	}
	if err := r.Save(ctx, bucket); err != nil {
		return nil, false, err
	}
	return bucket, true, nil
}

func (r *bucketRepo) RemoveUser(ctx context.Context, hour int, minute string, userID int64) (*entity.HourBucket, bool, error) {
	bucket, err := r.Load(ctx, hour)
	if err != nil {
		return nil, false, err
	}
	if !bucket.Remove(minute, userID) {
		return bucket, false, nil
	}
	if err := r.Save(ctx, bucket); err != nil {
		return nil, false, err
	}
	return bucket, true, nil
}

func validateHour(hour int) error {
	if hour < 0 || hour >= domain.HoursPerDay {
		return domain.NewValidationError("hour", "%d is outside 0..23", hour)
	}
	return nil
}
