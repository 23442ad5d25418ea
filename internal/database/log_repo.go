package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alanwells064/cornbot/internal/domain/contract"
	"github.com/alanwells064/cornbot/internal/domain/entity"
)

type logRepo struct {
	db dbConn
}

func newLogRepo(db dbConn) contract.LogRepo {
	return &logRepo{db: db}
}

// Get returns the time logged for the activity on day, zero when nothing was.
func (r *logRepo) Get(ctx context.Context, userID int64, day, activity string) (time.Duration, error) {
	query := `SELECT seconds FROM activity_logs WHERE user_id = ? AND day = ? AND activity = ?`

	var seconds int64
	err := r.db.QueryRowContext(ctx, query, userID, day, activity).Scan(&seconds)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get log entry: %w", err)
	}
	return time.Duration(seconds) * time.Second, nil
}

func (r *logRepo) Set(ctx context.Context, userID int64, day, activity string, d time.Duration) error {
	query := `
		INSERT INTO activity_logs (user_id, day, activity, seconds, updated_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, day, activity) DO UPDATE SET
			seconds = excluded.seconds,
			updated_at = excluded.updated_at
	`

	if _, err := r.db.ExecContext(ctx, query, userID, day, activity, int64(d/time.Second)); err != nil {
		return fmt.Errorf("failed to set log entry: %w", err)
	}
	return nil
}

// Activities lists the distinct activity names the user has logged, sorted.
func (r *logRepo) Activities(ctx context.Context, userID int64) ([]string, error) {
	query := `SELECT DISTINCT activity FROM activity_logs WHERE user_id = ? ORDER BY activity`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, name)
	}
	return activities, rows.Err()
}

// Entries lists the user's log entries, all of them when activity is empty.
func (r *logRepo) Entries(ctx context.Context, userID int64, activity string) ([]entity.LogEntry, error) {
	query := `SELECT day, activity, seconds FROM activity_logs WHERE user_id = ?`
	args := []any{userID}
	if activity != "" {
		query += ` AND activity = ?`
		args = append(args, activity)
	}
	query += ` ORDER BY day DESC, activity`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list log entries: %w", err)
	}
	defer rows.Close()

	var entries []entity.LogEntry
	for rows.Next() {
		var e entity.LogEntry
		var seconds int64
		if err := rows.Scan(&e.Day, &e.Activity, &seconds); err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}
		e.Duration = time.Duration(seconds) * time.Second
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *logRepo) DeleteActivity(ctx context.Context, userID int64, activity string) (int64, error) {
	query := `DELETE FROM activity_logs WHERE user_id = ? AND activity = ?`

	result, err := r.db.ExecContext(ctx, query, userID, activity)
	if err != nil {
		return 0, fmt.Errorf("failed to delete activity: %w", err)
	}
	return result.RowsAffected()
}

func (r *logRepo) DeleteAll(ctx context.Context, userID int64) (int64, error) {
	query := `DELETE FROM activity_logs WHERE user_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete logs: %w", err)
	}
	return result.RowsAffected()
}
