package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alanwells064/cornbot/internal/domain/contract"
	"github.com/alanwells064/cornbot/internal/domain/entity"
)

type profileRepo struct {
	db dbConn
}

func newProfileRepo(db dbConn) contract.ProfileRepo {
	return &profileRepo{db: db}
}

const profileColumns = `id, slack_user_id, tz, prompts, breaks, created_at, updated_at`

func (r *profileRepo) Create(ctx context.Context, profile *entity.Profile) error {
	query := `
		INSERT INTO profiles (slack_user_id, tz, prompts, breaks)
		VALUES (?, ?, ?, ?)
	`

	prompts, breaks, err := marshalProfileMaps(profile)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, profile.SlackUserID, profile.TZ, prompts, breaks)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	profile.ID = id
	return nil
}

func (r *profileRepo) GetByID(ctx context.Context, id int64) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *profileRepo) GetBySlackID(ctx context.Context, slackUserID string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE slack_user_id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, slackUserID))
}

func (r *profileRepo) Update(ctx context.Context, profile *entity.Profile) error {
	query := `
		UPDATE profiles
		SET tz = ?, prompts = ?, breaks = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	prompts, breaks, err := marshalProfileMaps(profile)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, profile.TZ, prompts, breaks, profile.ID)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("failed to update profile: no profile with id %d", profile.ID)
	}
	return nil
}

func (r *profileRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

func (r *profileRepo) List(ctx context.Context) ([]*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*entity.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}

	return profiles, nil
}

func (r *profileRepo) scanOne(row *sql.Row) (*entity.Profile, error) {
	profile, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(s scanner) (*entity.Profile, error) {
	profile := &entity.Profile{}
	var promptsJSON, breaksJSON string

	err := s.Scan(
		&profile.ID,
		&profile.SlackUserID,
		&profile.TZ,
		&promptsJSON,
		&breaksJSON,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan profile: %w", err)
	}

	if err := json.Unmarshal([]byte(promptsJSON), &profile.Prompts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prompts: %w", err)
	}
	if err := json.Unmarshal([]byte(breaksJSON), &profile.Breaks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal breaks: %w", err)
	}
	if profile.Prompts == nil {
		profile.Prompts = map[string]string{}
	}
	if profile.Breaks == nil {
		profile.Breaks = map[string]int{}
	}

	return profile, nil
}

func marshalProfileMaps(profile *entity.Profile) (string, string, error) {
	prompts := profile.Prompts
	if prompts == nil {
		prompts = map[string]string{}
	}
	breaks := profile.Breaks
	if breaks == nil {
		breaks = map[string]int{}
	}

	promptsJSON, err := json.Marshal(prompts)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal prompts: %w", err)
	}
	breaksJSON, err := json.Marshal(breaks)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal breaks: %w", err)
	}
	return string(promptsJSON), string(breaksJSON), nil
}
