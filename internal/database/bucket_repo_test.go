package database

import (
	"context"
	"testing"

	"github.com/alanwells064/cornbot/internal/domain"
	"github.com/alanwells064/cornbot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketRepo_LoadSeededHours(t *testing.T) {
	db := SetupTestDB(t)
	repo := newBucketRepo(db.conn)
	ctx := context.Background()

	for hour := 0; hour < domain.HoursPerDay; hour++ {
		bucket, err := repo.Load(ctx, hour)
		require.NoError(t, err)
		assert.Equal(t, hour, bucket.Hour)
		assert.True(t, bucket.Empty())
	}

	_, err := repo.Load(ctx, 24)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = repo.Load(ctx, -1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBucketRepo_SaveBumpsRevision(t *testing.T) {
	db := SetupTestDB(t)
	repo := newBucketRepo(db.conn)
	ctx := context.Background()

	bucket := entity.NewHourBucket(7)
	bucket.Add("15", 1)
	bucket.Add("15", 2)
	require.NoError(t, repo.Save(ctx, bucket))
	assert.Equal(t, int64(1), bucket.Revision)

	loaded, err := repo.Load(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, loaded.Users("15"))
	assert.Equal(t, int64(1), loaded.Revision)

	require.NoError(t, repo.Save(ctx, loaded))
	assert.Equal(t, int64(2), loaded.Revision)
}

func TestBucketRepo_AddRemoveUser(t *testing.T) {
	db := SetupTestDB(t)
	repo := newBucketRepo(db.conn)
	ctx := context.Background()

	bucket, added, err := repo.AddUser(ctx, 3, "00", 10)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []int64{10}, bucket.Users("00"))

	bucket, added, err = repo.AddUser(ctx, 3, "00", 10)
	require.NoError(t, err)
	assert.False(t, added, "user already present")
	assert.Equal(t, []int64{10}, bucket.Users("00"))
	revision := bucket.Revision

	bucket, removed, err := repo.RemoveUser(ctx, 3, "00", 10)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.True(t, bucket.Empty(), "empty slot must be pruned")
	assert.Greater(t, bucket.Revision, revision)

	_, removed, err = repo.RemoveUser(ctx, 3, "00", 10)
	require.NoError(t, err)
	assert.False(t, removed)

	_, _, err = repo.AddUser(ctx, 3, "7", 10)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
