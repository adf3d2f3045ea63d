package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/notebuddy/notebuddy-backend/internal/domain"
	"github.com/notebuddy/notebuddy-backend/internal/repository/postgres"
	"github.com/notebuddy/notebuddy-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedRefreshToken(t *testing.T, db *gorm.DB, hash string, expiresAt time.Time) *domain.RefreshToken {
	t.Helper()

	user, _ := testutil.NewUserBuilder().Build(t, db)
	token := &domain.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.Create(token).Error)
	return token
}

func TestRefreshTokenRepository_GetLiveByHash(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewRefreshTokenRepository(testDB.DB)
	ctx := context.Background()

	live := seedRefreshToken(t, testDB.DB, "live-hash", time.Now().UTC().Add(time.Hour))
	seedRefreshToken(t, testDB.DB, "expired-hash", time.Now().UTC().Add(-time.Hour))

	found, err := repo.GetLiveByHash(ctx, "live-hash")
	require.NoError(t, err)
	assert.Equal(t, live.ID, found.ID)
	assert.Equal(t, live.UserID, found.UserID)

	_, err = repo.GetLiveByHash(ctx, "expired-hash")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "expired tokens are invisible")

	_, err = repo.GetLiveByHash(ctx, "never-stored")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRefreshTokenRepository_Rotate(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewRefreshTokenRepository(testDB.DB)
	ctx := context.Background()

	token := seedRefreshToken(t, testDB.DB, "old-hash", time.Now().UTC().Add(time.Hour))
	newExpiry := time.Now().UTC().Add(48 * time.Hour)

	require.NoError(t, repo.Rotate(ctx, token.ID, "new-hash", newExpiry))

	_, err := repo.GetLiveByHash(ctx, "old-hash")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound, "the old hash no longer resolves")

	rotated, err := repo.GetLiveByHash(ctx, "new-hash")
	require.NoError(t, err)
	assert.Equal(t, token.ID, rotated.ID, "rotation keeps the same row")
	assert.WithinDuration(t, newExpiry, rotated.ExpiresAt, time.Second)
}

func TestRefreshTokenRepository_RotateMissingRow(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewRefreshTokenRepository(testDB.DB)

	err := repo.Rotate(context.Background(), uuid.New(), "hash", time.Now().UTC().Add(time.Hour))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRefreshTokenRepository_DeleteByUserID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewRefreshTokenRepository(testDB.DB)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	for i, owner := range []*domain.User{user, user, other} {
		token := &domain.RefreshToken{
			ID:        uuid.New(),
			UserID:    owner.ID,
			TokenHash: fmt.Sprintf("hash-%d", i),
			ExpiresAt: time.Now().UTC().Add(time.Hour),
			CreatedAt: time.Now().UTC(),
		}
		require.NoError(t, testDB.DB.Create(token).Error)
	}

	require.NoError(t, repo.DeleteByUserID(ctx, user.ID))

	var remaining int64
	require.NoError(t, testDB.DB.Model(&domain.RefreshToken{}).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining, "only the other user's session survives")
}
