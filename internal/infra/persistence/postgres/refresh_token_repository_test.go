package postgres

import (
	"context"
	"testing"
	"time"

	"garage/internal/domain/entity"
	"garage/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")

	token := &entity.RefreshToken{
		UserID:    owner.ID,
		TokenHash: "aaaa1111",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, token))
	assert.Positive(t, token.ID)

	found, err := repo.FindByTokenHash(ctx, "aaaa1111")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, found.UserID)

	_, err = repo.FindByTokenHash(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}

func TestRefreshTokenRepository_FindByUserID_OldestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")

	first := &entity.RefreshToken{UserID: owner.ID, TokenHash: "h1", ExpiresAt: time.Now().Add(time.Hour)}
	second := &entity.RefreshToken{UserID: owner.ID, TokenHash: "h2", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, &entity.RefreshToken{UserID: other.ID, TokenHash: "h3", ExpiresAt: time.Now().Add(time.Hour)}))

	tokens, err := repo.FindByUserID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, first.ID, tokens[0].ID)
	assert.Equal(t, second.ID, tokens[1].ID)
}

func TestRefreshTokenRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")

	token := &entity.RefreshToken{UserID: owner.ID, TokenHash: "h1", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, token))

	require.NoError(t, repo.DeleteByID(ctx, token.ID))
	assert.ErrorIs(t, repo.DeleteByID(ctx, token.ID), repository.ErrRefreshTokenNotFound)

	token2 := &entity.RefreshToken{UserID: owner.ID, TokenHash: "h2", ExpiresAt: time.Now().Add(time.Hour)}
	require.NoError(t, repo.Create(ctx, token2))

	require.NoError(t, repo.DeleteByTokenHash(ctx, "h2"))
	assert.ErrorIs(t, repo.DeleteByTokenHash(ctx, "h2"), repository.ErrRefreshTokenNotFound)
}

func TestRefreshTokenRepository_DeletedWithUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()

	owner := createTestUser(t, db, "owner@example.com")
	require.NoError(t, repo.Create(ctx, &entity.RefreshToken{UserID: owner.ID, TokenHash: "h1", ExpiresAt: time.Now().Add(time.Hour)}))

	require.NoError(t, db.Exec("DELETE FROM users WHERE id = ?", owner.ID).Error)

	_, err := repo.FindByTokenHash(ctx, "h1")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}
