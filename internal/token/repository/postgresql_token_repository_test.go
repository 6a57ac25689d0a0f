package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tokenDomain "github.com/ocial123/qr-event-app/internal/token/domain"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, mock
}

func TestPostgreSQLTokenRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Now().UTC()

	t.Run("Success_AssignsGeneratedID", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLTokenRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tokens")).
			WithArgs("3f0c6a2e-0b43-4a77-a6f9-8818097f5c21", "gate-A", createdAt).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

		token := &tokenDomain.Token{
			Token:     "3f0c6a2e-0b43-4a77-a6f9-8818097f5c21",
			Meta:      "gate-A",
			CreatedAt: createdAt,
		}

		err := repo.Create(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), token.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error_DuplicateToken", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLTokenRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tokens")).
			WillReturnError(errors.New(
				`pq: duplicate key value violates unique constraint "tokens_token_key"`,
			))

		token := &tokenDomain.Token{
			Token:     "3f0c6a2e-0b43-4a77-a6f9-8818097f5c21",
			CreatedAt: createdAt,
		}

		err := repo.Create(ctx, token)
		assert.ErrorIs(t, err, tokenDomain.ErrDuplicateToken)
	})

	t.Run("Error_DatabaseFailurePropagates", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLTokenRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO tokens")).
			WillReturnError(errors.New("connection refused"))

		err := repo.Create(ctx, &tokenDomain.Token{Token: "x", CreatedAt: createdAt})
		require.Error(t, err)
		assert.NotErrorIs(t, err, tokenDomain.ErrDuplicateToken)
		assert.Contains(t, err.Error(), "failed to create token")
	})
}

func TestPostgreSQLTokenRepository_GetByValue(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_UnredeemedToken", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLTokenRepository(db)

		createdAt := time.Now().UTC()
		rows := sqlmock.NewRows([]string{"id", "token", "meta", "created_at", "used_at", "used_by"}).
			AddRow(int64(7), "some-token", "gate-A", createdAt, nil, nil)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, token, meta, created_at, used_at, used_by")).
			WithArgs("some-token").
			WillReturnRows(rows)

		token, err := repo.GetByValue(ctx, "some-token")
		require.NoError(t, err)
		assert.Equal(t, int64(7), token.ID)
		assert.Equal(t, "gate-A", token.Meta)
		assert.Nil(t, token.UsedAt)
		assert.Nil(t, token.UsedBy)
		assert.False(t, token.Used())
	})

	t.Run("Success_RedeemedToken", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLTokenRepository(db)

		createdAt := time.Now().UTC().Add(-time.Hour)
		usedAt := time.Now().UTC()
		usedBy := "gatekeeper"
		rows := sqlmock.NewRows([]string{"id", "token", "meta", "created_at", "used_at", "used_by"}).
			AddRow(int64(7), "some-token", "", createdAt, usedAt, usedBy)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, token, meta, created_at, used_at, used_by")).
			WithArgs("some-token").
			WillReturnRows(rows)

		token, err := repo.GetByValue(ctx, "some-token")
		require.NoError(t, err)
		require.NotNil(t, token.UsedAt)
		require.NotNil(t, token.UsedBy)
		assert.True(t, token.Used())
		assert.Equal(t, "gatekeeper", *token.UsedBy)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLTokenRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, token, meta, created_at, used_at, used_by")).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		token, err := repo.GetByValue(ctx, "missing")
		assert.Nil(t, token)
		assert.ErrorIs(t, err, tokenDomain.ErrTokenNotFound)
	})
}

func TestPostgreSQLTokenRepository_TryRedeem(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("Redeemed_WhenConditionalUpdateWins", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLTokenRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(
			"UPDATE tokens",
		)).
			WithArgs(now, "gatekeeper", "some-token").
			WillReturnResult(sqlmock.NewResult(0, 1))

		outcome, err := repo.TryRedeem(ctx, "some-token", "gatekeeper", now)
		require.NoError(t, err)
		assert.Equal(t, tokenDomain.RedeemOutcomeRedeemed, outcome.Status)
		require.NotNil(t, outcome.UsedAt)
		require.NotNil(t, outcome.UsedBy)
		assert.Equal(t, now, *outcome.UsedAt)
		assert.Equal(t, "gatekeeper", *outcome.UsedBy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("AlreadyRedeemed_CarriesOriginalRedemption", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLTokenRepository(db)

		originalUsedAt := now.Add(-time.Minute)
		originalUsedBy := "first-admin"

		mock.ExpectExec(regexp.QuoteMeta("UPDATE tokens")).
			WithArgs(now, "second-admin", "some-token").
			WillReturnResult(sqlmock.NewResult(0, 0))

		rows := sqlmock.NewRows([]string{"id", "token", "meta", "created_at", "used_at", "used_by"}).
			AddRow(int64(7), "some-token", "", now.Add(-time.Hour), originalUsedAt, originalUsedBy)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, token, meta, created_at, used_at, used_by")).
			WithArgs("some-token").
			WillReturnRows(rows)

		outcome, err := repo.TryRedeem(ctx, "some-token", "second-admin", now)
		require.NoError(t, err)
		assert.Equal(t, tokenDomain.RedeemOutcomeAlreadyRedeemed, outcome.Status)
		require.NotNil(t, outcome.UsedAt)
		require.NotNil(t, outcome.UsedBy)
		assert.Equal(t, originalUsedAt, *outcome.UsedAt)
		assert.Equal(t, originalUsedBy, *outcome.UsedBy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound_WhenTokenUnknown", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLTokenRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE tokens")).
			WithArgs(now, "gatekeeper", "missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, token, meta, created_at, used_at, used_by")).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		outcome, err := repo.TryRedeem(ctx, "missing", "gatekeeper", now)
		require.NoError(t, err)
		assert.Equal(t, tokenDomain.RedeemOutcomeNotFound, outcome.Status)
		assert.Nil(t, outcome.UsedAt)
		assert.Nil(t, outcome.UsedBy)
	})

	t.Run("Error_UpdateFailurePropagates", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLTokenRepository(db)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE tokens")).
			WillReturnError(errors.New("connection reset"))

		outcome, err := repo.TryRedeem(ctx, "some-token", "gatekeeper", now)
		assert.Nil(t, outcome)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to redeem token")
	})
}

func TestPostgreSQLTokenRepository_Stats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgreSQLTokenRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WillReturnRows(sqlmock.NewRows([]string{"count", "count"}).AddRow(int64(10), int64(3)))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Total)
	assert.Equal(t, int64(3), stats.Used)
}

func TestPostgreSQLTokenRepository_Recent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgreSQLTokenRepository(db)

	newest := time.Now().UTC()
	oldest := newest.Add(-time.Hour)
	rows := sqlmock.NewRows([]string{"id", "token", "meta", "created_at", "used_at", "used_by"}).
		AddRow(int64(2), "newer-token", "gate-A", newest, nil, nil).
		AddRow(int64(1), "older-token", "gate-A", oldest, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
		WithArgs(50).
		WillReturnRows(rows)

	tokens, err := repo.Recent(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "newer-token", tokens[0].Token)
	assert.Equal(t, "older-token", tokens[1].Token)
}
