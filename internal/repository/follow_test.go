package repository

import (
	"context"
	"testing"

	"github.com/Shiven1412/dead-poets/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowRepository_Create(t *testing.T) {
	t.Run("new edge is inserted", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "follows"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		err := repo.Create(context.Background(), 1, 2)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("existing edge conflicts", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		// ON CONFLICT DO NOTHING returns zero rows when the edge already exists.
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "follows"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectCommit()

		err := repo.Create(context.Background(), 1, 2)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFollowRepository_Delete(t *testing.T) {
	t.Run("existing edge is removed", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "follows" WHERE follower_id = \$1 AND followee_id = \$2`).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), 1, 2)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing edge conflicts", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "follows" WHERE follower_id = \$1 AND followee_id = \$2`).
			WithArgs(1, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), 1, 2)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFollowRepository_FollowersOf(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewFollowRepository(db)

	rows := sqlmock.NewRows([]string{"id", "username"}).
		AddRow(2, "dickinson").
		AddRow(3, "frost")
	mock.ExpectQuery(`SELECT users.id, users.username FROM "users" JOIN follows ON users.id = follows.follower_id WHERE follows.followee_id = \$1`).
		WithArgs(1).
		WillReturnRows(rows)

	followers, err := repo.FollowersOf(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	assert.Equal(t, "dickinson", followers[0].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}
