package postgres_test

import (
	"context"
	"testing"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Now().Truncate(time.Second)
	mock.ExpectQuery("INSERT INTO comments").
		WithArgs("works great", int64(5), int64(2), created).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	repo := postgres.NewCommentRepository(db)
	comment := &domain.Comment{Text: "works great", ItemID: 5, AuthorID: 2, Created: created}
	err = repo.Create(context.Background(), comment)

	require.NoError(t, err)
	assert.Equal(t, int64(1), comment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListByItemIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Run("empty input short-circuits", func(t *testing.T) {
		repo := postgres.NewCommentRepository(db)
		comments, err := repo.ListByItemIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, comments)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("joins the author", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM comments c").
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "text", "item_id", "author_id", "created", "name", "email"}).
				AddRow(1, "works great", 5, 2, time.Now(), "bob", "bob@example.com"))

		repo := postgres.NewCommentRepository(db)
		comments, err := repo.ListByItemIDs(context.Background(), []int64{5})

		require.NoError(t, err)
		require.Len(t, comments, 1)
		require.NotNil(t, comments[0].Author)
		assert.Equal(t, "bob", comments[0].Author.Name)
		assert.Equal(t, int64(2), comments[0].Author.ID)
	})
}
