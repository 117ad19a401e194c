package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"gearshare/internal/domain/entity"
	domainerrors "gearshare/internal/domain/errors"
	"gearshare/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var itemColumnNames = []string{
	"id", "owner_id", "title", "description", "make", "model", "img_url",
	"daily_cost", "available", "condition", "created_at", "updated_at",
}

func TestItemRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "items"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	item := &entity.Item{OwnerID: 1, Title: "Drill", DailyCost: 5, Available: true}
	require.NoError(t, repo.Create(context.Background(), item))

	assert.Equal(t, int64(1), item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewItemRepository(db)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "items" ORDER BY "items"."id" DESC`)).
		WillReturnRows(sqlmock.NewRows(itemColumnNames).
			AddRow(2, 1, "Saw", "", "", "", "", 3.5, false, "", now, now).
			AddRow(1, 1, "Drill", "", "", "", "", 5.0, true, "", now, now))

	items, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, "Drill", items[1].Title)
	assert.True(t, items[1].Available)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_FindByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		db, mock := newMockDB(t)
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "items" WHERE "items"."id" = $1`)).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(itemColumnNames).
				AddRow(1, 1, "Drill", "", "", "", "", 5.0, true, "", now, now))

		items, err := NewItemRepository(db).FindByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("MissingIsEmptyNotNil", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "items" WHERE "items"."id" = $1`)).
			WillReturnRows(sqlmock.NewRows(itemColumnNames))

		items, err := NewItemRepository(db).FindByID(context.Background(), 9)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestItemRepository_ListByOwner(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "items" WHERE "items"."owner_id" = $1 ORDER BY "items"."id" DESC`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(itemColumnNames).
			AddRow(3, 7, "Ladder", "", "", "", "", 2.0, true, "", now, now))

	items, err := NewItemRepository(db).ListByOwner(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].OwnerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_UpdateOwned(t *testing.T) {
	ctx := context.Background()
	title := "Hammer drill"

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(`UPDATE "items" SET "title"=\$1,"updated_at"=\$2 WHERE "items"."id" = \$3 AND "items"."owner_id" = \$4`).
			WithArgs(title, sqlmock.AnyArg(), int64(1), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewItemRepository(db).UpdateOwned(ctx, 1, 1, entity.ItemChanges{Title: &title})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ForeignOwnerIsNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "items"`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewItemRepository(db).UpdateOwned(ctx, 1, 2, entity.ItemChanges{Title: &title})
		assert.True(t, errors.Is(err, repository.ErrItemNotFound))
	})

	t.Run("EmptyChanges", func(t *testing.T) {
		db, _ := newMockDB(t)

		err := NewItemRepository(db).UpdateOwned(ctx, 1, 1, entity.ItemChanges{})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestItemRepository_DeleteOwned(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "items" WHERE "items"."id" = $1 AND "items"."owner_id" = $2`)).
			WithArgs(int64(1), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewItemRepository(db).DeleteOwned(ctx, 1, 1))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ForeignOwnerIsNotFound", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "items" WHERE "items"."id" = $1 AND "items"."owner_id" = $2`)).
			WithArgs(int64(1), int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewItemRepository(db).DeleteOwned(ctx, 1, 2)
		assert.True(t, errors.Is(err, repository.ErrItemNotFound))
	})

	t.Run("DatabaseError", func(t *testing.T) {
		db, mock := newMockDB(t)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "items"`)).
			WillReturnError(errors.New("connection reset"))

		err := NewItemRepository(db).DeleteOwned(ctx, 1, 1)
		var dbErr *domainerrors.DatabaseExecuteError
		assert.True(t, errors.As(err, &dbErr))
	})
}
