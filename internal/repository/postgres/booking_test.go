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

var bookingColumns = []string{
	"id", "start_date", "end_date", "item_id", "booker_id", "status",
	"i_name", "i_description", "i_available", "i_owner_id", "i_request_id",
	"u_name", "u_email",
}

func bookingRow(id int64, start, end time.Time, status string) *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns).
		AddRow(id, start, end, 5, 2, status, "drill", "cordless", true, 1, nil, "bob", "bob@example.com")
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Now().Truncate(time.Second)
	end := start.Add(24 * time.Hour)
	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(start, end, int64(5), int64(2), domain.BookingStatusWaiting).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	repo := postgres.NewBookingRepository(db)
	booking := &domain.Booking{Start: start, End: end, ItemID: 5, BookerID: 2, Status: domain.BookingStatusWaiting}
	err = repo.Create(context.Background(), booking)

	require.NoError(t, err)
	assert.Equal(t, int64(10), booking.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Now().Truncate(time.Second)

	t.Run("populates nested item and booker", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings b").
			WithArgs(int64(10)).
			WillReturnRows(bookingRow(10, start, start.Add(time.Hour), "WAITING"))

		repo := postgres.NewBookingRepository(db)
		booking, err := repo.GetByID(context.Background(), 10)

		require.NoError(t, err)
		require.NotNil(t, booking.Item)
		require.NotNil(t, booking.Booker)
		assert.Equal(t, booking.ItemID, booking.Item.ID)
		assert.Equal(t, booking.BookerID, booking.Booker.ID)
		assert.Equal(t, "drill", booking.Item.Name)
		assert.Equal(t, "bob", booking.Booker.Name)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings b").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		repo := postgres.NewBookingRepository(db)
		_, err := repo.GetByID(context.Background(), 99)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingRepository_GetByIDAndItemOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// A non-owner caller yields no row, same as a missing booking.
	mock.ExpectQuery("SELECT (.+) FROM bookings b").
		WithArgs(int64(10), int64(3)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	repo := postgres.NewBookingRepository(db)
	_, err = repo.GetByIDAndItemOwner(context.Background(), 10, 3)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs(domain.BookingStatusApproved, int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := postgres.NewBookingRepository(db)
	require.NoError(t, repo.UpdateStatus(context.Background(), 10, domain.BookingStatusApproved))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_ListByBooker(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().Truncate(time.Second)

	t.Run("all", func(t *testing.T) {
		rows := bookingRow(11, now.Add(48*time.Hour), now.Add(72*time.Hour), "WAITING").
			AddRow(10, now.Add(-2*time.Hour), now.Add(-time.Hour), 5, 2, "APPROVED",
				"drill", "cordless", true, 1, nil, "bob", "bob@example.com")
		mock.ExpectQuery("SELECT (.+) FROM bookings b (.+) WHERE b.booker_id").
			WithArgs(int64(2)).
			WillReturnRows(rows)

		repo := postgres.NewBookingRepository(db)
		bookings, err := repo.ListByBooker(context.Background(), 2, domain.BookingFilterAll, now)

		require.NoError(t, err)
		assert.Len(t, bookings, 2)
	})

	t.Run("waiting filters on status", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings b (.+) WHERE b.booker_id (.+) b.status").
			WithArgs(int64(2), domain.BookingStatusWaiting).
			WillReturnRows(bookingRow(11, now.Add(48*time.Hour), now.Add(72*time.Hour), "WAITING"))

		repo := postgres.NewBookingRepository(db)
		bookings, err := repo.ListByBooker(context.Background(), 2, domain.BookingFilterWaiting, now)

		require.NoError(t, err)
		assert.Len(t, bookings, 1)
	})

	t.Run("past filters on end date", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings b (.+) WHERE b.booker_id (.+) b.end_date").
			WithArgs(int64(2), now).
			WillReturnRows(bookingRow(10, now.Add(-2*time.Hour), now.Add(-time.Hour), "APPROVED"))

		repo := postgres.NewBookingRepository(db)
		bookings, err := repo.ListByBooker(context.Background(), 2, domain.BookingFilterPast, now)

		require.NoError(t, err)
		assert.Len(t, bookings, 1)
	})
}

func TestBookingRepository_ListOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Now().Truncate(time.Second)
	end := start.Add(24 * time.Hour)

	t.Run("returns conflicting bookings", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings b (.+) WHERE b.item_id").
			WithArgs(int64(5), start, end).
			WillReturnRows(bookingRow(10, start.Add(-time.Hour), start.Add(time.Hour), "APPROVED"))

		repo := postgres.NewBookingRepository(db)
		bookings, err := repo.ListOverlapping(context.Background(), 5, start, end, false)

		require.NoError(t, err)
		assert.Len(t, bookings, 1)
	})

	t.Run("no conflicts", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings b (.+) WHERE b.item_id").
			WithArgs(int64(5), start, end).
			WillReturnRows(sqlmock.NewRows(bookingColumns))

		repo := postgres.NewBookingRepository(db)
		bookings, err := repo.ListOverlapping(context.Background(), 5, start, end, false)

		require.NoError(t, err)
		assert.Empty(t, bookings)
	})
}

func TestBookingRepository_ListFinishedByBookerAndItem(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().Truncate(time.Second)
	mock.ExpectQuery("SELECT (.+) FROM bookings b (.+) WHERE b.booker_id (.+) b.item_id (.+) b.end_date").
		WithArgs(int64(2), int64(5), now).
		WillReturnRows(bookingRow(10, now.Add(-48*time.Hour), now.Add(-24*time.Hour), "APPROVED"))

	repo := postgres.NewBookingRepository(db)
	bookings, err := repo.ListFinishedByBookerAndItem(context.Background(), 2, 5, now)

	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}
