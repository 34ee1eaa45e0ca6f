package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// Booking reads join the item and the booker so responses can nest both.
const bookingSelect = `SELECT b.id, b.start_date, b.end_date, b.item_id, b.booker_id, b.status,
	       i.name, COALESCE(i.description, ''), i.available, i.owner_id, i.request_id,
	       u.name, u.email
	FROM bookings b
	JOIN items i ON i.id = b.item_id
	JOIN users u ON u.id = b.booker_id`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	b := &domain.Booking{Item: &domain.Item{}, Booker: &domain.User{}}
	err := row.Scan(&b.ID, &b.Start, &b.End, &b.ItemID, &b.BookerID, &b.Status,
		&b.Item.Name, &b.Item.Description, &b.Item.Available, &b.Item.OwnerID, &b.Item.RequestID,
		&b.Booker.Name, &b.Booker.Email)
	if err != nil {
		return nil, err
	}
	b.Item.ID = b.ItemID
	b.Booker.ID = b.BookerID
	return b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.Start, b.End, b.ItemID, b.BookerID, b.Status).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRowContext(ctx, bookingSelect+` WHERE b.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("booking not found: id=%d", id)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) GetByIDAndItemOwner(ctx context.Context, id, ownerID int64) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRowContext(ctx, bookingSelect+` WHERE b.id = $1 AND i.owner_id = $2`, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFoundf("booking not found: id=%d", id)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *bookingRepository) ListByBooker(ctx context.Context, bookerID int64, filter domain.BookingFilter, now time.Time) ([]domain.Booking, error) {
	return r.listFiltered(ctx, `b.booker_id = $1`, bookerID, filter, now)
}

func (r *bookingRepository) ListByItemOwner(ctx context.Context, ownerID int64, filter domain.BookingFilter, now time.Time) ([]domain.Booking, error) {
	return r.listFiltered(ctx, `i.owner_id = $1`, ownerID, filter, now)
}

func (r *bookingRepository) listFiltered(ctx context.Context, scope string, scopeID int64, filter domain.BookingFilter, now time.Time) ([]domain.Booking, error) {
	query := bookingSelect + ` WHERE ` + scope
	args := []any{scopeID}

	switch filter {
	case domain.BookingFilterCurrent:
		query += ` AND b.start_date <= $2 AND b.end_date > $2`
		args = append(args, now)
	case domain.BookingFilterPast:
		query += ` AND b.end_date < $2`
		args = append(args, now)
	case domain.BookingFilterFuture:
		query += ` AND b.start_date > $2`
		args = append(args, now)
	case domain.BookingFilterWaiting:
		query += ` AND b.status = $2`
		args = append(args, domain.BookingStatusWaiting)
	case domain.BookingFilterRejected:
		query += ` AND b.status = $2`
		args = append(args, domain.BookingStatusRejected)
	}

	query += ` ORDER BY b.start_date DESC`
	return r.list(ctx, query, args...)
}

func (r *bookingRepository) ListOverlapping(ctx context.Context, itemID int64, start, end time.Time, countRejected bool) ([]domain.Booking, error) {
	query := bookingSelect + ` WHERE b.item_id = $1 AND b.start_date < $3 AND b.end_date > $2`
	if !countRejected {
		query += ` AND b.status <> '` + string(domain.BookingStatusRejected) + `'`
	}
	query += ` ORDER BY b.start_date DESC`
	return r.list(ctx, query, itemID, start, end)
}

func (r *bookingRepository) ListFinishedByBookerAndItem(ctx context.Context, bookerID, itemID int64, now time.Time) ([]domain.Booking, error) {
	query := bookingSelect + ` WHERE b.booker_id = $1 AND b.item_id = $2 AND b.end_date < $3 ORDER BY b.start_date DESC`
	return r.list(ctx, query, bookerID, itemID, now)
}

func (r *bookingRepository) list(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}
