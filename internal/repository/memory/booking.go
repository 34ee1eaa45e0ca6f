package memory

import (
	"context"
	"sort"
	"time"

	"shareit-backend/internal/domain"
)

type bookingRepository struct {
	st *state
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	b.ID = r.st.nextID()
	stored := *b
	stored.Item = nil
	stored.Booker = nil
	r.st.bookings[b.ID] = stored
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, domain.NotFoundf("booking not found: id=%d", id)
	}
	return r.enrich(b), nil
}

func (r *bookingRepository) GetByIDAndItemOwner(ctx context.Context, id, ownerID int64) (*domain.Booking, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, domain.NotFoundf("booking not found: id=%d", id)
	}
	if it, ok := r.st.items[b.ItemID]; !ok || it.OwnerID != ownerID {
		return nil, domain.NotFoundf("booking not found: id=%d", id)
	}
	return r.enrich(b), nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	b, ok := r.st.bookings[id]
	if !ok {
		return domain.NotFoundf("booking not found: id=%d", id)
	}
	b.Status = status
	r.st.bookings[id] = b
	return nil
}

func (r *bookingRepository) ListByBooker(ctx context.Context, bookerID int64, filter domain.BookingFilter, now time.Time) ([]domain.Booking, error) {
	return r.collect(func(b domain.Booking) bool {
		return b.BookerID == bookerID && matchFilter(b, filter, now)
	}), nil
}

func (r *bookingRepository) ListByItemOwner(ctx context.Context, ownerID int64, filter domain.BookingFilter, now time.Time) ([]domain.Booking, error) {
	return r.collect(func(b domain.Booking) bool {
		it, ok := r.st.items[b.ItemID]
		return ok && it.OwnerID == ownerID && matchFilter(b, filter, now)
	}), nil
}

func (r *bookingRepository) ListOverlapping(ctx context.Context, itemID int64, start, end time.Time, countRejected bool) ([]domain.Booking, error) {
	return r.collect(func(b domain.Booking) bool {
		if b.ItemID != itemID {
			return false
		}
		if !countRejected && b.Status == domain.BookingStatusRejected {
			return false
		}
		return b.Start.Before(end) && b.End.After(start)
	}), nil
}

func (r *bookingRepository) ListFinishedByBookerAndItem(ctx context.Context, bookerID, itemID int64, now time.Time) ([]domain.Booking, error) {
	return r.collect(func(b domain.Booking) bool {
		return b.BookerID == bookerID && b.ItemID == itemID && b.End.Before(now)
	}), nil
}

func matchFilter(b domain.Booking, filter domain.BookingFilter, now time.Time) bool {
	switch filter {
	case domain.BookingFilterCurrent:
		return !b.Start.After(now) && b.End.After(now)
	case domain.BookingFilterPast:
		return b.End.Before(now)
	case domain.BookingFilterFuture:
		return b.Start.After(now)
	case domain.BookingFilterWaiting:
		return b.Status == domain.BookingStatusWaiting
	case domain.BookingFilterRejected:
		return b.Status == domain.BookingStatusRejected
	}
	return true
}

func (r *bookingRepository) collect(match func(domain.Booking) bool) []domain.Booking {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var bookings []domain.Booking
	for _, b := range r.st.bookings {
		if match(b) {
			bookings = append(bookings, *r.enrich(b))
		}
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].Start.After(bookings[j].Start) })
	return bookings
}

// enrich populates the nested item and booker the way the postgres joins do.
// Callers must hold st.mu.
func (r *bookingRepository) enrich(b domain.Booking) *domain.Booking {
	if it, ok := r.st.items[b.ItemID]; ok {
		b.Item = &it
	}
	if u, ok := r.st.users[b.BookerID]; ok {
		b.Booker = &u
	}
	return &b
}
