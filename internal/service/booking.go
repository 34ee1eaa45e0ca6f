package service

import (
	"context"
	"errors"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	// countRejectedConflicts makes REJECTED bookings block new intervals.
	countRejectedConflicts bool
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	countRejectedConflicts bool,
) BookingService {
	return &bookingService{
		bookingRepo:            bookingRepo,
		itemRepo:               itemRepo,
		userRepo:               userRepo,
		countRejectedConflicts: countRejectedConflicts,
	}
}

func (s *bookingService) AddBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.Booking, error) {
	booker, err := s.userRepo.GetByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	// Sub-second precision is not guaranteed to round-trip.
	start = start.Truncate(time.Second)
	end = end.Truncate(time.Second)

	if !start.Before(end) {
		return nil, domain.ConditionsNotMetf("booking start must be before its end")
	}
	overlapping, err := s.bookingRepo.ListOverlapping(ctx, itemID, start, end, s.countRejectedConflicts)
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, domain.ConditionsNotMetf("item %d is already booked for the requested interval", itemID)
	}
	if !item.Available {
		return nil, domain.ConditionsNotMetf("item %d is not available for booking", itemID)
	}

	booking := &domain.Booking{
		Start:    start,
		End:      end,
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   domain.BookingStatusWaiting,
		Item:     item,
		Booker:   booker,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// ApproveBooking decides a booking. The combined booking-id + item-owner
// lookup means a missing booking and a non-owner caller are indistinguishable.
// Re-deciding an already decided booking overwrites the status.
func (s *bookingService) ApproveBooking(ctx context.Context, callerID, bookingID int64, approved bool) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByIDAndItemOwner(ctx, bookingID, callerID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NoRights()
	}
	if err != nil {
		return nil, err
	}

	status := domain.BookingStatusRejected
	if approved {
		status = domain.BookingStatusApproved
	}
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, err
	}
	booking.Status = status
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, callerID, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.BookerID == callerID || (booking.Item != nil && booking.Item.OwnerID == callerID) {
		return booking, nil
	}
	// Disguised as missing rather than forbidden.
	return nil, domain.NotFoundf("booking not found: id=%d", bookingID)
}

func (s *bookingService) GetBookingsByUser(ctx context.Context, userID int64, filter domain.BookingFilter) ([]domain.Booking, error) {
	return s.bookingRepo.ListByBooker(ctx, userID, filter, time.Now())
}

func (s *bookingService) GetBookingsByItemOwner(ctx context.Context, ownerID int64, filter domain.BookingFilter) ([]domain.Booking, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.bookingRepo.ListByItemOwner(ctx, ownerID, filter, time.Now())
}
