package repository

import (
	"context"
	"time"

	"shareit-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	// GetByIDAndOwner resolves an item only when it belongs to ownerID.
	GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error)
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error)
	// Search matches available items by case-insensitive substring over name
	// or description.
	Search(ctx context.Context, text string) ([]domain.Item, error)
}

type ItemRequestRepository interface {
	Create(ctx context.Context, req *domain.ItemRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error)
	ListByOtherRequestors(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	// GetByIDAndItemOwner resolves a booking only when its item belongs to
	// ownerID.
	GetByIDAndItemOwner(ctx context.Context, id, ownerID int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	ListByBooker(ctx context.Context, bookerID int64, filter domain.BookingFilter, now time.Time) ([]domain.Booking, error)
	ListByItemOwner(ctx context.Context, ownerID int64, filter domain.BookingFilter, now time.Time) ([]domain.Booking, error)
	// ListOverlapping returns bookings on the item whose intervals overlap
	// [start, end). REJECTED bookings are skipped unless countRejected is set.
	ListOverlapping(ctx context.Context, itemID int64, start, end time.Time, countRejected bool) ([]domain.Booking, error)
	// ListFinishedByBookerAndItem returns bookings by the user on the item
	// with end before now, regardless of status.
	ListFinishedByBookerAndItem(ctx context.Context, bookerID, itemID int64, now time.Time) ([]domain.Booking, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Comment, error)
}
