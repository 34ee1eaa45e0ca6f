package service

import (
	"context"
	"time"

	"shareit-backend/internal/domain"
)

type UserService interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	AddUser(ctx context.Context, name, email string) (*domain.User, error)
	// UpdateUser applies a partial patch; nil or blank fields are no-ops.
	UpdateUser(ctx context.Context, id int64, name, email *string) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// OwnerItem is an item enriched with booking boundaries and comments for the
// owner's listing view.
type OwnerItem struct {
	Item        domain.Item
	LastBooking *time.Time
	NextBooking *time.Time
	Comments    []domain.Comment
}

type ItemService interface {
	AddItem(ctx context.Context, ownerID int64, name, description string, available bool, requestID *int64) (*domain.Item, error)
	UpdateItem(ctx context.Context, itemID, ownerID int64, name, description *string, available *bool) (*domain.Item, error)
	GetItem(ctx context.Context, id, callerID int64) (*domain.Item, []domain.Comment, error)
	GetItemsByOwner(ctx context.Context, ownerID int64) ([]OwnerItem, error)
	Search(ctx context.Context, callerID int64, text string) ([]domain.Item, error)
	DeleteItem(ctx context.Context, id, callerID int64) error
	AddComment(ctx context.Context, itemID, authorID int64, text string) (*domain.Comment, error)
}

// RequestWithItems is an item request enriched with the items fulfilling it.
type RequestWithItems struct {
	Request domain.ItemRequest
	Items   []domain.Item
}

type ItemRequestService interface {
	AddItemRequest(ctx context.Context, requestorID int64, description string) (*domain.ItemRequest, error)
	GetItemRequest(ctx context.Context, id int64) (*RequestWithItems, error)
	GetItemRequests(ctx context.Context, requestorID int64) ([]RequestWithItems, error)
	GetItemRequestsFromOtherUsers(ctx context.Context, requestorID int64) ([]RequestWithItems, error)
}

type BookingService interface {
	AddBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.Booking, error)
	ApproveBooking(ctx context.Context, callerID, bookingID int64, approved bool) (*domain.Booking, error)
	GetBooking(ctx context.Context, callerID, bookingID int64) (*domain.Booking, error)
	GetBookingsByUser(ctx context.Context, userID int64, filter domain.BookingFilter) ([]domain.Booking, error)
	GetBookingsByItemOwner(ctx context.Context, ownerID int64, filter domain.BookingFilter) ([]domain.Booking, error)
}
