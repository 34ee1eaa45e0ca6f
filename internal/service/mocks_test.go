package service_test

import (
	"context"
	"time"

	"shareit-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockItemRepo struct {
	mock.Mock
}

func (m *MockItemRepo) Create(ctx context.Context, it *domain.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockItemRepo) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if it := args.Get(0); it != nil {
		return it.(*domain.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepo) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Item, error) {
	args := m.Called(ctx, id, ownerID)
	if it := args.Get(0); it != nil {
		return it.(*domain.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepo) Update(ctx context.Context, it *domain.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

func (m *MockItemRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	args := m.Called(ctx, ownerID)
	if items := args.Get(0); items != nil {
		return items.([]domain.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepo) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	args := m.Called(ctx, requestIDs)
	if items := args.Get(0); items != nil {
		return items.([]domain.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepo) Search(ctx context.Context, text string) ([]domain.Item, error) {
	args := m.Called(ctx, text)
	if items := args.Get(0); items != nil {
		return items.([]domain.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockItemRequestRepo struct {
	mock.Mock
}

func (m *MockItemRequestRepo) Create(ctx context.Context, req *domain.ItemRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockItemRequestRepo) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	args := m.Called(ctx, id)
	if req := args.Get(0); req != nil {
		return req.(*domain.ItemRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRequestRepo) ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requestorID)
	if reqs := args.Get(0); reqs != nil {
		return reqs.([]domain.ItemRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRequestRepo) ListByOtherRequestors(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	args := m.Called(ctx, requestorID)
	if reqs := args.Get(0); reqs != nil {
		return reqs.([]domain.ItemRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) GetByIDAndItemOwner(ctx context.Context, id, ownerID int64) (*domain.Booking, error) {
	args := m.Called(ctx, id, ownerID)
	if b := args.Get(0); b != nil {
		return b.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockBookingRepo) ListByBooker(ctx context.Context, bookerID int64, filter domain.BookingFilter, now time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, bookerID, filter, now)
	if bs := args.Get(0); bs != nil {
		return bs.([]domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) ListByItemOwner(ctx context.Context, ownerID int64, filter domain.BookingFilter, now time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, ownerID, filter, now)
	if bs := args.Get(0); bs != nil {
		return bs.([]domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) ListOverlapping(ctx context.Context, itemID int64, start, end time.Time, countRejected bool) ([]domain.Booking, error) {
	args := m.Called(ctx, itemID, start, end, countRejected)
	if bs := args.Get(0); bs != nil {
		return bs.([]domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBookingRepo) ListFinishedByBookerAndItem(ctx context.Context, bookerID, itemID int64, now time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, bookerID, itemID, now)
	if bs := args.Get(0); bs != nil {
		return bs.([]domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCommentRepo struct {
	mock.Mock
}

func (m *MockCommentRepo) Create(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommentRepo) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Comment, error) {
	args := m.Called(ctx, itemIDs)
	if cs := args.Get(0); cs != nil {
		return cs.([]domain.Comment), args.Error(1)
	}
	return nil, args.Error(1)
}
