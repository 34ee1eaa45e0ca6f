// Package memory provides map-backed repository implementations used by tests
// and local development. Semantics (ordering, filtering, not-found errors)
// mirror the postgres implementations.
package memory

import (
	"sync"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type state struct {
	mu       sync.Mutex
	users    map[int64]domain.User
	items    map[int64]domain.Item
	requests map[int64]domain.ItemRequest
	bookings map[int64]domain.Booking
	comments map[int64]domain.Comment
	seq      int64
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

type Store struct {
	repository.UserRepository
	repository.ItemRepository
	repository.ItemRequestRepository
	repository.BookingRepository
	repository.CommentRepository
}

func NewStore() *Store {
	st := &state{
		users:    make(map[int64]domain.User),
		items:    make(map[int64]domain.Item),
		requests: make(map[int64]domain.ItemRequest),
		bookings: make(map[int64]domain.Booking),
		comments: make(map[int64]domain.Comment),
	}
	return &Store{
		UserRepository:        &userRepository{st},
		ItemRepository:        &itemRepository{st},
		ItemRequestRepository: &itemRequestRepository{st},
		BookingRepository:     &bookingRepository{st},
		CommentRepository:     &commentRepository{st},
	}
}
