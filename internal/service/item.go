package service

import (
	"context"
	"strings"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type itemService struct {
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	requestRepo repository.ItemRequestRepository
	bookingRepo repository.BookingRepository
	commentRepo repository.CommentRepository
}

func NewItemService(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	requestRepo repository.ItemRequestRepository,
	bookingRepo repository.BookingRepository,
	commentRepo repository.CommentRepository,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
	}
}

func (s *itemService) AddItem(ctx context.Context, ownerID int64, name, description string, available bool, requestID *int64) (*domain.Item, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	if requestID != nil {
		if _, err := s.requestRepo.GetByID(ctx, *requestID); err != nil {
			return nil, err
		}
	}
	item := &domain.Item{
		Name:        name,
		Description: description,
		Available:   available,
		OwnerID:     ownerID,
		RequestID:   requestID,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateItem patches an item. Ownership is enforced by the combined id+owner
// lookup: a non-owner gets NotFound, not Forbidden.
func (s *itemService) UpdateItem(ctx context.Context, itemID, ownerID int64, name, description *string, available *bool) (*domain.Item, error) {
	item, err := s.itemRepo.GetByIDAndOwner(ctx, itemID, ownerID)
	if err != nil {
		return nil, err
	}
	if name != nil && strings.TrimSpace(*name) != "" {
		item.Name = *name
	}
	if description != nil && strings.TrimSpace(*description) != "" {
		item.Description = *description
	}
	if available != nil {
		item.Available = *available
	}
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, id, callerID int64) (*domain.Item, []domain.Comment, error) {
	if _, err := s.userRepo.GetByID(ctx, callerID); err != nil {
		return nil, nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	comments, err := s.commentRepo.ListByItemIDs(ctx, []int64{id})
	if err != nil {
		return nil, nil, err
	}
	return item, comments, nil
}

func (s *itemService) GetItemsByOwner(ctx context.Context, ownerID int64) ([]OwnerItem, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListByItemOwner(ctx, ownerID, domain.BookingFilterAll, time.Now())
	if err != nil {
		return nil, err
	}
	itemIDs := make([]int64, len(items))
	for i, it := range items {
		itemIDs[i] = it.ID
	}
	comments, err := s.commentRepo.ListByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result := make([]OwnerItem, 0, len(items))
	for _, it := range items {
		result = append(result, enrichOwnerItem(it, bookings, comments, now))
	}
	return result, nil
}

// enrichOwnerItem computes the enriched owner view of one item: lastBooking is
// the end of a booking whose interval contains now, nextBooking the nearest
// start after now.
func enrichOwnerItem(it domain.Item, bookings []domain.Booking, comments []domain.Comment, now time.Time) OwnerItem {
	oi := OwnerItem{Item: it, Comments: []domain.Comment{}}
	for _, b := range bookings {
		if b.ItemID != it.ID {
			continue
		}
		if b.Start.Before(now) && b.End.After(now) && oi.LastBooking == nil {
			end := b.End
			oi.LastBooking = &end
		}
		if b.Start.After(now) && (oi.NextBooking == nil || b.Start.Before(*oi.NextBooking)) {
			start := b.Start
			oi.NextBooking = &start
		}
	}
	for _, c := range comments {
		if c.ItemID == it.ID {
			oi.Comments = append(oi.Comments, c)
		}
	}
	return oi
}

func (s *itemService) Search(ctx context.Context, callerID int64, text string) ([]domain.Item, error) {
	if _, err := s.userRepo.GetByID(ctx, callerID); err != nil {
		return nil, err
	}
	// A blank query returns nothing, not everything.
	if strings.TrimSpace(text) == "" {
		return []domain.Item{}, nil
	}
	return s.itemRepo.Search(ctx, text)
}

// DeleteItem deletes by id only. Ownership is not re-validated here; the
// caller id is accepted for interface symmetry with the other operations.
func (s *itemService) DeleteItem(ctx context.Context, id, callerID int64) error {
	return s.itemRepo.Delete(ctx, id)
}

func (s *itemService) AddComment(ctx context.Context, itemID, authorID int64, text string) (*domain.Comment, error) {
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	now := time.Now()
	finished, err := s.bookingRepo.ListFinishedByBookerAndItem(ctx, authorID, itemID, now)
	if err != nil {
		return nil, err
	}
	if len(finished) == 0 {
		return nil, domain.ConditionsNotMetf("no finished booking of item %d by user %d", itemID, authorID)
	}
	comment := &domain.Comment{
		Text:     text,
		ItemID:   itemID,
		AuthorID: authorID,
		Author:   author,
		Created:  now,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
