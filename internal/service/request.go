package service

import (
	"context"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type itemRequestService struct {
	requestRepo repository.ItemRequestRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
}

func NewItemRequestService(
	requestRepo repository.ItemRequestRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) ItemRequestService {
	return &itemRequestService{
		requestRepo: requestRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
	}
}

func (s *itemRequestService) AddItemRequest(ctx context.Context, requestorID int64, description string) (*domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, requestorID); err != nil {
		return nil, err
	}
	req := &domain.ItemRequest{
		Description: description,
		RequestorID: requestorID,
		Created:     time.Now(),
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *itemRequestService) GetItemRequest(ctx context.Context, id int64) (*RequestWithItems, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListByRequestIDs(ctx, []int64{id})
	if err != nil {
		return nil, err
	}
	return &RequestWithItems{Request: *req, Items: items}, nil
}

func (s *itemRequestService) GetItemRequests(ctx context.Context, requestorID int64) ([]RequestWithItems, error) {
	reqs, err := s.requestRepo.ListByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, reqs)
}

func (s *itemRequestService) GetItemRequestsFromOtherUsers(ctx context.Context, requestorID int64) ([]RequestWithItems, error) {
	reqs, err := s.requestRepo.ListByOtherRequestors(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, reqs)
}

func (s *itemRequestService) withItems(ctx context.Context, reqs []domain.ItemRequest) ([]RequestWithItems, error) {
	requestIDs := make([]int64, len(reqs))
	for i, req := range reqs {
		requestIDs[i] = req.ID
	}
	items, err := s.itemRepo.ListByRequestIDs(ctx, requestIDs)
	if err != nil {
		return nil, err
	}
	byRequest := make(map[int64][]domain.Item)
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}
	result := make([]RequestWithItems, 0, len(reqs))
	for _, req := range reqs {
		result = append(result, RequestWithItems{Request: req, Items: byRequest[req.ID]})
	}
	return result, nil
}
