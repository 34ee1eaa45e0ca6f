package memory

import (
	"context"
	"sort"

	"shareit-backend/internal/domain"
)

type itemRequestRepository struct {
	st *state
}

func (r *itemRequestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	req.ID = r.st.nextID()
	r.st.requests[req.ID] = *req
	return nil
}

func (r *itemRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	req, ok := r.st.requests[id]
	if !ok {
		return nil, domain.NotFoundf("item request not found: id=%d", id)
	}
	return &req, nil
}

func (r *itemRequestRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	return r.collect(func(req domain.ItemRequest) bool { return req.RequestorID == requestorID }), nil
}

func (r *itemRequestRepository) ListByOtherRequestors(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	return r.collect(func(req domain.ItemRequest) bool { return req.RequestorID != requestorID }), nil
}

func (r *itemRequestRepository) collect(match func(domain.ItemRequest) bool) []domain.ItemRequest {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var reqs []domain.ItemRequest
	for _, req := range r.st.requests {
		if match(req) {
			reqs = append(reqs, req)
		}
	}
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].Created.After(reqs[j].Created) })
	return reqs
}
