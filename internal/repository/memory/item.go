package memory

import (
	"context"
	"sort"
	"strings"

	"shareit-backend/internal/domain"
)

type itemRepository struct {
	st *state
}

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	it.ID = r.st.nextID()
	r.st.items[it.ID] = *it
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	it, ok := r.st.items[id]
	if !ok {
		return nil, domain.NotFoundf("item not found: id=%d", id)
	}
	return &it, nil
}

func (r *itemRepository) GetByIDAndOwner(ctx context.Context, id, ownerID int64) (*domain.Item, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	it, ok := r.st.items[id]
	if !ok || it.OwnerID != ownerID {
		return nil, domain.NotFoundf("item not found: id=%d", id)
	}
	return &it, nil
}

func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.items[it.ID] = *it
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	delete(r.st.items, id)
	return nil
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error) {
	return r.collect(func(it domain.Item) bool { return it.OwnerID == ownerID }), nil
}

func (r *itemRepository) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	ids := make(map[int64]bool, len(requestIDs))
	for _, id := range requestIDs {
		ids[id] = true
	}
	return r.collect(func(it domain.Item) bool {
		return it.RequestID != nil && ids[*it.RequestID]
	}), nil
}

func (r *itemRepository) Search(ctx context.Context, text string) ([]domain.Item, error) {
	needle := strings.ToLower(text)
	return r.collect(func(it domain.Item) bool {
		return it.Available &&
			(strings.Contains(strings.ToLower(it.Name), needle) ||
				strings.Contains(strings.ToLower(it.Description), needle))
	}), nil
}

func (r *itemRepository) collect(match func(domain.Item) bool) []domain.Item {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var items []domain.Item
	for _, it := range r.st.items {
		if match(it) {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}
