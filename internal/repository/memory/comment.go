package memory

import (
	"context"
	"sort"

	"shareit-backend/internal/domain"
)

type commentRepository struct {
	st *state
}

func (r *commentRepository) Create(ctx context.Context, c *domain.Comment) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	c.ID = r.st.nextID()
	stored := *c
	stored.Author = nil
	r.st.comments[c.ID] = stored
	return nil
}

func (r *commentRepository) ListByItemIDs(ctx context.Context, itemIDs []int64) ([]domain.Comment, error) {
	ids := make(map[int64]bool, len(itemIDs))
	for _, id := range itemIDs {
		ids[id] = true
	}
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	var comments []domain.Comment
	for _, c := range r.st.comments {
		if ids[c.ItemID] {
			if u, ok := r.st.users[c.AuthorID]; ok {
				c.Author = &u
			}
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].Created.Before(comments[j].Created) })
	return comments, nil
}
