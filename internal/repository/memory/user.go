package memory

import (
	"context"

	"shareit-backend/internal/domain"
)

type userRepository struct {
	st *state
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	u.ID = r.st.nextID()
	r.st.users[u.ID] = *u
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	u, ok := r.st.users[id]
	if !ok {
		return nil, domain.NotFoundf("user not found: id=%d", id)
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	for _, u := range r.st.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, domain.NotFoundf("user not found: email=%s", email)
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	r.st.users[u.ID] = *u
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()
	delete(r.st.users, id)
	return nil
}
