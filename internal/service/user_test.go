package service_test

import (
	"context"
	"errors"
	"testing"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_AddUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with unused email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "alice@example.com").
			Return(nil, domain.NotFoundf("user not found"))
		userRepo.On("Create", ctx, &domain.User{Name: "alice", Email: "alice@example.com"}).
			Return(nil)

		svc := service.NewUserService(userRepo)
		user, err := svc.AddUser(ctx, "alice", "alice@example.com")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Name)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects blank email", func(t *testing.T) {
		userRepo := new(MockUserRepo)

		svc := service.NewUserService(userRepo)
		_, err := svc.AddUser(ctx, "alice", "   ")

		assert.ErrorIs(t, err, domain.ErrValidation)
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "alice@example.com").
			Return(&domain.User{ID: 7, Name: "other", Email: "alice@example.com"}, nil)

		svc := service.NewUserService(userRepo)
		_, err := svc.AddUser(ctx, "alice", "alice@example.com")

		assert.ErrorIs(t, err, domain.ErrConflict)
		userRepo.AssertNotCalled(t, "Create")
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("patches only provided fields", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.User{ID: 1, Name: "alice", Email: "alice@example.com"}, nil)
		userRepo.On("GetByEmail", ctx, "alice@example.com").
			Return(&domain.User{ID: 1, Name: "alice", Email: "alice@example.com"}, nil)
		userRepo.On("Update", ctx, &domain.User{ID: 1, Name: "alicia", Email: "alice@example.com"}).
			Return(nil)

		svc := service.NewUserService(userRepo)
		name := "alicia"
		user, err := svc.UpdateUser(ctx, 1, &name, nil)

		require.NoError(t, err)
		assert.Equal(t, "alicia", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
		userRepo.AssertExpectations(t)
	})

	t.Run("keeping own email is not a conflict", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.User{ID: 1, Name: "alice", Email: "alice@example.com"}, nil)
		userRepo.On("GetByEmail", ctx, "alice@example.com").
			Return(&domain.User{ID: 1, Name: "alice", Email: "alice@example.com"}, nil)
		userRepo.On("Update", ctx, &domain.User{ID: 1, Name: "alice", Email: "alice@example.com"}).
			Return(nil)

		svc := service.NewUserService(userRepo)
		email := "alice@example.com"
		_, err := svc.UpdateUser(ctx, 1, nil, &email)

		assert.NoError(t, err)
	})

	t.Run("taking another user's email is a conflict", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, int64(1)).
			Return(&domain.User{ID: 1, Name: "alice", Email: "alice@example.com"}, nil)
		userRepo.On("GetByEmail", ctx, "bob@example.com").
			Return(&domain.User{ID: 2, Name: "bob", Email: "bob@example.com"}, nil)

		svc := service.NewUserService(userRepo)
		email := "bob@example.com"
		_, err := svc.UpdateUser(ctx, 1, nil, &email)

		assert.ErrorIs(t, err, domain.ErrConflict)
		userRepo.AssertNotCalled(t, "Update")
	})

	t.Run("unknown user", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, int64(99)).
			Return(nil, domain.NotFoundf("user not found: id=99"))

		svc := service.NewUserService(userRepo)
		name := "x"
		_, err := svc.UpdateUser(ctx, 99, &name, nil)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	userRepo.On("GetByID", ctx, int64(3)).
		Return(&domain.User{ID: 3, Name: "eve", Email: "eve@example.com"}, nil)

	svc := service.NewUserService(userRepo)
	user, err := svc.GetUser(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	userRepo.On("Delete", ctx, int64(3)).Return(nil)

	svc := service.NewUserService(userRepo)
	require.NoError(t, svc.DeleteUser(ctx, 3))
	userRepo.AssertExpectations(t)
}

func TestUserService_AddUser_RepoError(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepo)
	userRepo.On("GetByEmail", ctx, "alice@example.com").
		Return(nil, errors.New("connection refused"))

	svc := service.NewUserService(userRepo)
	_, err := svc.AddUser(ctx, "alice", "alice@example.com")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrConflict)
}
