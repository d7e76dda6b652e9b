package usecase

import (
	"context"
	"testing"
	"time"

	"gym-booking/internal/data/entity"
	"gym-booking/internal/dto/request"
	"gym-booking/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo *fakeUserRepo, username, email string) *entity.User {
	t.Helper()
	now := time.Now()
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Username: username,
		Email:    email,
		Role:     entity.RoleRegistered,
		IsActive: true,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestGetProfile(t *testing.T) {
	repo := newTestRepository()
	service := NewUserService(repo.User, testLogger())

	user := seedUser(t, repo.User.(*fakeUserRepo), "alice", "alice@example.com")

	resp, err := service.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)

	_, err = service.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateProfile(t *testing.T) {
	repo := newTestRepository()
	service := NewUserService(repo.User, testLogger())
	ctx := context.Background()

	user := seedUser(t, repo.User.(*fakeUserRepo), "alice", "alice@example.com")

	resp, err := service.UpdateProfile(ctx, user.ID, &request.UpdateProfileRequest{
		Username: "alice2",
		Email:    "alice2@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice2", resp.Username)
	assert.Equal(t, "alice2@example.com", resp.Email)
}

func TestUpdateProfileTakenEmail(t *testing.T) {
	repo := newTestRepository()
	service := NewUserService(repo.User, testLogger())
	ctx := context.Background()

	user := seedUser(t, repo.User.(*fakeUserRepo), "alice", "alice@example.com")
	seedUser(t, repo.User.(*fakeUserRepo), "bob", "bob@example.com")

	_, err := service.UpdateProfile(ctx, user.ID, &request.UpdateProfileRequest{
		Username: "alice",
		Email:    "bob@example.com",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = service.UpdateProfile(ctx, user.ID, &request.UpdateProfileRequest{
		Username: "bob",
		Email:    "alice@example.com",
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
