package service

import (
	"context"
	"testing"

	"github.com/Shiven1412/dead-poets/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_GetProfile(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, Username: "whitman"}, nil
	}
	followRepo := noopFollowRepo()
	followRepo.followersOfFn = func(context.Context, uint) ([]models.UserSummary, error) {
		return []models.UserSummary{{ID: 2, Username: "dickinson"}, {ID: 3, Username: "frost"}}, nil
	}
	followRepo.followingOfFn = func(context.Context, uint) ([]models.UserSummary, error) {
		return []models.UserSummary{{ID: 3, Username: "frost"}}, nil
	}
	svc := NewUserService(userRepo, followRepo)

	user, err := svc.GetProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, user.Followers, 2)
	assert.Len(t, user.Following, 1)
	assert.Equal(t, 2, user.FollowersCount)
	assert.Equal(t, 1, user.FollowingCount)
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Run("sets the bio", func(t *testing.T) {
		var saved *models.User
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Bio: "old bio"}, nil
		}
		userRepo.updateFn = func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		}
		svc := NewUserService(userRepo, noopFollowRepo())

		user, err := svc.UpdateProfile(context.Background(), 1, "I sound my barbaric yawp")
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "I sound my barbaric yawp", user.Bio)
	})

	t.Run("empty bio leaves the existing one untouched", func(t *testing.T) {
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Bio: "old bio"}, nil
		}
		userRepo.updateFn = func(context.Context, *models.User) error {
			t.Fatal("update should not run for an empty bio")
			return nil
		}
		svc := NewUserService(userRepo, noopFollowRepo())

		user, err := svc.UpdateProfile(context.Background(), 1, "")
		require.NoError(t, err)
		assert.Equal(t, "old bio", user.Bio)
	})

	t.Run("missing user is not found", func(t *testing.T) {
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := NewUserService(userRepo, noopFollowRepo())

		_, err := svc.UpdateProfile(context.Background(), 99, "bio")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}
