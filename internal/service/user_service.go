package service

import (
	"context"

	"github.com/Shiven1412/dead-poets/internal/models"
	"github.com/Shiven1412/dead-poets/internal/repository"
)

// UserService provides profile reads and updates.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

// GetProfile returns the user with follower and following lists attached.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.attachGraph(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes the user's bio. An empty bio leaves the existing one
// in place, matching the original behavior of the profile form.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, bio string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if bio != "" {
		user.Bio = bio
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	if err := s.attachGraph(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) attachGraph(ctx context.Context, user *models.User) error {
	followers, err := s.followRepo.FollowersOf(ctx, user.ID)
	if err != nil {
		return err
	}
	following, err := s.followRepo.FollowingOf(ctx, user.ID)
	if err != nil {
		return err
	}
	user.Followers = followers
	user.Following = following
	user.FollowersCount = len(followers)
	user.FollowingCount = len(following)
	return nil
}
