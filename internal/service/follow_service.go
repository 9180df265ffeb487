package service

import (
	"context"
	"strings"

	"github.com/Shiven1412/dead-poets/internal/models"
	"github.com/Shiven1412/dead-poets/internal/observability"
	"github.com/Shiven1412/dead-poets/internal/repository"
)

// FollowService provides follow-graph business logic.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow makes userID follow targetID. Following yourself is rejected, and
// following someone you already follow is a conflict. On success the refreshed
// edge state is returned.
func (s *FollowService) Follow(ctx context.Context, userID, targetID uint) (*models.FollowState, error) {
	if userID == targetID {
		return nil, models.NewInvalidOperationError("You cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}
	if err := s.followRepo.Create(ctx, userID, targetID); err != nil {
		return nil, err
	}
	observability.FollowMutations.WithLabelValues("follow").Inc()
	return s.edgeState(ctx, userID, targetID)
}

// Unfollow removes the edge from userID to targetID. Unfollowing someone you
// do not follow is a conflict.
func (s *FollowService) Unfollow(ctx context.Context, userID, targetID uint) (*models.FollowState, error) {
	if userID == targetID {
		return nil, models.NewInvalidOperationError("You cannot unfollow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return nil, err
	}
	if err := s.followRepo.Delete(ctx, userID, targetID); err != nil {
		return nil, err
	}
	observability.FollowMutations.WithLabelValues("unfollow").Inc()
	return s.edgeState(ctx, userID, targetID)
}

// edgeState reads back the actor's following list and the target's followers
// list after a mutation.
func (s *FollowService) edgeState(ctx context.Context, userID, targetID uint) (*models.FollowState, error) {
	following, err := s.followRepo.FollowingOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	followers, err := s.followRepo.FollowersOf(ctx, targetID)
	if err != nil {
		return nil, err
	}
	return &models.FollowState{Following: following, Followers: followers}, nil
}

// SearchUsers returns summaries of users whose username contains the term,
// case-insensitively. A blank term is rejected rather than matching the whole
// user table; an empty result set is not an error.
func (s *FollowService) SearchUsers(ctx context.Context, term string) ([]models.UserSummary, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, models.NewValidationError("Search term is required")
	}
	return s.userRepo.Search(ctx, term)
}
