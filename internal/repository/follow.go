package repository

import (
	"context"

	"github.com/Shiven1412/dead-poets/internal/cache"
	"github.com/Shiven1412/dead-poets/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines persistence operations on the follow graph.
//
// A directed edge is a single row, so both users' views of it can never
// disagree and every mutation is one atomic statement: there is no window in
// which the edge is half-applied.
type FollowRepository interface {
	Create(ctx context.Context, followerID, followeeID uint) error
	Delete(ctx context.Context, followerID, followeeID uint) error
	FollowersOf(ctx context.Context, userID uint) ([]models.UserSummary, error)
	FollowingOf(ctx context.Context, userID uint) ([]models.UserSummary, error)
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository returns a new FollowRepository implementation.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the edge. ON CONFLICT DO NOTHING makes concurrent duplicate
// follows race-safe; a no-op insert surfaces as a conflict to the caller.
func (r *followRepository) Create(ctx context.Context, followerID, followeeID uint) error {
	edge := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&edge)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewConflictError("You are already following this user")
	}
	cache.InvalidateUser(ctx, followerID)
	cache.InvalidateUser(ctx, followeeID)
	return nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followeeID uint) error {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewConflictError("You are not following this user")
	}
	cache.InvalidateUser(ctx, followerID)
	cache.InvalidateUser(ctx, followeeID)
	return nil
}

func (r *followRepository) FollowersOf(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	return r.edgeSummaries(ctx, "follows.followee_id = ?", "users.id = follows.follower_id", userID)
}

func (r *followRepository) FollowingOf(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	return r.edgeSummaries(ctx, "follows.follower_id = ?", "users.id = follows.followee_id", userID)
}

func (r *followRepository) edgeSummaries(ctx context.Context, where, join string, userID uint) ([]models.UserSummary, error) {
	var summaries []models.UserSummary
	if err := r.db.WithContext(ctx).
		Table("users").
		Select("users.id, users.username").
		Joins("JOIN follows ON "+join).
		Where(where, userID).
		Order("follows.created_at").
		Scan(&summaries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if summaries == nil {
		summaries = []models.UserSummary{}
	}
	return summaries, nil
}
