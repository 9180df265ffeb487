package repository

import (
	"context"
	"errors"

	"github.com/Shiven1412/dead-poets/internal/models"
	"github.com/Shiven1412/dead-poets/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PoemRepository defines persistence operations for poems and likes.
type PoemRepository interface {
	Create(ctx context.Context, poem *models.Poem) error
	GetByID(ctx context.Context, id uint, viewerID uint) (*models.Poem, error)
	List(ctx context.Context, viewerID uint, authorID *uint) ([]models.Poem, error)
	Update(ctx context.Context, poem *models.Poem) error
	Delete(ctx context.Context, id uint) error
	IsLiked(ctx context.Context, userID, poemID uint) (bool, error)
	Like(ctx context.Context, userID, poemID uint) error
	Unlike(ctx context.Context, userID, poemID uint) error
}

type poemRepository struct {
	db *gorm.DB
}

// NewPoemRepository returns a new PoemRepository implementation.
func NewPoemRepository(db *gorm.DB) PoemRepository {
	return &poemRepository{db: db}
}

// applyPoemDetails attaches the computed like/comment counts and whether the
// viewer has liked each poem. viewerID 0 means anonymous.
func applyPoemDetails(db *gorm.DB, viewerID uint) *gorm.DB {
	return db.
		Select("poems.*",
			"(SELECT COUNT(*) FROM likes WHERE likes.poem_id = poems.id) AS likes_count",
			"(SELECT COUNT(*) FROM comments WHERE comments.poem_id = poems.id) AS comments_count",
			"(SELECT COUNT(*) FROM likes WHERE likes.poem_id = poems.id AND likes.user_id = ?) > 0 AS liked", viewerID).
		Preload("Author").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("comments.created_at ASC, comments.id ASC")
		}).
		Preload("Comments.User")
}

func (r *poemRepository) Create(ctx context.Context, poem *models.Poem) error {
	defer observability.TrackQuery("create", "poems")()
	if err := r.db.WithContext(ctx).Create(poem).Error; err != nil {
		return models.NewInternalError(err)
	}
	observability.PoemsCreated.Inc()
	return nil
}

func (r *poemRepository) GetByID(ctx context.Context, id uint, viewerID uint) (*models.Poem, error) {
	var poem models.Poem
	err := applyPoemDetails(r.db.WithContext(ctx), viewerID).First(&poem, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Poem", id)
		}
		return nil, models.NewInternalError(err)
	}
	if err := r.fillLikeUserIDs(ctx, &poem); err != nil {
		return nil, err
	}
	return &poem, nil
}

func (r *poemRepository) List(ctx context.Context, viewerID uint, authorID *uint) ([]models.Poem, error) {
	var poems []models.Poem
	query := applyPoemDetails(r.db.WithContext(ctx), viewerID).
		Order("poems.created_at DESC, poems.id DESC")
	if authorID != nil {
		query = query.Where("poems.author_id = ?", *authorID)
	}
	if err := query.Find(&poems).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for i := range poems {
		if err := r.fillLikeUserIDs(ctx, &poems[i]); err != nil {
			return nil, err
		}
	}
	return poems, nil
}

func (r *poemRepository) Update(ctx context.Context, poem *models.Poem) error {
	defer observability.TrackQuery("update", "poems")()
	if err := r.db.WithContext(ctx).
		Model(&models.Poem{}).
		Where("id = ?", poem.ID).
		Updates(map[string]interface{}{
			"title":   poem.Title,
			"content": poem.Content,
		}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the poem and its comments and likes in one transaction.
func (r *poemRepository) Delete(ctx context.Context, id uint) error {
	defer observability.TrackQuery("delete", "poems")()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("poem_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("poem_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Poem{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *poemRepository) IsLiked(ctx context.Context, userID, poemID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND poem_id = ?", userID, poemID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *poemRepository) Like(ctx context.Context, userID, poemID uint) error {
	like := models.Like{UserID: userID, PoemID: poemID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&like).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *poemRepository) Unlike(ctx context.Context, userID, poemID uint) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND poem_id = ?", userID, poemID).
		Delete(&models.Like{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *poemRepository) fillLikeUserIDs(ctx context.Context, poem *models.Poem) error {
	var userIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("poem_id = ?", poem.ID).
		Order("created_at ASC").
		Pluck("user_id", &userIDs).Error; err != nil {
		return models.NewInternalError(err)
	}
	if userIDs == nil {
		userIDs = []uint{}
	}
	poem.LikeUserIDs = userIDs
	return nil
}
