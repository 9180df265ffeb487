package service

import (
	"context"

	"github.com/Shiven1412/dead-poets/internal/models"
	"github.com/Shiven1412/dead-poets/internal/repository"
	"github.com/Shiven1412/dead-poets/internal/validation"
)

// CommentService provides comment business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	poemRepo    repository.PoemRepository
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, poemRepo repository.PoemRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		poemRepo:    poemRepo,
	}
}

// AddComment attaches a comment by userID to the poem and returns the
// refreshed poem so callers see the new comment in place.
func (s *CommentService) AddComment(ctx context.Context, userID, poemID uint, text string) (*models.Poem, error) {
	if err := validation.ValidateCommentText(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if _, err := s.poemRepo.GetByID(ctx, poemID, userID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PoemID: poemID,
		UserID: userID,
		Text:   text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.poemRepo.GetByID(ctx, poemID, userID)
}

// DeleteComment removes a comment. Allowed for the comment's author and for
// the author of the poem it sits on; anyone else is rejected.
func (s *CommentService) DeleteComment(ctx context.Context, userID, poemID, commentID uint) (*models.Poem, error) {
	poem, err := s.poemRepo.GetByID(ctx, poemID, userID)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PoemID != poemID {
		return nil, models.NewNotFoundError("Comment", commentID)
	}

	if comment.UserID != userID && !poem.IsAuthor(userID) {
		return nil, models.NewForbiddenError("You can only delete your own comments or comments on your own poems")
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return nil, err
	}
	return s.poemRepo.GetByID(ctx, poemID, userID)
}
