package service

import (
	"context"
	"strings"

	"github.com/Shiven1412/dead-poets/internal/models"
	"github.com/Shiven1412/dead-poets/internal/repository"
	"github.com/Shiven1412/dead-poets/internal/validation"
)

// PoemService provides poem and like business logic.
type PoemService struct {
	poemRepo repository.PoemRepository
	userRepo repository.UserRepository
}

// NewPoemService returns a new PoemService.
func NewPoemService(poemRepo repository.PoemRepository, userRepo repository.UserRepository) *PoemService {
	return &PoemService{
		poemRepo: poemRepo,
		userRepo: userRepo,
	}
}

// CreatePoem publishes a new poem owned by authorID.
func (s *PoemService) CreatePoem(ctx context.Context, authorID uint, title, content string) (*models.Poem, error) {
	title = strings.TrimSpace(title)
	if err := validation.ValidatePoemTitle(title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePoemContent(content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	poem := &models.Poem{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}
	if err := s.poemRepo.Create(ctx, poem); err != nil {
		return nil, err
	}
	return s.poemRepo.GetByID(ctx, poem.ID, authorID)
}

// GetPoem returns a single poem with author, comments, and like details.
// viewerID 0 means anonymous.
func (s *PoemService) GetPoem(ctx context.Context, poemID, viewerID uint) (*models.Poem, error) {
	return s.poemRepo.GetByID(ctx, poemID, viewerID)
}

// ListPoems returns all poems newest first, optionally filtered to one author.
func (s *PoemService) ListPoems(ctx context.Context, viewerID uint, authorID *uint) ([]models.Poem, error) {
	if authorID != nil {
		if _, err := s.userRepo.GetByID(ctx, *authorID); err != nil {
			return nil, err
		}
	}
	return s.poemRepo.List(ctx, viewerID, authorID)
}

// UpdatePoem edits the caller's own poem. Nil title or content leaves the
// existing value unchanged; provided values are re-validated.
func (s *PoemService) UpdatePoem(ctx context.Context, userID, poemID uint, title, content *string) (*models.Poem, error) {
	poem, err := s.poemRepo.GetByID(ctx, poemID, userID)
	if err != nil {
		return nil, err
	}
	if !poem.IsAuthor(userID) {
		return nil, models.NewForbiddenError("You can only edit your own poems")
	}

	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if err := validation.ValidatePoemTitle(trimmed); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		poem.Title = trimmed
	}
	if content != nil {
		if err := validation.ValidatePoemContent(*content); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		poem.Content = *content
	}

	if err := s.poemRepo.Update(ctx, poem); err != nil {
		return nil, err
	}
	return s.poemRepo.GetByID(ctx, poemID, userID)
}

// DeletePoem removes the caller's own poem along with its comments and likes.
func (s *PoemService) DeletePoem(ctx context.Context, userID, poemID uint) error {
	poem, err := s.poemRepo.GetByID(ctx, poemID, userID)
	if err != nil {
		return err
	}
	if !poem.IsAuthor(userID) {
		return models.NewForbiddenError("You can only delete your own poems")
	}
	return s.poemRepo.Delete(ctx, poemID)
}

// ToggleLike flips the like state of the poem for the user and returns the
// refreshed poem. Two toggles always cancel out.
func (s *PoemService) ToggleLike(ctx context.Context, userID, poemID uint) (*models.Poem, error) {
	if _, err := s.poemRepo.GetByID(ctx, poemID, userID); err != nil {
		return nil, err
	}

	liked, err := s.poemRepo.IsLiked(ctx, userID, poemID)
	if err != nil {
		return nil, err
	}
	if liked {
		err = s.poemRepo.Unlike(ctx, userID, poemID)
	} else {
		err = s.poemRepo.Like(ctx, userID, poemID)
	}
	if err != nil {
		return nil, err
	}
	return s.poemRepo.GetByID(ctx, poemID, userID)
}
