package server

import (
	"github.com/Shiven1412/dead-poets/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPoems handles GET /api/poems. Supports an optional ?author=<id> filter.
func (s *Server) GetPoems(c *fiber.Ctx) error {
	var authorID *uint
	if raw := c.QueryInt("author", 0); raw > 0 {
		id := uint(raw)
		authorID = &id
	}

	poems, err := s.poemService.ListPoems(c.UserContext(), currentUserID(c), authorID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(poems)
}

// GetPoem handles GET /api/poems/:id.
func (s *Server) GetPoem(c *fiber.Ctx) error {
	poemID, err := s.parseID(c, "id", "poem ID")
	if err != nil {
		return nil
	}

	poem, svcErr := s.poemService.GetPoem(c.UserContext(), poemID, currentUserID(c))
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(poem)
}

// CreatePoem handles POST /api/poems.
func (s *Server) CreatePoem(c *fiber.Ctx) error {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	poem, err := s.poemService.CreatePoem(c.UserContext(), currentUserID(c), req.Title, req.Content)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(poem)
}

// UpdatePoem handles PUT /api/poems/:id.
func (s *Server) UpdatePoem(c *fiber.Ctx) error {
	poemID, err := s.parseID(c, "id", "poem ID")
	if err != nil {
		return nil
	}

	var req struct {
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	poem, svcErr := s.poemService.UpdatePoem(c.UserContext(), currentUserID(c), poemID, req.Title, req.Content)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(poem)
}

// DeletePoem handles DELETE /api/poems/:id.
func (s *Server) DeletePoem(c *fiber.Ctx) error {
	poemID, err := s.parseID(c, "id", "poem ID")
	if err != nil {
		return nil
	}

	if svcErr := s.poemService.DeletePoem(c.UserContext(), currentUserID(c), poemID); svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(fiber.Map{
		"message": "Poem deleted",
	})
}

// ToggleLike handles POST /api/poems/:id/like. The same endpoint likes and
// unlikes; the response carries the refreshed poem.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	poemID, err := s.parseID(c, "id", "poem ID")
	if err != nil {
		return nil
	}

	poem, svcErr := s.poemService.ToggleLike(c.UserContext(), currentUserID(c), poemID)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(poem)
}
