package server

import (
	"github.com/Shiven1412/dead-poets/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /api/poems/:id/comment.
func (s *Server) AddComment(c *fiber.Ctx) error {
	poemID, err := s.parseID(c, "id", "poem ID")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	poem, svcErr := s.commentService.AddComment(c.UserContext(), currentUserID(c), poemID, req.Text)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.Status(fiber.StatusCreated).JSON(poem)
}

// DeleteComment handles DELETE /api/poems/:poemId/comments/:commentId.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	poemID, err := s.parseID(c, "poemId", "poem ID")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId", "comment ID")
	if err != nil {
		return nil
	}

	poem, svcErr := s.commentService.DeleteComment(c.UserContext(), currentUserID(c), poemID, commentID)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(poem)
}
