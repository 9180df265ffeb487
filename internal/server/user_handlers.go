package server

import (
	"github.com/Shiven1412/dead-poets/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentUser handles GET /api/users/me.
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	user, err := s.userService.GetProfile(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// GetMyProfile handles GET /api/users/profile.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	return s.GetCurrentUser(c)
}

// UpdateMyProfile handles PUT /api/users/profile. Only the bio is mutable.
// A fresh token is returned alongside the updated profile so clients can
// refresh their session in one round trip.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Bio string `json:"bio"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.UserContext(), currentUserID(c), req.Bio)
	if err != nil {
		return respondError(c, err)
	}

	token, err := s.authService.IssueToken(user)
	if err != nil {
		return respondError(c, models.NewInternalError(err))
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// GetUserProfile handles GET /api/users/:id.
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id", "user ID")
	if err != nil {
		return nil
	}

	user, svcErr := s.userService.GetProfile(c.UserContext(), userID)
	if svcErr != nil {
		return respondError(c, svcErr)
	}
	return c.JSON(user)
}

// SearchUsers handles GET /api/users/search?search=term.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	term := c.Query("search")

	results, err := s.followService.SearchUsers(c.UserContext(), term)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(results)
}
