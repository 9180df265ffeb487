package server

import (
	"github.com/gofiber/fiber/v2"
)

// FollowUser handles POST /api/users/:id/follow.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id", "user ID")
	if err != nil {
		return nil
	}

	state, svcErr := s.followService.Follow(c.UserContext(), currentUserID(c), targetID)
	if svcErr != nil {
		return respondError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message":   "User followed",
		"following": state.Following,
		"followers": state.Followers,
	})
}

// UnfollowUser handles POST /api/users/:id/unfollow.
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id", "user ID")
	if err != nil {
		return nil
	}

	state, svcErr := s.followService.Unfollow(c.UserContext(), currentUserID(c), targetID)
	if svcErr != nil {
		return respondError(c, svcErr)
	}

	return c.JSON(fiber.Map{
		"message":   "User unfollowed",
		"following": state.Following,
		"followers": state.Followers,
	})
}
