package server

import (
	"time"

	"github.com/Shiven1412/dead-poets/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/users/register.
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return respondError(c, models.NewValidationError("Username, email, and password are required"))
	}

	user, token, err := s.authService.Register(c.UserContext(), req.Username, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login handles POST /api/users/login.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if req.Email == "" || req.Password == "" {
		return respondError(c, models.NewValidationError("Email and password are required"))
	}

	user, token, err := s.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Logout handles POST /api/users/logout. The presented token is revoked for
// the remainder of its lifetime.
func (s *Server) Logout(c *fiber.Ctx) error {
	jti, _ := c.Locals("jti").(string)
	exp, _ := c.Locals("tokenExp").(int64)

	if jti != "" && exp > 0 {
		if err := s.authService.Logout(c.UserContext(), jti, time.Unix(exp, 0)); err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// ForgotPassword handles POST /api/users/forgotpassword.
func (s *Server) ForgotPassword(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if req.Email == "" {
		return respondError(c, models.NewValidationError("Email is required"))
	}

	if err := s.authService.IssueResetToken(c.UserContext(), req.Email); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Reset instructions sent to your email",
	})
}

// ResetPassword handles PATCH /api/users/resetpassword/:token.
func (s *Server) ResetPassword(c *fiber.Ctx) error {
	rawToken := c.Params("token")
	if rawToken == "" {
		return respondError(c, models.NewTokenError())
	}

	var req struct {
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, models.NewValidationError("Invalid request body"))
	}
	if req.Password == "" {
		return respondError(c, models.NewValidationError("Password is required"))
	}

	user, token, err := s.authService.ResetPassword(c.UserContext(), rawToken, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}
