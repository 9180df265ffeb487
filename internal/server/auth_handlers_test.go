package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Shiven1412/dead-poets/internal/mailer"
	"github.com/Shiven1412/dead-poets/internal/middleware"
	"github.com/Shiven1412/dead-poets/internal/models"
	"github.com/Shiven1412/dead-poets/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "handler-test-secret-0123456789ab"

func newAuthTestApp(userRepo *MockUserRepository) (*fiber.App, *Server) {
	s := &Server{
		authService: service.NewAuthService(userRepo, mailer.NewLogMailer(middleware.Logger), testSecret),
	}
	return fiber.New(), s
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestRegisterHandler(t *testing.T) {
	t.Run("success returns 201 with token and user", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByUsername", mock.Anything, "whitman").Return(nil, nil)
		userRepo.On("GetByEmail", mock.Anything, "walt@leaves.org").Return(nil, nil)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*models.User).ID = 1
			}).Return(nil)

		app, s := newAuthTestApp(userRepo)
		app.Post("/register", s.Register)

		resp := postJSON(t, app, "/register", map[string]string{
			"username": "whitman",
			"email":    "walt@leaves.org",
			"password": "Leaves0fGrass",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Token string      `json:"token"`
			User  models.User `json:"user"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body.Token)
		assert.Equal(t, "whitman", body.User.Username)
	})

	t.Run("duplicate username returns 409", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByUsername", mock.Anything, "whitman").
			Return(&models.User{ID: 1, Username: "whitman"}, nil)

		app, s := newAuthTestApp(userRepo)
		app.Post("/register", s.Register)

		resp := postJSON(t, app, "/register", map[string]string{
			"username": "whitman",
			"email":    "other@leaves.org",
			"password": "Leaves0fGrass",
		})
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		app, s := newAuthTestApp(new(MockUserRepository))
		app.Post("/register", s.Register)

		resp := postJSON(t, app, "/register", map[string]string{"username": "whitman"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestLoginHandler(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("Leaves0fGrass"), bcrypt.DefaultCost)
	require.NoError(t, err)

	t.Run("valid credentials return token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByEmail", mock.Anything, "walt@leaves.org").
			Return(&models.User{ID: 1, Email: "walt@leaves.org", Password: string(hashed)}, nil)

		app, s := newAuthTestApp(userRepo)
		app.Post("/login", s.Login)

		resp := postJSON(t, app, "/login", map[string]string{
			"email":    "walt@leaves.org",
			"password": "Leaves0fGrass",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByEmail", mock.Anything, "walt@leaves.org").
			Return(&models.User{ID: 1, Email: "walt@leaves.org", Password: string(hashed)}, nil)

		app, s := newAuthTestApp(userRepo)
		app.Post("/login", s.Login)

		resp := postJSON(t, app, "/login", map[string]string{
			"email":    "walt@leaves.org",
			"password": "WrongPass1",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("unknown email returns 401", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByEmail", mock.Anything, "nobody@leaves.org").Return(nil, nil)

		app, s := newAuthTestApp(userRepo)
		app.Post("/login", s.Login)

		resp := postJSON(t, app, "/login", map[string]string{
			"email":    "nobody@leaves.org",
			"password": "Leaves0fGrass",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestForgotPasswordHandler(t *testing.T) {
	t.Run("unknown email returns 404", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByEmail", mock.Anything, "nobody@leaves.org").Return(nil, nil)

		app, s := newAuthTestApp(userRepo)
		app.Post("/forgotpassword", s.ForgotPassword)

		resp := postJSON(t, app, "/forgotpassword", map[string]string{"email": "nobody@leaves.org"})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("known email persists token and returns 200", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByEmail", mock.Anything, "walt@leaves.org").
			Return(&models.User{ID: 1, Email: "walt@leaves.org"}, nil)
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.ResetPasswordToken != nil && u.ResetPasswordExpires != nil
		})).Return(nil)

		app, s := newAuthTestApp(userRepo)
		app.Post("/forgotpassword", s.ForgotPassword)

		resp := postJSON(t, app, "/forgotpassword", map[string]string{"email": "walt@leaves.org"})
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		userRepo.AssertExpectations(t)
	})
}

func TestResetPasswordHandler(t *testing.T) {
	t.Run("invalid token returns 400", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		userRepo.On("GetByResetTokenHash", mock.Anything, mock.AnythingOfType("string")).
			Return(nil, nil)

		app, s := newAuthTestApp(userRepo)
		app.Patch("/resetpassword/:token", s.ResetPassword)

		body, _ := json.Marshal(map[string]string{"password": "NewPassword1"})
		req := httptest.NewRequest(http.MethodPatch, "/resetpassword/bogus", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
