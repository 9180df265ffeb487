// Package service implements the business logic of the application on top of
// the repository layer. Services are HTTP-agnostic; failures surface as
// *models.AppError values the transport layer translates.
package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/Shiven1412/dead-poets/internal/cache"
	"github.com/Shiven1412/dead-poets/internal/mailer"
	"github.com/Shiven1412/dead-poets/internal/models"
	"github.com/Shiven1412/dead-poets/internal/observability"
	"github.com/Shiven1412/dead-poets/internal/repository"
	"github.com/Shiven1412/dead-poets/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer   = "dead-poets-api"
	tokenAudience = "dead-poets-client"
	tokenLifetime = 7 * 24 * time.Hour

	resetTokenLifetime = time.Hour
)

// AuthService handles registration, login, logout, and the password reset flow.
type AuthService struct {
	userRepo  repository.UserRepository
	mail      mailer.Mailer
	jwtSecret string
	now       func() time.Time
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository, mail mailer.Mailer, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		mail:      mail,
		jwtSecret: jwtSecret,
		now:       time.Now,
	}
}

// Register creates a new user and returns it with a fresh bearer token.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", models.NewConflictError("Username already taken")
	}
	existing, err = s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", models.NewConflictError("Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	user := &models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	observability.AuthAttempts.WithLabelValues("register_success").Inc()
	return user, token, nil
}

// Login verifies credentials and returns the user with a fresh bearer token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		observability.AuthAttempts.WithLabelValues("login_failure").Inc()
		return nil, "", models.NewUnauthorizedError("Invalid credentials")
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); cmpErr != nil {
		observability.AuthAttempts.WithLabelValues("login_failure").Inc()
		return nil, "", models.NewUnauthorizedError("Invalid credentials")
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	observability.AuthAttempts.WithLabelValues("login_success").Inc()
	return user, token, nil
}

// Logout revokes the presented token by blacklisting its ID until expiry.
func (s *AuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := cache.BlacklistJTI(ctx, jti, ttl); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// IssueResetToken mints a reset token for the given email: the raw token goes
// out by mail, only its SHA-256 digest is persisted. A delivery failure after
// persistence rolls the token fields back so no orphaned token survives.
func (s *AuthService) IssueResetToken(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewNotFoundError("User", email)
	}

	rawToken, tokenHash, err := newResetToken()
	if err != nil {
		return models.NewInternalError(err)
	}

	expires := s.now().Add(resetTokenLifetime)
	user.ResetPasswordToken = &tokenHash
	user.ResetPasswordExpires = &expires
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if sendErr := s.mail.SendResetToken(ctx, user.Email, rawToken); sendErr != nil {
		user.ClearResetToken()
		if err := s.userRepo.Update(ctx, user); err != nil {
			return err
		}
		return models.NewDeliveryError(sendErr)
	}

	observability.ResetTokensIssued.Inc()
	return nil
}

// ResetPassword consumes a raw reset token: on a hash match with an unexpired
// token the password is replaced, the token fields are cleared, and a fresh
// bearer token is returned. No-match and expired are indistinguishable.
func (s *AuthService) ResetPassword(ctx context.Context, rawToken, newPassword string) (*models.User, string, error) {
	if err := validation.ValidatePassword(newPassword); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}

	tokenHash := hashResetToken(rawToken)
	user, err := s.userRepo.GetByResetTokenHash(ctx, tokenHash)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", models.NewTokenError()
	}
	if !user.HasActiveResetToken(s.now()) {
		// Expired tokens are dead either way; scrub the row so the stale hash
		// does not linger.
		user.ClearResetToken()
		if err := s.userRepo.Update(ctx, user); err != nil {
			return nil, "", err
		}
		return nil, "", models.NewTokenError()
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}
	user.Password = string(hashed)
	user.ClearResetToken()
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}
	return user, token, nil
}

// IssueToken signs a bearer token for the user.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	if s.jwtSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"iss":      tokenIssuer,
		"aud":      tokenAudience,
		"exp":      now.Add(tokenLifetime).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// newResetToken draws 32 random bytes and returns (raw hex token, its
// SHA-256 hex digest).
func newResetToken() (string, string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	raw := hex.EncodeToString(buf)
	return raw, hashResetToken(raw), nil
}

func hashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
