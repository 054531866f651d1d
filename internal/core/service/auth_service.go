package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/todolist/task-service/internal/core/domain"
	"github.com/todolist/task-service/internal/core/ports"
)

// MinPasswordLength is the shortest secret a digest may ever be written for.
const MinPasswordLength = 6

// AuthService implements registration and login.
type AuthService struct {
	repo          ports.UserRepository
	hasher        *PasswordHasher
	tokens        *TokenIssuer
	throttle      ports.LoginThrottle
	elevationCode string
	logger        zerolog.Logger
}

// NewAuthService wires the registration/login use cases. throttle may be nil,
// in which case login attempts are not rate-limited.
func NewAuthService(repo ports.UserRepository, hasher *PasswordHasher, tokens *TokenIssuer, throttle ports.LoginThrottle, elevationCode string, logger zerolog.Logger) *AuthService {
	return &AuthService{
		repo:          repo,
		hasher:        hasher,
		tokens:        tokens,
		throttle:      throttle,
		elevationCode: strings.TrimSpace(elevationCode),
		logger:        logger,
	}
}

// Signup validates and registers a new identity, then issues its first token.
// Either the full identity persists or nothing does.
func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := NormalizeEmail(input.Email)

	if name == "" || email == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}
	if !validEmail(email) {
		return nil, fmt.Errorf("%w: email is not valid", domain.ErrValidation)
	}
	if len(input.Password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, MinPasswordLength)
	}

	// Pre-check gives a fast deterministic answer; the unique index on email
	// remains the authority when two signups race past this point.
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	role := domain.RoleUser
	if input.ElevationCode != "" && s.VerifyElevationCode(input.ElevationCode) {
		role = domain.RoleAdmin
	}

	digest, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: digest,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login authenticates by email and password. A missing account and a wrong
// password are indistinguishable to the caller, so an attacker cannot probe
// which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	if s.throttle != nil && !s.throttle.Allow(ctx, email) {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return &ports.AuthResult{Token: token, User: user}, nil
}

// VerifyElevationCode reports whether code grants the admin role. The shared
// fixed code is a weak trust boundary kept for compatibility; the comparison
// is at least constant-time.
func (s *AuthService) VerifyElevationCode(code string) bool {
	if s.elevationCode == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(code)), []byte(s.elevationCode)) == 1
}

// NormalizeEmail lowercases and trims an email so case and whitespace
// variants collapse onto one login key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validEmail checks the required shape: exactly one @ with non-empty local
// and domain parts.
func validEmail(email string) bool {
	local, dom, ok := strings.Cut(email, "@")
	return ok && local != "" && dom != "" && !strings.Contains(dom, "@")
}
