package ports

import (
	"context"

	"github.com/todolist/task-service/internal/core/domain"
)

// SignupInput carries everything a registration needs. ElevationCode is the
// optional out-of-band secret that grants the admin role.
type SignupInput struct {
	Name          string
	Email         string
	Password      string
	ElevationCode string
}

// AuthResult is returned on successful signup or login.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService defines the registration and login use cases.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// VerifyElevationCode reports whether code would grant the admin role.
	VerifyElevationCode(code string) bool
}

// TokenVerifier validates a session token and returns its claims. Tokens are
// self-contained: no store lookup happens at verification time.
type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}

// LoginThrottle rate-limits login attempts per login key. Implementations
// must fail open: an unavailable backend should never lock out logins.
type LoginThrottle interface {
	Allow(ctx context.Context, email string) bool
}
