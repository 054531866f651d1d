package domain

import (
	"errors"
	"time"
)

// Role is the closed set of authorization roles. Keeping it a typed string
// means an unrecognized value can only enter through ParseRole, which rejects it.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole validates a raw role string against the closed enumeration.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrUnknownRole
}

var (
	ErrValidation         = errors.New("invalid input")
	ErrUnknownRole        = errors.New("unknown role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyHashed      = errors.New("value is already a password digest")

	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")

	ErrForbidden        = errors.New("access forbidden")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// User models a registered identity. PasswordHash never serializes.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated principal resolved from a verified token.
type Identity struct {
	ID    string
	Email string
	Role  Role
}

// IsAdmin reports whether the identity holds the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Claims is the payload embedded in a session token.
type Claims struct {
	UserID    string
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Identity converts verified claims into the principal attached to a request.
func (c Claims) Identity() Identity {
	return Identity{ID: c.UserID, Email: c.Email, Role: c.Role}
}
