package handler

import "github.com/todolist/task-service/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	// ElevationCode is optional; a matching value grants the admin role.
	ElevationCode string `json:"elevation_code,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// publicUser is the identity view returned to clients. It exists so the
// password digest can never leak through a serializer change on domain.User.
type publicUser struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
}

func toPublicUser(u *domain.User) publicUser {
	return publicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

type authResponse struct {
	Token string     `json:"token"`
	User  publicUser `json:"user"`
}

// --- Tasks ---

type createTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type updateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

type setCompletedRequest struct {
	Completed bool `json:"completed"`
}

// --- Admin ---

type verifyCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

type verifyCodeResponse struct {
	Valid bool `json:"valid"`
}
