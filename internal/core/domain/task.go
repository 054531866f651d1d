package domain

import (
	"errors"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

// Task is an owned resource. UserID is set at creation and never changes.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	// Owner is populated on admin-wide listings so aggregate views can show
	// who a task belongs to without a second lookup.
	Owner *User `json:"owner,omitempty"`
}

// TaskFilter narrows task queries. Zero values mean "no constraint".
type TaskFilter struct {
	OwnerID   string
	Completed *bool
	From      time.Time
	To        time.Time
}

// ScopeFilter applies the ownership policy to a base filter: admins query
// server-wide, everyone else is pinned to their own records. This is the
// single place the rule lives; every task read and write goes through it.
func ScopeFilter(identity Identity, filter TaskFilter) TaskFilter {
	if identity.IsAdmin() {
		return filter
	}
	filter.OwnerID = identity.ID
	return filter
}
