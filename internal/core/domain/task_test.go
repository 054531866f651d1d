package domain

import (
	"testing"
	"time"
)

func TestScopeFilter(t *testing.T) {
	base := TaskFilter{From: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}

	scoped := ScopeFilter(Identity{ID: "u1", Role: RoleUser}, base)
	if scoped.OwnerID != "u1" {
		t.Fatalf("user filter not pinned to owner: %+v", scoped)
	}
	if scoped.From != base.From {
		t.Fatalf("base filter fields must be preserved: %+v", scoped)
	}

	admin := ScopeFilter(Identity{ID: "a1", Role: RoleAdmin}, base)
	if admin.OwnerID != "" {
		t.Fatalf("admin filter must not be owner-restricted: %+v", admin)
	}

	// a user filter already naming another owner is still forced to self
	foreign := ScopeFilter(Identity{ID: "u1", Role: RoleUser}, TaskFilter{OwnerID: "u2"})
	if foreign.OwnerID != "u1" {
		t.Fatalf("user must not query another owner: %+v", foreign)
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"user", "admin"} {
		if _, err := ParseRole(valid); err != nil {
			t.Fatalf("ParseRole(%q): %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "root", "Admin", "superuser"} {
		if _, err := ParseRole(invalid); err == nil {
			t.Fatalf("ParseRole(%q) should fail", invalid)
		}
	}
}
