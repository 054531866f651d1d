package service

import (
	"errors"
	"testing"

	"github.com/todolist/task-service/internal/core/domain"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(MinBcryptCost)

	digest, err := h.Hash("abcdef")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if digest == "abcdef" {
		t.Fatalf("digest equals plaintext")
	}
	if !h.Verify("abcdef", digest) {
		t.Fatalf("verify failed for correct secret")
	}
	if h.Verify("abcdeg", digest) {
		t.Fatalf("verify passed for wrong secret")
	}
}

func TestPasswordHasher_SaltUniqueness(t *testing.T) {
	h := NewPasswordHasher(MinBcryptCost)

	first, err := h.Hash("samesecret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := h.Hash("samesecret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatalf("two hashes of the same secret are identical")
	}
	if !h.Verify("samesecret", first) || !h.Verify("samesecret", second) {
		t.Fatalf("both digests should verify against the secret")
	}
}

func TestPasswordHasher_RefusesRehash(t *testing.T) {
	h := NewPasswordHasher(MinBcryptCost)

	digest, err := h.Hash("abcdef")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if _, err := h.Hash(digest); !errors.Is(err, domain.ErrAlreadyHashed) {
		t.Fatalf("expected ErrAlreadyHashed, got %v", err)
	}
}

func TestPasswordHasher_CostFloor(t *testing.T) {
	h := NewPasswordHasher(1)
	if h.cost != MinBcryptCost {
		t.Fatalf("expected cost floor %d, got %d", MinBcryptCost, h.cost)
	}
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	h := NewPasswordHasher(MinBcryptCost)
	if h.Verify("abcdef", "not-a-digest") {
		t.Fatalf("verify passed for malformed digest")
	}
}
