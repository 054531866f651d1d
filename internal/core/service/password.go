package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/todolist/task-service/internal/core/domain"
)

// MinBcryptCost is the floor for the hashing work factor.
const MinBcryptCost = 10

// bcrypt digests start with one of these version tags.
var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// PasswordHasher wraps bcrypt with a configurable cost and a guard against
// accidentally hashing a digest a second time.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < MinBcryptCost {
		cost = MinBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash produces a salted one-way digest of secret. Each call salts
// independently, so two hashes of the same secret differ. A value that
// already looks like a bcrypt digest is refused: re-hashing would silently
// lock the account behind a digest of a digest.
func (h *PasswordHasher) Hash(secret string) (string, error) {
	if isHashed(secret) {
		return "", domain.ErrAlreadyHashed
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether secret matches digest. A mismatch is a plain false;
// only a malformed digest is unusual, and it also reports false.
func (h *PasswordHasher) Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}

func isHashed(s string) bool {
	for _, p := range bcryptPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
