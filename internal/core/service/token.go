package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/todolist/task-service/internal/core/domain"
)

// DefaultTokenTTL is the session lifetime when none is configured.
const DefaultTokenTTL = 7 * 24 * time.Hour

// tokenClaims is the wire shape of a session token payload.
type tokenClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies HS256-signed session tokens. Tokens are
// stateless: once issued they stay valid until expiry, with no revocation.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token carrying the user's id, email and role, expiring
// ttl from now.
func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := t.now().UTC()
	claims := tokenClaims{
		Email: user.Email,
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses and validates a token, returning the embedded claims.
// Failures map onto the three-way taxonomy: malformed, bad signature,
// expired. Anything else unexpected is reported as malformed.
func (t *TokenIssuer) Verify(token string) (*domain.Claims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignatureInvalid
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenMalformed
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.ErrTokenMalformed
	}

	out := &domain.Claims{
		UserID: claims.Subject,
		Email:  claims.Email,
		Role:   role,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
