package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/todolist/task-service/internal/core/domain"
	"github.com/todolist/task-service/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
	// raceOnInsert simulates a concurrent registration winning between the
	// service's pre-check and the write: Insert fails on the unique index.
	raceOnInsert bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.raceOnInsert {
		return nil, domain.ErrUserExists
	}
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	created := cloneUser(user)
	created.ID = "id-" + user.Email
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubThrottle struct {
	allow bool
}

func (t *stubThrottle) Allow(context.Context, string) bool { return t.allow }

func newTestAuthService(repo ports.UserRepository, throttle ports.LoginThrottle) *AuthService {
	hasher := NewPasswordHasher(MinBcryptCost)
	tokens := NewTokenIssuer("secret", time.Hour)
	return NewAuthService(repo, hasher, tokens, throttle, "ARUN12345", zerolog.Nop())
}

func signup(name, email, password string) ports.SignupInput {
	return ports.SignupInput{Name: name, Email: email, Password: password}
}

func TestAuthService_Signup_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	result, err := svc.Signup(context.Background(), signup("Ann", "ann@x.com", "abcdef"))
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token")
	}
	if result.User.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %s", result.User.Role)
	}
	if result.User.PasswordHash == "abcdef" {
		t.Fatalf("password stored in plaintext")
	}

	stored := repo.users["ann@x.com"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if !NewPasswordHasher(MinBcryptCost).Verify("abcdef", stored.PasswordHash) {
		t.Fatalf("stored digest does not verify")
	}
}

func TestAuthService_Signup_TokenCarriesIdentity(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	result, err := svc.Signup(context.Background(), signup("Ann", "ann@x.com", "abcdef"))
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	claims, err := svc.tokens.Verify(result.Token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.UserID != result.User.ID || claims.Email != "ann@x.com" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Signup_Validation(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	cases := []struct {
		name  string
		input ports.SignupInput
	}{
		{"missing name", signup("", "ann@x.com", "abcdef")},
		{"missing email", signup("Ann", "", "abcdef")},
		{"missing password", signup("Ann", "ann@x.com", "")},
		{"short password", signup("Ann", "ann@x.com", "abcde")},
		{"no at sign", signup("Ann", "ann.x.com", "abcdef")},
		{"two at signs", signup("Ann", "ann@@x.com", "abcdef")},
		{"empty local part", signup("Ann", "@x.com", "abcdef")},
		{"empty domain", signup("Ann", "ann@", "abcdef")},
	}

	for _, tc := range cases {
		if _, err := svc.Signup(context.Background(), tc.input); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", tc.name, err)
		}
	}
}

func TestAuthService_Signup_NormalizesEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	if _, err := svc.Signup(context.Background(), signup("Ann", "ann@x.com", "abcdef")); err != nil {
		t.Fatalf("signup: %v", err)
	}

	// case/whitespace variant of the same email must be a duplicate
	if _, err := svc.Signup(context.Background(), signup("Ann", " A@X.com ", "abcdef")); err != nil {
		// different address, should succeed
		t.Fatalf("signup variant address: %v", err)
	}
	if _, err := svc.Signup(context.Background(), signup("Ann Again", " ANN@X.com ", "abcdef")); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for case/whitespace variant, got %v", err)
	}
}

func TestAuthService_Signup_ElevationCode(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	in := signup("Boss", "boss@x.com", "abcdef")
	in.ElevationCode = "ARUN12345"
	result, err := svc.Signup(context.Background(), in)
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if result.User.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", result.User.Role)
	}

	in = signup("Peon", "peon@x.com", "abcdef")
	in.ElevationCode = "wrong"
	result, err = svc.Signup(context.Background(), in)
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if result.User.Role != domain.RoleUser {
		t.Fatalf("wrong elevation code must not grant admin, got %s", result.User.Role)
	}
}

func TestAuthService_Signup_DuplicateRace(t *testing.T) {
	repo := newStubUserRepo()
	repo.raceOnInsert = true
	svc := newTestAuthService(repo, nil)

	// the pre-check passes (store is empty) but the write loses the race;
	// the store's unique-constraint error must surface as ErrUserExists
	if _, err := svc.Signup(context.Background(), signup("Ann", "ann@x.com", "abcdef")); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists from insert race, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("losing signup must persist nothing")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	if _, err := svc.Signup(context.Background(), signup("Ann", "ann@x.com", "abcdef")); err != nil {
		t.Fatalf("signup: %v", err)
	}

	result, err := svc.Login(context.Background(), " ANN@x.com ", "abcdef")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.Token == "" || result.User.Email != "ann@x.com" {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	if _, err := svc.Signup(context.Background(), signup("Ann", "ann@x.com", "abcdef")); err != nil {
		t.Fatalf("signup: %v", err)
	}

	_, wrongPassword := svc.Login(context.Background(), "ann@x.com", "wrong!")
	_, noSuchUser := svc.Login(context.Background(), "ghost@x.com", "abcdef")

	// the two failure modes must be indistinguishable
	if !errors.Is(wrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(noSuchUser, domain.ErrInvalidCredentials) {
		t.Fatalf("missing user: expected ErrInvalidCredentials, got %v", noSuchUser)
	}
	if wrongPassword.Error() != noSuchUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", wrongPassword, noSuchUser)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubThrottle{allow: false})

	if _, err := svc.Signup(context.Background(), signup("Ann", "ann@x.com", "abcdef")); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := svc.Login(context.Background(), "ann@x.com", "abcdef"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected throttled login to fail generically, got %v", err)
	}
}

func TestAuthService_VerifyElevationCode(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	if !svc.VerifyElevationCode("ARUN12345") {
		t.Fatalf("expected code to verify")
	}
	if !svc.VerifyElevationCode(" ARUN12345 ") {
		t.Fatalf("expected trimmed code to verify")
	}
	if svc.VerifyElevationCode("nope") {
		t.Fatalf("expected wrong code to fail")
	}

	unset := NewAuthService(newStubUserRepo(), NewPasswordHasher(MinBcryptCost), NewTokenIssuer("secret", time.Hour), nil, "", zerolog.Nop())
	if unset.VerifyElevationCode("") {
		t.Fatalf("empty configured code must never verify")
	}
}
