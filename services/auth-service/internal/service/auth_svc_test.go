package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/auth"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/auth-service/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users map[string]*domain.User // by username
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*domain.User{}}
}

func (s *fakeUserStore) Create(_ context.Context, u *domain.User) error {
	for _, x := range s.users {
		if x.Username == u.Username || x.Email == u.Email {
			return ErrConflict
		}
	}
	s.users[u.Username] = u
	return nil
}

func (s *fakeUserStore) ByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := s.users[username]
	return ok, nil
}

func (s *fakeUserStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range s.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func newSvc(t *testing.T) (*AuthSvc, *fakeUserStore, *auth.TokenManager) {
	t.Helper()
	store := newFakeUserStore()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthSvc(store, tokens), store, tokens
}

func seedUser(t *testing.T, store *fakeUserStore, username, password, email string, role domain.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	store.users[username] = &domain.User{
		ID:           username + "-id",
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Role:         role,
	}
}

func TestLoginIssuesTokenWithRole(t *testing.T) {
	svc, store, tokens := newSvc(t)
	seedUser(t, store, "testuser", "password123", "test@example.com", domain.RoleEmployee)

	res, err := svc.Login(context.Background(), "testuser", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := tokens.Validate(res.Token)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if claims.Sub != "testuser" || claims.Role != "EMPLOYEE" {
		t.Errorf("claims = (%s, %s)", claims.Sub, claims.Role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, store, _ := newSvc(t)
	seedUser(t, store, "testuser", "password123", "test@example.com", domain.RoleEmployee)

	res, err := svc.Login(context.Background(), "testuser", "wrongpassword")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
	if res != nil {
		t.Error("a token was issued for a failed login")
	}
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _, _ := newSvc(t)

	// Unknown user and wrong password must be indistinguishable.
	_, err := svc.Login(context.Background(), "ghost", "password123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterHashesAndIssues(t *testing.T) {
	svc, store, tokens := newSvc(t)

	res, err := svc.Register(context.Background(), "newuser", "password123", "new@example.com", "MANAGER")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	claims, err := tokens.Validate(res.Token)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if claims.Sub != "newuser" || claims.Role != "MANAGER" {
		t.Errorf("claims = (%s, %s)", claims.Sub, claims.Role)
	}

	u := store.users["newuser"]
	if u == nil {
		t.Fatal("credential not persisted")
	}
	if u.PasswordHash == "password123" {
		t.Error("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password123")) != nil {
		t.Error("stored hash does not match password")
	}
}

// staleUserStore reports the email as free until the first create attempt,
// simulating a concurrent registration committing between the pre-check
// and the insert.
type staleUserStore struct {
	*fakeUserStore
	raced bool
}

func (s *staleUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if !s.raced {
		return false, nil
	}
	return s.fakeUserStore.ExistsByEmail(ctx, email)
}

func (s *staleUserStore) Create(ctx context.Context, u *domain.User) error {
	s.raced = true
	return ErrConflict
}

func TestRegisterLostRaceNamesConflictingField(t *testing.T) {
	inner := newFakeUserStore()
	seedUser(t, inner, "other", "pw", "taken@example.com", domain.RoleEmployee)
	store := &staleUserStore{fakeUserStore: inner}
	svc := NewAuthSvc(store, auth.NewTokenManager("test-secret", time.Hour))

	// Fresh username, email that a concurrent writer just committed.
	_, err := svc.Register(context.Background(), "newuser", "pw", "taken@example.com", "EMPLOYEE")
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("got %v, want ErrDuplicateEmail", err)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	svc, store, _ := newSvc(t)
	seedUser(t, store, "taken", "pw", "taken@example.com", domain.RoleEmployee)

	if _, err := svc.Register(context.Background(), "taken", "pw2", "other@example.com", "EMPLOYEE"); !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("duplicate username: got %v", err)
	}
	if _, err := svc.Register(context.Background(), "other", "pw2", "taken@example.com", "EMPLOYEE"); !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("duplicate email: got %v", err)
	}
	if len(store.users) != 1 {
		t.Errorf("store mutated by failed registration: %d users", len(store.users))
	}
}
