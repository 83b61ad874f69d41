package service

import (
	"context"
	"errors"

	"github.com/Kennedy87670/Microservcies-Employee-management-system/pkg/auth"
	"github.com/Kennedy87670/Microservcies-Employee-management-system/services/auth-service/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown username and wrong
	// password; callers must not learn which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrConflict is a unique-index violation the store could not
	// attribute to a field; Register resolves it to username or email.
	ErrConflict          = errors.New("duplicate value")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrUserNotFound      = errors.New("user not found")
)

// UserStore is the credential persistence contract the service needs.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	ByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type AuthSvc struct {
	repo   UserStore
	tokens *auth.TokenManager
}

func NewAuthSvc(repo UserStore, tokens *auth.TokenManager) *AuthSvc {
	return &AuthSvc{repo: repo, tokens: tokens}
}

// Result is what both login and registration hand back to the transport.
type Result struct {
	Token    string
	Username string
	Role     string
}

func (s *AuthSvc) Login(ctx context.Context, username, password string) (*Result, error) {
	u, err := s.repo.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(u.Username, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &Result{Token: token, Username: u.Username, Role: string(u.Role)}, nil
}

func (s *AuthSvc) Register(ctx context.Context, username, password, email, role string) (*Result, error) {
	if taken, err := s.repo.ExistsByUsername(ctx, username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateUsername
	}
	if taken, err := s.repo.ExistsByEmail(ctx, email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Role:         domain.Role(role),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		// A conflict here means the pre-checks raced a concurrent
		// registration; name the field that actually collided.
		if errors.Is(err, ErrConflict) {
			if taken, cerr := s.repo.ExistsByUsername(ctx, username); cerr == nil && taken {
				return nil, ErrDuplicateUsername
			}
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	token, err := s.tokens.Issue(u.Username, string(u.Role))
	if err != nil {
		return nil, err
	}
	return &Result{Token: token, Username: u.Username, Role: string(u.Role)}, nil
}
