package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"newsdesk/internal/config"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/pkg/validate"
	"newsdesk/internal/repository"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(u *entity.User) (string, time.Time, error)
}

// RegisterInput is the payload of Register.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     entity.Role
}

// LoginResult is returned by Login on success.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// Service provides the authentication use cases.
type Service struct {
	Repo   repository.UserRepository
	Tokens TokenIssuer
	Config config.AuthConfig
}

// HashPassword bcrypt-hashes password. A cost below bcrypt.MinCost uses bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateCredentials(email, password string) error {
	fields := entity.ValidationErrors{}
	switch {
	case email == "":
		fields["email"] = "email is required"
	case !validate.Email(email):
		fields["email"] = "email must be a valid email address"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}

// Register creates a new account. The allow-list is checked before any lookup.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	email := normalizeEmail(in.Email)
	if err := validateCredentials(email, in.Password); err != nil {
		return nil, err
	}
	if !s.Config.Allowed(email) {
		return nil, ErrForbidden
	}
	role := in.Role
	if role == "" {
		role = entity.RoleAdmin
	}
	if !role.Valid() {
		return nil, entity.FieldError("role", "role must be admin, editor or author")
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := HashPassword(in.Password, s.Config.BcryptCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(in.Name),
		Role:         role,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Login verifies the password and issues a token.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	if err := validateCredentials(email, password); err != nil {
		return nil, err
	}
	if !s.Config.Allowed(email) {
		return nil, ErrForbidden
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.Issue(u)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}

// Me loads the account behind a token subject.
func (s *Service) Me(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
