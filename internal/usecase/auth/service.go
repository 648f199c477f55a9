package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hirex/internal/domain/user"
	"hirex/internal/pkg/token"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type Usecase interface {
	Register(ctx context.Context, email, password string) (TokenPair, error)
	Login(ctx context.Context, email, password string) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Service struct {
	users  user.Repository
	tokens token.Service
}

func NewService(users user.Repository, tokens token.Service) *Service {
	return &Service{users: users, tokens: tokens}
}

func (s *Service) Register(ctx context.Context, email, password string) (TokenPair, error) {
	email = normalizeEmail(email)
	if email == "" || !isValidPassword(password) {
		return TokenPair{}, ErrInvalidInput
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	if exists {
		return TokenPair{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return TokenPair{}, ErrInternal
	}

	u := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return TokenPair{}, ErrInternal
	}

	return s.issue(u)
}

func (s *Service) Login(ctx context.Context, email, password string) (TokenPair, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return TokenPair{}, ErrInvalidCredentials
	}

	u, found, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	if !found {
		return TokenPair{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	return s.issue(u)
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	_ = ctx
	claims, err := s.tokens.ValidateRefreshToken(strings.TrimSpace(refreshToken))
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	// Refresh tokens carry only the subject id.
	return s.issue(user.User{ID: claims.UserID})
}

func (s *Service) issue(u user.User) (TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(u.ID, u.Email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := s.tokens.GenerateRefreshToken(u.ID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") || strings.ContainsAny(email, " \t") {
		return ""
	}
	return email
}

func isValidPassword(p string) bool {
	return len(p) >= 8 && len(p) <= 72
}
