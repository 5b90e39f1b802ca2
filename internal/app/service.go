package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/JoseMolina94/youtube-api-integration/internal/auth"
	"github.com/JoseMolina94/youtube-api-integration/internal/domain"
	"github.com/JoseMolina94/youtube-api-integration/internal/metrics"
)

const minPasswordLength = 6

// Service implements domain.AppService.
type Service struct {
	users  domain.UserRepository
	tokens *auth.TokenService
}

// NewService creates the application layer service.
func NewService(users domain.UserRepository, tokens *auth.TokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register validates the input, hashes the password, and persists a new user
// with empty lists. The plaintext password never reaches the repository.
func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if err := validateRegistration(name, email, password); err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("register", "invalid").Inc()
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, name, email, hash)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			metrics.AuthAttemptsTotal.WithLabelValues("register", "duplicate").Inc()
		}
		return nil, err
	}

	metrics.AuthAttemptsTotal.WithLabelValues("register", "success").Inc()
	slog.Info("User registered", "user_id", user.ID.String())
	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password both collapse into domain.ErrInvalidCredentials so callers
// cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil || !auth.CheckPassword(user.PasswordHash, password) {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	slog.Info("User logged in", "user_id", user.ID.String())
	return token, user, nil
}

// CurrentUser resolves the authenticated user's record.
func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// AddListItem appends itemID to the user's list, idempotently.
func (s *Service) AddListItem(ctx context.Context, userID uuid.UUID, list domain.List, itemID string) ([]string, error) {
	items, err := s.users.AddToList(ctx, userID, list, itemID)
	if err != nil {
		return nil, err
	}
	metrics.ListMutationsTotal.WithLabelValues(string(list), "add").Inc()
	return items, nil
}

// RemoveListItem removes itemID from the user's list; absent items are a no-op.
func (s *Service) RemoveListItem(ctx context.Context, userID uuid.UUID, list domain.List, itemID string) ([]string, error) {
	items, err := s.users.RemoveFromList(ctx, userID, list, itemID)
	if err != nil {
		return nil, err
	}
	metrics.ListMutationsTotal.WithLabelValues(string(list), "remove").Inc()
	return items, nil
}

// ListItems returns the user's list unmodified.
func (s *Service) ListItems(ctx context.Context, userID uuid.UUID, list domain.List) ([]string, error) {
	return s.users.GetList(ctx, userID, list)
}

func validateRegistration(name, email, password string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return domain.ErrMissingName
	case email == "" || !strings.Contains(email, "@"):
		return domain.ErrInvalidEmail
	case len(password) < minPasswordLength:
		return domain.ErrPasswordTooShort
	}
	return nil
}
