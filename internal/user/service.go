package user

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ritualnet/backend/internal/auth"
	"github.com/ritualnet/backend/internal/domain"
	"github.com/ritualnet/backend/internal/logger"
	"github.com/ritualnet/backend/internal/metrics"
	"github.com/ritualnet/backend/internal/repository"
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 8

// Profile is an account's own view of itself: balances plus owned items.
type Profile struct {
	User  *domain.User      `json:"user"`
	Items []domain.UserItem `json:"items"`
}

// Service defines the interface for account operations
type Service interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetProfile(ctx context.Context, userID int64) (*Profile, error)
}

// Inventory is the slice of the ownership ledger the profile needs.
type Inventory interface {
	ListOwned(ctx context.Context, userID int64) ([]domain.UserItem, error)
}

type service struct {
	repo        repository.Users
	inventory   Inventory
	issuer      *auth.Issuer
	adminEmails map[string]struct{}
}

// NewService creates a new user service. adminEmails lists accounts whose
// login tokens carry the admin role.
func NewService(repo repository.Users, inventory Inventory, issuer *auth.Issuer, adminEmails []string) Service {
	admins := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		admins[strings.ToLower(email)] = struct{}{}
	}
	return &service{
		repo:        repo,
		inventory:   inventory,
		issuer:      issuer,
		adminEmails: admins,
	}
}

// Register creates a new account with zero balances.
func (s *service) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" {
		return nil, fmt.Errorf("%w: username and email are required", domain.ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}
	if len(password) < MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, username, email, string(hash))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	metrics.UsersRegistered.Inc()
	log.Info("User registered", "user_id", user.ID, "username", username)
	return user, nil
}

// Login verifies credentials and returns a signed access token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	roles := []string{auth.RoleUser}
	if _, ok := s.adminEmails[email]; ok {
		roles = append(roles, auth.RoleAdmin)
	}

	token, err := s.issuer.IssueToken(user.ID, roles)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	log.Info("User logged in", "user_id", user.ID)
	return token, nil
}

func (s *service) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	items, err := s.inventory.ListOwned(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Profile{User: user, Items: items}, nil
}
