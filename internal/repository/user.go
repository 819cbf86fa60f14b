package repository

import (
	"context"

	"github.com/ritualnet/backend/internal/domain"
)

// Users defines persistence for account registration and lookup.
type Users interface {
	// CreateUser inserts a new user with zero balances. A duplicate email
	// surfaces as domain.ErrEmailTaken.
	CreateUser(ctx context.Context, username, email, passwordHash string) (*domain.User, error)
	// GetUserByEmail returns (nil, nil) when no account matches.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetUserByID returns (nil, nil) when no account matches.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}
