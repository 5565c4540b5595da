package ports

import (
	"context"

	"github.com/mlvx/limitwatch/internal/domain"
)

// AccountRepository is the durable, ordered account store. List returns
// accounts in user priority order; only Reorder changes that order.
type AccountRepository interface {
	GetByID(ctx context.Context, id domain.AccountID) (domain.Account, error)
	GetByKey(ctx context.Context, key string) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	// Add appends a new account and fails with domain.ErrDuplicateKey
	// when the key is already stored, leaving the store untouched.
	Add(ctx context.Context, account domain.Account) error
	// Save updates an existing account in place, preserving order.
	Save(ctx context.Context, account domain.Account) error
	Remove(ctx context.Context, id domain.AccountID) error
	Reorder(ctx context.Context, from, to int) error
}

// ActiveStateRepository holds the marker for the account presumed to be
// authenticated in the watched session. The marker is a weak reference
// by key; it may point at a key that no longer exists.
type ActiveStateRepository interface {
	ActiveKey(ctx context.Context) (string, error)
	SetActiveKey(ctx context.Context, key string) error
}
