package repository

import (
	"context"

	"usdt_banc/internal/domain"
)

// AccountStore owns account records. Email uniqueness is enforced by the
// store itself, atomically with creation, so two concurrent signups with the
// same email can never both succeed.
type AccountStore interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
}

// LedgerStore applies balance changes. Each Debit/Credit is a single atomic
// unit: the balance mutation and the transaction record become visible
// together or not at all, and concurrent debits on one account are
// serialized so the balance can never go negative.
type LedgerStore interface {
	// Debit decrements the account balance by tx.Amount and appends tx.
	// Returns domain.ErrInsufficientFunds when the balance does not cover
	// the amount, domain.ErrAccountNotFound for unknown accounts.
	Debit(ctx context.Context, tx *domain.Transaction) (newBalance float64, err error)

	// Credit increments the account balance by tx.Amount and appends tx.
	Credit(ctx context.Context, tx *domain.Transaction) (newBalance float64, err error)

	// ListByAccount returns the account's transactions, newest first.
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.Transaction, error)

	// CountByAccount returns the total number of transactions for an account.
	CountByAccount(ctx context.Context, accountID string) (int64, error)
}
