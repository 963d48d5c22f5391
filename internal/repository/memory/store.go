package memory

import (
	"context"
	"sync"

	"usdt_banc/internal/domain"
)

// Store is a mutex-guarded in-memory implementation of both the account
// registry and the ledger. A single lock covers balance mutation and record
// append, which makes each Debit/Credit indivisible and serializes
// concurrent operations on the same account.
type Store struct {
	mu         sync.RWMutex
	accounts   map[string]*domain.Account      // keyed by account ID
	emailIndex map[string]string               // email -> account ID
	ledger     map[string][]domain.Transaction // account ID -> records, oldest first
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		accounts:   make(map[string]*domain.Account),
		emailIndex: make(map[string]string),
		ledger:     make(map[string][]domain.Transaction),
	}
}

// Create registers a new account. The email check and the insert happen under
// one lock, so concurrent duplicate signups cannot both succeed.
func (s *Store) Create(ctx context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.emailIndex[account.Email]; exists {
		return domain.ErrEmailTaken
	}
	cp := *account
	s.accounts[cp.ID] = &cp
	s.emailIndex[cp.Email] = cp.ID
	return nil
}

// GetByEmail looks an account up by its login identity (exact match).
func (s *Store) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, exists := s.emailIndex[email]
	if !exists {
		return nil, domain.ErrAccountNotFound
	}
	cp := *s.accounts[id]
	return &cp, nil
}

// GetByID looks an account up by its ID.
func (s *Store) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, exists := s.accounts[id]
	if !exists {
		return nil, domain.ErrAccountNotFound
	}
	cp := *account
	return &cp, nil
}

// Debit decrements the wallet balance and appends the record atomically.
func (s *Store) Debit(ctx context.Context, tx *domain.Transaction) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, exists := s.accounts[tx.AccountID]
	if !exists {
		return 0, domain.ErrAccountNotFound
	}
	if account.Wallet.Balance < tx.Amount {
		return 0, domain.ErrInsufficientFunds
	}
	account.Wallet.Balance -= tx.Amount
	s.ledger[tx.AccountID] = append(s.ledger[tx.AccountID], *tx)
	return account.Wallet.Balance, nil
}

// Credit increments the wallet balance and appends the record atomically.
func (s *Store) Credit(ctx context.Context, tx *domain.Transaction) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, exists := s.accounts[tx.AccountID]
	if !exists {
		return 0, domain.ErrAccountNotFound
	}
	account.Wallet.Balance += tx.Amount
	s.ledger[tx.AccountID] = append(s.ledger[tx.AccountID], *tx)
	return account.Wallet.Balance, nil
}

// ListByAccount returns the account's transactions, newest first.
func (s *Store) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.ledger[accountID]
	var result []domain.Transaction
	for i := len(records) - 1 - offset; i >= 0 && len(result) < limit; i-- {
		result = append(result, records[i])
	}
	return result, nil
}

// CountByAccount returns the total number of transactions for an account.
func (s *Store) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.ledger[accountID])), nil
}
