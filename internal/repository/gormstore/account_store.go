package gormstore

import (
	"context"
	"errors"

	"usdt_banc/internal/domain"

	"gorm.io/gorm" // GORM ORM library
)

// AccountStore is the MySQL-backed account registry. The unique index on the
// email column makes duplicate detection atomic with creation.
type AccountStore struct {
	db *gorm.DB
}

// NewAccountStore wraps a gorm handle. The handle must be opened with
// TranslateError so duplicate-key violations surface as gorm.ErrDuplicatedKey.
func NewAccountStore(db *gorm.DB) *AccountStore {
	return &AccountStore{db: db}
}

// Create persists a new account, failing with domain.ErrEmailTaken when the
// email is already registered.
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	if err := s.db.WithContext(ctx).Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

// GetByEmail looks an account up by its login identity (exact match).
func (s *AccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var account domain.Account
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// GetByID looks an account up by its ID.
func (s *AccountStore) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	var account domain.Account
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}
