package gormstore

import (
	"context"

	"usdt_banc/internal/domain"

	"gorm.io/gorm" // GORM ORM library
)

// LedgerStore applies balance changes and appends transaction records inside
// a single database transaction, so a reader never sees one without the
// other. Debits use a guarded update (balance >= amount in the WHERE clause),
// which also serializes concurrent debits on the same row: two withdrawals
// that would jointly overdraw the wallet cannot both match.
type LedgerStore struct {
	db *gorm.DB
}

// NewLedgerStore wraps a gorm handle.
func NewLedgerStore(db *gorm.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

// Debit atomically decrements the wallet balance by tx.Amount and appends tx.
func (s *LedgerStore) Debit(ctx context.Context, tx *domain.Transaction) (float64, error) {
	var newBalance float64
	err := s.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		res := dbtx.Model(&domain.Account{}).
			Where("id = ? AND wallet_balance >= ?", tx.AccountID, tx.Amount).
			Update("wallet_balance", gorm.Expr("wallet_balance - ?", tx.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Guard matched nothing: unknown account or not enough funds.
			var count int64
			if err := dbtx.Model(&domain.Account{}).Where("id = ?", tx.AccountID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return domain.ErrAccountNotFound
			}
			return domain.ErrInsufficientFunds
		}
		if err := dbtx.Create(tx).Error; err != nil {
			return err // Rollback undoes the balance change
		}
		var account domain.Account
		if err := dbtx.Where("id = ?", tx.AccountID).First(&account).Error; err != nil {
			return err
		}
		newBalance = account.Wallet.Balance
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Credit atomically increments the wallet balance by tx.Amount and appends tx.
func (s *LedgerStore) Credit(ctx context.Context, tx *domain.Transaction) (float64, error) {
	var newBalance float64
	err := s.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		res := dbtx.Model(&domain.Account{}).
			Where("id = ?", tx.AccountID).
			Update("wallet_balance", gorm.Expr("wallet_balance + ?", tx.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAccountNotFound
		}
		if err := dbtx.Create(tx).Error; err != nil {
			return err // Rollback undoes the balance change
		}
		var account domain.Account
		if err := dbtx.Where("id = ?", tx.AccountID).First(&account).Error; err != nil {
			return err
		}
		newBalance = account.Wallet.Balance
		return nil
	})
	if err != nil {
		return 0, err
	}
	return newBalance, nil
}

// ListByAccount returns the account's transactions, newest first.
func (s *LedgerStore) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	err := s.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// CountByAccount returns the total number of transactions for an account.
func (s *LedgerStore) CountByAccount(ctx context.Context, accountID string) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&domain.Transaction{}).
		Where("account_id = ?", accountID).
		Count(&total).Error
	return total, err
}
