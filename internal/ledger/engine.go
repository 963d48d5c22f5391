package ledger

import (
	"context"
	"time"

	"usdt_banc/internal/auth"
	"usdt_banc/internal/domain"
	"usdt_banc/internal/repository"

	"github.com/google/uuid"     // Transaction IDs
	"github.com/sirupsen/logrus" // Logging library
)

// Engine applies balance-changing operations. It re-verifies the withdrawal
// password before any fund movement and delegates the atomic
// balance-plus-record unit to the ledger store, so no caller can observe a
// new balance without its transaction record.
type Engine struct {
	store repository.LedgerStore
}

// NewEngine builds an engine over a ledger store.
func NewEngine(store repository.LedgerStore) *Engine {
	return &Engine{store: store}
}

// Withdraw moves funds out of the wallet. It fails with
// domain.ErrWrongWithdrawalPassword before touching any state when the
// presented password does not match, with domain.ErrInvalidAmount for
// non-positive amounts, and with domain.ErrInsufficientFunds when the wallet
// cannot cover the amount. On success it returns the appended record and the
// new balance.
func (e *Engine) Withdraw(ctx context.Context, account *domain.Account, amount float64, destinationAddress, withdrawalPassword string) (*domain.Transaction, float64, error) {
	// Credential check comes first: a wrong password must leave no trace.
	if !auth.CheckPassword(withdrawalPassword, account.WithdrawalPasswordHash) {
		return nil, 0, domain.ErrWrongWithdrawalPassword
	}
	if amount <= 0 {
		return nil, 0, domain.ErrInvalidAmount
	}

	tx := &domain.Transaction{
		ID:                 uuid.NewString(),
		AccountID:          account.ID,
		Type:               domain.TxWithdrawal,
		Amount:             amount,
		DestinationAddress: destinationAddress,
		Status:             domain.StatusCompleted,
		CreatedAt:          time.Now().UTC(),
	}
	newBalance, err := e.store.Debit(ctx, tx)
	if err != nil {
		return nil, 0, err
	}
	// Log successful withdrawal
	logrus.WithFields(logrus.Fields{
		"account_id":     account.ID,
		"transaction_id": tx.ID,
		"amount":         amount,
		"type":           domain.TxWithdrawal,
		"new_balance":    newBalance,
	}).Info("Withdrawal completed")
	return tx, newBalance, nil
}

// Purchase credits the wallet with a bought amount. Payment capture is
// simulated; only the internal ledger effect is recorded. Fails with
// domain.ErrInvalidAmount for non-positive amounts.
func (e *Engine) Purchase(ctx context.Context, account *domain.Account, amount float64, cryptoType, paymentMethod string) (*domain.Transaction, float64, error) {
	if amount <= 0 {
		return nil, 0, domain.ErrInvalidAmount
	}

	tx := &domain.Transaction{
		ID:            uuid.NewString(),
		AccountID:     account.ID,
		Type:          domain.TxPurchase,
		Amount:        amount,
		CryptoType:    cryptoType,
		PaymentMethod: paymentMethod,
		Status:        domain.StatusCompleted,
		CreatedAt:     time.Now().UTC(),
	}
	newBalance, err := e.store.Credit(ctx, tx)
	if err != nil {
		return nil, 0, err
	}
	// Log successful purchase
	logrus.WithFields(logrus.Fields{
		"account_id":     account.ID,
		"transaction_id": tx.ID,
		"amount":         amount,
		"type":           domain.TxPurchase,
		"crypto_type":    cryptoType,
	}).Info("Purchase completed")
	return tx, newBalance, nil
}

// History returns the account's transaction records, newest first, plus the
// total record count for pagination.
func (e *Engine) History(ctx context.Context, accountID string, limit, offset int) ([]domain.Transaction, int64, error) {
	total, err := e.store.CountByAccount(ctx, accountID)
	if err != nil {
		return nil, 0, err
	}
	txs, err := e.store.ListByAccount(ctx, accountID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return txs, total, nil
}
