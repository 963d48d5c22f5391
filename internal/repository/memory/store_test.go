package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"usdt_banc/internal/domain"
)

func newAccount(id, email string, balance float64) *domain.Account {
	return &domain.Account{
		ID:    id,
		Email: email,
		Wallet: domain.Wallet{
			Address: "0x" + id,
			Balance: balance,
		},
	}
}

func TestStore_CreateAndLookup(t *testing.T) {
	store := NewStore()
	account := newAccount("acc1", "a@x.com", 0)

	if err := store.Create(context.Background(), account); err != nil {
		t.Fatalf("unexpected error on Create: %v", err)
	}
	got, err := store.GetByEmail(context.Background(), "a@x.com")
	if err != nil {
		t.Fatalf("unexpected error on GetByEmail: %v", err)
	}
	if got.ID != "acc1" || got.Wallet.Balance != 0 {
		t.Errorf("expected account %+v, got %+v", account, got)
	}
	if _, err := store.GetByID(context.Background(), "acc1"); err != nil {
		t.Errorf("unexpected error on GetByID: %v", err)
	}
}

func TestStore_DuplicateEmail(t *testing.T) {
	store := NewStore()
	_ = store.Create(context.Background(), newAccount("acc1", "a@x.com", 0))

	err := store.Create(context.Background(), newAccount("acc2", "a@x.com", 0))
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestStore_ConcurrentDuplicateSignups(t *testing.T) {
	store := NewStore()
	const n = 50

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.Create(context.Background(), newAccount(fmt.Sprintf("acc%d", i), "same@x.com", 0))
		}(i)
	}
	wg.Wait()

	success := 0
	for _, err := range errs {
		if err == nil {
			success++
		} else if !errors.Is(err, domain.ErrEmailTaken) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if success != 1 {
		t.Errorf("expected exactly 1 successful signup, got %d", success)
	}
}

func TestStore_CaseSensitiveEmailLookup(t *testing.T) {
	store := NewStore()
	_ = store.Create(context.Background(), newAccount("acc1", "a@x.com", 0))

	if _, err := store.GetByEmail(context.Background(), "A@X.COM"); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected exact-match lookup to miss, got %v", err)
	}
}

func TestStore_DebitInsufficientFunds(t *testing.T) {
	store := NewStore()
	_ = store.Create(context.Background(), newAccount("acc1", "a@x.com", 60))

	_, err := store.Debit(context.Background(), &domain.Transaction{
		ID: "tx1", AccountID: "acc1", Type: domain.TxWithdrawal, Amount: 61,
	})
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	got, _ := store.GetByID(context.Background(), "acc1")
	if got.Wallet.Balance != 60 {
		t.Errorf("expected balance unchanged at 60, got %f", got.Wallet.Balance)
	}
	count, _ := store.CountByAccount(context.Background(), "acc1")
	if count != 0 {
		t.Errorf("expected no records after failed debit, got %d", count)
	}
}

func TestStore_DebitExactBalance(t *testing.T) {
	store := NewStore()
	_ = store.Create(context.Background(), newAccount("acc1", "a@x.com", 60))

	newBalance, err := store.Debit(context.Background(), &domain.Transaction{
		ID: "tx1", AccountID: "acc1", Type: domain.TxWithdrawal, Amount: 60,
	})
	if err != nil {
		t.Fatalf("unexpected error on Debit: %v", err)
	}
	if newBalance != 0 {
		t.Errorf("expected balance 0, got %f", newBalance)
	}
}

func TestStore_ConcurrentDebitsNeverNegative(t *testing.T) {
	store := NewStore()
	_ = store.Create(context.Background(), newAccount("acc1", "a@x.com", 100))

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Only three of these 30-unit debits can fit in 100.
			_, _ = store.Debit(context.Background(), &domain.Transaction{
				ID: fmt.Sprintf("tx%d", i), AccountID: "acc1", Type: domain.TxWithdrawal, Amount: 30,
			})
		}(i)
	}
	wg.Wait()

	got, _ := store.GetByID(context.Background(), "acc1")
	if got.Wallet.Balance < 0 {
		t.Fatalf("balance went negative: %f", got.Wallet.Balance)
	}
	count, _ := store.CountByAccount(context.Background(), "acc1")
	if float64(count)*30 != 100-got.Wallet.Balance {
		t.Errorf("balance %f inconsistent with %d debit records", got.Wallet.Balance, count)
	}
}

func TestStore_ListByAccountNewestFirst(t *testing.T) {
	store := NewStore()
	_ = store.Create(context.Background(), newAccount("acc1", "a@x.com", 0))

	for _, id := range []string{"tx1", "tx2", "tx3"} {
		_, _ = store.Credit(context.Background(), &domain.Transaction{
			ID: id, AccountID: "acc1", Type: domain.TxPurchase, Amount: 10,
		})
	}

	txs, err := store.ListByAccount(context.Background(), "acc1", 2, 0)
	if err != nil {
		t.Fatalf("unexpected error on ListByAccount: %v", err)
	}
	if len(txs) != 2 || txs[0].ID != "tx3" || txs[1].ID != "tx2" {
		t.Errorf("expected [tx3 tx2], got %+v", txs)
	}

	txs, _ = store.ListByAccount(context.Background(), "acc1", 2, 2)
	if len(txs) != 1 || txs[0].ID != "tx1" {
		t.Errorf("expected [tx1] on second page, got %+v", txs)
	}
}
