package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"usdt_banc/internal/auth"
	"usdt_banc/internal/domain"
	"usdt_banc/internal/ledger"
	"usdt_banc/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []string
}

func (m *recordingMailer) SendPasswordReset(email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, email)
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func newService(t *testing.T) (*AccountService, *recordingMailer) {
	t.Helper()
	store := memory.NewStore()
	mailer := &recordingMailer{}
	svc := NewAccountService(
		store,
		ledger.NewEngine(store),
		auth.NewTokenIssuer("test-secret", time.Hour),
		mailer,
	)
	return svc, mailer
}

func signupInput() SignupInput {
	return SignupInput{
		Name:               "A",
		Email:              "a@x.com",
		Password:           "p1-secret",
		WithdrawalPassword: "p2-secret",
		AgreeTerms:         true,
	}
}

func TestSignup_TermsRequired(t *testing.T) {
	svc, _ := newService(t)
	in := signupInput()
	in.AgreeTerms = false

	_, err := svc.Signup(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrTermsNotAgreed)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), signupInput())
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestSignup_FreshWallet(t *testing.T) {
	svc, _ := newService(t)

	id, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	wallet, err := svc.GetWallet(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0.0, wallet.Balance)
	assert.True(t, len(wallet.Address) > 2 && wallet.Address[:2] == "0x")
}

func TestLogin(t *testing.T) {
	svc, _ := newService(t)
	id, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	token, summary, err := svc.Login(context.Background(), "a@x.com", "p1-secret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, id, summary.AccountID)
	assert.Equal(t, "a@x.com", summary.Email)

	// Wrong password and unknown email fail identically.
	_, _, err = svc.Login(context.Background(), "a@x.com", "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, _, err = svc.Login(context.Background(), "nobody@x.com", "p1-secret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestForgotPassword(t *testing.T) {
	svc, mailer := newService(t)
	_, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	// Known email: mailer fires in the background.
	svc.ForgotPassword(context.Background(), "a@x.com")
	assert.Eventually(t, func() bool { return mailer.count() == 1 }, time.Second, 10*time.Millisecond)

	// Unknown email: no delivery, same silence towards the caller.
	svc.ForgotPassword(context.Background(), "nobody@x.com")
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, mailer.count())
}

func TestReadsAreIdempotent(t *testing.T) {
	svc, _ := newService(t)
	id, err := svc.Signup(context.Background(), signupInput())
	require.NoError(t, err)

	w1, err := svc.GetWallet(context.Background(), id)
	require.NoError(t, err)
	w2, err := svc.GetWallet(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, w1, w2)

	p1, err := svc.GetProfile(context.Background(), id)
	require.NoError(t, err)
	p2, err := svc.GetProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, p1.ID, p2.ID)
	assert.Equal(t, p1.CreatedAt, p2.CreatedAt)
}

func TestAccountScenario(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	id, err := svc.Signup(ctx, signupInput())
	require.NoError(t, err)
	wallet, err := svc.GetWallet(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0.0, wallet.Balance)

	_, balance, err := svc.Buy(ctx, id, 100, "USDT", "card")
	require.NoError(t, err)
	assert.Equal(t, 100.0, balance)

	_, balance, err = svc.Withdraw(ctx, id, 40, "0xdest", "p2-secret")
	require.NoError(t, err)
	assert.Equal(t, 60.0, balance)

	_, _, err = svc.Withdraw(ctx, id, 1000, "0xdest", "p2-secret")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	wallet, err = svc.GetWallet(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 60.0, wallet.Balance)

	txs, total, err := svc.Transactions(ctx, id, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, txs, 2)
}

func TestWithdraw_UnknownAccount(t *testing.T) {
	svc, _ := newService(t)

	_, _, err := svc.Withdraw(context.Background(), "missing", 10, "0xdest", "p2-secret")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}
