package service

import (
	"context"
	"strings"
	"time"

	"usdt_banc/internal/auth"
	"usdt_banc/internal/domain"
	"usdt_banc/internal/ledger"
	"usdt_banc/internal/repository"

	"github.com/google/uuid"     // Account IDs and wallet addresses
	"github.com/sirupsen/logrus" // Logging library
)

// AccountService orchestrates the use cases: signup, login, password reset,
// wallet reads and fund movement. It holds no state of its own; every
// invariant lives in the components it delegates to.
type AccountService struct {
	accounts repository.AccountStore
	ledger   *ledger.Engine
	tokens   *auth.TokenIssuer
	mailer   Mailer
}

// NewAccountService wires the service from its injected collaborators.
func NewAccountService(accounts repository.AccountStore, ledger *ledger.Engine, tokens *auth.TokenIssuer, mailer Mailer) *AccountService {
	return &AccountService{accounts: accounts, ledger: ledger, tokens: tokens, mailer: mailer}
}

// SignupInput carries a validated signup request.
type SignupInput struct {
	Name               string
	Email              string
	Password           string
	WithdrawalPassword string
	AgreeTerms         bool
}

// AccountSummary is the public slice of an account returned after login.
type AccountSummary struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
}

// newWalletAddress mints an opaque wallet address. Placeholder, not real key
// material; swap for a proper wallet generator behind this call if real
// chain semantics are ever needed.
func newWalletAddress() string {
	return "0x" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Signup registers a new account with a fresh zero-balance wallet. The terms
// flag must be explicitly true. Returns the new account ID, or
// domain.ErrEmailTaken when the email is already registered.
func (s *AccountService) Signup(ctx context.Context, in SignupInput) (string, error) {
	if !in.AgreeTerms {
		return "", domain.ErrTermsNotAgreed
	}
	passwordHash, err := auth.HashPassword(in.Password)
	if err != nil {
		return "", err
	}
	// Hashed separately so the two hashes are independently salted even for
	// equal secrets.
	withdrawalHash, err := auth.HashPassword(in.WithdrawalPassword)
	if err != nil {
		return "", err
	}

	account := &domain.Account{
		ID:                     uuid.NewString(),
		Email:                  in.Email,
		Name:                   in.Name,
		PasswordHash:           passwordHash,
		WithdrawalPasswordHash: withdrawalHash,
		Wallet:                 domain.Wallet{Address: newWalletAddress(), Balance: 0},
		CreatedAt:              time.Now().UTC(),
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return "", err
	}
	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"wallet":     account.Wallet.Address,
	}).Info("Account created")
	return account.ID, nil
}

// Login checks the credentials and issues a session token. Unknown email and
// wrong password return the same domain.ErrInvalidCredentials so callers
// cannot enumerate accounts.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *AccountSummary, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, account.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &AccountSummary{AccountID: account.ID, Name: account.Name, Email: account.Email}, nil
}

// ForgotPassword kicks off the reset flow. It always succeeds from the
// caller's perspective; when the account exists the mailer runs in the
// background and its failures are swallowed.
func (s *AccountService) ForgotPassword(ctx context.Context, email string) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return // Unknown email gets the same generic ack
	}
	go func(email string) {
		if err := s.mailer.SendPasswordReset(email); err != nil {
			logrus.WithField("account_id", account.ID).WithError(err).Warn("Password reset delivery failed")
		}
	}(account.Email)
}

// GetWallet returns the caller's wallet.
func (s *AccountService) GetWallet(ctx context.Context, accountID string) (*domain.Wallet, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	return &account.Wallet, nil
}

// GetProfile returns the caller's account record.
func (s *AccountService) GetProfile(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, accountID)
}

// Withdraw loads the account and hands off to the ledger engine.
func (s *AccountService) Withdraw(ctx context.Context, accountID string, amount float64, destinationAddress, withdrawalPassword string) (*domain.Transaction, float64, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, 0, err
	}
	return s.ledger.Withdraw(ctx, account, amount, destinationAddress, withdrawalPassword)
}

// Buy loads the account and credits the purchased amount via the ledger
// engine. Payment capture itself is out of scope.
func (s *AccountService) Buy(ctx context.Context, accountID string, amount float64, cryptoType, paymentMethod string) (*domain.Transaction, float64, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, 0, err
	}
	return s.ledger.Purchase(ctx, account, amount, cryptoType, paymentMethod)
}

// Transactions returns a page of the caller's ledger history, newest first.
func (s *AccountService) Transactions(ctx context.Context, accountID string, limit, offset int) ([]domain.Transaction, int64, error) {
	if _, err := s.accounts.GetByID(ctx, accountID); err != nil {
		return nil, 0, err
	}
	return s.ledger.History(ctx, accountID, limit, offset)
}
