package domain

import "time"

// Wallet is the balance-bearing sub-record of an Account. The address is
// assigned once at signup and never changes; the balance is mutated only
// through the ledger store.
type Wallet struct {
	Address string  `gorm:"size:64;uniqueIndex" json:"address"` // Opaque wallet address
	Balance float64 `gorm:"not null;default:0" json:"balance"`  // Current balance, never negative
}

// Account Model
type Account struct {
	ID                     string    `gorm:"primaryKey;size:36" json:"account_id"`       // UUID assigned at signup
	Email                  string    `gorm:"size:255;uniqueIndex;not null" json:"email"` // Login identity, unique, exact match
	Name                   string    `gorm:"size:255" json:"name"`                       // Display name
	PasswordHash           string    `gorm:"not null" json:"-"`                          // bcrypt hash of the login password
	WithdrawalPasswordHash string    `gorm:"not null" json:"-"`                          // bcrypt hash of the withdrawal password
	Wallet                 Wallet    `gorm:"embedded;embeddedPrefix:wallet_" json:"wallet"`
	EmailVerified          bool      `gorm:"default:false" json:"email_verified"` // No verification flow yet
	CreatedAt              time.Time `json:"created_at"`
}
