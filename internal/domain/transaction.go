package domain

import "time"

// Transaction kinds.
const (
	TxWithdrawal = "withdrawal"
	TxPurchase   = "purchase"
)

// StatusCompleted is the only status the ledger produces; there is no
// pending/failed lifecycle.
const StatusCompleted = "completed"

// Transaction Model — append-only audit record for a wallet balance change.
// Records are never updated or deleted once written.
type Transaction struct {
	ID                 string    `gorm:"primaryKey;size:36" json:"transaction_id"`     // UUID
	AccountID          string    `gorm:"size:36;index;not null" json:"account_id"`     // Owning account
	Type               string    `gorm:"size:16;not null" json:"type"`                 // withdrawal or purchase
	Amount             float64   `gorm:"not null" json:"amount"`                       // Always positive
	DestinationAddress string    `gorm:"size:64" json:"destination_address,omitempty"` // Withdrawals only
	CryptoType         string    `gorm:"size:16" json:"crypto_type,omitempty"`         // Purchases only
	PaymentMethod      string    `gorm:"size:32" json:"payment_method,omitempty"`      // Purchases only
	Status             string    `gorm:"size:16;not null" json:"status"`
	CreatedAt          time.Time `json:"timestamp"`
}
