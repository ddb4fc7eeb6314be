package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer holds money movement data between two accounts. Transfers are
// recorded as pending; settlement happens outside this service.
type Transfer struct {
	ID            string          `json:"id,omitempty"`
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	ScheduledDate time.Time       `json:"scheduledDate,omitempty"`
	CompletedDate *time.Time      `json:"completedDate,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// CreateTransferParams is the input data for scheduling a transfer.
type CreateTransferParams struct {
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	ScheduledDate time.Time       `json:"scheduledDate,omitempty"`
}
