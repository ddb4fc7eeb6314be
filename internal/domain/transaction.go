package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates an amount that could not be parsed.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidTransactionType indicates a type other than credit or debit.
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	// ErrInvalidCategory indicates an unknown transaction category.
	ErrInvalidCategory = errors.New("invalid transaction category")
)

// Transaction types.
const (
	Credit = "credit"
	Debit  = "debit"
)

// Statuses shared by transactions and transfers.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Transaction categories known to the ledger.
const (
	CategoryFood          = "food"
	CategoryTransport     = "transport"
	CategoryShopping      = "shopping"
	CategoryBills         = "bills"
	CategoryEntertainment = "entertainment"
	CategoryHealth        = "health"
	CategoryEducation     = "education"
	CategoryInvestment    = "investment"
	CategorySalary        = "salary"
	CategoryTransfer      = "transfer"
	CategoryOther         = "other"
)

// Categories holds all valid transaction categories.
var Categories = []string{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryBills,
	CategoryEntertainment,
	CategoryHealth,
	CategoryEducation,
	CategoryInvestment,
	CategorySalary,
	CategoryTransfer,
	CategoryOther,
}

// CategoryLabels maps categories to their display labels.
var CategoryLabels = map[string]string{
	CategoryFood:          "Alimentação",
	CategoryTransport:     "Transporte",
	CategoryShopping:      "Compras",
	CategoryBills:         "Contas",
	CategoryEntertainment: "Entretenimento",
	CategoryHealth:        "Saúde",
	CategoryEducation:     "Educação",
	CategoryInvestment:    "Investimento",
	CategorySalary:        "Salário",
	CategoryTransfer:      "Transferência",
	CategoryOther:         "Outros",
}

// IsValidCategory returns true if c is a known category.
func IsValidCategory(c string) bool {
	_, ok := CategoryLabels[c]
	return ok
}

// Transaction holds a single credit or debit against an account.
type Transaction struct {
	ID          string          `json:"id,omitempty"`
	AccountID   string          `json:"accountId"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Status      string          `json:"status"`
	Reference   string          `json:"reference,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// CreateTransactionParams is the input data for recording a transaction.
type CreateTransactionParams struct {
	AccountID   string          `json:"accountId"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Reference   string          `json:"reference,omitempty"`
}
