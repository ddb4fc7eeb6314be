// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found in the ledger.
	ErrAccountNotFound = errors.New("account not found")
	// ErrUnsupportedCurrency indicates that the currency is not supported.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrInvalidAccountType indicates an unknown account type.
	ErrInvalidAccountType = errors.New("invalid account type")
	// ErrBalanceConflict indicates that the account balance changed between
	// the read and the conditional write.
	ErrBalanceConflict = errors.New("account balance changed since last read")
)

// Account types known to the ledger.
const (
	AccountChecking   = "checking"
	AccountSavings    = "savings"
	AccountInvestment = "investment"
)

// AccountTypes holds all valid account types.
var AccountTypes = []string{AccountChecking, AccountSavings, AccountInvestment}

// AccountTypeLabels maps account types to their display labels.
var AccountTypeLabels = map[string]string{
	AccountChecking:   "Conta Corrente",
	AccountSavings:    "Poupança",
	AccountInvestment: "Investimento",
}

// IsValidAccountType returns true if t is a known account type.
func IsValidAccountType(t string) bool {
	for _, v := range AccountTypes {
		if v == t {
			return true
		}
	}

	return false
}

// Account holds ledger balance data owned by a single user. The ID is
// assigned by the ledger; create requests send a zero ID.
type Account struct {
	ID            string          `json:"id,omitempty"`
	OwnerID       string          `json:"userId"`
	AccountNumber string          `json:"accountNumber"`
	Agency        string          `json:"agency"`
	Type          string          `json:"type"`
	Balance       decimal.Decimal `json:"balance"`
	Currency      string          `json:"currency"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
