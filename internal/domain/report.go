package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthBucket aggregates income and expense for one calendar month.
type MonthBucket struct {
	Label   string          `json:"label"`
	Year    int             `json:"year"`
	Month   time.Month      `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// CategoryBucket aggregates debit totals for one category over the whole
// report window.
type CategoryBucket struct {
	Category     string          `json:"category"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
}

// Report holds the six-month income/expense series and the category
// breakdown over the same window.
type Report struct {
	Months     []MonthBucket    `json:"months"`
	Categories []CategoryBucket `json:"categories"`
}
