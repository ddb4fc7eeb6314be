package domain

import "github.com/shopspring/decimal"

// DashboardStats is a derived snapshot computed from accounts and
// transactions. It is never persisted.
type DashboardStats struct {
	TotalBalance     decimal.Decimal `json:"totalBalance"`
	MonthlyIncome    decimal.Decimal `json:"monthlyIncome"`
	MonthlyExpenses  decimal.Decimal `json:"monthlyExpenses"`
	TransactionCount int             `json:"transactionCount"`
	AccountsCount    int             `json:"accountsCount"`
}
