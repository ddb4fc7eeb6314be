// Package statsservice computes derived dashboard statistics from account
// and transaction snapshots.
package statsservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
)

// Gateway provides the ledger access interface needed by the stats service
// layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package statsservice
type Gateway interface {
	ListAccountsByOwner(ctx context.Context, userID string) ([]domain.Account, error)
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// Service facilitates stats service layer logic.
type Service struct {
	gateway Gateway
	now     func() time.Time
}

// New returns a stats service backed by the given ledger gateway.
func New(g Gateway) *Service {
	return &Service{gateway: g, now: time.Now}
}

// Stats fetches the user's accounts and all transactions, then computes the
// dashboard snapshot. The two reads are separate requests, so the snapshot
// can be transiently inconsistent; that staleness is accepted.
func (s *Service) Stats(ctx context.Context, userID string) (domain.DashboardStats, error) {
	accounts, err := s.gateway.ListAccountsByOwner(ctx, userID)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	transactions, err := s.gateway.ListTransactions(ctx)
	if err != nil {
		return domain.DashboardStats{}, err
	}

	return Compute(accounts, transactions, s.now()), nil
}

// Compute derives dashboard statistics from the given snapshots.
//
// Transactions referencing an account outside the given set are excluded
// entirely. Monthly sums cover the strict current calendar month of now,
// judged by each transaction's own local calendar date, not a rolling
// 30-day window. The total balance trusts the stored account balances;
// it is not recomputed from transaction history.
func Compute(accounts []domain.Account, transactions []domain.Transaction, now time.Time) domain.DashboardStats {
	owned := make(map[string]bool, len(accounts))
	totalBalance := decimal.Zero

	for _, account := range accounts {
		owned[account.ID] = true
		totalBalance = totalBalance.Add(account.Balance)
	}

	var (
		monthlyIncome    = decimal.Zero
		monthlyExpenses  = decimal.Zero
		transactionCount int
	)

	for _, txn := range transactions {
		if !owned[txn.AccountID] {
			continue
		}

		transactionCount++

		if txn.Date.Year() != now.Year() || txn.Date.Month() != now.Month() {
			continue
		}

		if txn.Type == domain.Credit {
			monthlyIncome = monthlyIncome.Add(txn.Amount)
		} else {
			monthlyExpenses = monthlyExpenses.Add(txn.Amount)
		}
	}

	return domain.DashboardStats{
		TotalBalance:     totalBalance,
		MonthlyIncome:    monthlyIncome,
		MonthlyExpenses:  monthlyExpenses,
		TransactionCount: transactionCount,
		AccountsCount:    len(accounts),
	}
}
