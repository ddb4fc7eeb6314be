// Package reportservice builds time-bucketed financial reports from
// transaction snapshots.
package reportservice

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
)

// reportMonths is the trailing window length in calendar months.
const reportMonths = 6

// Gateway provides the ledger access interface needed by the report service
// layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package reportservice
type Gateway interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// Service facilitates report service layer logic.
type Service struct {
	gateway Gateway
	now     func() time.Time
}

// New returns a report service backed by the given ledger gateway.
func New(g Gateway) *Service {
	return &Service{gateway: g, now: time.Now}
}

// Report fetches all transactions and builds the trailing six-month report.
func (s *Service) Report(ctx context.Context) (domain.Report, error) {
	transactions, err := s.gateway.ListTransactions(ctx)
	if err != nil {
		return domain.Report{}, err
	}

	months, categories := Build(transactions, s.now())

	return domain.Report{Months: months, Categories: categories}, nil
}

type monthKey struct {
	year  int
	month time.Month
}

// Build produces exactly six month buckets, oldest first, covering the
// calendar months (now-5)..now, plus a category breakdown of the debits
// that fell inside that window.
//
// Buckets are keyed by (year, month), so a window spanning a year boundary
// stays six distinct, correctly dated buckets. Transactions outside the
// window are skipped silently; transactions inside it are classified by
// their own local calendar date. Credits never contribute to category
// totals, salary included.
func Build(transactions []domain.Transaction, now time.Time) ([]domain.MonthBucket, []domain.CategoryBucket) {
	months := make([]domain.MonthBucket, 0, reportMonths)
	index := make(map[monthKey]int, reportMonths)

	for i := reportMonths - 1; i >= 0; i-- {
		first := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())

		index[monthKey{first.Year(), first.Month()}] = len(months)
		months = append(months, domain.MonthBucket{
			Label:   first.Format("Jan 2006"),
			Year:    first.Year(),
			Month:   first.Month(),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		})
	}

	windowStart := time.Date(now.Year(), now.Month()-(reportMonths-1), 1, 0, 0, 0, 0, now.Location())
	totals := make(map[string]decimal.Decimal)

	for _, txn := range transactions {
		if txn.Date.Before(windowStart) {
			continue
		}

		i, ok := index[monthKey{txn.Date.Year(), txn.Date.Month()}]
		if !ok {
			// Dated past now, or clock skew.
			continue
		}

		if txn.Type == domain.Credit {
			months[i].Income = months[i].Income.Add(txn.Amount)
			continue
		}

		months[i].Expense = months[i].Expense.Add(txn.Amount)
		totals[txn.Category] = totals[txn.Category].Add(txn.Amount)
	}

	categories := make([]domain.CategoryBucket, 0, len(totals))
	for category, total := range totals {
		categories = append(categories, domain.CategoryBucket{Category: category, TotalExpense: total})
	}

	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].TotalExpense.Equal(categories[j].TotalExpense) {
			return categories[i].TotalExpense.GreaterThan(categories[j].TotalExpense)
		}
		return categories[i].Category < categories[j].Category
	})

	return months, categories
}
