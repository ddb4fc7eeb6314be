package reportservice

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
	"github.com/Jorge989/openbank-dashboard/pkg/errorspkg"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func transaction(txnType, category string, amount int64, date time.Time) domain.Transaction {
	return domain.Transaction{
		AccountID: "acc1",
		Type:      txnType,
		Category:  category,
		Amount:    decimal.NewFromInt(amount),
		Date:      date,
		Status:    domain.StatusCompleted,
	}
}

func TestBuildWindowSpansYearBoundary(t *testing.T) {
	now := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)

	months, _ := Build(nil, now)

	require.Len(t, months, 6)

	wantKeys := []struct {
		year  int
		month time.Month
	}{
		{2025, time.September},
		{2025, time.October},
		{2025, time.November},
		{2025, time.December},
		{2026, time.January},
		{2026, time.February},
	}

	for i, want := range wantKeys {
		require.Equal(t, want.year, months[i].Year)
		require.Equal(t, want.month, months[i].Month)
		require.True(t, months[i].Income.IsZero())
		require.True(t, months[i].Expense.IsZero())
	}

	require.Equal(t, "Sep 2025", months[0].Label)
	require.Equal(t, "Feb 2026", months[5].Label)
}

func TestBuildBucketsTransactions(t *testing.T) {
	now := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)

	transactions := []domain.Transaction{
		transaction(domain.Credit, domain.CategorySalary, 5000, time.Date(2026, time.February, 5, 9, 0, 0, 0, time.UTC)),
		transaction(domain.Debit, domain.CategoryFood, 300, time.Date(2026, time.February, 7, 20, 0, 0, 0, time.UTC)),
		transaction(domain.Debit, domain.CategoryFood, 200, time.Date(2025, time.December, 24, 18, 0, 0, 0, time.UTC)),
		transaction(domain.Debit, domain.CategoryBills, 150, time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)),
		// Outside the window: skipped silently.
		transaction(domain.Debit, domain.CategoryShopping, 999, time.Date(2025, time.August, 31, 23, 0, 0, 0, time.UTC)),
		// Dated past now: skipped silently.
		transaction(domain.Credit, domain.CategorySalary, 777, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)),
	}

	months, categories := Build(transactions, now)

	require.Len(t, months, 6)

	require.True(t, months[0].Expense.Equal(decimal.NewFromInt(150)), "Sep 2025 expense")
	require.True(t, months[3].Expense.Equal(decimal.NewFromInt(200)), "Dec 2025 expense")
	require.True(t, months[5].Income.Equal(decimal.NewFromInt(5000)), "Feb 2026 income")
	require.True(t, months[5].Expense.Equal(decimal.NewFromInt(300)), "Feb 2026 expense")

	wantCategories := []domain.CategoryBucket{
		{Category: domain.CategoryFood, TotalExpense: decimal.NewFromInt(500)},
		{Category: domain.CategoryBills, TotalExpense: decimal.NewFromInt(150)},
	}

	if diff := cmp.Diff(wantCategories, categories, decimalComparer); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildCategoryTotalsMatchMonthExpenses(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)

	transactions := []domain.Transaction{
		transaction(domain.Debit, domain.CategoryFood, 120, now.AddDate(0, -1, 0)),
		transaction(domain.Debit, domain.CategoryTransport, 80, now.AddDate(0, -3, 0)),
		transaction(domain.Debit, domain.CategoryFood, 50, now),
		transaction(domain.Credit, domain.CategorySalary, 9000, now),
		transaction(domain.Credit, domain.CategoryInvestment, 400, now.AddDate(0, -2, 0)),
	}

	months, categories := Build(transactions, now)

	expenseSum := decimal.Zero
	for _, bucket := range months {
		expenseSum = expenseSum.Add(bucket.Expense)
	}

	categorySum := decimal.Zero
	for _, bucket := range categories {
		categorySum = categorySum.Add(bucket.TotalExpense)
	}

	require.True(t, expenseSum.Equal(categorySum),
		"month expenses %s != category totals %s", expenseSum, categorySum)
}

func TestBuildCreditsNeverInCategories(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)

	// Salary is a credit; it must not show up in the expense breakdown.
	transactions := []domain.Transaction{
		transaction(domain.Credit, domain.CategorySalary, 9000, now),
		transaction(domain.Credit, domain.CategoryOther, 100, now),
	}

	_, categories := Build(transactions, now)

	require.Empty(t, categories)
}

func TestReport(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)

	t.Run("OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := NewMockGateway(ctrl)

		transactions := []domain.Transaction{
			transaction(domain.Debit, domain.CategoryFood, 50, now),
		}

		gateway.EXPECT().
			ListTransactions(gomock.Any()).
			Return(transactions, nil)

		service := New(gateway)
		service.now = func() time.Time { return now }

		report, err := service.Report(context.Background())
		require.NoError(t, err)
		require.Len(t, report.Months, 6)
		require.Len(t, report.Categories, 1)
		require.Equal(t, domain.CategoryFood, report.Categories[0].Category)
	})

	t.Run("GatewayError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := NewMockGateway(ctrl)

		gateway.EXPECT().
			ListTransactions(gomock.Any()).
			Return(nil, errorspkg.ErrInternal)

		service := New(gateway)

		report, err := service.Report(context.Background())
		require.Empty(t, report)
		require.EqualError(t, err, errorspkg.ErrInternal.Error())
	})
}
