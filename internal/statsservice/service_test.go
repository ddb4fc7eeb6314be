package statsservice

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

func account(id string, balance int64) domain.Account {
	return domain.Account{ID: id, Balance: decimal.NewFromInt(balance)}
}

func transaction(accountID, txnType string, amount int64, date time.Time) domain.Transaction {
	return domain.Transaction{
		AccountID: accountID,
		Type:      txnType,
		Amount:    decimal.NewFromInt(amount),
		Date:      date,
		Status:    domain.StatusCompleted,
	}
}

func TestCompute(t *testing.T) {
	now := time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, time.August, 31, 23, 59, 0, 0, time.UTC)
	lastYear := time.Date(2025, time.September, 15, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		accounts     []domain.Account
		transactions []domain.Transaction
		want         domain.DashboardStats
	}{
		{
			name:         "EmptyAccounts",
			accounts:     []domain.Account{},
			transactions: []domain.Transaction{transaction("acc1", domain.Credit, 100, now)},
			want: domain.DashboardStats{
				TotalBalance:     decimal.Zero,
				MonthlyIncome:    decimal.Zero,
				MonthlyExpenses:  decimal.Zero,
				TransactionCount: 0,
				AccountsCount:    0,
			},
		},
		{
			name: "ExcludesForeignAccounts",
			accounts: []domain.Account{
				account("acc1", 100),
				account("acc2", 200),
			},
			transactions: []domain.Transaction{
				transaction("acc1", domain.Credit, 50, now),
				transaction("acc2", domain.Debit, 20, now),
				transaction("other", domain.Credit, 999, now),
			},
			want: domain.DashboardStats{
				TotalBalance:     decimal.NewFromInt(300),
				MonthlyIncome:    decimal.NewFromInt(50),
				MonthlyExpenses:  decimal.NewFromInt(20),
				TransactionCount: 2,
				AccountsCount:    2,
			},
		},
		{
			name:     "CountsAllOwnedButSumsOnlyCurrentMonth",
			accounts: []domain.Account{account("acc1", 1000)},
			transactions: []domain.Transaction{
				transaction("acc1", domain.Credit, 100, now),
				transaction("acc1", domain.Debit, 30, lastMonth),
				transaction("acc1", domain.Credit, 70, lastYear),
			},
			want: domain.DashboardStats{
				TotalBalance:     decimal.NewFromInt(1000),
				MonthlyIncome:    decimal.NewFromInt(100),
				MonthlyExpenses:  decimal.Zero,
				TransactionCount: 3,
				AccountsCount:    1,
			},
		},
		{
			name:     "SameMonthOfDifferentYearExcluded",
			accounts: []domain.Account{account("acc1", 0)},
			transactions: []domain.Transaction{
				transaction("acc1", domain.Debit, 40, lastYear),
			},
			want: domain.DashboardStats{
				TotalBalance:     decimal.Zero,
				MonthlyIncome:    decimal.Zero,
				MonthlyExpenses:  decimal.Zero,
				TransactionCount: 1,
				AccountsCount:    1,
			},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			got := Compute(tc.accounts, tc.transactions, now)

			if diff := cmp.Diff(tc.want, got, decimalComparer); diff != "" {
				t.Errorf("stats mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStats(t *testing.T) {
	now := time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC)

	accounts := []domain.Account{account("acc1", 100)}
	transactions := []domain.Transaction{
		transaction("acc1", domain.Credit, 50, now),
		transaction("other", domain.Credit, 999, now),
	}

	testCases := []struct {
		name          string
		buildStubs    func(gateway *MockGateway)
		checkResponse func(t *testing.T, got domain.DashboardStats, err error)
	}{
		{
			name: "OK",
			buildStubs: func(gateway *MockGateway) {
				gateway.EXPECT().
					ListAccountsByOwner(gomock.Any(), gomock.Eq("user1")).
					Return(accounts, nil)
				gateway.EXPECT().
					ListTransactions(gomock.Any()).
					Return(transactions, nil)
			},
			checkResponse: func(t *testing.T, got domain.DashboardStats, err error) {
				require.NoError(t, err)

				want := domain.DashboardStats{
					TotalBalance:     decimal.NewFromInt(100),
					MonthlyIncome:    decimal.NewFromInt(50),
					MonthlyExpenses:  decimal.Zero,
					TransactionCount: 1,
					AccountsCount:    1,
				}

				if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
					t.Errorf("stats mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name: "AccountsError",
			buildStubs: func(gateway *MockGateway) {
				gateway.EXPECT().
					ListAccountsByOwner(gomock.Any(), gomock.Any()).
					Return(nil, errorspkg.ErrInternal)
				gateway.EXPECT().ListTransactions(gomock.Any()).Times(0)
			},
			checkResponse: func(t *testing.T, got domain.DashboardStats, err error) {
				require.Empty(t, got)
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
		{
			name: "TransactionsError",
			buildStubs: func(gateway *MockGateway) {
				gateway.EXPECT().
					ListAccountsByOwner(gomock.Any(), gomock.Any()).
					Return(accounts, nil)
				gateway.EXPECT().
					ListTransactions(gomock.Any()).
					Return(nil, errorspkg.ErrInternal)
			},
			checkResponse: func(t *testing.T, got domain.DashboardStats, err error) {
				require.Empty(t, got)
				require.EqualError(t, err, errorspkg.ErrInternal.Error())
			},
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gateway := NewMockGateway(ctrl)
			tc.buildStubs(gateway)

			service := New(gateway)
			service.now = func() time.Time { return now }

			got, err := service.Stats(context.Background(), "user1")
			tc.checkResponse(t, got, err)
		})
	}
}
