package accountservice

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
	"github.com/Jorge989/openbank-dashboard/internal/ledgergateway"
	"github.com/Jorge989/openbank-dashboard/pkg/currencypkg"
)

var accountNumberPattern = regexp.MustCompile(`^\d{6}-\d$`)

func TestCreate(t *testing.T) {
	testTime := time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	errGateway := errors.New("gateway down")

	testCases := []struct {
		name        string
		accountType string
		currency    string
		buildStubs  func(gateway *MockGateway)
		wantErr     error
	}{
		{
			name:        "OK",
			accountType: domain.AccountChecking,
			currency:    currencypkg.BRL,
			buildStubs: func(gateway *MockGateway) {
				gateway.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg domain.Account) (domain.Account, error) {
						require.Equal(t, "user1", arg.OwnerID)
						require.Equal(t, domain.AccountChecking, arg.Type)
						require.Equal(t, "0001", arg.Agency)
						require.Regexp(t, accountNumberPattern, arg.AccountNumber)
						require.True(t, arg.Balance.Equal(decimal.Zero))
						require.True(t, arg.IsActive)
						require.Equal(t, testTime, arg.CreatedAt)

						arg.ID = "acc1"
						return arg, nil
					})
			},
		},
		{
			name:        "InvalidAccountType",
			accountType: "offshore",
			currency:    currencypkg.BRL,
			buildStubs: func(gateway *MockGateway) {
				gateway.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrInvalidAccountType,
		},
		{
			name:        "UnsupportedCurrency",
			accountType: domain.AccountSavings,
			currency:    "GBP",
			buildStubs: func(gateway *MockGateway) {
				gateway.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: domain.ErrUnsupportedCurrency,
		},
		{
			name:        "GatewayError",
			accountType: domain.AccountChecking,
			currency:    currencypkg.BRL,
			buildStubs: func(gateway *MockGateway) {
				gateway.EXPECT().
					CreateAccount(gomock.Any(), gomock.Any()).
					Return(domain.Account{}, errGateway)
			},
			wantErr: errGateway,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gateway := NewMockGateway(ctrl)
			tc.buildStubs(gateway)

			service := New(gateway)
			service.now = func() time.Time { return testTime }

			account, err := service.Create(context.Background(), "user1", tc.accountType, tc.currency)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "acc1", account.ID)
		})
	}
}

func TestGet(t *testing.T) {
	account := domain.Account{ID: "acc1", OwnerID: "user1", Balance: decimal.NewFromInt(250)}

	t.Run("OK", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := NewMockGateway(ctrl)

		gateway.EXPECT().
			GetAccount(gomock.Any(), gomock.Eq("acc1")).
			Return(account, nil)

		service := New(gateway)

		got, err := service.Get(context.Background(), "acc1")
		require.NoError(t, err)
		require.Equal(t, account, got)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := NewMockGateway(ctrl)

		gateway.EXPECT().
			GetAccount(gomock.Any(), gomock.Eq("missing")).
			Return(domain.Account{}, &ledgergateway.StatusError{Status: http.StatusNotFound})

		service := New(gateway)

		_, err := service.Get(context.Background(), "missing")
		require.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("OtherStatusPassesThrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := NewMockGateway(ctrl)

		statusErr := &ledgergateway.StatusError{Status: http.StatusBadGateway}
		gateway.EXPECT().
			GetAccount(gomock.Any(), gomock.Any()).
			Return(domain.Account{}, statusErr)

		service := New(gateway)

		_, err := service.Get(context.Background(), "acc1")
		require.ErrorIs(t, err, statusErr)
	})
}

func TestList(t *testing.T) {
	accounts := []domain.Account{
		{ID: "acc1", OwnerID: "user1"},
		{ID: "acc2", OwnerID: "user1"},
	}

	t.Run("ScopedToOwner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := NewMockGateway(ctrl)

		gateway.EXPECT().
			ListAccountsByOwner(gomock.Any(), gomock.Eq("user1")).
			Return(accounts, nil)

		service := New(gateway)

		got, err := service.List(context.Background(), "user1")
		require.NoError(t, err)
		require.Equal(t, accounts, got)
	})

	t.Run("EmptyOwnerListsAll", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := NewMockGateway(ctrl)

		gateway.EXPECT().
			ListAccounts(gomock.Any()).
			Return(accounts, nil)

		service := New(gateway)

		got, err := service.List(context.Background(), "")
		require.NoError(t, err)
		require.Equal(t, accounts, got)
	})
}
