package ledgergateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func TestGetAccount(t *testing.T) {
	want := domain.Account{
		ID:            "acc1",
		OwnerID:       "user1",
		AccountNumber: "123456-7",
		Agency:        "0001",
		Type:          domain.AccountChecking,
		Balance:       decimal.NewFromInt(200),
		Currency:      "BRL",
		IsActive:      true,
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/accounts/acc1", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewEncoder(w).Encode(want))
	}))
	defer server.Close()

	client := New(server.URL, time.Second)

	got, err := client.GetAccount(context.Background(), "acc1")
	require.NoError(t, err)

	if diff := cmp.Diff(want, got, decimalComparer); diff != "" {
		t.Errorf("account mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateTransactionSendsBody(t *testing.T) {
	arg := domain.Transaction{
		AccountID:   "acc1",
		Type:        domain.Credit,
		Category:    domain.CategorySalary,
		Amount:      decimal.NewFromInt(100),
		Description: "Pay",
		Status:      domain.StatusCompleted,
		Reference:   "ref-1",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transactions", r.URL.Path)

		var got domain.Transaction
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		if diff := cmp.Diff(arg, got, decimalComparer); diff != "" {
			t.Errorf("request body mismatch (-want +got):\n%s", diff)
		}

		created := got
		created.ID = "txn1"
		require.NoError(t, json.NewEncoder(w).Encode(created))
	}))
	defer server.Close()

	client := New(server.URL, time.Second)

	created, err := client.CreateTransaction(context.Background(), arg)
	require.NoError(t, err)
	require.Equal(t, "txn1", created.ID)
}

func TestUpdateAccountBalanceSendsConditionalPatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/accounts/acc1", r.URL.Path)

		var got map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		require.Equal(t, "300", got["balance"])
		require.Equal(t, "200", got["expectedBalance"])

		require.NoError(t, json.NewEncoder(w).Encode(domain.Account{ID: "acc1", Balance: decimal.NewFromInt(300)}))
	}))
	defer server.Close()

	client := New(server.URL, time.Second)

	account, err := client.UpdateAccountBalance(context.Background(), "acc1", decimal.NewFromInt(300), decimal.NewFromInt(200))
	require.NoError(t, err)
	require.True(t, account.Balance.Equal(decimal.NewFromInt(300)))
}

func TestListAccountsByOwnerEscapesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/accounts", r.URL.Path)
		require.Equal(t, "user 1", r.URL.Query().Get("userId"))

		require.NoError(t, json.NewEncoder(w).Encode([]domain.Account{}))
	}))
	defer server.Close()

	client := New(server.URL, time.Second)

	accounts, err := client.ListAccountsByOwner(context.Background(), "user 1")
	require.NoError(t, err)
	require.Empty(t, accounts)
}

func TestDeleteTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/transactions/txn1", r.URL.Path)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(server.URL, time.Second)

	require.NoError(t, client.DeleteTransaction(context.Background(), "txn1"))
}

func TestStatusError(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
	}{
		{name: "NotFound", statusCode: http.StatusNotFound},
		{name: "Conflict", statusCode: http.StatusConflict},
		{name: "InternalServerError", statusCode: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "ignored body", tc.statusCode)
			}))
			defer server.Close()

			client := New(server.URL, time.Second)

			_, err := client.GetAccount(context.Background(), "acc1")
			require.Error(t, err)

			var statusErr *StatusError
			require.True(t, errors.As(err, &statusErr))
			require.Equal(t, tc.statusCode, statusErr.Status)
			require.EqualError(t, err, fmt.Sprintf("HTTP error! status: %d", tc.statusCode))
		})
	}
}

func TestTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := New(server.URL, time.Second)

	_, err := client.ListTransactions(context.Background())
	require.Error(t, err)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	require.Error(t, transportErr.Unwrap())
}
