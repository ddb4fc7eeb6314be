package ledgergateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateAccount persists a new account. The arg's ID must be zero; the
// ledger assigns it.
func (c *Client) CreateAccount(ctx context.Context, arg domain.Account) (domain.Account, error) {
	var account domain.Account

	err := c.do(ctx, http.MethodPost, "/accounts", arg, &account)
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// ListAccounts returns all accounts.
func (c *Client) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account

	err := c.do(ctx, http.MethodGet, "/accounts", nil, &accounts)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// ListAccountsByOwner returns the accounts owned by the given user.
func (c *Client) ListAccountsByOwner(ctx context.Context, userID string) ([]domain.Account, error) {
	var accounts []domain.Account

	err := c.do(ctx, http.MethodGet, "/accounts?userId="+url.QueryEscape(userID), nil, &accounts)
	if err != nil {
		return nil, err
	}

	return accounts, nil
}

// GetAccount returns the account with the given ID.
func (c *Client) GetAccount(ctx context.Context, id string) (domain.Account, error) {
	var account domain.Account

	err := c.do(ctx, http.MethodGet, "/accounts/"+id, nil, &account)
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

// UpdateAccount applies a partial update to the account with the given ID.
func (c *Client) UpdateAccount(ctx context.Context, id string, patch map[string]any) (domain.Account, error) {
	var account domain.Account

	err := c.do(ctx, http.MethodPatch, "/accounts/"+id, patch, &account)
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

type balancePatch struct {
	Balance         decimal.Decimal `json:"balance"`
	ExpectedBalance decimal.Decimal `json:"expectedBalance"`
}

// UpdateAccountBalance sets the account balance conditionally: the ledger
// rejects the write with 409 when the stored balance no longer equals
// expected, so a stale read never silently overwrites a concurrent update.
func (c *Client) UpdateAccountBalance(ctx context.Context, id string, balance, expected decimal.Decimal) (domain.Account, error) {
	var account domain.Account

	patch := balancePatch{Balance: balance, ExpectedBalance: expected}

	err := c.do(ctx, http.MethodPatch, "/accounts/"+id, patch, &account)
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}
