package ledgergateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
)

// ListTransactions returns all transactions.
func (c *Client) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var transactions []domain.Transaction

	err := c.do(ctx, http.MethodGet, "/transactions", nil, &transactions)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// ListTransactionsByAccount returns the transactions recorded against the
// given account.
func (c *Client) ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction

	err := c.do(ctx, http.MethodGet, "/transactions?accountId="+url.QueryEscape(accountID), nil, &transactions)
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// GetTransaction returns the transaction with the given ID.
func (c *Client) GetTransaction(ctx context.Context, id string) (domain.Transaction, error) {
	var transaction domain.Transaction

	err := c.do(ctx, http.MethodGet, "/transactions/"+id, nil, &transaction)
	if err != nil {
		return domain.Transaction{}, err
	}

	return transaction, nil
}

// CreateTransaction persists a new transaction. The arg's ID must be zero;
// the ledger assigns it.
func (c *Client) CreateTransaction(ctx context.Context, arg domain.Transaction) (domain.Transaction, error) {
	var transaction domain.Transaction

	err := c.do(ctx, http.MethodPost, "/transactions", arg, &transaction)
	if err != nil {
		return domain.Transaction{}, err
	}

	return transaction, nil
}

// DeleteTransaction removes the transaction with the given ID.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/transactions/"+id, nil, nil)
}
