package ledgergateway

import (
	"context"
	"net/http"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
)

// ListTransfers returns all transfers. The ledger has no account-scoped
// transfer query; callers filter client-side.
func (c *Client) ListTransfers(ctx context.Context) ([]domain.Transfer, error) {
	var transfers []domain.Transfer

	err := c.do(ctx, http.MethodGet, "/transfers", nil, &transfers)
	if err != nil {
		return nil, err
	}

	return transfers, nil
}

// GetTransfer returns the transfer with the given ID.
func (c *Client) GetTransfer(ctx context.Context, id string) (domain.Transfer, error) {
	var transfer domain.Transfer

	err := c.do(ctx, http.MethodGet, "/transfers/"+id, nil, &transfer)
	if err != nil {
		return domain.Transfer{}, err
	}

	return transfer, nil
}

// CreateTransfer persists a new transfer. The arg's ID must be zero; the
// ledger assigns it.
func (c *Client) CreateTransfer(ctx context.Context, arg domain.Transfer) (domain.Transfer, error) {
	var transfer domain.Transfer

	err := c.do(ctx, http.MethodPost, "/transfers", arg, &transfer)
	if err != nil {
		return domain.Transfer{}, err
	}

	return transfer, nil
}

// UpdateTransfer applies a partial update to the transfer with the given ID.
func (c *Client) UpdateTransfer(ctx context.Context, id string, patch map[string]any) (domain.Transfer, error) {
	var transfer domain.Transfer

	err := c.do(ctx, http.MethodPatch, "/transfers/"+id, patch, &transfer)
	if err != nil {
		return domain.Transfer{}, err
	}

	return transfer, nil
}

// DeleteTransfer removes the transfer with the given ID.
func (c *Client) DeleteTransfer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/transfers/"+id, nil, nil)
}
