package ledgergateway

import (
	"context"
	"net/http"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
)

// ListUsers returns all users known to the ledger.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User

	err := c.do(ctx, http.MethodGet, "/users", nil, &users)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// GetUser returns the user with the given ID.
func (c *Client) GetUser(ctx context.Context, id string) (domain.User, error) {
	var user domain.User

	err := c.do(ctx, http.MethodGet, "/users/"+id, nil, &user)
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// UpdateUser applies a partial update to the user with the given ID.
func (c *Client) UpdateUser(ctx context.Context, id string, patch map[string]any) (domain.User, error) {
	var user domain.User

	err := c.do(ctx, http.MethodPut, "/users/"+id, patch, &user)
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}
