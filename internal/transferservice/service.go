// Package transferservice manages business logic layer of transfers.
package transferservice

import (
	"context"
	"time"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
)

// Gateway provides the ledger access interface needed by the transfer
// service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transferservice
type Gateway interface {
	CreateTransfer(ctx context.Context, arg domain.Transfer) (domain.Transfer, error)
	ListTransfers(ctx context.Context) ([]domain.Transfer, error)
	DeleteTransfer(ctx context.Context, id string) error
}

// Service facilitates transfer service layer logic.
type Service struct {
	gateway Gateway
	now     func() time.Time
}

// New returns a transfer service backed by the given ledger gateway.
func New(g Gateway) *Service {
	return &Service{gateway: g, now: time.Now}
}

// Create schedules a transfer. Transfers are recorded as pending and stay
// that way here: settlement, including the balance effect on both accounts,
// happens outside this service.
func (s *Service) Create(ctx context.Context, arg domain.CreateTransferParams) (domain.Transfer, error) {
	now := s.now()

	scheduled := arg.ScheduledDate
	if scheduled.IsZero() {
		scheduled = now
	}

	return s.gateway.CreateTransfer(ctx, domain.Transfer{
		FromAccountID: arg.FromAccountID,
		ToAccountID:   arg.ToAccountID,
		Amount:        arg.Amount,
		Description:   arg.Description,
		Status:        domain.StatusPending,
		ScheduledDate: scheduled,
		CreatedAt:     now,
	})
}

// ListByAccount returns the transfers touching the given account, or all
// transfers when accountID is empty. The ledger has no account-scoped
// transfer query, so the filter runs client-side.
func (s *Service) ListByAccount(ctx context.Context, accountID string) ([]domain.Transfer, error) {
	transfers, err := s.gateway.ListTransfers(ctx)
	if err != nil {
		return nil, err
	}

	if accountID == "" {
		return transfers, nil
	}

	scoped := make([]domain.Transfer, 0, len(transfers))

	for _, transfer := range transfers {
		if transfer.FromAccountID == accountID || transfer.ToAccountID == accountID {
			scoped = append(scoped, transfer)
		}
	}

	return scoped, nil
}

// Delete removes a pending transfer.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.gateway.DeleteTransfer(ctx, id)
}
