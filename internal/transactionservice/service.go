// Package transactionservice manages business logic layer of transactions.
//
// Recording a transaction takes three ledger calls: persist the transaction,
// read the account, write the adjusted balance. The balance write is
// conditional on the balance just read and retried on conflict; if the read
// or write ultimately fails the persisted transaction is deleted again, so
// no orphan transaction is left behind without its balance effect.
package transactionservice

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
	"github.com/Jorge989/openbank-dashboard/internal/ledgergateway"
)

// balanceUpdateAttempts bounds retries after conflicting concurrent writes.
const balanceUpdateAttempts = 3

// Gateway provides the ledger access interface needed by the transaction
// service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Gateway interface {
	CreateTransaction(ctx context.Context, arg domain.Transaction) (domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
	GetAccount(ctx context.Context, id string) (domain.Account, error)
	UpdateAccountBalance(ctx context.Context, id string, balance, expected decimal.Decimal) (domain.Account, error)
}

// Service facilitates transaction service layer logic.
type Service struct {
	gateway Gateway
	now     func() time.Time
}

// New returns a transaction service backed by the given ledger gateway.
func New(g Gateway) *Service {
	return &Service{gateway: g, now: time.Now}
}

// Create records a completed transaction and applies its signed amount to
// the owning account's balance. The returned transaction is the one
// persisted in the first step; it is not re-fetched afterwards.
//
// The amount's sign and size are not checked here, and neither is the
// account's active flag or a possible overdraft; the ledger accepts any
// resulting balance.
func (s *Service) Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error) {
	l := zerolog.Ctx(ctx)

	reference := arg.Reference
	if reference == "" {
		// Idempotency key forwarded to the ledger so a retried request can
		// be deduplicated server-side.
		reference = uuid.NewString()
	}

	now := s.now()

	created, err := s.gateway.CreateTransaction(ctx, domain.Transaction{
		AccountID:   arg.AccountID,
		Type:        arg.Type,
		Category:    arg.Category,
		Amount:      arg.Amount,
		Description: arg.Description,
		Date:        now,
		Status:      domain.StatusCompleted,
		Reference:   reference,
		CreatedAt:   now,
	})
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Transaction{}, err
	}

	if err := s.applyBalance(ctx, created); err != nil {
		s.compensate(ctx, created)
		return domain.Transaction{}, err
	}

	return created, nil
}

// applyBalance adjusts the account balance by the transaction amount with a
// conditional write keyed to the balance last read. A conflict means another
// writer got in between; the balance is re-read and the write retried.
func (s *Service) applyBalance(ctx context.Context, txn domain.Transaction) error {
	for attempt := 0; attempt < balanceUpdateAttempts; attempt++ {
		account, err := s.gateway.GetAccount(ctx, txn.AccountID)
		if err != nil {
			var statusErr *ledgergateway.StatusError
			if errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound {
				return domain.ErrAccountNotFound
			}

			return err
		}

		newBalance := account.Balance.Sub(txn.Amount)
		if txn.Type == domain.Credit {
			newBalance = account.Balance.Add(txn.Amount)
		}

		_, err = s.gateway.UpdateAccountBalance(ctx, txn.AccountID, newBalance, account.Balance)
		if err == nil {
			return nil
		}

		var statusErr *ledgergateway.StatusError
		if errors.As(err, &statusErr) && statusErr.Status == http.StatusConflict {
			continue
		}

		return err
	}

	return domain.ErrBalanceConflict
}

// compensate deletes the transaction persisted in the first step. A failed
// compensation leaves the transaction without its balance effect; all we can
// do at that point is log it.
func (s *Service) compensate(ctx context.Context, txn domain.Transaction) {
	l := zerolog.Ctx(ctx)

	if err := s.gateway.DeleteTransaction(ctx, txn.ID); err != nil {
		l.Error().Err(err).
			Str("transaction_id", txn.ID).
			Str("account_id", txn.AccountID).
			Msg("compensation failed: transaction persisted without balance update")
	}
}

// List returns the transactions recorded against the given account, or all
// transactions when accountID is empty.
func (s *Service) List(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	if accountID == "" {
		return s.gateway.ListTransactions(ctx)
	}

	return s.gateway.ListTransactionsByAccount(ctx, accountID)
}

// Delete removes a transaction record. The balance effect, if any, is not
// reverted.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.gateway.DeleteTransaction(ctx, id)
}
