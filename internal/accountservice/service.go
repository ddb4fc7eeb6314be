// Package accountservice manages business logic layer of accounts.
package accountservice

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
	"github.com/Jorge989/openbank-dashboard/internal/ledgergateway"
	"github.com/Jorge989/openbank-dashboard/pkg/currencypkg"
	"github.com/Jorge989/openbank-dashboard/pkg/randompkg"
)

// defaultAgency is the single branch code used for newly opened accounts.
const defaultAgency = "0001"

// Gateway provides the ledger access interface needed by the account
// service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Gateway interface {
	CreateAccount(ctx context.Context, arg domain.Account) (domain.Account, error)
	GetAccount(ctx context.Context, id string) (domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ListAccountsByOwner(ctx context.Context, userID string) ([]domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	gateway Gateway
	now     func() time.Time
}

// New returns an account service backed by the given ledger gateway.
func New(g Gateway) *Service {
	return &Service{gateway: g, now: time.Now}
}

// Create opens an active account with a generated account number and a zero
// opening balance.
func (s *Service) Create(ctx context.Context, ownerID, accountType, currency string) (domain.Account, error) {
	if !domain.IsValidAccountType(accountType) {
		return domain.Account{}, domain.ErrInvalidAccountType
	}

	if !currencypkg.IsSupportedCurrency(currency) {
		return domain.Account{}, domain.ErrUnsupportedCurrency
	}

	now := s.now()

	return s.gateway.CreateAccount(ctx, domain.Account{
		OwnerID:       ownerID,
		AccountNumber: randompkg.AccountNumber(),
		Agency:        defaultAgency,
		Type:          accountType,
		Balance:       decimal.Zero,
		Currency:      currency,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
}

// Get returns the account with the given ID.
func (s *Service) Get(ctx context.Context, id string) (domain.Account, error) {
	account, err := s.gateway.GetAccount(ctx, id)
	if err != nil {
		var statusErr *ledgergateway.StatusError
		if errors.As(err, &statusErr) && statusErr.Status == http.StatusNotFound {
			return domain.Account{}, domain.ErrAccountNotFound
		}

		return domain.Account{}, err
	}

	return account, nil
}

// List returns the accounts owned by the given user, or all accounts when
// userID is empty.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Account, error) {
	if userID == "" {
		return s.gateway.ListAccounts(ctx)
	}

	return s.gateway.ListAccountsByOwner(ctx, userID)
}
