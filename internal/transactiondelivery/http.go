// Package transactiondelivery manages delivery layer of transactions.
package transactiondelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
	"github.com/Jorge989/openbank-dashboard/internal/searchstate"
	"github.com/Jorge989/openbank-dashboard/pkg/errorspkg"
	"github.com/Jorge989/openbank-dashboard/pkg/web"
)

// Service provides service layer interface needed by transaction delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transactiondelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateTransactionParams) (domain.Transaction, error)
	List(ctx context.Context, accountID string) ([]domain.Transaction, error)
}

// Handler facilitates transaction delivery layer logic.
type Handler struct {
	service Service
	search  *searchstate.State
}

// NewHandler returns transaction handler.
func NewHandler(ts Service, search *searchstate.State) Handler {
	return Handler{service: ts, search: search}
}

type data struct {
	Transaction domain.Transaction `json:"transaction"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	AccountID   string `json:"accountId" binding:"required"`
	Type        string `json:"type" binding:"required,transactiontype"`
	Category    string `json:"category" binding:"required,category"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"required"`
	Reference   string `json:"reference"`
}

// Create handles http request to record a transaction.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))

		return
	}

	created, err := h.service.Create(ctx, domain.CreateTransactionParams{
		AccountID:   req.AccountID,
		Type:        req.Type,
		Category:    req.Category,
		Amount:      amount,
		Description: req.Description,
		Reference:   req.Reference,
	})
	if err != nil {
		switch err {
		case domain.ErrBalanceConflict:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		case domain.ErrAccountNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{created},
	}

	gctx.JSON(http.StatusOK, res)
}

type listRequest struct {
	AccountID string `form:"account_id"`
	Query     string `form:"q"`
}

type dataTransactions struct {
	Transactions []domain.Transaction `json:"transactions"`
}
type responseTransactions struct {
	Data dataTransactions `json:"data,omitempty"`
}

// List handles http request to list transactions, optionally scoped to an
// account and filtered by the free-text query.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	transactions, err := h.service.List(ctx, req.AccountID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	h.search.SetQuery(req.Query)

	res := responseTransactions{
		Data: dataTransactions{h.search.Filter(transactions)},
	}

	gctx.JSON(http.StatusOK, res)
}
