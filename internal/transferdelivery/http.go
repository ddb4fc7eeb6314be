// Package transferdelivery manages delivery layer of transfers.
package transferdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
	"github.com/Jorge989/openbank-dashboard/pkg/errorspkg"
	"github.com/Jorge989/openbank-dashboard/pkg/web"
)

// Service provides service layer interface needed by transfer delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package transferdelivery
type Service interface {
	Create(ctx context.Context, arg domain.CreateTransferParams) (domain.Transfer, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.Transfer, error)
}

// Handler facilitates transfer delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns transfer handler.
func NewHandler(ts Service) Handler {
	return Handler{service: ts}
}

type data struct {
	Transfer domain.Transfer `json:"transfer"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	FromAccountID string     `json:"fromAccountId" binding:"required"`
	ToAccountID   string     `json:"toAccountId" binding:"required"`
	Amount        string     `json:"amount" binding:"required"`
	Description   string     `json:"description" binding:"required"`
	ScheduledDate *time.Time `json:"scheduledDate"`
}

// Create handles http request to schedule a transfer.
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

	arg := domain.CreateTransferParams{
		FromAccountID: req.FromAccountID,
		ToAccountID:   req.ToAccountID,
		Amount:        amount,
		Description:   req.Description,
	}
	if req.ScheduledDate != nil {
		arg.ScheduledDate = *req.ScheduledDate
	}

	created, err := h.service.Create(ctx, arg)
	if err != nil {
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
}

type dataTransfers struct {
	Transfers []domain.Transfer `json:"transfers"`
}
type responseTransfers struct {
	Data dataTransfers `json:"data,omitempty"`
}

// List handles http request to list transfers, optionally scoped to an
// account.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	transfers, err := h.service.ListByAccount(ctx, req.AccountID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responseTransfers{
		Data: dataTransfers{transfers},
	}

	gctx.JSON(http.StatusOK, res)
}
