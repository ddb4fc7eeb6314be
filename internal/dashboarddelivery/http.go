// Package dashboarddelivery manages delivery layer of dashboard statistics
// and reports.
package dashboarddelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Jorge989/openbank-dashboard/internal/domain"
	"github.com/Jorge989/openbank-dashboard/pkg/errorspkg"
	"github.com/Jorge989/openbank-dashboard/pkg/web"
)

// StatsService provides the stats interface needed by the dashboard
// delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package dashboarddelivery
type StatsService interface {
	Stats(ctx context.Context, userID string) (domain.DashboardStats, error)
}

// ReportService provides the report interface needed by the dashboard
// delivery layer.
type ReportService interface {
	Report(ctx context.Context) (domain.Report, error)
}

// Handler facilitates dashboard delivery layer logic.
type Handler struct {
	stats   StatsService
	reports ReportService
}

// NewHandler returns dashboard handler.
func NewHandler(ss StatsService, rs ReportService) Handler {
	return Handler{stats: ss, reports: rs}
}

type statsRequest struct {
	UserID string `form:"user_id" binding:"required"`
}

type statsData struct {
	Stats domain.DashboardStats `json:"stats"`
}
type statsResponse struct {
	Data statsData `json:"data,omitempty"`
}

// Stats handles http request to compute the dashboard snapshot for a user.
func (h *Handler) Stats(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req statsRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
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

	stats, err := h.stats.Stats(ctx, req.UserID)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := statsResponse{
		Data: statsData{stats},
	}

	gctx.JSON(http.StatusOK, res)
}

type reportData struct {
	Report domain.Report `json:"report"`
}
type reportResponse struct {
	Data reportData `json:"data,omitempty"`
}

// Report handles http request to build the trailing six-month report.
func (h *Handler) Report(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	report, err := h.reports.Report(ctx)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := reportResponse{
		Data: reportData{report},
	}

	gctx.JSON(http.StatusOK, res)
}
