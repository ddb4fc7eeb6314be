package main

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Jorge989/openbank-dashboard/pkg/configpkg"
	"github.com/Jorge989/openbank-dashboard/pkg/currencypkg"

	"github.com/Jorge989/openbank-dashboard/internal/accountdelivery"
	"github.com/Jorge989/openbank-dashboard/internal/accountservice"
	"github.com/Jorge989/openbank-dashboard/internal/dashboarddelivery"
	"github.com/Jorge989/openbank-dashboard/internal/ledgergateway"
	"github.com/Jorge989/openbank-dashboard/internal/middleware"
	"github.com/Jorge989/openbank-dashboard/internal/reportservice"
	"github.com/Jorge989/openbank-dashboard/internal/searchstate"
	"github.com/Jorge989/openbank-dashboard/internal/statsservice"
	"github.com/Jorge989/openbank-dashboard/internal/transactiondelivery"
	"github.com/Jorge989/openbank-dashboard/internal/transactionservice"
	"github.com/Jorge989/openbank-dashboard/internal/transferdelivery"
	"github.com/Jorge989/openbank-dashboard/internal/transferservice"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	server, err := createServer(logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	err = server.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}

func createServer(logger zerolog.Logger, config configpkg.Config) (*gin.Engine, error) {
	gateway := ledgergateway.New(config.LedgerBaseURL, config.HTTPClientTimeout)
	search := searchstate.New()

	accountService := accountservice.New(gateway)
	transactionService := transactionservice.New(gateway)
	transferService := transferservice.New(gateway)
	statsService := statsservice.New(gateway)
	reportService := reportservice.New(gateway)

	accountHandler := accountdelivery.NewHandler(accountService)
	transactionHandler := transactiondelivery.NewHandler(transactionService, search)
	transferHandler := transferdelivery.NewHandler(transferService)
	dashboardHandler := dashboarddelivery.NewHandler(statsService, reportService)

	gin.SetMode(gin.ReleaseMode)
	server := gin.New()

	server.Use(middleware.RequestLogger(logger))
	server.Use(gin.Recovery())

	server.POST("/accounts", accountHandler.Create)
	server.GET("/accounts/:id", accountHandler.Get)
	server.GET("/accounts", accountHandler.List)

	server.POST("/transactions", transactionHandler.Create)
	server.GET("/transactions", transactionHandler.List)

	server.POST("/transfers", transferHandler.Create)
	server.GET("/transfers", transferHandler.List)

	server.GET("/dashboard/stats", dashboardHandler.Stats)
	server.GET("/dashboard/report", dashboardHandler.Report)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registrations := map[string]validator.Func{
			"currency":        currencypkg.ValidCurrency,
			"accounttype":     accountdelivery.ValidAccountType,
			"transactiontype": transactiondelivery.ValidTransactionType,
			"category":        transactiondelivery.ValidCategory,
		}

		for tag, fn := range registrations {
			if err := v.RegisterValidation(tag, fn); err != nil {
				return nil, errors.New("cannot register " + tag + " validator")
			}
		}
	}

	return server, nil
}
