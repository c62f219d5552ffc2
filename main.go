package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"invoicely/config"
	"invoicely/database"
	"invoicely/database/repository"
	"invoicely/handlers"
	"invoicely/middleware"
	"invoicely/routes"
	"invoicely/services/auth"
	"invoicely/services/business"
	"invoicely/services/diagnostics"
	"invoicely/services/invoice"
	"invoicely/services/numbering"
	"invoicely/services/quote"
	"invoicely/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// repositories.
	var repos repository.Set
	if cfg.UsesMemoryStore() {
		logger.Warn("main: using in-memory store, data is lost on restart")
		repos = repository.NewMemorySet()
	} else {
		db, err := database.InitDB(cfg)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize database: %v", err)
		}
		repos = repository.NewMongoSet(db, cfg.StoreTimeout())
	}

	var sequencer numbering.Sequencer = numbering.NewClockSequencer()
	redisClient, err := utils.InitSequenceCache(cfg)
	switch {
	case err != nil:
		logger.Warn("main: Redis unavailable, numbering from the clock", zap.Error(err))
	case redisClient != nil:
		sequencer = numbering.NewRedisSequencer(redisClient)
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	go utils.StartHealthMonitor(monitorCtx, database.MongoClient, redisClient)

	// services.
	invoiceService := &invoice.DefaultInvoiceService{
		Repo:            repos.Invoices,
		Sequencer:       sequencer,
		RecomputeTotals: cfg.RecomputeTotals,
	}
	quoteService := &quote.DefaultQuoteService{
		Repo:              repos.Quotes,
		Invoices:          repos.Invoices,
		Sequencer:         sequencer,
		RecomputeTotals:   cfg.RecomputeTotals,
		ConversionDueDays: cfg.ConversionDueDays,
	}
	businessService := &business.DefaultBusinessService{Repo: repos.BusinessConfig}
	authService := auth.NewAuthService(cfg.AppPassword)
	diagnosticsService := &diagnostics.DefaultDiagnosticsService{Repo: repos.Records}

	handlerBundle := handlers.NewHandlerBundle(invoiceService, quoteService, businessService, authService, diagnosticsService)

	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, routes.Options{
		AdminToken: cfg.AdminToken,
		StaticDir:  cfg.StaticDir,
		Metrics:    middleware.NewHTTPMetrics(),
	})

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")
	stopMonitor()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if err := database.Close(ctx); err != nil {
		logger.Error("main: failed to disconnect MongoDB", zap.Error(err))
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	logger.Info("main: server stopped gracefully")
}
