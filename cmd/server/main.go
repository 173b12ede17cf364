package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appbooking "github.com/cargoflow/backend/internal/application/booking"
	appfinance "github.com/cargoflow/backend/internal/application/finance"
	apppartner "github.com/cargoflow/backend/internal/application/partner"
	appreport "github.com/cargoflow/backend/internal/application/report"
	"github.com/cargoflow/backend/internal/infrastructure/config"
	"github.com/cargoflow/backend/internal/infrastructure/logger"
	"github.com/cargoflow/backend/internal/infrastructure/persistence"
	"github.com/cargoflow/backend/internal/interfaces/http/handler"
	"github.com/cargoflow/backend/internal/interfaces/http/middleware"
	"github.com/cargoflow/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	zapLogger, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = zapLogger.Sync() }()

	zapLogger.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLogger := logger.NewGormLogger(zapLogger, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			zapLogger.Error("Failed to close database", zap.Error(err))
		}
	}()

	// Repositories
	bookingRepo := persistence.NewGormBookingRepository(db.DB)
	shippingLineRepo := persistence.NewGormShippingLineRepository(db.DB)
	truckerRepo := persistence.NewGormTruckingCompanyRepository(db.DB)
	payableRepo := persistence.NewGormAccountsPayableRepository(db.DB)
	receivableRepo := persistence.NewGormAccountsReceivableRepository(db.DB)
	chargeRepo := persistence.NewGormChargeRepository(db.DB)
	txnRepo := persistence.NewGormReceivableTransactionRepository(db.DB)
	summaryRepo := persistence.NewGormSummaryRepository(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Application services
	bookingSvc := appbooking.NewBookingService(bookingRepo, shippingLineRepo, truckerRepo)
	partnerSvc := apppartner.NewPartnerService(shippingLineRepo, truckerRepo)
	financeSvc := appfinance.NewFinanceService(bookingRepo, payableRepo, receivableRepo, txnRepo)
	chargeSvc := appfinance.NewChargeService(payableRepo, chargeRepo)
	reconcileSvc := appfinance.NewReconciliationService(txScope, cfg.Finance.RecomputeOnWrite)
	collectibleSvc := appfinance.NewCollectibleService(txScope)
	reportSvc := appreport.NewFinanceReportService(summaryRepo)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	handler.RegisterValidators()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		zapLogger.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	engine.Use(
		logger.Recovery(zapLogger),
		middleware.RequestID(),
		logger.GinMiddleware(zapLogger),
		middleware.CORS(middleware.CORSConfig{
			AllowedOrigins: cfg.HTTP.CORSAllowOrigins,
			AllowedMethods: cfg.HTTP.CORSAllowMethods,
			AllowedHeaders: cfg.HTTP.CORSAllowHeaders,
		}),
		middleware.BodyLimit(cfg.HTTP.MaxBodySize),
	)

	systemHandler := handler.NewSystemHandler(db, zapLogger)
	systemHandler.RegisterRoutes(engine)

	r := router.New(engine)
	r.Register(
		handler.NewBookingHandler(bookingSvc, zapLogger),
		handler.NewPartnerHandler(partnerSvc, zapLogger),
		handler.NewFinanceHandler(financeSvc, chargeSvc, reconcileSvc, collectibleSvc, zapLogger),
		handler.NewReportHandler(reportSvc, zapLogger),
	)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Forced shutdown", zap.Error(err))
	}

	zapLogger.Info("Server stopped")
}
