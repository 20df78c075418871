package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"github.com/mamadbah2/agrocalc/internal/calculator"
	"github.com/mamadbah2/agrocalc/internal/catalog"
	"github.com/mamadbah2/agrocalc/internal/config"
	"github.com/mamadbah2/agrocalc/internal/repository/mongodb"
	"github.com/mamadbah2/agrocalc/internal/repository/sheets"
	"github.com/mamadbah2/agrocalc/internal/scheduler"
	"github.com/mamadbah2/agrocalc/internal/server/handlers"
	"github.com/mamadbah2/agrocalc/internal/server/router"
	calculationsvc "github.com/mamadbah2/agrocalc/internal/service/calculation"
	catalogsvc "github.com/mamadbah2/agrocalc/internal/service/catalog"
	"github.com/mamadbah2/agrocalc/internal/service/exchange"
	reportingsvc "github.com/mamadbah2/agrocalc/internal/service/reporting"
	"github.com/mamadbah2/agrocalc/pkg/clients/rates"
	"github.com/mamadbah2/agrocalc/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		source   catalogsvc.Source = catalogsvc.StaticSource{Catalog: catalog.Default()}
		reloader scheduler.CatalogReloader
	)
	if cfg.Catalog.Source == config.CatalogSourceSheets {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Catalog, logger.Named(baseLogger, "repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		source = catalogsvc.NewSheetSource(sheetsRepo, logger.Named(baseLogger, "catalog.sheets"))
	}

	catalogStore := catalogsvc.NewStore(source, catalog.Default(), logger.Named(baseLogger, "svc.catalog"))
	if cfg.Catalog.Source == config.CatalogSourceSheets {
		reloader = catalogStore
		if err := catalogStore.Reload(ctx); err != nil {
			baseLogger.Warn("initial catalog load failed, serving built-in catalog", zap.Error(err))
		}
	}

	var archive mongodb.Repository = mongodb.NopRepository{}
	if cfg.MongoDB.Enabled() {
		mongoRepo, err := mongodb.NewMongoDBRepository(ctx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		archive = mongoRepo
	} else {
		baseLogger.Warn("mongodb uri missing, calculation archive disabled")
	}

	var (
		rateClient    rates.Client
		rateRefresher scheduler.RateRefresher
	)
	if cfg.Currency.RateURL != "" {
		rateClient = rates.NewClient(cfg.Currency.RateURL, 10*time.Second)
	} else {
		baseLogger.Warn("eur rate url missing, using configured default rate", zap.Float64("rate", cfg.Currency.DefaultEURRate))
	}
	rateSvc := exchange.NewService(rateClient, cfg.Currency.RateTTL, cfg.Currency.DefaultEURRate, logger.Named(baseLogger, "svc.exchange"))
	if rateClient != nil {
		rateRefresher = rateSvc
	}

	calc := calculator.New(logger.Named(baseLogger, "calculator"))
	reportingSvc := reportingsvc.NewService(logger.Named(baseLogger, "svc.reporting"))
	calculationSvc := calculationsvc.NewService(catalogStore, rateSvc, calc, reportingSvc, archive, logger.Named(baseLogger, "svc.calculation"))

	engine := router.New(
		handlers.NewCalculationHandler(calculationSvc, logger.Named(baseLogger, "handlers.calculation")),
		handlers.NewCatalogHandler(catalogStore, rateSvc, logger.Named(baseLogger, "handlers.catalog")),
		logger.Named(baseLogger, "router"),
	)

	sched, err := scheduler.NewScheduler(*cfg, reloader, rateRefresher, logger.Named(baseLogger, "scheduler"))
	if err != nil {
		baseLogger.Fatal("failed to init scheduler", zap.Error(err))
	}
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
