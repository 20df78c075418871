package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/agrocalc/internal/config"
)

const jobTimeout = 2 * time.Minute

// CatalogReloader refreshes the operation catalog from its source.
type CatalogReloader interface {
	Reload(ctx context.Context) error
}

// RateRefresher refreshes the cached EUR display rate.
type RateRefresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron    *cron.Cron
	catalog CatalogReloader
	rates   RateRefresher
	cfg     config.Config
	logger  *zap.Logger
}

// NewScheduler creates a new scheduler instance running in the configured timezone.
// Either reloader may be nil, in which case its job is not scheduled.
func NewScheduler(cfg config.Config, catalog CatalogReloader, rates RateRefresher, logger *zap.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Scheduler.Timezone, err)
	}

	return &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		catalog: catalog,
		rates:   rates,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// Start registers the refresh jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("timezone", s.cfg.Scheduler.Timezone))

	if s.catalog != nil {
		if _, err := s.cron.AddFunc(s.cfg.Catalog.RefreshCron, s.reloadCatalog); err != nil {
			return fmt.Errorf("schedule catalog reload %q: %w", s.cfg.Catalog.RefreshCron, err)
		}
	}

	if s.rates != nil {
		if _, err := s.cron.AddFunc(s.cfg.Currency.RateCron, s.refreshRate); err != nil {
			return fmt.Errorf("schedule eur rate refresh %q: %w", s.cfg.Currency.RateCron, err)
		}
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) reloadCatalog() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.catalog.Reload(ctx); err != nil {
		s.logger.Error("scheduled catalog reload failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled catalog reload done")
}

func (s *Scheduler) refreshRate() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if err := s.rates.Refresh(ctx); err != nil {
		s.logger.Warn("scheduled eur rate refresh failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled eur rate refresh done")
}
