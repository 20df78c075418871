package exchange

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/mamadbah2/agrocalc/internal/currency"
	"github.com/mamadbah2/agrocalc/pkg/clients/rates"
)

const eurRateKey = "rate-EUR"

// Service serves the EUR display rate from cache, falling back to a configured
// default whenever the rate source cannot answer.
type Service struct {
	client   rates.Client
	cache    *cache.Cache
	fallback float64
	logger   *zap.Logger
}

// NewService wires a rate service. client may be nil, in which case the fallback
// rate is always used.
func NewService(client rates.Client, ttl time.Duration, fallback float64, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Service{
		client:   client,
		cache:    cache.New(ttl, 2*ttl),
		fallback: currency.RateOrDefault(fallback),
		logger:   logger,
	}
}

// EURRate returns RSD per 1 EUR. It never fails; errors are logged and the fallback
// is returned without being cached.
func (s *Service) EURRate(ctx context.Context) float64 {
	if rate, found := s.cache.Get(eurRateKey); found {
		return rate.(float64)
	}

	rate, err := s.fetch(ctx)
	if err != nil {
		s.logger.Warn("eur rate unavailable, using fallback", zap.Error(err), zap.Float64("fallback", s.fallback))
		return s.fallback
	}

	return rate
}

// Refresh drops the cached rate and fetches a new one.
func (s *Service) Refresh(ctx context.Context) error {
	s.cache.Delete(eurRateKey)

	rate, err := s.fetch(ctx)
	if err != nil {
		return err
	}

	s.logger.Info("eur rate refreshed", zap.Float64("rate", rate))
	return nil
}

func (s *Service) fetch(ctx context.Context) (float64, error) {
	if s.client == nil {
		return 0, ErrRateUnavailable
	}

	rate, err := s.client.FetchEURRate(ctx)
	if err != nil {
		return 0, err
	}

	s.cache.Set(eurRateKey, rate, cache.DefaultExpiration)
	return rate, nil
}
