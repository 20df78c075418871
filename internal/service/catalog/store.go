// Package catalog keeps the current catalog snapshot and its operation index.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	opindex "github.com/mamadbah2/agrocalc/internal/catalog"
	"github.com/mamadbah2/agrocalc/internal/domain/models"
)

// ErrCatalogUnavailable means no operations have been loaded yet.
var ErrCatalogUnavailable = errors.New("operation catalog not loaded")

// Store holds the latest catalog. Readers get an immutable snapshot; Reload swaps it
// atomically and keeps the previous one when loading fails.
type Store struct {
	source Source
	logger *zap.Logger

	mu      sync.RWMutex
	catalog models.Catalog
	index   *opindex.Index
}

// NewStore builds a store seeded with initial.
func NewStore(source Source, initial models.Catalog, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		source:  source,
		logger:  logger,
		catalog: initial,
		index:   opindex.NewIndex(initial.Operations),
	}
}

// Reload pulls a fresh catalog from the source and re-indexes it.
func (s *Store) Reload(ctx context.Context) error {
	next, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Warn("catalog reload failed, keeping previous snapshot", zap.Error(err))
		return fmt.Errorf("reload catalog: %w", err)
	}

	idx := opindex.NewIndex(next.Operations)
	if idx.Len() == 0 {
		s.logger.Warn("catalog source returned no operations, keeping previous snapshot")
		return fmt.Errorf("reload catalog: %w", ErrCatalogUnavailable)
	}

	s.mu.Lock()
	s.catalog = next
	s.index = idx
	s.mu.Unlock()

	s.logger.Info("catalog reloaded", zap.Int("operations", idx.Len()), zap.Int("groups", len(idx.Groups())))
	return nil
}

// Snapshot returns the current catalog and its index.
func (s *Store) Snapshot() (models.Catalog, *opindex.Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.index == nil || s.index.Len() == 0 {
		return s.catalog, s.index, ErrCatalogUnavailable
	}
	return s.catalog, s.index, nil
}

// Groups renders the operation index as ordered main groups for selection screens.
func (s *Store) Groups() []models.OperationGroup {
	s.mu.RLock()
	idx := s.index
	s.mu.RUnlock()

	groups := make([]models.OperationGroup, 0, len(idx.Groups()))
	for _, g := range idx.Groups() {
		groups = append(groups, models.OperationGroup{MainGroup: g, Operations: idx.ByGroup(g)})
	}
	return groups
}
