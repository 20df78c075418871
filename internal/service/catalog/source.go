package catalog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mamadbah2/agrocalc/internal/domain/models"
	"github.com/mamadbah2/agrocalc/internal/numeric"
	repo "github.com/mamadbah2/agrocalc/internal/repository/sheets"
)

const (
	operationsRange = "Operations!A:G"
	fuelsRange      = "Fuels!A:E"
	tractorsRange   = "Tractors!A:H"
	cropsRange      = "Crops!A:B"
)

// Source supplies a complete catalog snapshot.
type Source interface {
	Load(ctx context.Context) (models.Catalog, error)
}

// StaticSource always returns the same catalog.
type StaticSource struct {
	Catalog models.Catalog
}

// Load returns the fixed catalog.
func (s StaticSource) Load(context.Context) (models.Catalog, error) {
	return s.Catalog, nil
}

// SheetSource reads one tab per catalog list. The first row of every tab is a header.
type SheetSource struct {
	repo   repo.Repository
	logger *zap.Logger
}

// NewSheetSource wires a Sheets-backed catalog source.
func NewSheetSource(repository repo.Repository, logger *zap.Logger) *SheetSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SheetSource{repo: repository, logger: logger}
}

// Load reads operations, fuels, tractors and crops. Rows without an id are skipped;
// malformed numbers become 0.
func (s *SheetSource) Load(ctx context.Context) (models.Catalog, error) {
	var c models.Catalog

	rows, err := s.read(ctx, operationsRange)
	if err != nil {
		return models.Catalog{}, err
	}
	for _, row := range rows {
		id := cell(row, 0)
		if id == "" {
			continue
		}
		op := models.OperationDefinition{
			ID:           id,
			MainGroup:    cell(row, 1),
			Name:         cell(row, 3),
			Unit:         cell(row, 4),
			FuelLPerUnit: numeric.ParseNumberOrZero(cell(row, 5)),
			PricePerUnit: numeric.ParseNumberOrZero(cell(row, 6)),
		}
		if sub := cell(row, 2); sub != "" {
			op.SubGroup = &sub
		}
		c.Operations = append(c.Operations, op)
	}

	rows, err = s.read(ctx, fuelsRange)
	if err != nil {
		return models.Catalog{}, err
	}
	for _, row := range rows {
		id := cell(row, 0)
		if id == "" {
			continue
		}
		c.Fuels = append(c.Fuels, models.Fuel{
			ID:            id,
			Name:          cell(row, 1),
			Unit:          cell(row, 2),
			PricePerLiter: numeric.ParseNumberOrZero(cell(row, 3)),
			Active:        parseFlag(cell(row, 4)),
		})
	}

	rows, err = s.read(ctx, tractorsRange)
	if err != nil {
		return models.Catalog{}, err
	}
	for _, row := range rows {
		id := cell(row, 0)
		if id == "" {
			continue
		}
		c.Tractors = append(c.Tractors, models.Tractor{
			ID:           id,
			Name:         cell(row, 1),
			PowerKWFrom:  optionalNumber(cell(row, 2)),
			PowerKWTo:    optionalNumber(cell(row, 3)),
			PowerHPLabel: cell(row, 4),
			Unit:         cell(row, 5),
			FuelLPerUnit: numeric.ParseNumberOrZero(cell(row, 6)),
			PricePerUnit: numeric.ParseNumberOrZero(cell(row, 7)),
		})
	}

	rows, err = s.read(ctx, cropsRange)
	if err != nil {
		return models.Catalog{}, err
	}
	for _, row := range rows {
		id := cell(row, 0)
		if id == "" {
			continue
		}
		c.Crops = append(c.Crops, models.Crop{ID: id, Name: cell(row, 1)})
	}

	s.logger.Debug("catalog loaded from sheets",
		zap.Int("operations", len(c.Operations)),
		zap.Int("fuels", len(c.Fuels)),
		zap.Int("tractors", len(c.Tractors)),
		zap.Int("crops", len(c.Crops)))

	return c, nil
}

func (s *SheetSource) read(ctx context.Context, sheetRange string) ([][]interface{}, error) {
	rows, err := s.repo.ReadRange(ctx, sheetRange)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", sheetRange, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

func cell(row []interface{}, i int) string {
	if i >= len(row) {
		return ""
	}
	return numeric.String(row[i])
}

func optionalNumber(v string) *float64 {
	if v == "" {
		return nil
	}
	f := numeric.ParseNumberOrZero(v)
	return &f
}

func parseFlag(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "da", "yes":
		return true
	default:
		return false
	}
}
