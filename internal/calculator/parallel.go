package calculator

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mamadbah2/agrocalc/internal/catalog"
	"github.com/mamadbah2/agrocalc/internal/domain/models"
)

// CalculateAll recalculates every parcel concurrently and stores each result on its
// own parcel. It returns once all parcels are done, or with ctx's error if ctx is
// cancelled before a parcel starts.
func (c *Calculator) CalculateAll(ctx context.Context, parcels []models.Parcel, idx *catalog.Index) error {
	g, ctx := errgroup.WithContext(ctx)

	for i := range parcels {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res := c.Calculate(parcels[i], idx)
			parcels[i].Result = &res
			return nil
		})
	}

	return g.Wait()
}
