package calculation

import (
	"errors"
	"fmt"

	"github.com/mamadbah2/agrocalc/internal/domain/models"
)

// ErrNoResults is returned when a request carries no parcels to calculate.
var ErrNoResults = errors.New("no parcels to calculate")

// ValidationError is returned in strict mode when at least one parcel is incomplete.
type ValidationError struct {
	Parcels []models.ParcelValidation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%d parcel(s) are incomplete", len(e.Parcels))
}
