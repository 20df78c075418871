package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mamadbah2/agrocalc/internal/domain/models"
)

func TestValidate_CompleteParcel(t *testing.T) {
	p := models.Parcel{CropID: "kukuruz", TractorID: "traktor_33", FuelID: "euro_dizel", AreaHa: 1.2}

	assert.Empty(t, Validate(p))
}

func TestValidate_ListsEveryMissingPiece(t *testing.T) {
	reasons := Validate(models.Parcel{})

	assert.Equal(t, []string{ReasonMissingCrop, ReasonMissingTractor, ReasonMissingFuel, ReasonMissingArea}, reasons)
}

func TestValidate_NonPositiveArea(t *testing.T) {
	p := models.Parcel{CropID: "kukuruz", TractorID: "traktor_33", FuelID: "euro_dizel", AreaHa: -1}

	assert.Equal(t, []string{ReasonMissingArea}, Validate(p))
}

func TestValidate_DoesNotBlockCalculate(t *testing.T) {
	res := Calculate(models.Parcel{}, testOps)

	assert.Equal(t, 0.0, res.TotalCost)
}
