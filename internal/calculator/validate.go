package calculator

import "github.com/mamadbah2/agrocalc/internal/domain/models"

// Messages returned by Validate, in the wording the product shows to users.
const (
	ReasonMissingCrop    = "Molimo izaberite kulturu"
	ReasonMissingTractor = "Molimo izaberite traktor"
	ReasonMissingFuel    = "Molimo izaberite gorivo"
	ReasonMissingArea    = "Molimo unesite površinu parcele (ručno ili preko mape)"
)

// Validate lists why parcel should not be calculated yet. An empty slice means the
// parcel is complete. Calculate never calls it.
func Validate(parcel models.Parcel) []string {
	reasons := make([]string, 0, 4)

	if parcel.CropID == "" {
		reasons = append(reasons, ReasonMissingCrop)
	}
	if parcel.TractorID == "" {
		reasons = append(reasons, ReasonMissingTractor)
	}
	if parcel.FuelID == "" {
		reasons = append(reasons, ReasonMissingFuel)
	}
	if !(parcel.AreaHa > 0) {
		reasons = append(reasons, ReasonMissingArea)
	}

	return reasons
}
