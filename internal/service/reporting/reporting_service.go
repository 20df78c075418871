package reporting

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/agrocalc/internal/calculator"
	"github.com/mamadbah2/agrocalc/internal/currency"
	"github.com/mamadbah2/agrocalc/internal/domain/models"
)

// Service prepares calculation results for the document renderer and for plain
// text summaries.
type Service struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a new reporting service instance.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger, now: time.Now}
}

// Build assembles a report from parcels that already carry a result. Parcels
// without a result are counted in Skipped and left out, matching Aggregate.
func (s *Service) Build(parcels []models.Parcel, c models.Catalog, cur currency.Currency, rate float64) models.Report {
	report := models.Report{
		GeneratedAt: s.now().UTC(),
		Currency:    string(cur),
		EURRate:     rate,
		Parcels:     make([]models.ReportParcel, 0, len(parcels)),
		Totals:      calculator.Aggregate(parcels),
	}

	for _, p := range parcels {
		if p.Result == nil {
			report.Skipped++
			continue
		}

		rp := models.ReportParcel{
			Index:     len(report.Parcels) + 1,
			Name:      p.Name,
			AreaHa:    p.AreaHa,
			FuelPrice: p.FuelPricePerLiter,
			Result:    *p.Result,
			Lines:     make([]models.ReportLine, 0, len(p.Result.Operations)),
		}
		if crop, ok := c.CropByID(p.CropID); ok {
			rp.CropName = crop.Name
		}
		if tractor, ok := c.TractorByID(p.TractorID); ok {
			rp.TractorName = tractor.Label()
		}
		if fuel, ok := c.FuelByID(p.FuelID); ok {
			rp.FuelName = fuel.Name
		}

		for _, line := range p.Result.Operations {
			rp.Lines = append(rp.Lines, models.ReportLine{
				Name:      line.Name,
				Unit:      line.Unit,
				Details:   lineDetails(line, cur, rate),
				FuelCost:  currency.Format(line.FuelCost, cur, rate),
				PriceCost: currency.Format(line.PriceCost, cur, rate),
				Total:     currency.Format(line.Total, cur, rate),
			})
		}

		report.Parcels = append(report.Parcels, rp)
	}

	s.logger.Debug("report built",
		zap.Int("parcels", len(report.Parcels)),
		zap.Int("skipped", report.Skipped),
		zap.String("currency", report.Currency))

	return report
}

// Summary renders report as multi-line text in the product's wording.
func (s *Service) Summary(report models.Report) string {
	cur := currency.Currency(report.Currency)
	money := func(v float64) string { return currency.Format(v, cur, report.EURRate) }

	if report.Totals.Empty {
		return "Nema izračunatih parcela."
	}

	var b strings.Builder
	for _, p := range report.Parcels {
		fmt.Fprintf(&b, "Parcela %d – %s (%s ha)\n", p.Index, p.CropName, strconv.FormatFloat(p.AreaHa, 'f', -1, 64))
		if p.TractorName != "" || p.FuelName != "" {
			fmt.Fprintf(&b, "Traktor: %s | Gorivo: %s\n", p.TractorName, p.FuelName)
		}
		for _, line := range p.Lines {
			fmt.Fprintf(&b, "  %s [%s]: gorivo %s, cena %s, ukupno %s", line.Name, line.Unit, line.FuelCost, line.PriceCost, line.Total)
			if line.Details != "" {
				fmt.Fprintf(&b, " (%s)", line.Details)
			}
			b.WriteString("\n")
		}
		writeCategories(&b, p.Result.CostCategories, money)
		fmt.Fprintf(&b, "Ukupan trošak: %s\n", money(p.Result.TotalCost))
		fmt.Fprintf(&b, "Prinos: %s | Agrotehnička dobit: %s\n\n", money(p.Result.Revenue), money(p.Result.Profit))
	}

	fmt.Fprintf(&b, "Zbirno (%d parcela)\n", report.Totals.ParcelCount)
	writeCategories(&b, report.Totals.CostCategories, money)
	fmt.Fprintf(&b, "Ukupni troškovi: %s\n", money(report.Totals.TotalCost))
	fmt.Fprintf(&b, "Ukupan prinos: %s | Ukupna agrotehnička dobit: %s\n", money(report.Totals.Revenue), money(report.Totals.Profit))

	return b.String()
}

func writeCategories(b *strings.Builder, c models.CostCategories, money func(float64) string) {
	fmt.Fprintf(b, "Troškovi ha: %s | Čas: %s | Prihrana: %s | Zaštita: %s | Seme: %s | Baliranje: %s | Transport: %s\n",
		money(c.CostByHa), money(c.CostByHour), money(c.CostFertilizer), money(c.CostProtection),
		money(c.CostSeed), money(c.CostBaling), money(c.CostTransport))
}

func lineDetails(line models.LineItem, cur currency.Currency, rate float64) string {
	if !line.IsTransport {
		return ""
	}

	details := []string{
		fmt.Sprintf("Nosivost: %s t", strconv.FormatFloat(line.TrailerCapacityTons, 'f', -1, 64)),
		fmt.Sprintf("Broj tura: %d", line.Trips),
	}
	if line.CostPerTrip != 0 {
		details = append(details, "Cena po turi: "+currency.Format(line.CostPerTrip, cur, rate))
	}
	return strings.Join(details, ", ")
}
