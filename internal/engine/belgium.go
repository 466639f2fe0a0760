package engine

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/iwvelando/solar-forecast/internal/tariff"
)

var postalCodePattern = regexp.MustCompile(`\b(\d{4})\b`)

// ExtractPostalCode returns the first standalone 4-digit group of address.
func ExtractPostalCode(address string) (int, bool) {
	match := postalCodePattern.FindStringSubmatch(address)
	if match == nil {
		return 0, false
	}
	code, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return code, true
}

// DetectRegion classifies a Belgian address. Postal codes within
// [brusselsMin, brusselsMax] are Brussels; anything else, including an
// address without a postal code, is Wallonia.
func DetectRegion(address string, brusselsMin, brusselsMax int) Region {
	if code, ok := ExtractPostalCode(address); ok && code >= brusselsMin && code <= brusselsMax {
		return RegionBrussels
	}
	return RegionWallonia
}

type belgiumStrategy struct {
	rules tariff.Belgium
}

func (s belgiumStrategy) Country() Country { return Belgium }

func (s belgiumStrategy) ElectricityPrice() float64 { return s.rules.ElectricityPrice }

func (s belgiumStrategy) Apply(in StrategyInput) StrategyOutput {
	size := in.SystemSizeKwc
	region := DetectRegion(in.Input.Address, s.rules.BrusselsPostalMin, s.rules.BrusselsPostalMax)

	total := size*s.rules.CostPerKwc + in.BatteryCost

	production, substituted := plausibleProduction(in.ProductionKwh, s.rules.MinPlausibleProductionKwh, size, s.rules.FallbackYieldPerKwc)

	selfRate := s.rules.SelfConsumption
	if in.HasBattery {
		selfRate = s.rules.SelfConsumptionBattery
	}
	self, exported := splitProduction(production, selfRate)
	savings := self*s.rules.ElectricityPrice + exported*s.rules.InjectionPrice

	var notes []string
	if region == RegionWallonia {
		levy := s.rules.ProsumerTaxPerKwc * size
		savings -= levy
		notes = append(notes, fmt.Sprintf(
			"Wallonie : la taxe Prosumer (%.2f €/kWc/an, soit %.0f €/an) est déduite des économies ; maximisez l'autoconsommation pour la compenser.",
			s.rules.ProsumerTaxPerKwc, levy))
	} else {
		notes = append(notes, "Bruxelles : aucune taxe Prosumer n'est appliquée.")
	}

	return StrategyOutput{
		TotalCost:             total,
		NetCost:               total,
		AnnualSavings:         savings,
		SelfConsumptionRate:   selfRate,
		ProductionKwh:         production,
		ProductionSubstituted: substituted,
		Region:                region,
		Notes:                 notes,
	}
}
