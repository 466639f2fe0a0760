// Package tariff holds the typed, versioned pricing rules consumed by the
// simulation engine. A Tariffs value is built once at the boundary from the
// loosely typed settings and then passed around by value.
package tariff

import (
	"github.com/iwvelando/solar-forecast/internal/settings"
	"github.com/iwvelando/solar-forecast/pkg/constants"
)

// Tariffs bundles every rule set the engine needs.
type Tariffs struct {
	Version string
	Sizing  Sizing
	Battery BatteryCatalog
	France  France
	Belgium Belgium
}

// Sizing is the ordered decision table used to pick a system size.
type Sizing struct {
	SmallBillThreshold    float64 // EUR per month
	TierOneConsumptionKwh float64
	TierTwoConsumptionKwh float64
	SmallSystemKwc        float64
	TierOneSystemKwc      float64
	TierTwoSystemKwc      float64
	TierThreeSystemKwc    float64
}

// BatteryCatalog describes the two storage SKUs on offer.
type BatteryCatalog struct {
	MidSizeThresholdKwc float64
	SmallCapacityKwh    float64
	SmallCost           float64
	LargeCapacityKwh    float64
	LargeCost           float64
}

// SubsidyBracket grants RatePerKwc to systems up to MaxKwc. A zero MaxKwc
// marks the open-ended last bracket.
type SubsidyBracket struct {
	MaxKwc     float64
	RatePerKwc float64
}

// France holds the French pricing rules.
type France struct {
	ElectricityPrice          float64
	CostPerKwc                float64
	TierTwoDiscount           float64
	TierThreeDiscount         float64
	SubsidyBrackets           []SubsidyBracket
	ResalePrice               float64
	SelfConsumption           float64
	SelfConsumptionBattery    float64
	FallbackYieldPerKwc       float64
	MinPlausibleProductionKwh float64
}

// Belgium holds the Belgian pricing rules.
type Belgium struct {
	ElectricityPrice          float64
	CostPerKwc                float64
	InjectionPrice            float64
	SelfConsumption           float64
	SelfConsumptionBattery    float64
	FallbackYieldPerKwc       float64
	ProsumerTaxPerKwc         float64
	BrusselsPostalMin         int
	BrusselsPostalMax         int
	MinPlausibleProductionKwh float64
}

// Default returns the built-in fallback rules.
func Default() Tariffs {
	return Tariffs{
		Version: constants.TariffVersion,
		Sizing: Sizing{
			SmallBillThreshold:    constants.SmallBillThreshold,
			TierOneConsumptionKwh: constants.TierOneConsumptionKwh,
			TierTwoConsumptionKwh: constants.TierTwoConsumptionKwh,
			SmallSystemKwc:        constants.SmallSystemKwc,
			TierOneSystemKwc:      constants.TierOneSystemKwc,
			TierTwoSystemKwc:      constants.TierTwoSystemKwc,
			TierThreeSystemKwc:    constants.TierThreeSystemKwc,
		},
		Battery: BatteryCatalog{
			MidSizeThresholdKwc: constants.BatteryMidSizeThresholdKwc,
			SmallCapacityKwh:    constants.BatterySmallCapacityKwh,
			SmallCost:           constants.BatterySmallCost,
			LargeCapacityKwh:    constants.BatteryLargeCapacityKwh,
			LargeCost:           constants.BatteryLargeCost,
		},
		France: France{
			ElectricityPrice:  constants.FranceElectricityPrice,
			CostPerKwc:        constants.FranceCostPerKwc,
			TierTwoDiscount:   constants.FranceTierTwoDiscount,
			TierThreeDiscount: constants.FranceTierThreeDiscount,
			SubsidyBrackets: []SubsidyBracket{
				{MaxKwc: constants.FranceSubsidySmallBracketKw, RatePerKwc: constants.FranceSubsidyUpTo3Kwc},
				{MaxKwc: constants.FranceSubsidyMidBracketKw, RatePerKwc: constants.FranceSubsidyUpTo6Kwc},
				{MaxKwc: 0, RatePerKwc: constants.FranceSubsidyAbove6Kwc},
			},
			ResalePrice:               constants.FranceResalePrice,
			SelfConsumption:           constants.FranceSelfConsumption,
			SelfConsumptionBattery:    constants.FranceSelfConsumptionBatt,
			FallbackYieldPerKwc:       constants.FranceFallbackYieldPerKwc,
			MinPlausibleProductionKwh: constants.MinPlausibleProductionKwh,
		},
		Belgium: Belgium{
			ElectricityPrice:          constants.BelgiumElectricityPrice,
			CostPerKwc:                constants.BelgiumCostPerKwc,
			InjectionPrice:            constants.BelgiumInjectionPrice,
			SelfConsumption:           constants.BelgiumSelfConsumption,
			SelfConsumptionBattery:    constants.BelgiumSelfConsumptionBatt,
			FallbackYieldPerKwc:       constants.BelgiumFallbackYieldPerKwc,
			ProsumerTaxPerKwc:         constants.BelgiumProsumerTaxPerKwc,
			BrusselsPostalMin:         constants.BrusselsPostalCodeMin,
			BrusselsPostalMax:         constants.BrusselsPostalCodeMax,
			MinPlausibleProductionKwh: constants.MinPlausibleProductionKwh,
		},
	}
}

// FromSettings applies administrator overrides on top of Default. Each
// override is accepted only when it resolves to a strictly positive number.
func FromSettings(d settings.Dictionary) Tariffs {
	t := Default()
	if len(d) == 0 {
		return t
	}

	t.France.ElectricityPrice = settings.Resolve(d, settings.KeyFranceElectricityPrice, t.France.ElectricityPrice)
	t.France.CostPerKwc = settings.Resolve(d, settings.KeyFranceCostPerKwc, t.France.CostPerKwc)
	t.France.ResalePrice = settings.Resolve(d, settings.KeyFranceResalePrice, t.France.ResalePrice)

	brackets := make([]SubsidyBracket, len(t.France.SubsidyBrackets))
	copy(brackets, t.France.SubsidyBrackets)
	subsidyKeys := []string{
		settings.KeyFranceSubsidyUpTo3Kwc,
		settings.KeyFranceSubsidyUpTo6Kwc,
		settings.KeyFranceSubsidyAbove6Kwc,
	}
	for i, key := range subsidyKeys {
		brackets[i].RatePerKwc = settings.Resolve(d, key, brackets[i].RatePerKwc)
	}
	t.France.SubsidyBrackets = brackets

	t.Belgium.ElectricityPrice = settings.Resolve(d, settings.KeyBelgiumElectricityPrice, t.Belgium.ElectricityPrice)
	t.Belgium.CostPerKwc = settings.Resolve(d, settings.KeyBelgiumCostPerKwc, t.Belgium.CostPerKwc)
	t.Belgium.InjectionPrice = settings.Resolve(d, settings.KeyBelgiumInjectionPrice, t.Belgium.InjectionPrice)
	t.Belgium.ProsumerTaxPerKwc = settings.Resolve(d, settings.KeyBelgiumProsumerTax, t.Belgium.ProsumerTaxPerKwc)

	t.Battery.SmallCost = settings.Resolve(d, settings.KeyBatterySmallCost, t.Battery.SmallCost)
	t.Battery.LargeCost = settings.Resolve(d, settings.KeyBatteryLargeCost, t.Battery.LargeCost)

	return t
}

// SubsidyRate returns the per-kWc subsidy for a system of the given size.
func (f France) SubsidyRate(systemSizeKwc float64) float64 {
	for _, bracket := range f.SubsidyBrackets {
		if bracket.MaxKwc == 0 || systemSizeKwc <= bracket.MaxKwc {
			return bracket.RatePerKwc
		}
	}
	return 0
}
