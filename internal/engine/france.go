package engine

import (
	"github.com/iwvelando/solar-forecast/internal/tariff"
)

type franceStrategy struct {
	rules  tariff.France
	sizing tariff.Sizing
}

func (s franceStrategy) Country() Country { return France }

func (s franceStrategy) ElectricityPrice() float64 { return s.rules.ElectricityPrice }

// volumeDiscount is 5% on the middle tier and 10% on the largest one.
func (s franceStrategy) volumeDiscount(systemSizeKwc float64) float64 {
	switch {
	case systemSizeKwc >= s.sizing.TierThreeSystemKwc:
		return s.rules.TierThreeDiscount
	case systemSizeKwc >= s.sizing.TierTwoSystemKwc:
		return s.rules.TierTwoDiscount
	default:
		return 0
	}
}

func (s franceStrategy) Apply(in StrategyInput) StrategyOutput {
	size := in.SystemSizeKwc

	panels := size * s.rules.CostPerKwc * (1 - s.volumeDiscount(size))
	total := panels + in.BatteryCost
	subsidy := s.rules.SubsidyRate(size) * size

	production, substituted := plausibleProduction(in.ProductionKwh, s.rules.MinPlausibleProductionKwh, size, s.rules.FallbackYieldPerKwc)

	selfRate := s.rules.SelfConsumption
	if in.HasBattery {
		selfRate = s.rules.SelfConsumptionBattery
	}
	self, exported := splitProduction(production, selfRate)

	return StrategyOutput{
		TotalCost:             total,
		NetCost:               total - subsidy,
		AnnualSavings:         self*s.rules.ElectricityPrice + exported*s.rules.ResalePrice,
		SelfConsumptionRate:   selfRate,
		ProductionKwh:         production,
		ProductionSubstituted: substituted,
	}
}
