package engine

import (
	"testing"

	"github.com/iwvelando/solar-forecast/internal/tariff"
)

func TestFranceStrategyCost(t *testing.T) {
	d := tariff.Default()
	s := franceStrategy{rules: d.France, sizing: d.Sizing}

	tests := []struct {
		name          string
		size          float64
		batteryCost   float64
		expectedTotal float64
		expectedNet   float64
	}{
		{"Small system no discount", 2.5, 0, 4500, 3925},
		{"Tier one no discount", 3, 0, 5400, 4710},
		{"Tier two 5% discount", 6, 0, 10260, 9240},
		{"Tier three 10% discount", 9, 0, 14580, 13680},
		{"Battery added after discount", 6, 4000, 14260, 13240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Apply(StrategyInput{SystemSizeKwc: tt.size, ProductionKwh: tt.size * 1100, BatteryCost: tt.batteryCost})
			assertClose(t, "TotalCost", out.TotalCost, tt.expectedTotal, 0.001)
			assertClose(t, "NetCost", out.NetCost, tt.expectedNet, 0.001)
		})
	}
}

func TestFranceStrategySavingsSplit(t *testing.T) {
	d := tariff.Default()
	s := franceStrategy{rules: d.France, sizing: d.Sizing}

	out := s.Apply(StrategyInput{SystemSizeKwc: 6, ProductionKwh: 6600})
	assertClose(t, "SelfConsumptionRate", out.SelfConsumptionRate, 0.45, 1e-9)
	assertClose(t, "AnnualSavings", out.AnnualSavings, 2970*0.27+3630*0.13, 1e-6)
	if out.Region != RegionNone {
		t.Errorf("France has no region, got %q", out.Region)
	}

	withBattery := s.Apply(StrategyInput{SystemSizeKwc: 6, ProductionKwh: 6600, HasBattery: true})
	if withBattery.SelfConsumptionRate <= out.SelfConsumptionRate {
		t.Errorf("battery must raise self-consumption: %v <= %v", withBattery.SelfConsumptionRate, out.SelfConsumptionRate)
	}
}

func TestFranceStrategyProductionFallback(t *testing.T) {
	d := tariff.Default()
	s := franceStrategy{rules: d.France, sizing: d.Sizing}

	tests := []struct {
		name        string
		production  float64
		substituted bool
		expected    float64
	}{
		{"Missing production", 0, true, 6900},
		{"Implausibly small", 120, true, 6900},
		{"At minimum", 500, false, 500},
		{"Normal", 6600, false, 6600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Apply(StrategyInput{SystemSizeKwc: 6, ProductionKwh: tt.production})
			if out.ProductionSubstituted != tt.substituted {
				t.Errorf("ProductionSubstituted = %v, expected %v", out.ProductionSubstituted, tt.substituted)
			}
			assertClose(t, "ProductionKwh", out.ProductionKwh, tt.expected, 1e-9)
		})
	}
}
