package engine

import "github.com/iwvelando/solar-forecast/internal/tariff"

// StrategyInput is what a country strategy needs to price a system.
type StrategyInput struct {
	Input         Input
	SystemSizeKwc float64
	ProductionKwh float64
	BatteryCost   float64
	HasBattery    bool
}

// StrategyOutput is the country-specific pricing of a system.
type StrategyOutput struct {
	TotalCost           float64
	NetCost             float64
	AnnualSavings       float64
	SelfConsumptionRate float64
	// ProductionKwh is the production the savings were computed from; it
	// differs from the input when an implausible figure was substituted.
	ProductionKwh         float64
	ProductionSubstituted bool
	Region                Region
	Notes                 []string
}

// Strategy prices a system under one country's fiscal rules.
type Strategy interface {
	Country() Country
	ElectricityPrice() float64
	Apply(in StrategyInput) StrategyOutput
}

// newStrategies builds the registry of supported countries. Supporting a new
// country means adding a Strategy implementation and one entry here.
func newStrategies(t tariff.Tariffs) map[Country]Strategy {
	list := []Strategy{
		franceStrategy{rules: t.France, sizing: t.Sizing},
		belgiumStrategy{rules: t.Belgium},
	}
	registry := make(map[Country]Strategy, len(list))
	for _, s := range list {
		registry[s.Country()] = s
	}
	return registry
}

// splitProduction divides production into self-consumed and exported kWh.
func splitProduction(production, selfConsumption float64) (float64, float64) {
	self := production * selfConsumption
	return self, production - self
}
