package engine

import (
	"fmt"

	"github.com/iwvelando/solar-forecast/internal/settings"
	"github.com/iwvelando/solar-forecast/internal/tariff"
	"go.uber.org/zap"
)

// Engine prices recommendations against one snapshot of tariffs. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	logger     *zap.Logger
	tariffs    tariff.Tariffs
	strategies map[Country]Strategy
}

// New creates an Engine. If logger is nil, a no-op logger is used.
func New(logger *zap.Logger, t tariff.Tariffs) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger:     logger,
		tariffs:    t,
		strategies: newStrategies(t),
	}
}

// CalculateRecommendedSystem resolves the optional settings against the
// built-in tariffs and prices input. It never fails.
func CalculateRecommendedSystem(input Input, d settings.Dictionary) Result {
	return New(nil, tariff.FromSettings(d)).Calculate(input)
}

// Tariffs returns the rules the Engine was built with.
func (e *Engine) Tariffs() tariff.Tariffs {
	return e.tariffs
}

// Calculate sizes, prices and annotates a system for input.
func (e *Engine) Calculate(input Input) Result {
	var diagnostics []string

	strategy, ok := e.strategies[input.Country]
	if !ok {
		strategy = e.strategies[France]
		diagnostics = append(diagnostics, fmt.Sprintf("unsupported country %q, French rules applied", input.Country))
		e.logger.Warn("unsupported country, falling back to France",
			zap.String("op", "engine.Calculate"),
			zap.String("country", string(input.Country)),
		)
	}

	sizing := SelectSize(input.MonthlyBill, strategy.ElectricityPrice(), e.tariffs.Sizing)
	production := EstimateProduction(sizing.SystemSizeKwc, input.YieldPerKwc)
	battery := SizeBattery(sizing.SystemSizeKwc, input.Battery, e.tariffs.Battery)

	out := strategy.Apply(StrategyInput{
		Input:         input,
		SystemSizeKwc: sizing.SystemSizeKwc,
		ProductionKwh: production,
		BatteryCost:   battery.Cost,
		HasBattery:    input.Battery,
	})

	e.logger.Debug("system priced",
		zap.String("op", "engine.Calculate"),
		zap.String("country", string(strategy.Country())),
		zap.String("region", string(out.Region)),
		zap.Float64("systemSizeKwc", sizing.SystemSizeKwc),
		zap.Bool("futureProof", sizing.FutureProof),
		zap.Float64("productionKwh", out.ProductionKwh),
		zap.Float64("totalCost", out.TotalCost),
		zap.Float64("netCost", out.NetCost),
		zap.Float64("annualSavings", out.AnnualSavings),
	)

	return finalize(e.logger, finalizeParams{
		input:         input,
		sizing:        sizing,
		battery:       battery,
		strategy:      out,
		tariffVersion: e.tariffs.Version,
		diagnostics:   diagnostics,
	})
}
