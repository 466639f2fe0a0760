package engine

import (
	"fmt"
	"strings"

	"github.com/iwvelando/solar-forecast/pkg/constants"
	"github.com/iwvelando/solar-forecast/pkg/mathutil"
	"go.uber.org/zap"
)

// finalizeParams gathers everything the finalizer merges into a Result.
type finalizeParams struct {
	input         Input
	sizing        Sizing
	battery       Battery
	strategy      StrategyOutput
	tariffVersion string
	diagnostics   []string
}

// finalize merges the pipeline outputs, enforces the savings bounds, computes
// the payback period and assembles the advice text.
func finalize(logger *zap.Logger, p finalizeParams) Result {
	out := p.strategy
	diagnostics := append([]string(nil), p.diagnostics...)

	if out.ProductionSubstituted {
		msg := fmt.Sprintf("yield figure %.0f kWh/kWc implausible, production estimated at %.0f kWh",
			p.input.YieldPerKwc, out.ProductionKwh)
		diagnostics = append(diagnostics, msg)
		logger.Warn("production substituted",
			zap.String("op", "engine.finalize"),
			zap.Float64("yieldPerKwc", p.input.YieldPerKwc),
			zap.Float64("productionKwh", out.ProductionKwh),
		)
	}

	savings := out.AnnualSavings
	capped := false
	ceiling := p.input.MonthlyBill * constants.MonthsPerYear * constants.SavingsCapRatio
	if savings > ceiling {
		diagnostics = append(diagnostics, fmt.Sprintf("annual savings %.2f capped at %.2f", savings, ceiling))
		logger.Warn("annual savings capped, tariff configuration is likely miscalibrated",
			zap.String("op", "engine.finalize"),
			zap.Float64("computed", savings),
			zap.Float64("ceiling", ceiling),
			zap.String("country", string(p.input.Country)),
		)
		savings = ceiling
		capped = true
	}
	if savings <= 0 {
		savings = 0
	}
	savings = mathutil.RoundWhole(savings)

	payback := constants.PaybackSentinelYears
	if mathutil.IsPositive(savings) {
		payback = mathutil.Clamp(mathutil.RoundTo(out.NetCost/savings, 1), 0, constants.PaybackSentinelYears)
	}

	slope := constants.DefaultRoofSlope
	if p.input.RoofSlope != nil {
		slope = *p.input.RoofSlope
	}
	azimuth := constants.DefaultAzimuth
	if p.input.Azimuth != nil {
		azimuth = *p.input.Azimuth
	}

	return Result{
		SystemSizeKwc:        p.sizing.SystemSizeKwc,
		AnnualProductionKwh:  mathutil.RoundWhole(out.ProductionKwh),
		AnnualSavings:        savings,
		PaybackYears:         payback,
		TotalCost:            mathutil.Round(out.TotalCost),
		NetCost:              mathutil.Round(out.NetCost),
		MonthlyBill:          p.input.MonthlyBill,
		AnnualConsumptionKwh: mathutil.RoundWhole(p.sizing.AnnualConsumptionKwh),
		SelfConsumptionRate:  out.SelfConsumptionRate,
		Details: Details{
			Latitude:           p.input.Latitude,
			Longitude:          p.input.Longitude,
			YieldPerKwc:        p.input.YieldPerKwc,
			Region:             out.Region,
			RoofSlope:          slope,
			Azimuth:            azimuth,
			HasBattery:         p.battery.CapacityKwh > 0,
			BatteryCapacityKwh: p.battery.CapacityKwh,
			FutureProof:        p.sizing.FutureProof,
			Recommendation:     recommendation(p, payback),
			Diagnostics:        diagnostics,
			TariffVersion:      p.tariffVersion,

			SavingsCapped:         capped,
			ProductionSubstituted: out.ProductionSubstituted,
		},
	}
}

func recommendation(p finalizeParams, payback float64) string {
	var parts []string
	if payback > constants.PaybackWarningYears {
		parts = append(parts, fmt.Sprintf(
			"Attention : retour sur investissement estimé à %.0f ans. Ajustez la configuration (orientation, inclinaison, batterie) avant de vous engager.",
			payback))
	}

	parts = append(parts, fmt.Sprintf("Installation recommandée : %g kWc.", p.sizing.SystemSizeKwc))
	if p.sizing.FutureProof {
		parts = append(parts, "Consommation déclarée faible : la puissance minimale est retenue pour anticiper l'évolution de vos usages.")
	}
	if p.battery.CapacityKwh > 0 {
		parts = append(parts, fmt.Sprintf(
			"Batterie de %g kWh incluse pour stocker la production de journée et augmenter l'autoconsommation.",
			p.battery.CapacityKwh))
	}
	parts = append(parts, p.strategy.Notes...)

	return strings.Join(parts, " ")
}
