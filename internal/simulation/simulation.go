// Package simulation runs every active scenario of a configuration through
// the engine and the financial projection.
package simulation

import (
	"fmt"

	"github.com/iwvelando/solar-forecast/internal/config"
	"github.com/iwvelando/solar-forecast/internal/engine"
	"github.com/iwvelando/solar-forecast/internal/projection"
	"github.com/iwvelando/solar-forecast/internal/tariff"
	"github.com/iwvelando/solar-forecast/pkg/validation"
	"go.uber.org/zap"
)

// Report holds the outcome of one scenario.
type Report struct {
	Name       string            `json:"name"`
	Input      engine.Input      `json:"input"`
	Result     engine.Result     `json:"result"`
	Projection projection.Output `json:"projection"`
}

// Run processes the Reports for all active Scenarios. Tariffs are built once
// from conf.Settings and shared by every scenario. Scenarios with invalid
// input are logged and left out of the result.
func Run(logger *zap.Logger, conf config.Configuration) []Report {
	if logger == nil {
		logger = zap.NewNop()
	}

	eng := engine.New(logger, tariff.FromSettings(conf.Settings))

	var reports []Report
	for _, scenario := range conf.Scenarios {
		if !scenario.Active {
			logger.Debug(fmt.Sprintf("skipping scenario %s because it is inactive", scenario.Name),
				zap.String("op", "simulation.Run"),
			)
			continue
		}

		if err := validation.ValidateInput(scenario.Input); err != nil {
			logger.Warn(fmt.Sprintf("skipping scenario %s because its input is invalid", scenario.Name),
				zap.String("op", "simulation.Run"),
				zap.Error(err),
			)
			continue
		}

		result := eng.Calculate(scenario.Input)
		proj := projection.CalculateFinancialProjection(projection.Params{
			Result:        result,
			MonthlyBill:   scenario.Input.MonthlyBill,
			InflationRate: conf.InflationRateFor(scenario),
			Years:         conf.YearsFor(scenario),
		})

		logger.Info("scenario simulated",
			zap.String("op", "simulation.Run"),
			zap.String("scenario", scenario.Name),
			zap.Float64("systemSizeKwc", result.SystemSizeKwc),
			zap.Float64("annualSavings", result.AnnualSavings),
			zap.Float64("paybackYears", result.PaybackYears),
		)

		reports = append(reports, Report{
			Name:       scenario.Name,
			Input:      scenario.Input,
			Result:     result,
			Projection: proj,
		})
	}

	return reports
}
