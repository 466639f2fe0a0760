// Package projection compounds a recommendation's annual savings and the
// household's bill over a multi-year horizon.
package projection

import (
	"math"

	"github.com/iwvelando/solar-forecast/internal/engine"
	"github.com/iwvelando/solar-forecast/pkg/constants"
	"github.com/iwvelando/solar-forecast/pkg/mathutil"
)

// Params are the inputs of a projection. Years <= 0 selects the default
// horizon; InflationRate is a yearly percentage (e.g. 4 for 4%).
type Params struct {
	Result        engine.Result `json:"result"`
	MonthlyBill   float64       `json:"monthlyBill"`
	InflationRate float64       `json:"inflationRate"`
	Years         int           `json:"years,omitempty"`
}

// Year is one row of the projection.
type Year struct {
	Year                   int     `json:"year"`
	CumulativeCashFlow     float64 `json:"cumulativeCashFlow"`
	Savings                float64 `json:"savings"`
	CumulativeWithoutSolar float64 `json:"cumulativeWithoutSolar"`
}

// Output exposes both cumulative tracks. NetBenefit is the final with-solar
// balance (cumulative savings minus the upfront net cost); callers wanting
// the avoided-bill comparison derive it from the two tracks.
type Output struct {
	CumulativeWithoutSolar float64 `json:"cumulativeWithoutSolar"`
	CumulativeWithSolar    float64 `json:"cumulativeWithSolar"`
	NetBenefit             float64 `json:"netBenefit"`
	BreakEvenYear          int     `json:"breakEvenYear"`
	Years                  []Year  `json:"years"`
}

// CalculateFinancialProjection runs the year-by-year simulation. Year 1 uses
// today's prices; inflation compounds from year 2 onwards.
func CalculateFinancialProjection(p Params) Output {
	years := p.Years
	if years <= 0 {
		years = constants.DefaultProjectionYears
	}

	annualBill := p.MonthlyBill * constants.MonthsPerYear
	rate := mathutil.PercentToDecimal(p.InflationRate)

	out := Output{
		CumulativeWithSolar: -p.Result.NetCost,
		Years:               make([]Year, 0, years),
	}

	for i := 1; i <= years; i++ {
		multiplier := math.Pow(1+rate, float64(i-1))
		savings := p.Result.AnnualSavings * multiplier

		out.CumulativeWithoutSolar += annualBill * multiplier
		out.CumulativeWithSolar += savings

		if out.BreakEvenYear == 0 && out.CumulativeWithSolar >= 0 {
			out.BreakEvenYear = i
		}

		out.Years = append(out.Years, Year{
			Year:                   i,
			CumulativeCashFlow:     mathutil.Round(out.CumulativeWithSolar),
			Savings:                mathutil.Round(savings),
			CumulativeWithoutSolar: mathutil.Round(out.CumulativeWithoutSolar),
		})
	}

	out.CumulativeWithoutSolar = mathutil.Round(out.CumulativeWithoutSolar)
	out.CumulativeWithSolar = mathutil.Round(out.CumulativeWithSolar)
	out.NetBenefit = out.CumulativeWithSolar
	return out
}
