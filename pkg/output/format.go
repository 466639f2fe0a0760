// Package output provides utilities for formatting and displaying simulation results.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iwvelando/solar-forecast/internal/simulation"
	"github.com/iwvelando/solar-forecast/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, reports []simulation.Report) error {
	p := message.NewPrinter(language.English)
	for i, report := range reports {
		r := report.Result
		lines := []string{
			fmt.Sprintf("--- Results for scenario %s ---", report.Name),
			fmt.Sprintf("Country            | %s", report.Input.Country),
		}
		if r.Details.Region != "" {
			lines = append(lines, fmt.Sprintf("Region             | %s", r.Details.Region))
		}
		lines = append(lines,
			p.Sprintf("System size        | %g kWc", r.SystemSizeKwc),
			fmt.Sprintf("Consumption        | %s", format.Energy(r.AnnualConsumptionKwh)),
			fmt.Sprintf("Production         | %s", format.Energy(r.AnnualProductionKwh)),
			fmt.Sprintf("Self-consumption   | %s", format.Percent(r.SelfConsumptionRate)),
			fmt.Sprintf("Annual savings     | %s", format.Currency(r.AnnualSavings)),
			fmt.Sprintf("Total cost         | %s", format.Currency(r.TotalCost)),
			fmt.Sprintf("Net cost           | %s", format.Currency(r.NetCost)),
			fmt.Sprintf("Payback            | %.1f years", r.PaybackYears),
		)
		if r.Details.HasBattery {
			lines = append(lines, fmt.Sprintf("Battery            | %g kWh", r.Details.BatteryCapacityKwh))
		}
		lines = append(lines,
			fmt.Sprintf("Recommendation     | %s", r.Details.Recommendation),
			fmt.Sprintf("Tariffs            | %s", r.Details.TariffVersion),
		)
		for _, d := range r.Details.Diagnostics {
			lines = append(lines, fmt.Sprintf("Diagnostic         | %s", d))
		}

		lines = append(lines, "",
			"Year | Savings       | Cumulative    | Without solar",
			"____ | _____________ | _____________ | _____________",
		)
		for _, y := range report.Projection.Years {
			lines = append(lines, p.Sprintf("%4d | %s | %s | %s", y.Year,
				format.Currency(y.Savings), format.Currency(y.CumulativeCashFlow), format.Currency(y.CumulativeWithoutSolar)))
		}
		if report.Projection.BreakEvenYear > 0 {
			lines = append(lines, fmt.Sprintf("Break-even in year %d, net benefit %s",
				report.Projection.BreakEvenYear, format.Currency(report.Projection.NetBenefit)))
		} else {
			lines = append(lines, fmt.Sprintf("No break-even within %d years, net benefit %s",
				len(report.Projection.Years), format.Currency(report.Projection.NetBenefit)))
		}
		if i < len(reports)-1 {
			lines = append(lines, "")
		}

		if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// CsvFormat writes one row per projection year with a savings and a
// cumulative column per scenario.
func CsvFormat(w io.Writer, reports []simulation.Report) error {
	cw := csv.NewWriter(w)

	header := []string{"year"}
	rows := 0
	for _, report := range reports {
		header = append(header,
			fmt.Sprintf("savings (%s)", report.Name),
			fmt.Sprintf("cumulative (%s)", report.Name),
		)
		if n := len(report.Projection.Years); n > rows {
			rows = n
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		record := []string{strconv.Itoa(i + 1)}
		for _, report := range reports {
			if i >= len(report.Projection.Years) {
				record = append(record, "", "")
				continue
			}
			y := report.Projection.Years[i]
			record = append(record,
				strconv.FormatFloat(y.Savings, 'f', 2, 64),
				strconv.FormatFloat(y.CumulativeCashFlow, 'f', 2, 64),
			)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
