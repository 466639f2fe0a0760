// Package format renders amounts and energy figures for human-readable output.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a euro string with thousands separators (e.g., "-€1,234.56").
func Currency(amount float64) string {
	formatted := formatPositive(math.Abs(amount), 2)
	if amount < 0 {
		return "-€" + formatted
	}
	return "€" + formatted
}

// Energy returns a whole-kWh string with separators (e.g., "6,600 kWh").
func Energy(kwh float64) string {
	sign := ""
	if kwh < 0 {
		sign = "-"
	}
	return sign + formatPositive(math.Abs(kwh), 0) + " kWh"
}

// Percent renders a 0-1 fraction as a whole percentage (e.g., "45%").
func Percent(fraction float64) string {
	return fmt.Sprintf("%.0f%%", fraction*100)
}

func formatPositive(value float64, decimals int) string {
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), value)
}
