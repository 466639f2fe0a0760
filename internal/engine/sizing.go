package engine

import (
	"github.com/iwvelando/solar-forecast/internal/tariff"
	"github.com/iwvelando/solar-forecast/pkg/constants"
)

// Sizing is the outcome of the size selection table.
type Sizing struct {
	SystemSizeKwc        float64
	AnnualConsumptionKwh float64
	FutureProof          bool
}

// EstimateConsumption converts a monthly bill into annual kWh at the given
// retail price. A non-positive price yields zero consumption.
func EstimateConsumption(monthlyBill, pricePerKwh float64) float64 {
	if pricePerKwh <= 0 {
		return 0
	}
	return monthlyBill * constants.MonthsPerYear / pricePerKwh
}

// SelectSize picks one of the four system sizes. The table is evaluated in
// order and the first matching row wins.
func SelectSize(monthlyBill, pricePerKwh float64, rules tariff.Sizing) Sizing {
	consumption := EstimateConsumption(monthlyBill, pricePerKwh)
	s := Sizing{AnnualConsumptionKwh: consumption}

	switch {
	case monthlyBill < rules.SmallBillThreshold:
		s.SystemSizeKwc = rules.SmallSystemKwc
		s.FutureProof = true
	case consumption < rules.TierOneConsumptionKwh:
		s.SystemSizeKwc = rules.TierOneSystemKwc
	case consumption < rules.TierTwoConsumptionKwh:
		s.SystemSizeKwc = rules.TierTwoSystemKwc
	default:
		s.SystemSizeKwc = rules.TierThreeSystemKwc
	}
	return s
}
