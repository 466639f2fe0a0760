package engine

import "github.com/iwvelando/solar-forecast/internal/tariff"

// Battery is the storage unit attached to a recommendation.
type Battery struct {
	CapacityKwh float64
	Cost        float64
}

// SizeBattery maps the system size onto one of the two catalog units. A zero
// Battery is returned when storage was not requested.
func SizeBattery(systemSizeKwc float64, wantsBattery bool, catalog tariff.BatteryCatalog) Battery {
	if !wantsBattery {
		return Battery{}
	}
	if systemSizeKwc <= catalog.MidSizeThresholdKwc {
		return Battery{CapacityKwh: catalog.SmallCapacityKwh, Cost: catalog.SmallCost}
	}
	return Battery{CapacityKwh: catalog.LargeCapacityKwh, Cost: catalog.LargeCost}
}
