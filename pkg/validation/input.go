package validation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/solar-forecast/internal/engine"
)

// SupportedCountries lists the country codes the engine prices.
var SupportedCountries = []engine.Country{engine.France, engine.Belgium}

// ValidateCountry checks that country is one of SupportedCountries.
func ValidateCountry(country engine.Country) error {
	for _, c := range SupportedCountries {
		if c == country {
			return nil
		}
	}
	return fmt.Errorf("unsupported country %q, expected one of %s", country, joinCountries())
}

// ValidateInput rejects malformed engine input. The engine itself accepts any
// numbers; this check belongs to the callers that receive untrusted data.
func ValidateInput(in engine.Input) error {
	var errs []error

	if err := ValidateCountry(in.Country); err != nil {
		errs = append(errs, err)
	}
	if in.MonthlyBill <= 0 || math.IsNaN(in.MonthlyBill) {
		errs = append(errs, fmt.Errorf("monthly bill must be positive, got %.2f", in.MonthlyBill))
	}
	// Zero means the yield is unknown; the engine substitutes a fallback.
	if in.YieldPerKwc < 0 || math.IsNaN(in.YieldPerKwc) || math.IsInf(in.YieldPerKwc, 0) {
		errs = append(errs, fmt.Errorf("yield per kWc must not be negative, got %.2f", in.YieldPerKwc))
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		errs = append(errs, fmt.Errorf("latitude %.4f out of range [-90, 90]", in.Latitude))
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		errs = append(errs, fmt.Errorf("longitude %.4f out of range [-180, 180]", in.Longitude))
	}
	if in.RoofSlope != nil && (*in.RoofSlope < 0 || *in.RoofSlope > 90) {
		errs = append(errs, fmt.Errorf("roof slope %.1f out of range [0, 90]", *in.RoofSlope))
	}
	if in.Azimuth != nil && (*in.Azimuth < -180 || *in.Azimuth > 180) {
		errs = append(errs, fmt.Errorf("azimuth %.1f out of range [-180, 180]", *in.Azimuth))
	}

	return errors.Join(errs...)
}

// ValidateProjection checks the projection horizon and inflation rate.
func ValidateProjection(inflationRate float64, years int) error {
	if inflationRate <= -100 {
		return fmt.Errorf("inflation rate must be greater than -100%%, got %.2f", inflationRate)
	}
	if years < 0 || years > 60 {
		return fmt.Errorf("projection years must be within [0, 60], got %d", years)
	}
	return nil
}

func joinCountries() string {
	names := make([]string, len(SupportedCountries))
	for i, c := range SupportedCountries {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
