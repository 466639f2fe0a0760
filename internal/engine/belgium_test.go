package engine

import (
	"strings"
	"testing"

	"github.com/iwvelando/solar-forecast/internal/tariff"
)

func TestExtractPostalCode(t *testing.T) {
	tests := []struct {
		address  string
		code     int
		expected bool
	}{
		{"4000 Liège", 4000, true},
		{"Rue de la Loi 16, 1000 Bruxelles", 1000, true},
		{"Avenue Louise 54, 1050 Ixelles, Belgique", 1050, true},
		{"Grand-Place, Bruxelles", 0, false},
		{"", 0, false},
		{"Code 12345 Somewhere", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			code, ok := ExtractPostalCode(tt.address)
			if ok != tt.expected || code != tt.code {
				t.Errorf("ExtractPostalCode(%q) = (%d, %v), expected (%d, %v)", tt.address, code, ok, tt.code, tt.expected)
			}
		})
	}
}

func TestDetectRegion(t *testing.T) {
	tests := []struct {
		address  string
		expected Region
	}{
		{"1000 Bruxelles", RegionBrussels},
		{"1299 Somewhere", RegionBrussels},
		{"0999 Nowhere", RegionWallonia},
		{"1300 Wavre", RegionWallonia},
		{"4000 Liège", RegionWallonia},
		{"9000 Gent", RegionWallonia}, // Flanders is not distinguished
		{"no postal code", RegionWallonia},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			if got := DetectRegion(tt.address, 1000, 1299); got != tt.expected {
				t.Errorf("DetectRegion(%q) = %q, expected %q", tt.address, got, tt.expected)
			}
		})
	}
}

func TestBelgiumStrategyProsumerLevy(t *testing.T) {
	rules := tariff.Default().Belgium
	s := belgiumStrategy{rules: rules}

	base := StrategyInput{SystemSizeKwc: 6, ProductionKwh: 5700}

	brussels := base
	brussels.Input = Input{Country: Belgium, Address: "1000 Bruxelles"}
	wallonia := base
	wallonia.Input = Input{Country: Belgium, Address: "4000 Liège"}

	outB := s.Apply(brussels)
	outW := s.Apply(wallonia)

	if outB.Region != RegionBrussels || outW.Region != RegionWallonia {
		t.Fatalf("unexpected regions %q / %q", outB.Region, outW.Region)
	}
	levy := outB.AnnualSavings - outW.AnnualSavings
	assertClose(t, "levy", levy, rules.ProsumerTaxPerKwc*6, 1e-9)
	if outB.NetCost != outB.TotalCost {
		t.Errorf("Belgium applies no rebate: net %v != total %v", outB.NetCost, outB.TotalCost)
	}
	if !strings.Contains(strings.Join(outW.Notes, " "), "Prosumer") {
		t.Errorf("expected Prosumer note for Wallonia, got %v", outW.Notes)
	}
}

func TestBelgiumStrategyProductionFallback(t *testing.T) {
	s := belgiumStrategy{rules: tariff.Default().Belgium}
	out := s.Apply(StrategyInput{Input: Input{Address: "1000 Bruxelles"}, SystemSizeKwc: 6, ProductionKwh: 0})

	if !out.ProductionSubstituted {
		t.Fatal("expected production to be substituted")
	}
	assertClose(t, "ProductionKwh", out.ProductionKwh, 6*900, 1e-9)
}
