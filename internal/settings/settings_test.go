package settings

import (
	"math"
	"testing"
)

func TestResolve(t *testing.T) {
	const fallback = 0.27

	tests := []struct {
		name     string
		settings Dictionary
		expected float64
	}{
		{"Nil dictionary", nil, fallback},
		{"Empty dictionary", Dictionary{}, fallback},
		{"Float override", Dictionary{KeyFranceElectricityPrice: 0.3}, 0.3},
		{"Integer override", Dictionary{KeyFranceElectricityPrice: 1}, 1},
		{"Numeric string", Dictionary{KeyFranceElectricityPrice: "0.31"}, 0.31},
		{"Padded numeric string", Dictionary{KeyFranceElectricityPrice: "  0.32 "}, 0.32},
		{"Blank string", Dictionary{KeyFranceElectricityPrice: ""}, fallback},
		{"Whitespace string", Dictionary{KeyFranceElectricityPrice: "   "}, fallback},
		{"Zero", Dictionary{KeyFranceElectricityPrice: 0}, fallback},
		{"Zero string", Dictionary{KeyFranceElectricityPrice: "0"}, fallback},
		{"Negative", Dictionary{KeyFranceElectricityPrice: -0.2}, fallback},
		{"Non-numeric string", Dictionary{KeyFranceElectricityPrice: "cheap"}, fallback},
		{"Nil value", Dictionary{KeyFranceElectricityPrice: nil}, fallback},
		{"Boolean", Dictionary{KeyFranceElectricityPrice: true}, fallback},
		{"NaN", Dictionary{KeyFranceElectricityPrice: math.NaN()}, fallback},
		{"Infinity", Dictionary{KeyFranceElectricityPrice: math.Inf(1)}, fallback},
		{"Lower-cased key", Dictionary{"fr_electricity_price": 0.29}, 0.29},
		{"Other key only", Dictionary{KeyBelgiumElectricityPrice: 0.4}, fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.settings, KeyFranceElectricityPrice, fallback)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Resolve() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestResolvePrefersExactKey(t *testing.T) {
	d := Dictionary{
		"be_prosumer_tax":     50,
		KeyBelgiumProsumerTax: 80,
	}
	if got := Resolve(d, KeyBelgiumProsumerTax, 72.3); got != 80 {
		t.Errorf("Resolve() = %v, expected exact-key value 80", got)
	}
}

func TestResolveCaseVariantsAreDeterministic(t *testing.T) {
	d := Dictionary{
		"fr_cost_per_kwc": 1900,
		"Fr_Cost_Per_Kwc": 2100,
		"fR_COST_PER_KWC": 2300,
	}
	for i := 0; i < 50; i++ {
		if got := Resolve(d, KeyFranceCostPerKwc, 1800); got != 2100 {
			t.Fatalf("Resolve() = %v on attempt %d, expected 2100", got, i)
		}
	}
}

func TestMerge(t *testing.T) {
	file := Dictionary{"fr_cost_per_kwc": 1900, KeyBelgiumInjectionPrice: 0.04}
	db := Dictionary{KeyFranceCostPerKwc: "2000"}
	env := Dictionary{KeyBelgiumInjectionPrice: "0.06"}

	merged := Merge(file, db, env)

	if len(merged) != 2 {
		t.Fatalf("expected 2 merged keys, got %d: %v", len(merged), merged)
	}
	if got := Resolve(merged, KeyFranceCostPerKwc, 1800); got != 2000 {
		t.Errorf("expected database value to win, got %v", got)
	}
	if got := Resolve(merged, KeyBelgiumInjectionPrice, 0.05); got != 0.06 {
		t.Errorf("expected environment value to win, got %v", got)
	}
}

func TestMergeEmpty(t *testing.T) {
	merged := Merge()
	if merged == nil || len(merged) != 0 {
		t.Fatalf("expected empty non-nil dictionary, got %v", merged)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(KeyBelgiumProsumerTax, "80")
	t.Setenv("UNRELATED_SETTING", "1")

	d := FromEnv(KnownKeys())

	if v, ok := d[KeyBelgiumProsumerTax]; !ok || v != "80" {
		t.Fatalf("expected %s=80 from environment, got %v", KeyBelgiumProsumerTax, d)
	}
	if _, ok := d["UNRELATED_SETTING"]; ok {
		t.Fatal("unexpected unrelated key in dictionary")
	}
}

func TestKnownKeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, key := range KnownKeys() {
		if seen[key] {
			t.Fatalf("duplicate key %s", key)
		}
		seen[key] = true
	}
	if len(seen) != 12 {
		t.Fatalf("expected 12 keys, got %d", len(seen))
	}
}
