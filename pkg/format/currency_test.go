package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Small amount", 12.5, "€12.50"},
		{"Thousands", 1274, "€1,274.00"},
		{"Millions", 1234567.891, "€1,234,567.89"},
		{"Negative investment", -9240, "-€9,240.00"},
		{"Zero", 0, "€0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestEnergy(t *testing.T) {
	tests := map[float64]string{
		6600:   "6,600 kWh",
		950:    "950 kWh",
		5700.4: "5,700 kWh",
	}
	for input, expected := range tests {
		if got := Energy(input); got != expected {
			t.Errorf("Energy(%v) = %q, expected %q", input, got, expected)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(0.45); got != "45%" {
		t.Errorf("Percent(0.45) = %q, expected 45%%", got)
	}
	if got := Percent(0.7); got != "70%" {
		t.Errorf("Percent(0.7) = %q, expected 70%%", got)
	}
}
