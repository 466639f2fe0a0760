// Package engine turns a household's bill, location, roof and battery choice
// into a priced, country-specific solar recommendation. Every call is a pure
// function of its input and the tariffs the Engine was built with.
package engine

// Country identifies a supported fiscal regime.
type Country string

// Supported countries.
const (
	France  Country = "FR"
	Belgium Country = "BE"
)

// Region is a sub-national fiscal area. Only Belgium distinguishes regions.
type Region string

// Belgian regions. Flanders is not distinguished: every postal code outside
// the Brussels range is treated as Wallonia.
const (
	RegionNone     Region = ""
	RegionBrussels Region = "Bruxelles"
	RegionWallonia Region = "Wallonie"
)

// Input describes one household as supplied by the caller.
type Input struct {
	MonthlyBill float64  `json:"monthlyBill" yaml:"monthlyBill" mapstructure:"monthlyBill"`
	Latitude    float64  `json:"latitude" yaml:"latitude" mapstructure:"latitude"`
	Longitude   float64  `json:"longitude" yaml:"longitude" mapstructure:"longitude"`
	Country     Country  `json:"country" yaml:"country" mapstructure:"country"`
	Address     string   `json:"address" yaml:"address" mapstructure:"address"`
	YieldPerKwc float64  `json:"yieldPerKwc" yaml:"yieldPerKwc" mapstructure:"yieldPerKwc"`
	RoofSlope   *float64 `json:"roofSlope,omitempty" yaml:"roofSlope,omitempty" mapstructure:"roofSlope"`
	Azimuth     *float64 `json:"azimuth,omitempty" yaml:"azimuth,omitempty" mapstructure:"azimuth"`
	Battery     bool     `json:"battery,omitempty" yaml:"battery,omitempty" mapstructure:"battery"`
}

// Details carries the context a recommendation was computed with.
type Details struct {
	Latitude           float64  `json:"lat"`
	Longitude          float64  `json:"lon"`
	YieldPerKwc        float64  `json:"yieldPerKwc"`
	Region             Region   `json:"region,omitempty"`
	RoofSlope          float64  `json:"roofSlope"`
	Azimuth            float64  `json:"azimuth"`
	HasBattery         bool     `json:"hasBattery"`
	BatteryCapacityKwh float64  `json:"batteryCapacityKwh,omitempty"`
	FutureProof        bool     `json:"futureProof"`
	Recommendation     string   `json:"recommendation"`
	Diagnostics        []string `json:"diagnostics,omitempty"`
	TariffVersion      string   `json:"tariffVersion"`

	// Set when the finalizer replaced or bounded a computed figure.
	SavingsCapped         bool `json:"savingsCapped,omitempty"`
	ProductionSubstituted bool `json:"productionSubstituted,omitempty"`
}

// Result is the priced recommendation returned for one Input.
type Result struct {
	SystemSizeKwc        float64 `json:"systemSizeKwc"`
	AnnualProductionKwh  float64 `json:"annualProductionKwh"`
	AnnualSavings        float64 `json:"annualSavings"`
	PaybackYears         float64 `json:"paybackYears"`
	TotalCost            float64 `json:"totalCost"`
	NetCost              float64 `json:"netCost"`
	MonthlyBill          float64 `json:"monthlyBill"`
	AnnualConsumptionKwh float64 `json:"annualConsumptionKwh"`
	SelfConsumptionRate  float64 `json:"selfConsumptionRate,omitempty"`
	Details              Details `json:"details"`
}
