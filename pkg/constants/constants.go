// Package constants provides shared constants for the solar-forecast application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Sizing defaults. Thresholds are expressed on the monthly bill (EUR) for the
// small branch and on estimated annual consumption (kWh) for the tiers.
const (
	SmallBillThreshold    = 80.0
	TierOneConsumptionKwh = 4500.0
	TierTwoConsumptionKwh = 9000.0

	SmallSystemKwc     = 2.5
	TierOneSystemKwc   = 3.0
	TierTwoSystemKwc   = 6.0
	TierThreeSystemKwc = 9.0
)

// Battery catalog defaults.
const (
	BatteryMidSizeThresholdKwc = 6.0
	BatterySmallCapacityKwh    = 5.0
	BatterySmallCost           = 4000.0
	BatteryLargeCapacityKwh    = 10.0
	BatteryLargeCost           = 7000.0
)

// France defaults.
const (
	FranceElectricityPrice      = 0.27
	FranceCostPerKwc            = 1800.0
	FranceTierTwoDiscount       = 0.05
	FranceTierThreeDiscount     = 0.10
	FranceSubsidyUpTo3Kwc       = 230.0
	FranceSubsidyUpTo6Kwc       = 170.0
	FranceSubsidyAbove6Kwc      = 100.0
	FranceResalePrice           = 0.13
	FranceSelfConsumption       = 0.45
	FranceSelfConsumptionBatt   = 0.70
	FranceFallbackYieldPerKwc   = 1150.0
	FranceSubsidySmallBracketKw = 3.0
	FranceSubsidyMidBracketKw   = 6.0
)

// Belgium defaults.
const (
	BelgiumElectricityPrice    = 0.35
	BelgiumCostPerKwc          = 1500.0
	BelgiumInjectionPrice      = 0.05
	BelgiumSelfConsumption     = 0.40
	BelgiumSelfConsumptionBatt = 0.65
	BelgiumFallbackYieldPerKwc = 900.0
	BelgiumProsumerTaxPerKwc   = 72.3
	BrusselsPostalCodeMin      = 1000
	BrusselsPostalCodeMax      = 1299
)

// Result guards.
const (
	// MinPlausibleProductionKwh is the annual production below which a yield
	// figure is treated as missing.
	MinPlausibleProductionKwh = 500.0

	// SavingsCapRatio bounds annual savings relative to the annualized bill.
	SavingsCapRatio = 1.2

	// PaybackSentinelYears is reported when no savings are produced.
	PaybackSentinelYears = 99.0

	// PaybackWarningYears triggers the configuration warning in the advice.
	PaybackWarningYears = 25.0

	// DefaultRoofSlope and DefaultAzimuth are used when the caller omits them.
	DefaultRoofSlope = 35.0
	DefaultAzimuth   = 0.0

	// DefaultProjectionYears is the projection horizon when none is given.
	DefaultProjectionYears = 25

	// TariffVersion identifies the built-in fallback constants.
	TariffVersion = "2024.1"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultEnvFile is loaded for settings overrides when present
	DefaultEnvFile = ".env"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// MetricsNamespace prefixes every exported Prometheus metric
	MetricsNamespace = "solar_forecast"
)
