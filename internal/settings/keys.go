package settings

// Override keys understood by the tariff layer. Values may come from a YAML
// file, the settings database or the environment.
const (
	KeyFranceElectricityPrice = "FR_ELECTRICITY_PRICE"
	KeyFranceCostPerKwc       = "FR_COST_PER_KWC"
	KeyFranceResalePrice      = "FR_RESALE_PRICE"
	KeyFranceSubsidyUpTo3Kwc  = "FR_SUBSIDY_UP_TO_3KWC"
	KeyFranceSubsidyUpTo6Kwc  = "FR_SUBSIDY_UP_TO_6KWC"
	KeyFranceSubsidyAbove6Kwc = "FR_SUBSIDY_ABOVE_6KWC"

	KeyBelgiumElectricityPrice = "BE_ELECTRICITY_PRICE"
	KeyBelgiumCostPerKwc       = "BE_COST_PER_KWC"
	KeyBelgiumInjectionPrice   = "BE_INJECTION_PRICE"
	KeyBelgiumProsumerTax      = "BE_PROSUMER_TAX"

	KeyBatterySmallCost = "BATTERY_SMALL_COST"
	KeyBatteryLargeCost = "BATTERY_LARGE_COST"
)

// KnownKeys lists every override key in a stable order.
func KnownKeys() []string {
	return []string{
		KeyFranceElectricityPrice,
		KeyFranceCostPerKwc,
		KeyFranceResalePrice,
		KeyFranceSubsidyUpTo3Kwc,
		KeyFranceSubsidyUpTo6Kwc,
		KeyFranceSubsidyAbove6Kwc,
		KeyBelgiumElectricityPrice,
		KeyBelgiumCostPerKwc,
		KeyBelgiumInjectionPrice,
		KeyBelgiumProsumerTax,
		KeyBatterySmallCost,
		KeyBatteryLargeCost,
	}
}
