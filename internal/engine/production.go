package engine

// EstimateProduction scales a per-kWc annual yield to the whole system.
func EstimateProduction(systemSizeKwc, yieldPerKwc float64) float64 {
	return systemSizeKwc * yieldPerKwc
}

// plausibleProduction returns production unchanged when it reaches the
// minimum, otherwise the fallback estimate and true.
func plausibleProduction(production, minimum, systemSizeKwc, fallbackYield float64) (float64, bool) {
	if production >= minimum {
		return production, false
	}
	return EstimateProduction(systemSizeKwc, fallbackYield), true
}
