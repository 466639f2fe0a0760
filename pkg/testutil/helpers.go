// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/solar-forecast/internal/simulation"
)

// FindReport finds a report by scenario name in the reports slice.
// Returns a pointer to the report if found, nil otherwise.
func FindReport(reports []simulation.Report, name string) *simulation.Report {
	for i := range reports {
		if reports[i].Name == name {
			return &reports[i]
		}
	}
	return nil
}
