// Package validation provides catalog and output format validation utilities.
package validation

import (
	"fmt"

	"github.com/gigtools/gig-optimizer/pkg/constants"
)

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be one of %s, %s, %s",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON)
	}
}

// ValidateClient warns when a project has no client recorded.
func ValidateClient(projectName, client string) string {
	if client == "" {
		return fmt.Sprintf("Project '%s' has no client recorded", projectName)
	}
	return ""
}

// ValidateProjectLoad warns when a project alone exceeds the available hours
// and therefore can never be part of a selection.
func ValidateProjectLoad(projectName string, hours, availableHours float64) string {
	if hours > availableHours {
		return fmt.Sprintf("Project '%s' requires %.1f hours but only %.1f are available - it can never be selected",
			projectName, hours, availableHours)
	}
	return ""
}

// ValidateDeadline warns when completing a project by its deadline would
// require more than a full working day of effort per day.
func ValidateDeadline(projectName string, hours float64, deadlineDays int) string {
	if deadlineDays <= 0 {
		return ""
	}
	if hours > float64(deadlineDays)*constants.MaxDailyWorkHours {
		return fmt.Sprintf("Project '%s' needs %.1f hours within %d days (more than %.0f hours per day)",
			projectName, hours, deadlineDays, constants.MaxDailyWorkHours)
	}
	return ""
}
