// Package format provides display formatting helpers for money, rates, and
// percentages.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Rate returns an hourly rate string (e.g., "$66.67/hr").
func Rate(amount float64) string {
	return Currency(amount) + "/hr"
}

// Percent returns a percentage string with one decimal place (e.g., "93.8%").
func Percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// Hours returns an hours string with one decimal place (e.g., "75.0 hrs").
func Hours(value float64) string {
	return fmt.Sprintf("%.1f hrs", value)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
