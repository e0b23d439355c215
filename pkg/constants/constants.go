// Package constants provides shared constants for the gig-optimizer application.
package constants

// Skill match bounds; skill match is a percentage fit in [0, 100].
const (
	// SkillMatchMin is the lowest valid skill match percentage
	SkillMatchMin = 0.0

	// SkillMatchMax is the highest valid skill match percentage
	SkillMatchMax = 100.0
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default catalog configuration file name
	DefaultConfigFile = "catalog.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// MaxDailyWorkHours is the workday length assumed when sanity-checking a
	// project's deadline against its required hours.
	MaxDailyWorkHours = 12.0
)
