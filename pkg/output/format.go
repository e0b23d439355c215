// Package output provides utilities for formatting and displaying selection
// results.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gigtools/gig-optimizer/internal/optimizer"
	"github.com/gigtools/gig-optimizer/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(result *optimizer.Result) {
	fmt.Print(PrettyString(result))
}

// PrettyString renders the human-readable report as a string.
func PrettyString(result *optimizer.Result) string {
	p := message.NewPrinter(language.English)
	var builder strings.Builder

	builder.WriteString("--- Optimal project selection ---\n")
	p.Fprintf(&builder, "Take %d of %d projects\n\n", result.ProjectsSelected, result.ProjectsAvailable)

	if len(result.Taken) > 0 {
		builder.WriteString("TAKE:\n")
		for _, decision := range result.Taken {
			p.Fprintf(&builder, "  %s — %s | %s | %s | %s match | %s\n",
				decision.Project.Name,
				decision.Project.Client,
				format.Currency(decision.Project.Pay),
				format.Hours(decision.Project.Hours),
				format.Percent(decision.Project.SkillMatch),
				format.Rate(decision.HourlyRate),
			)
		}
		builder.WriteString("\n")
	}

	if len(result.Skipped) > 0 {
		builder.WriteString("SKIP:\n")
		for _, decision := range result.Skipped {
			p.Fprintf(&builder, "  %s — %s | %s | %s (%s)\n",
				decision.Project.Name,
				decision.Project.Client,
				format.Currency(decision.Project.Pay),
				format.Hours(decision.Project.Hours),
				decision.SkipReason,
			)
		}
		builder.WriteString("\n")
	}

	p.Fprintf(&builder, "Total pay:      %s\n", format.Currency(result.TotalPay))
	p.Fprintf(&builder, "Hours used:     %s of %s (%s utilization)\n",
		format.Hours(result.TotalHours),
		format.Hours(result.AvailableHours),
		format.Percent(result.Utilization),
	)
	if result.RateDefined {
		p.Fprintf(&builder, "Effective rate: %s\n", format.Rate(result.EffectiveHourlyRate))
	} else {
		builder.WriteString("Effective rate: n/a\n")
	}
	p.Fprintf(&builder, "Whole catalog:  %s in %s\n",
		format.Currency(result.CatalogPay),
		format.Hours(result.CatalogHours),
	)

	return builder.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(result *optimizer.Result) {
	fmt.Print(CsvString(result))
}

// CsvString renders the per-project decisions as CSV.
func CsvString(result *optimizer.Result) string {
	var builder strings.Builder

	builder.WriteString(`"id","project","client","pay","hours","deadline_days","skill_match","taken","skip_reason"` + "\n")
	writeRows := func(decisions []optimizer.Decision) {
		for _, decision := range decisions {
			fmt.Fprintf(&builder, `"%s","%s","%s","%.2f","%.2f","%d","%.1f","%t","%s"`+"\n",
				decision.Project.ID,
				decision.Project.Name,
				decision.Project.Client,
				decision.Project.Pay,
				decision.Project.Hours,
				decision.Project.DeadlineDays,
				decision.Project.SkillMatch,
				decision.Taken,
				decision.SkipReason,
			)
		}
	}
	writeRows(result.Taken)
	writeRows(result.Skipped)

	return builder.String()
}

// JSONString renders the full result as indented JSON.
func JSONString(result *optimizer.Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode result: %w", err)
	}
	return string(data) + "\n", nil
}

// JSONFormat outputs the full result as indented JSON.
func JSONFormat(result *optimizer.Result) error {
	s, err := JSONString(result)
	if err != nil {
		return err
	}
	fmt.Print(s)
	return nil
}
