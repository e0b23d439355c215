// Package optimizer implements the project selection engine. A run filters
// the catalog by skill threshold, builds a binary program maximizing total
// pay under the available-hours budget, invokes the solver, and interprets
// the assignment into per-project decisions and aggregate metrics.
package optimizer

import (
	"fmt"

	"github.com/gigtools/gig-optimizer/internal/config"
	"github.com/gigtools/gig-optimizer/pkg/mathutil"
	"github.com/gigtools/gig-optimizer/pkg/milp"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// SkipReason explains why a project was not taken.
type SkipReason string

const (
	// SkipReasonBelowSkillThreshold marks projects filtered out before the
	// model is built.
	SkipReasonBelowSkillThreshold SkipReason = "below skill threshold"

	// SkipReasonExcludedByOptimizer marks eligible projects the optimal
	// selection leaves out.
	SkipReasonExcludedByOptimizer SkipReason = "excluded by optimizer"
)

// Decision records the outcome for a single project.
type Decision struct {
	Project    config.Project `json:"project"`
	Taken      bool           `json:"taken"`
	SkipReason SkipReason     `json:"skipReason,omitempty"`
	HourlyRate float64        `json:"hourlyRate"`
}

// Result summarizes one optimization run. It is immutable once returned and
// holds no reference to state outside the run that produced it.
type Result struct {
	Taken   []Decision `json:"taken"`
	Skipped []Decision `json:"skipped"`

	TotalPay            float64 `json:"totalPay"`
	TotalHours          float64 `json:"totalHours"`
	AvailableHours      float64 `json:"availableHours"`
	HoursRemaining      float64 `json:"hoursRemaining"`
	Utilization         float64 `json:"utilization"`
	EffectiveHourlyRate float64 `json:"effectiveHourlyRate"`
	RateDefined         bool    `json:"rateDefined"`

	ProjectsSelected  int `json:"projectsSelected"`
	ProjectsAvailable int `json:"projectsAvailable"`

	// Catalog totals across every candidate, for the "if you took all"
	// comparison.
	CatalogPay   float64 `json:"catalogPay"`
	CatalogHours float64 `json:"catalogHours"`
}

// Optimize runs one selection over the catalog. It is a pure function of its
// inputs: the projects slice and constraints are not mutated, and no state
// survives the call. A nil logger is replaced with a no-op logger.
func Optimize(logger *zap.Logger, projects []config.Project, constraints config.Constraints) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, project := range projects {
		if err := project.Validate(); err != nil {
			return nil, err
		}
	}
	if err := constraints.Validate(); err != nil {
		return nil, err
	}

	eligibleIdx := eligibleIndices(projects, constraints.MinSkillMatch)
	eligible := make([]config.Project, len(eligibleIdx))
	for i, idx := range eligibleIdx {
		eligible[i] = projects[idx]
	}
	logger.Debug("partitioned catalog",
		zap.String("op", "optimizer.Optimize"),
		zap.Int("eligible", len(eligible)),
		zap.Int("ineligible", len(projects)-len(eligible)),
		zap.Float64("minSkillMatch", constraints.MinSkillMatch),
	)

	var assignment []int
	switch {
	case len(eligible) == 0:
		// Nothing to model; every project already has its skip reason.
	case constraints.AvailableHours <= 0:
		// A zero budget forces every eligible project out without a solve.
		assignment = make([]int, len(eligible))
	default:
		solution, err := milp.Solve(buildProblem(eligible, constraints.AvailableHours))
		if err != nil {
			return nil, fmt.Errorf("project selection solve failed: %w", err)
		}
		assignment = solution.X
	}

	result := interpret(projects, eligibleIdx, assignment, constraints)

	logger.Info("optimization complete",
		zap.String("op", "optimizer.Optimize"),
		zap.Int("projectsSelected", result.ProjectsSelected),
		zap.Int("projectsAvailable", result.ProjectsAvailable),
		zap.Float64("totalPay", result.TotalPay),
		zap.Float64("totalHours", result.TotalHours),
		zap.Float64("availableHours", result.AvailableHours),
	)

	return result, nil
}

// eligibleIndices returns the catalog indices of projects that meet the skill
// threshold. Ineligible projects never enter the model.
func eligibleIndices(projects []config.Project, minSkillMatch float64) []int {
	var indices []int
	for i, project := range projects {
		if project.SkillMatch >= minSkillMatch {
			indices = append(indices, i)
		}
	}
	return indices
}

// buildProblem constructs the binary program over the eligible set: negated
// pay as the minimizing objective and a single hours row bounded by the
// available hours.
func buildProblem(eligible []config.Project, availableHours float64) milp.Problem {
	cost := make([]float64, len(eligible))
	weights := make([]float64, len(eligible))
	for i, project := range eligible {
		cost[i] = -project.Pay
		weights[i] = project.Hours
	}
	return milp.Problem{Cost: cost, Weights: weights, Capacity: availableHours}
}

// interpret maps the solver assignment back onto the full catalog, preserving
// catalog order within the taken and skipped groups.
func interpret(projects []config.Project, eligibleIdx, assignment []int, constraints config.Constraints) *Result {
	taken := make(map[int]bool, len(eligibleIdx))
	eligibleSet := make(map[int]bool, len(eligibleIdx))
	for i, idx := range eligibleIdx {
		eligibleSet[idx] = true
		if assignment != nil && assignment[i] == 1 {
			taken[idx] = true
		}
	}

	result := &Result{
		AvailableHours:    constraints.AvailableHours,
		ProjectsAvailable: len(projects),
	}

	var takenPay, takenHours, catalogPay, catalogHours []float64
	for i, project := range projects {
		catalogPay = append(catalogPay, project.Pay)
		catalogHours = append(catalogHours, project.Hours)

		decision := Decision{Project: project, HourlyRate: project.HourlyRate()}
		switch {
		case taken[i]:
			decision.Taken = true
			result.Taken = append(result.Taken, decision)
			takenPay = append(takenPay, project.Pay)
			takenHours = append(takenHours, project.Hours)
		case eligibleSet[i]:
			decision.SkipReason = SkipReasonExcludedByOptimizer
			result.Skipped = append(result.Skipped, decision)
		default:
			decision.SkipReason = SkipReasonBelowSkillThreshold
			result.Skipped = append(result.Skipped, decision)
		}
	}

	result.TotalPay = floats.Sum(takenPay)
	result.TotalHours = floats.Sum(takenHours)
	result.CatalogPay = floats.Sum(catalogPay)
	result.CatalogHours = floats.Sum(catalogHours)
	result.HoursRemaining = constraints.AvailableHours - result.TotalHours
	result.Utilization = mathutil.CalculatePercentage(result.TotalHours, constraints.AvailableHours)
	result.ProjectsSelected = len(result.Taken)

	if result.TotalHours > 0 {
		result.EffectiveHourlyRate = result.TotalPay / result.TotalHours
		result.RateDefined = true
	}

	return result
}
