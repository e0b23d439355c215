// Package milp solves binary linear programs of the knapsack form: minimize a
// linear cost over {0,1} decision variables subject to a single capacity
// constraint. The solve is exact: branch and bound with the LP relaxation at
// each node solved by gonum's simplex implementation.
package milp

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// ErrSolverFailure indicates the underlying LP machinery failed in a way that
// does not correspond to a structurally infeasible subproblem. Callers should
// treat it as a hard error rather than an empty selection.
var ErrSolverFailure = errors.New("lp relaxation failed")

// Problem describes the binary program
//
//	minimize   Cost . x
//	subject to Weights . x <= Capacity
//	           x_i in {0, 1}
//
// Cost and Weights must have equal length; all coefficients must be finite
// and every weight non-negative.
type Problem struct {
	Cost     []float64
	Weights  []float64
	Capacity float64
}

// Solution is an optimal assignment together with its objective value.
type Solution struct {
	X         []int
	Objective float64
}

const (
	// integralityTol decides when an LP value counts as integral.
	integralityTol = 1e-6

	// boundTol guards bound comparisons against simplex round-off.
	boundTol = 1e-9
)

// Solve returns an optimal solution to the given problem. With a non-negative
// capacity the all-zero assignment is always feasible, so an error implies
// either invalid input or an unexpected failure in the LP solver.
func Solve(p Problem) (*Solution, error) {
	n := len(p.Cost)
	if len(p.Weights) != n {
		return nil, fmt.Errorf("cost has %d coefficients but weights has %d", n, len(p.Weights))
	}
	for i := 0; i < n; i++ {
		if math.IsNaN(p.Cost[i]) || math.IsInf(p.Cost[i], 0) {
			return nil, fmt.Errorf("cost coefficient %d is not finite", i)
		}
		if math.IsNaN(p.Weights[i]) || math.IsInf(p.Weights[i], 0) || p.Weights[i] < 0 {
			return nil, fmt.Errorf("weight coefficient %d must be finite and non-negative, got %v", i, p.Weights[i])
		}
	}
	if math.IsNaN(p.Capacity) || math.IsInf(p.Capacity, 0) {
		return nil, fmt.Errorf("capacity is not finite")
	}
	if p.Capacity < 0 {
		return nil, fmt.Errorf("capacity %v is negative; the program is infeasible", p.Capacity)
	}

	if n == 0 {
		return &Solution{X: []int{}, Objective: 0}, nil
	}

	// The all-zero assignment seeds the incumbent; it is feasible for any
	// non-negative capacity.
	best := &incumbent{x: make([]int, n), objective: 0}

	fixed := make([]int, n)
	for i := range fixed {
		fixed[i] = free
	}
	if err := branch(p, fixed, best); err != nil {
		return nil, err
	}

	return &Solution{X: best.x, Objective: best.objective}, nil
}

// Variable states during branch and bound.
const (
	free        = -1
	fixedToZero = 0
	fixedToOne  = 1
)

type incumbent struct {
	x         []int
	objective float64
}

func (b *incumbent) consider(x []int, objective float64) {
	if objective < b.objective-boundTol {
		b.x = append([]int(nil), x...)
		b.objective = objective
	}
}

func branch(p Problem, fixed []int, best *incumbent) error {
	fixedCost := 0.0
	fixedWeight := 0.0
	var freeIdx []int
	for i, state := range fixed {
		switch state {
		case fixedToOne:
			fixedCost += p.Cost[i]
			fixedWeight += p.Weights[i]
		case free:
			freeIdx = append(freeIdx, i)
		}
	}

	remaining := p.Capacity - fixedWeight
	if remaining < -boundTol {
		// The fixed assignments alone exceed capacity.
		return nil
	}
	if remaining < 0 {
		remaining = 0
	}

	if len(freeIdx) == 0 {
		best.consider(fixed, fixedCost)
		return nil
	}

	relaxed, relaxedCost, feasible, err := solveRelaxation(p, freeIdx, remaining)
	if err != nil {
		return err
	}
	if !feasible {
		return nil
	}

	bound := fixedCost + relaxedCost
	if bound >= best.objective-boundTol {
		// The relaxation cannot beat the incumbent.
		return nil
	}

	branchVar := -1
	branchFrac := integralityTol
	for j, v := range relaxed {
		frac := math.Min(v, 1-v)
		if frac > branchFrac {
			branchFrac = frac
			branchVar = freeIdx[j]
		}
	}

	if branchVar == -1 {
		// Integral vertex; round and accept after re-checking capacity
		// with the exact integer assignment.
		candidate := append([]int(nil), fixed...)
		for j, v := range relaxed {
			candidate[freeIdx[j]] = int(math.Round(v))
		}
		cost, weight := evaluate(p, candidate)
		if weight <= p.Capacity+boundTol {
			best.consider(candidate, cost)
		}
		return nil
	}

	// Explore the take branch first so good incumbents appear early.
	fixed[branchVar] = fixedToOne
	if err := branch(p, fixed, best); err != nil {
		fixed[branchVar] = free
		return err
	}
	fixed[branchVar] = fixedToZero
	if err := branch(p, fixed, best); err != nil {
		fixed[branchVar] = free
		return err
	}
	fixed[branchVar] = free
	return nil
}

// solveRelaxation solves the LP relaxation over the free variables in standard
// form: one equality row for the capacity with slack s0, and one equality row
// x_j + s_j = 1 per variable to encode the upper bound.
func solveRelaxation(p Problem, freeIdx []int, capacity float64) (x []float64, cost float64, feasible bool, err error) {
	f := len(freeIdx)
	rows := 1 + f
	cols := 2*f + 1

	c := make([]float64, cols)
	for j, i := range freeIdx {
		c[j] = p.Cost[i]
	}

	a := mat.NewDense(rows, cols, nil)
	b := make([]float64, rows)
	for j, i := range freeIdx {
		a.Set(0, j, p.Weights[i])
	}
	a.Set(0, f, 1) // capacity slack
	b[0] = capacity
	for j := 0; j < f; j++ {
		a.Set(1+j, j, 1)
		a.Set(1+j, f+1+j, 1)
		b[1+j] = 1
	}

	// A zero tolerance selects gonum's default.
	optF, optX, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) {
			return nil, 0, false, nil
		}
		return nil, 0, false, fmt.Errorf("%w: %v", ErrSolverFailure, err)
	}

	return optX[:f], optF, true, nil
}

func evaluate(p Problem, x []int) (cost, weight float64) {
	costs := make([]float64, 0, len(x))
	weights := make([]float64, 0, len(x))
	for i, v := range x {
		if v == 1 {
			costs = append(costs, p.Cost[i])
			weights = append(weights, p.Weights[i])
		}
	}
	return floats.Sum(costs), floats.Sum(weights)
}
