package routing

// Solution is the raw output of a MipSolver invocation: a termination status
// and, when one was found, the optimal/incumbent assignment as a closed walk
// of node indices `0, π(1), …, π(N), 0` (§4.2/§4.3 — "status,
// assignment_of_binary_vars").
type Solution struct {
	Status Status

	// Tour is the closed walk of node indices (0 = feeder). len(Tour) ==
	// N+2 (start, N placements, end) when HasTour is true.
	Tour []int

	// ObjectiveValue is the total distance along Tour.
	ObjectiveValue float64

	// HasTour reports whether Tour is populated. False only for
	// StatusInfeasible or a StatusTimeLimit with no incumbent.
	HasTour bool
}

// MipSolver is the abstract capability of §4.3: hand it a model and solve
// options, get back a status and an assignment. Any branch-and-cut or
// dynamic-programming engine can implement it; HeldKarpSolver is the
// reference implementation shipped with this module.
type MipSolver interface {
	Solve(model *HamiltonianModel, opts SolveOptions) (Solution, error)
}
