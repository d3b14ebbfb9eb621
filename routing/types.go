package routing

import (
	"errors"
	"time"
)

// Sentinel errors for routing package operations.
var (
	// ErrEmptyCluster indicates a model was requested for zero placements.
	ErrEmptyCluster = errors.New("routing: cluster has no placements")

	// ErrDimensionMismatch indicates an internal shape inconsistency (bug).
	ErrDimensionMismatch = errors.New("routing: dimension mismatch")

	// ErrSizeTooLarge indicates the cluster exceeds MaxExactN (time/memory guard).
	ErrSizeTooLarge = errors.New("routing: cluster exceeds the exact solver's size guard")

	// ErrSolverInfeasible is the SolverInfeasible error kind of §7: the MIP
	// reported infeasible for a cluster. Per §4.2 this should be impossible
	// for N >= 1 and indicates a bug upstream.
	ErrSolverInfeasible = errors.New("routing: solver reported infeasible (bug: cluster routing is always feasible)")

	// ErrSolverUnknown is the SolverUnknown error kind of §7: an unhandled
	// termination condition was returned by the solver.
	ErrSolverUnknown = errors.New("routing: solver returned an unhandled termination condition")

	// ErrSolverTimeLimit is the SolverTimeout-without-incumbent error kind of
	// §7: the time budget was exhausted before any feasible solution was found.
	ErrSolverTimeLimit = errors.New("routing: solver time limit exceeded with no incumbent")

	// ErrMissingNode is the MissingNode error kind of §7: SolveCluster could
	// not resolve a node id or index the solver returned (bug).
	ErrMissingNode = errors.New("routing: solver returned an unresolvable node index")
)

// Status mirrors the solver termination statuses of §4.2/§4.3.
type Status int

const (
	// StatusOptimal indicates the solver proved optimality.
	StatusOptimal Status = iota

	// StatusFeasible indicates a feasible (non-optimal) incumbent was returned.
	StatusFeasible

	// StatusTimeLimit indicates the time budget was exhausted; an incumbent
	// may or may not be attached (see Solution.HasTour).
	StatusTimeLimit

	// StatusInfeasible indicates no feasible Hamiltonian path exists.
	StatusInfeasible

	// StatusOther indicates an unhandled/unknown termination condition.
	StatusOther
)

// String renders the status for logs and error messages.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusFeasible:
		return "FEASIBLE"
	case StatusTimeLimit:
		return "TIME_LIMIT"
	case StatusInfeasible:
		return "INFEASIBLE"
	default:
		return "OTHER"
	}
}

// ArcTimePolicy resolves the open question in §9 of the core specification:
// whether the return-to-feeder arc is billed the per-placement
// align+place overhead along with every other arc, or only pure travel time.
type ArcTimePolicy int

const (
	// BillOverheadOnReturn bills align+place overhead on every arc, including
	// the return-to-feeder arc. This matches the observed behaviour of the
	// system this specification was distilled from and is the default.
	BillOverheadOnReturn ArcTimePolicy = iota

	// TravelOnlyOnReturn bills align+place overhead only on arcs that land on
	// a placement; the final return-to-feeder arc carries pure travel time.
	TravelOnlyOnReturn
)

// SolveOptions configures a MipSolver invocation (§4.2/§4.3).
type SolveOptions struct {
	// RelGap is the relative MIP gap accepted as "optimal enough". Default 0.001 (0.1%).
	RelGap float64

	// Presolve enables solver presolve, when the backing engine supports it.
	Presolve bool

	// SymmetryDetection enables solver symmetry detection, when supported.
	SymmetryDetection bool

	// Threads is the solver thread count; 0 means "auto, all cores".
	Threads int

	// TimeLimit bounds wall-clock solve time per cluster. Zero means unlimited.
	TimeLimit time.Duration

	// ArcTimePolicy selects the return-arc time-billing policy (§9 open question).
	ArcTimePolicy ArcTimePolicy
}

// DefaultSolveOptions returns the options §4.2/§4.3 document as defaults.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		RelGap:            0.001,
		Presolve:          true,
		SymmetryDetection: true,
		Threads:           0,
		TimeLimit:         0,
		ArcTimePolicy:     BillOverheadOnReturn,
	}
}

// MaxExactN bounds the reference solver's problem size (time/memory guard),
// mirroring the Held–Karp guard the routing solver is adapted from.
const MaxExactN = 16
