package routing

import (
	"github.com/lvlath-contrib/pnpsched/domain"
)

// RouteArc is one arc of a solved cluster route, carrying everything the
// event builder needs (§4.2 "Output"): endpoint IDs/coordinates, the arc's
// Euclidean distance, and its billed time.
type RouteArc struct {
	FromID   string
	ToID     string
	From     domain.Node
	To       domain.Node
	Distance float64
	Time     float64
}

// RoutingResult is the post-solve, domain-translated output of SolveCluster.
type RoutingResult struct {
	Status Status
	Arcs   []RouteArc // len == N+1
	Cost   float64
}

// SolveCluster builds the Hamiltonian model for (feeder, placements), hands
// it to solver, and translates the returned assignment into a time-ordered
// arc sequence billed per opts.ArcTimePolicy (§4.2, §9).
//
// Post-solve status handling follows §4.2/§7 exactly:
//   - OPTIMAL, FEASIBLE, or TIME_LIMIT-with-incumbent: accepted.
//   - INFEASIBLE: ErrSolverInfeasible (fatal — should be impossible for N>=1).
//   - TIME_LIMIT-without-incumbent: ErrSolverTimeLimit (fatal).
//   - anything else: ErrSolverUnknown (fatal).
func SolveCluster(job *domain.Job, feeder domain.Node, placements []domain.Node, solver MipSolver, opts SolveOptions) (RoutingResult, error) {
	model, err := BuildHamiltonianModel(job, feeder, placements)
	if err != nil {
		return RoutingResult{}, err
	}

	sol, err := solver.Solve(model, opts)
	if err != nil {
		switch sol.Status {
		case StatusInfeasible:
			return RoutingResult{}, ErrSolverInfeasible
		case StatusTimeLimit:
			if !sol.HasTour {
				return RoutingResult{}, ErrSolverTimeLimit
			}
		default:
			return RoutingResult{}, err
		}
	}

	switch sol.Status {
	case StatusOptimal, StatusFeasible:
		// accepted
	case StatusTimeLimit:
		if !sol.HasTour {
			return RoutingResult{}, ErrSolverTimeLimit
		}
	case StatusInfeasible:
		return RoutingResult{}, ErrSolverInfeasible
	default:
		return RoutingResult{}, ErrSolverUnknown
	}

	nodes := make([]domain.Node, len(model.NodeIDs))
	nodes[0] = feeder
	byID := make(map[string]domain.Node, len(placements))
	for _, p := range placements {
		byID[p.ID] = p
	}
	for i, id := range model.NodeIDs[1:] {
		n, ok := byID[id]
		if !ok {
			return RoutingResult{}, ErrMissingNode
		}
		nodes[i+1] = n
	}

	tour := sol.Tour
	arcs := make([]RouteArc, 0, len(tour)-1)
	speed := job.Machine.TravelSpeed
	overhead := job.Machine.VisionAlignTime + job.Machine.PlaceTime

	for i := 0; i+1 < len(tour); i++ {
		fromIdx, toIdx := tour[i], tour[i+1]
		if fromIdx < 0 || fromIdx >= len(nodes) || toIdx < 0 || toIdx >= len(nodes) {
			return RoutingResult{}, ErrMissingNode
		}
		from, to := nodes[fromIdx], nodes[toIdx]
		dist := model.At(fromIdx, toIdx)

		isReturnArc := i == len(tour)-2 // final arc always lands back at the feeder
		t := dist / speed
		switch opts.ArcTimePolicy {
		case BillOverheadOnReturn:
			t += overhead
		case TravelOnlyOnReturn:
			if !isReturnArc {
				t += overhead
			}
		}

		arcs = append(arcs, RouteArc{
			FromID:   from.ID,
			ToID:     to.ID,
			From:     from,
			To:       to,
			Distance: dist,
			Time:     t,
		})
	}

	return RoutingResult{Status: sol.Status, Arcs: arcs, Cost: sol.ObjectiveValue}, nil
}
