package routing

import (
	"math"
	"time"

	"go.uber.org/zap"
)

// HeldKarpSolver is the reference MipSolver: an exact Held–Karp dynamic
// program (O(N²·2^N) time, O(N·2^N) memory) over the closed walk
// feeder → π(1) → … → π(N) → feeder, adapted from the teacher library's
// Held–Karp TSP solver with the feeder fixed as both start and end vertex.
//
// Because cluster sizes are bounded by the machine's head capacity
// (typically ≤ 8-12, always ≤ MaxExactN), the DP always completes well
// within the soft time budget in practice; the deadline check exists as a
// safety rail, not a routine code path.
type HeldKarpSolver struct {
	// Log receives solver lifecycle messages (termination status, size).
	// Nil is safe and behaves as a no-op logger.
	Log *zap.Logger
}

var _ MipSolver = (*HeldKarpSolver)(nil)

func (s *HeldKarpSolver) log() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}

	return s.Log
}

// Solve runs the DP. opts.RelGap/Presolve/SymmetryDetection/Threads are part
// of the MipSolver contract but do not affect an exact DP's result; they are
// accepted (and logged at Debug) so callers can swap in a real branch-and-cut
// engine without changing call sites.
func (s *HeldKarpSolver) Solve(model *HamiltonianModel, opts SolveOptions) (Solution, error) {
	n := model.N // number of placements; matrix order is n+1
	order := n + 1

	s.log().Debug("held-karp: starting solve",
		zap.Int("placements", n),
		zap.Float64("rel_gap", opts.RelGap),
		zap.Duration("time_limit", opts.TimeLimit),
	)

	if n == 0 {
		return Solution{}, ErrEmptyCluster
	}
	if n > MaxExactN {
		return Solution{}, ErrSizeTooLarge
	}

	// Trivial case: a single placement needs no DP — feeder -> p -> feeder.
	if n == 1 {
		d := model.At(0, 1)
		sol := Solution{
			Status:         StatusOptimal,
			Tour:           []int{0, 1, 0},
			ObjectiveValue: round1e9(2 * d),
			HasTour:        true,
		}
		s.log().Info("held-karp: solved", zap.String("status", sol.Status.String()), zap.Float64("cost", sol.ObjectiveValue))

		return sol, nil
	}

	var (
		useDeadline bool
		deadline    time.Time
		step        int
	)
	if opts.TimeLimit > 0 {
		useDeadline = true
		deadline = time.Now().Add(opts.TimeLimit)
	}
	checkDeadline := func() bool {
		step++
		if !useDeadline || (step&1023) != 0 {
			return false
		}

		return time.Now().After(deadline)
	}

	totalMasks := 1 << uint(order)
	dp := make([]float64, totalMasks*order)
	parent := make([]int, totalMasks*order)
	for i := range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}

	const start = 0
	startBit := 1 << uint(start)
	baseMask := startBit
	dp[baseMask*order+start] = 0

	masksBySize := make([][]int, order+1)
	for mask := 0; mask < totalMasks; mask++ {
		if mask&startBit == 0 {
			continue
		}
		ps := popcount(mask)
		if ps >= 1 && ps <= order {
			masksBySize[ps] = append(masksBySize[ps], mask)
		}
	}

	for size := 2; size <= order; size++ {
		for _, mask := range masksBySize[size] {
			for j := 0; j < order; j++ {
				jbit := 1 << uint(j)
				if j == start || mask&jbit == 0 {
					continue
				}
				prev := mask ^ jbit
				best := math.Inf(1)
				argk := -1
				for k := 0; k < order; k++ {
					kbit := 1 << uint(k)
					if prev&kbit == 0 {
						continue
					}
					base := dp[prev*order+k]
					if math.IsInf(base, 1) {
						continue
					}
					cand := base + model.At(k, j)
					if cand < best {
						best = cand
						argk = k
					}
				}
				if argk >= 0 {
					dp[mask*order+j] = best
					parent[mask*order+j] = argk
				}

				if checkDeadline() {
					s.log().Warn("held-karp: time limit exceeded with no incumbent")

					return Solution{Status: StatusTimeLimit, HasTour: false}, ErrSolverTimeLimit
				}
			}
		}
	}

	all := totalMasks - 1
	bestCost := math.Inf(1)
	last := -1
	for j := 0; j < order; j++ {
		if j == start {
			continue
		}
		base := dp[all*order+j]
		if math.IsInf(base, 1) {
			continue
		}
		total := base + model.At(j, start)
		if total < bestCost {
			bestCost = total
			last = j
		}
	}
	if last < 0 || math.IsInf(bestCost, 1) {
		s.log().Error("held-karp: no feasible Hamiltonian path found")

		return Solution{Status: StatusInfeasible}, ErrSolverInfeasible
	}

	tour := make([]int, order+1)
	tour[0] = start
	tour[order] = start
	mask := all
	cur := last
	for idx := order - 1; idx >= 1; idx-- {
		tour[idx] = cur
		prev := parent[mask*order+cur]
		mask ^= 1 << uint(cur)
		cur = prev
	}

	sol := Solution{
		Status:         StatusOptimal,
		Tour:           tour,
		ObjectiveValue: round1e9(bestCost),
		HasTour:        true,
	}
	s.log().Info("held-karp: solved",
		zap.String("status", sol.Status.String()),
		zap.Float64("cost", sol.ObjectiveValue),
		zap.Int("placements", n),
	)

	return sol, nil
}

func popcount(x int) int {
	c := 0
	for x != 0 {
		x &= x - 1
		c++
	}

	return c
}

func round1e9(x float64) float64 {
	const scale = 1e9

	return math.Round(x*scale) / scale
}
