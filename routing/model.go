package routing

import (
	"github.com/lvlath-contrib/pnpsched/domain"
)

// HamiltonianModel is the routing MIP's input: a dense distance matrix over
// {feeder, placements...} with node 0 fixed as the feeder (§4.2). NodeIDs[0]
// is always the feeder's ID; NodeIDs[1:] are the cluster's placement IDs in
// the order the caller supplied them (solver output does not depend on this
// order — it finds the optimal permutation regardless).
type HamiltonianModel struct {
	NodeIDs []string
	Points  []pointXY
	Dist    []float64 // flat (n+1)x(n+1), n = len(placements)
	N       int        // number of placements (matrix order is N+1)
}

type pointXY struct{ X, Y float64 }

// At returns the distance between node indices i and j (0 = feeder).
func (m *HamiltonianModel) At(i, j int) float64 {
	order := m.N + 1

	return m.Dist[i*order+j]
}

// BuildHamiltonianModel builds the distance matrix for one (feeder, cluster)
// pair from a job's precomputed distance maps.
//
// Contract: job.CalculateDistances must already have run; placements must
// all belong to job and share feeder's part_type (not re-validated here —
// that invariant is the clusterer's contract).
//
// Complexity: O(N²) to fill placement-placement entries, O(N) for the
// feeder row/column.
func BuildHamiltonianModel(job *domain.Job, feeder domain.Node, placements []domain.Node) (*HamiltonianModel, error) {
	if len(placements) == 0 {
		return nil, ErrEmptyCluster
	}
	if len(placements) > MaxExactN {
		return nil, ErrSizeTooLarge
	}

	n := len(placements)
	order := n + 1
	ids := make([]string, order)
	pts := make([]pointXY, order)
	ids[0] = feeder.ID
	pts[0] = pointXY{X: feeder.Point.X, Y: feeder.Point.Y}
	for i, p := range placements {
		ids[i+1] = p.ID
		pts[i+1] = pointXY{X: p.Point.X, Y: p.Point.Y}
	}

	dist := make([]float64, order*order)

	// Feeder <-> placement rows/columns.
	for k := 1; k < order; k++ {
		d, err := job.FeederPlacementDistance(feeder.ID, ids[k])
		if err != nil {
			return nil, err
		}
		dist[0*order+k] = d
		dist[k*order+0] = d
	}

	// Placement <-> placement entries.
	for i := 1; i < order; i++ {
		for j := i + 1; j < order; j++ {
			d, err := job.PlacementPlacementDistance(ids[i], ids[j])
			if err != nil {
				return nil, err
			}
			dist[i*order+j] = d
			dist[j*order+i] = d
		}
	}

	return &HamiltonianModel{NodeIDs: ids, Points: pts, Dist: dist, N: n}, nil
}
