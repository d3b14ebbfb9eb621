package domain

import (
	"sort"

	"github.com/lvlath-contrib/pnpsched/geometry"
)

// Job owns its feeders (ascending x order), its placements, its Machine, and
// — once CalculateDistances has run — three read-only pairwise distance
// maps: feeder↔placement, feeder↔feeder, placement↔placement (§3).
//
// Invariant enforced at construction: every placement's part_type has
// exactly one feeder with that part_type, and no feeder lies inside the
// minimum rotated rectangle spanning the job's placements.
type Job struct {
	ID      string
	Name    string
	Machine Machine

	Feeders    []Node // ascending x
	Placements []Node

	FeederByPartType map[string]Node
	FeedersByID      map[string]Node
	PlacementsByID   map[string]Node

	feederPlacementDist     *geometry.DistanceMap
	feederFeederDist        *geometry.DistanceMap
	placementPlacementDist  *geometry.DistanceMap
	distancesComputed       bool
}

// NewJob validates and constructs a Job. Distances are not computed here;
// call CalculateDistances once the job is built (mirrors the original
// engine's explicit `job.calculate_distances()` step).
//
// Complexity: O(F + P) for bookkeeping and the collinearity check, O(F·P log P)
// for the footprint check delegated to geometry (one hull per feeder), where
// F = len(feeders), P = len(placements).
func NewJob(id, name string, machine Machine, feeders, placements []Node) (*Job, error) {
	if len(feeders) == 0 {
		return nil, ErrNoFeeders
	}
	if len(placements) == 0 {
		return nil, ErrNoPlacements
	}

	feedersByID := make(map[string]Node, len(feeders))
	feederByPart := make(map[string]Node, len(feeders))
	for _, f := range feeders {
		if _, dup := feedersByID[f.ID]; dup {
			return nil, ErrDuplicateFeederID
		}
		feedersByID[f.ID] = f
		if _, dup := feederByPart[f.PartType]; dup {
			return nil, ErrPartTypeNotOneToOne
		}
		feederByPart[f.PartType] = f
	}

	placementsByID := make(map[string]Node, len(placements))
	for _, p := range placements {
		if _, dup := placementsByID[p.ID]; dup {
			return nil, ErrDuplicatePlacementID
		}
		placementsByID[p.ID] = p
		if _, ok := feederByPart[p.PartType]; !ok {
			return nil, ErrPartTypeNotOneToOne
		}
	}

	// Feeders assumed collinear on a fixed feeder bank (§3).
	y0 := feeders[0].Point.Y
	for _, f := range feeders[1:] {
		if f.Point.Y != y0 {
			return nil, ErrFeedersNotCollinear
		}
	}

	// Feeders must never lie inside the placement footprint (fatal Geometry error, §7).
	placementPts := make([]geometry.Point, len(placements))
	for i, p := range placements {
		placementPts[i] = p.Point
	}
	for _, f := range feeders {
		inside, err := geometry.MinRotatedRectContains(placementPts, f.Point)
		if err != nil {
			return nil, err
		}
		if inside {
			return nil, ErrFeederInsideFootprint
		}
	}

	sorted := append([]Node(nil), feeders...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Point.X < sorted[j].Point.X })

	return &Job{
		ID:               id,
		Name:             name,
		Machine:          machine,
		Feeders:          sorted,
		Placements:       append([]Node(nil), placements...),
		FeederByPartType: feederByPart,
		FeedersByID:      feedersByID,
		PlacementsByID:   placementsByID,
	}, nil
}

// CalculateDistances computes the three pairwise distance maps once. Calling
// it more than once is a no-op (idempotent), matching the "computed once"
// lifecycle guarantee in §3.
//
// Complexity: O(F² + F·P + P²).
func (j *Job) CalculateDistances() error {
	if j.distancesComputed {
		return nil
	}

	feederIDs := make([]string, len(j.Feeders))
	feederPts := make([]geometry.Point, len(j.Feeders))
	for i, f := range j.Feeders {
		feederIDs[i] = f.ID
		feederPts[i] = f.Point
	}

	placementIDs := make([]string, len(j.Placements))
	placementPts := make([]geometry.Point, len(j.Placements))
	for i, p := range j.Placements {
		placementIDs[i] = p.ID
		placementPts[i] = p.Point
	}

	var err error
	j.feederFeederDist, err = geometry.NewDistanceMap(feederIDs, feederPts)
	if err != nil {
		return err
	}
	j.placementPlacementDist, err = geometry.NewDistanceMap(placementIDs, placementPts)
	if err != nil {
		return err
	}
	j.feederPlacementDist, err = geometry.NewCrossDistanceMap(feederIDs, feederPts, placementIDs, placementPts)
	if err != nil {
		return err
	}

	j.distancesComputed = true

	return nil
}

// FeederPlacementDistance returns d(feederID, placementID); requires
// CalculateDistances to have been called.
func (j *Job) FeederPlacementDistance(feederID, placementID string) (float64, error) {
	if !j.distancesComputed {
		return 0, ErrDistancesNotComputed
	}

	return j.feederPlacementDist.At(feederID, placementID)
}

// FeederFeederDistance returns d(feederID1, feederID2); requires
// CalculateDistances to have been called.
func (j *Job) FeederFeederDistance(feederID1, feederID2 string) (float64, error) {
	if !j.distancesComputed {
		return 0, ErrDistancesNotComputed
	}

	return j.feederFeederDist.At(feederID1, feederID2)
}

// PlacementPlacementDistance returns d(placementID1, placementID2); requires
// CalculateDistances to have been called.
func (j *Job) PlacementPlacementDistance(placementID1, placementID2 string) (float64, error) {
	if !j.distancesComputed {
		return 0, ErrDistancesNotComputed
	}

	return j.placementPlacementDist.At(placementID1, placementID2)
}

// DistancesReady reports whether CalculateDistances has run.
func (j *Job) DistancesReady() bool { return j.distancesComputed }

// String matches the original model's `<job_id: job_name>` repr.
func (j *Job) String() string {
	return "<" + j.ID + ": " + j.Name + ">"
}
