package geometry

// DistanceMap is a complete, symmetric pairwise-distance table over a fixed
// set of string IDs, built once and read-only thereafter (§3 "Lifecycle":
// "distance maps are computed once per job ... and never mutated").
//
// Internally it is row-major flat storage, the same layout discipline as
// matrix.Dense in the graph-matrix world, indexed through an ID→index map so
// callers can address entries by the domain's stable Node IDs instead of
// raw row/column integers.
type DistanceMap struct {
	index map[string]int // ID -> row/col index
	ids   []string       // index -> ID (inverse of index)
	data  []float64      // flat n*n row-major distances
	n     int
}

// NewDistanceMap builds a DistanceMap over points, keyed by the parallel ids
// slice. len(ids) must equal len(points); IDs must be unique.
//
// Complexity: O(n²) time and memory (every pair is precomputed up front, per
// §3's "precomputation of all pairwise distances").
func NewDistanceMap(ids []string, points []Point) (*DistanceMap, error) {
	if len(ids) != len(points) {
		return nil, ErrDimensionMismatch
	}
	if len(ids) == 0 {
		return nil, ErrEmptyPoints
	}

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, dup := index[id]; dup {
			return nil, ErrDuplicateID
		}
		index[id] = i
	}

	n := len(ids)
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Distance(points[i], points[j])
			data[i*n+j] = d
			data[j*n+i] = d
		}
	}

	return &DistanceMap{
		index: index,
		ids:   append([]string(nil), ids...),
		data:  data,
		n:     n,
	}, nil
}

// NewCrossDistanceMap builds a distance table between two disjoint ID sets
// (e.g. feeders vs. placements). The returned map supports At(a,b) for a in
// aIDs and b in bIDs (and vice versa); both sides share one index, so two IDs
// from the same side also resolve to their distance. An ID present on both
// sides is ErrDuplicateID.
//
// Complexity: O((|a|+|b|)²).
func NewCrossDistanceMap(aIDs []string, aPts []Point, bIDs []string, bPts []Point) (*DistanceMap, error) {
	if len(aIDs) != len(aPts) || len(bIDs) != len(bPts) {
		return nil, ErrDimensionMismatch
	}
	if len(aIDs) == 0 || len(bIDs) == 0 {
		return nil, ErrEmptyPoints
	}

	ids := make([]string, 0, len(aIDs)+len(bIDs))
	pts := make([]Point, 0, len(aIDs)+len(bIDs))
	index := make(map[string]int, len(aIDs)+len(bIDs))
	for i, id := range aIDs {
		if _, dup := index[id]; dup {
			return nil, ErrDuplicateID
		}
		index[id] = len(ids)
		ids = append(ids, id)
		pts = append(pts, aPts[i])
	}
	for i, id := range bIDs {
		if _, dup := index[id]; dup {
			return nil, ErrDuplicateID
		}
		index[id] = len(ids)
		ids = append(ids, id)
		pts = append(pts, bPts[i])
	}

	n := len(ids)
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := Distance(pts[i], pts[j])
			data[i*n+j] = d
			data[j*n+i] = d
		}
	}

	return &DistanceMap{index: index, ids: ids, data: data, n: n}, nil
}

// At returns the distance between the points registered as a and b.
//
// a == b is rejected with ErrSelfDistance: per the core specification's
// invariants, self-distance is never a meaningful query and callers that hit
// this have a bug upstream, not a missing data point.
//
// Complexity: O(1).
func (m *DistanceMap) At(a, b string) (float64, error) {
	if a == b {
		return 0, ErrSelfDistance
	}
	ia, ok := m.index[a]
	if !ok {
		return 0, ErrUnknownID
	}
	ib, ok := m.index[b]
	if !ok {
		return 0, ErrUnknownID
	}

	return m.data[ia*m.n+ib], nil
}

// Len returns the number of distinct IDs registered in the map.
func (m *DistanceMap) Len() int { return m.n }

// IDs returns a copy of the IDs in index order, stable for the life of the map.
func (m *DistanceMap) IDs() []string {
	out := make([]string, len(m.ids))
	copy(out, m.ids)

	return out
}
