package domain

import "sort"

// SetupEntry is one (job, quantity, due time) triple supplied to NewSetup.
// DueTimeS only influences ordering; it is not retained on the built Setup.
type SetupEntry struct {
	Job     *Job
	Quantity int
	DueTimeS float64
}

// Setup is the ordered sequence of (Job, quantity) pairs the orchestrator
// drives, ordered ascending by due time (earliest first, §3).
type Setup struct {
	Jobs []JobQuantity
}

// JobQuantity pairs a Job with how many times it repeats.
type JobQuantity struct {
	Job      *Job
	Quantity int
}

// NewSetup validates entries (unique job IDs, quantity >= 1) and returns a
// Setup ordered by ascending DueTimeS.
//
// Complexity: O(n log n).
func NewSetup(entries []SetupEntry) (*Setup, error) {
	seen := make(map[string]struct{}, len(entries))
	sorted := append([]SetupEntry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].DueTimeS < sorted[j].DueTimeS })

	jobs := make([]JobQuantity, 0, len(sorted))
	for _, e := range sorted {
		if e.Job == nil {
			return nil, ErrNoFeeders
		}
		if _, dup := seen[e.Job.ID]; dup {
			return nil, ErrDuplicateJobID
		}
		seen[e.Job.ID] = struct{}{}
		if e.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		jobs = append(jobs, JobQuantity{Job: e.Job, Quantity: e.Quantity})
	}

	return &Setup{Jobs: jobs}, nil
}
