// Package domain defines the immutable data model the scheduler operates on:
// Node (feeder or placement), Machine (timings + head capacity), Job (feeders,
// placements, and their precomputed distance maps), Setup (an ordered list of
// job/quantity pairs), and the Arc/Event types the event builder emits.
//
// Nodes, Machines, and Jobs are built once via their constructors and never
// mutated afterwards; distance maps are computed once per job via
// Job.CalculateDistances and read-only thereafter (§3 "Lifecycle" of the
// core specification).
package domain
