// Package cluster partitions a job's placements, per feeder/part_type, into
// ordered clusters no larger than the machine's head capacity (§4.1 of the
// core specification).
//
// The algorithm is deliberately simple — nearest-first chunking — so the
// downstream routing MIP stays small enough to solve exactly: sort each
// feeder's placements by ascending feeder→placement distance (ties broken by
// placement ID, for determinism) and slice into consecutive runs of
// head_capacity.
package cluster
