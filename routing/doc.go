// Package routing implements the placement routing MIP (§4.2-4.3 of the core
// specification): for one feeder and one cluster of placements, find the
// minimum-distance Hamiltonian path that starts and ends at the feeder and
// visits each placement exactly once.
//
// The time-indexed assignment formulation (§4.2) is equivalent to a
// classical symmetric TSP over {feeder, placements...} with the feeder fixed
// as both start and end vertex: subtour elimination falls out for free from
// the per-step arc indexing, exactly as it does from the Held–Karp dynamic
// program this package's reference solver is built on.
//
// MipSolver is the abstract capability §4.3 describes: a small interface any
// branch-and-cut or dynamic-programming engine can satisfy. HeldKarpSolver
// is the one reference implementation shipped here (no cgo-bound HiGHS/CBC/
// Gurobi binding exists in the retrieved Go ecosystem pack; see DESIGN.md).
package routing
