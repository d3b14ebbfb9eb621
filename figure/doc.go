// Package figure renders an optional per-job visualisation of feeders,
// placements, and travel arcs (core spec §6's "Optionally, one figure per
// unique job...") as an HTML scatter+line chart, replacing the original
// implementation's matplotlib figures with go-echarts.
package figure
