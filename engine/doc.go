// Package engine is the top-level entry point: it wires a parsed domain.Setup
// through the orchestrator into a resulttable.Table and, optionally, one
// rendered figure per unique job, mirroring the shape of the original
// system's PNPEngine/main() without its output-directory side effects.
package engine
