// Package eventbuilder translates a solved cluster route, and the transitions
// between feeders/jobs that surround it, into the typed domain.Event sequence
// the orchestrator assembles into a full run (core spec §4.4).
package eventbuilder
