// Package pnpsched computes an execution schedule for a surface-mount
// pick-and-place machine: given a fleet of feeder stations and one or more
// PCB jobs, it emits an ordered event sequence — pickups, placements,
// intra-board travels, feeder-to-feeder travels, and inter-job changeovers —
// that minimises total head travel distance subject to machine head
// capacity.
//
// Package layout:
//
//	geometry/      — Euclidean distance and footprint-containment primitives
//	domain/        — Node, Machine, Job, Setup, Event, and their invariants
//	cluster/       — partitions a job's placements into head-sized pickup trips
//	routing/       — the per-cluster Hamiltonian routing solver
//	eventbuilder/  — translates a solved route into typed, timed events
//	orchestrator/  — drives clustering, solving, and event assembly across jobs
//	resulttable/   — flattens an orchestrator run into a row-per-event table
//	ingest/        — reads the workbook-style tabular input format
//	figure/        — optional per-job HTML visualisation
//	engine/        — top-level entry point wiring the pipeline end to end
//	obslog/        — shared structured logger
//	schedmetrics/  — Prometheus instrumentation
package pnpsched
