// Package ingest reads the workbook-style tabular input of core spec §6 —
// here a single YAML document with four top-level keys (machine, feeders,
// jobs, placements) standing in for the original's four spreadsheet
// sheets — and builds a validated domain.Setup from it.
package ingest
