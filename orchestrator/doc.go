// Package orchestrator drives the full scheduling pipeline across jobs and
// repeats (core spec §4.5): for each job instance it computes distances,
// clusters placements, solves and translates each cluster's route into
// events, stitches in feeder-to-feeder travels and job/repeat changeovers,
// and deep-copies the event body for quantity > 1.
package orchestrator
