// Package geometry provides the 2-D primitives the scheduler is built on:
// Euclidean distance between points, dense pairwise distance maps keyed by
// stable string IDs, and the minimum-rotated-rectangle containment test used
// to validate that feeders never sit inside a job's placement footprint.
//
// Everything here is pure, side-effect free, and allocation-conscious: no
// logging, no panics on malformed input, only sentinel errors.
package geometry
