package domain

import "errors"

// Sentinel errors for domain package operations. Validation failures are
// fatal per §7 of the core specification: none are retried internally.
var (
	// ErrEmptyID indicates a Node was constructed with an empty ID.
	ErrEmptyID = errors.New("domain: node ID is empty")

	// ErrInvalidKind indicates a NodeKind outside {Feeder, Placement}.
	ErrInvalidKind = errors.New("domain: invalid node kind")

	// ErrInvalidMachine indicates a Machine field violates its documented bound.
	ErrInvalidMachine = errors.New("domain: invalid machine configuration")

	// ErrDuplicateFeederID indicates two feeders in a job share an ID.
	ErrDuplicateFeederID = errors.New("domain: duplicate feeder ID")

	// ErrDuplicatePlacementID indicates two placements in a job share an ID.
	ErrDuplicatePlacementID = errors.New("domain: duplicate placement ID")

	// ErrPartTypeNotOneToOne indicates more than one feeder shares a part_type,
	// or a placement's part_type has no matching feeder (§3 invariant).
	ErrPartTypeNotOneToOne = errors.New("domain: feeder/part_type mapping is not one-to-one")

	// ErrFeedersNotCollinear indicates feeder pickup_y_mm values are not all equal.
	ErrFeedersNotCollinear = errors.New("domain: feeders are not collinear in y")

	// ErrFeederInsideFootprint is the Geometry error of §7: a feeder lies inside
	// the minimum rotated rectangle spanning a job's placements.
	ErrFeederInsideFootprint = errors.New("domain: feeder lies inside placement footprint")

	// ErrNoFeeders indicates a job was constructed with zero feeders.
	ErrNoFeeders = errors.New("domain: job has no feeders")

	// ErrNoPlacements indicates a job was constructed with zero placements.
	ErrNoPlacements = errors.New("domain: job has no placements")

	// ErrDuplicateJobID indicates two setup entries share a job ID.
	ErrDuplicateJobID = errors.New("domain: duplicate job ID")

	// ErrInvalidQuantity indicates a setup entry's quantity is < 1.
	ErrInvalidQuantity = errors.New("domain: job quantity must be >= 1")

	// ErrDistancesNotComputed indicates a job's distance maps were read before
	// CalculateDistances was called.
	ErrDistancesNotComputed = errors.New("domain: distances not yet computed for job")
)
