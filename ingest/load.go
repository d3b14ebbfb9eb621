package ingest

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lvlath-contrib/pnpsched/domain"
)

// ErrInvalidInput is the InputValidation error kind of §7: errors.Join of
// every individual violation found, so the caller sees all of them at once
// rather than stopping at the first.
var ErrInvalidInput = errors.New("ingest: input validation failed")

// Load parses r as the YAML workbook document and builds a validated
// domain.Setup. The uniqueness, quantity and feeder-collinearity rules are
// checked over the raw records before any domain object is constructed, and
// their violations are joined into one InputValidation error. The remaining
// rules (every placement's part_type has a feeder, no feeder inside a job's
// placement footprint) are checked by domain.NewJob as each job is built; the
// first such violation aborts the load on its own, wrapped in ErrInvalidInput.
func Load(r io.Reader) (*domain.Setup, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if errs := validateDocument(doc); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
	}

	machine, err := domain.NewMachine(
		doc.Machine.HeadCount, doc.Machine.HeadCapacity, doc.Machine.TravelSpeedMMs,
		doc.Machine.PickTimeS, doc.Machine.PlaceTimeS, doc.Machine.VisionAlignS, doc.Machine.PCBChangeoverS,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: machine: %w", ErrInvalidInput, err)
	}

	feeders := make([]domain.Node, len(doc.Feeders))
	for i, f := range doc.Feeders {
		n, err := domain.NewNode(f.ID, domain.FeederNode, f.PartType, f.PickupXMM, f.PickupYMM)
		if err != nil {
			return nil, fmt.Errorf("%w: feeder %q: %w", ErrInvalidInput, f.ID, err)
		}
		feeders[i] = n
	}

	placementsByJob := make(map[string][]domain.Node)
	for _, p := range doc.Placements {
		n, err := domain.NewNode(p.ID, domain.PlacementNode, p.PartType, p.XMM, p.YMM)
		if err != nil {
			return nil, fmt.Errorf("%w: placement %q (job %q): %w", ErrInvalidInput, p.ID, p.JobID, err)
		}
		placementsByJob[p.JobID] = append(placementsByJob[p.JobID], n)
	}

	entries := make([]domain.SetupEntry, 0, len(doc.Jobs))
	for _, jr := range doc.Jobs {
		job, err := domain.NewJob(jr.ID, jr.Name, machine, feeders, placementsByJob[jr.ID])
		if err != nil {
			return nil, fmt.Errorf("%w: job %q: %w", ErrInvalidInput, jr.ID, err)
		}
		entries = append(entries, domain.SetupEntry{Job: job, Quantity: jr.Quantity, DueTimeS: jr.DueTimeS})
	}

	setup, err := domain.NewSetup(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return setup, nil
}

// validateDocument checks the §6 uniqueness rules that are cheaper and
// clearer to verify over the raw records than after domain construction, so
// every violation can be reported together instead of one at a time.
func validateDocument(doc Document) []error {
	var errs []error

	seenJobID := make(map[string]bool, len(doc.Jobs))
	for _, j := range doc.Jobs {
		if seenJobID[j.ID] {
			errs = append(errs, fmt.Errorf("duplicate job id %q", j.ID))
		}
		seenJobID[j.ID] = true
		if j.Quantity < 1 {
			errs = append(errs, fmt.Errorf("job %q: quantity must be >= 1", j.ID))
		}
	}

	seenFeederID := make(map[string]bool, len(doc.Feeders))
	seenPartType := make(map[string]bool, len(doc.Feeders))
	for _, f := range doc.Feeders {
		if seenFeederID[f.ID] {
			errs = append(errs, fmt.Errorf("duplicate feeder id %q", f.ID))
		}
		seenFeederID[f.ID] = true
		if seenPartType[f.PartType] {
			errs = append(errs, fmt.Errorf("part_type %q has more than one feeder", f.PartType))
		}
		seenPartType[f.PartType] = true
	}
	if len(doc.Feeders) > 0 {
		y0 := doc.Feeders[0].PickupYMM
		for _, f := range doc.Feeders[1:] {
			if f.PickupYMM != y0 {
				errs = append(errs, errors.New("feeders are not collinear in y"))

				break
			}
		}
	}

	seenPlacement := make(map[[2]string]bool, len(doc.Placements))
	for _, p := range doc.Placements {
		key := [2]string{p.JobID, p.ID}
		if seenPlacement[key] {
			errs = append(errs, fmt.Errorf("duplicate placement id %q in job %q", p.ID, p.JobID))
		}
		seenPlacement[key] = true
	}

	return errs
}
