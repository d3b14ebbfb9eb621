package domain

import (
	"fmt"

	"github.com/lvlath-contrib/pnpsched/geometry"
)

// NodeKind distinguishes a feeder pickup station from a placement target.
type NodeKind int

const (
	// FeederNode is a fixed pickup station holding a reel of one part type.
	FeederNode NodeKind = iota

	// PlacementNode is a 2-D target location on the PCB for one component.
	PlacementNode
)

// String renders the kind for logging/debugging.
func (k NodeKind) String() string {
	switch k {
	case FeederNode:
		return "feeder"
	case PlacementNode:
		return "placement"
	default:
		return "unknown"
	}
}

// Node is either a feeder or a placement. Nodes are immutable after
// construction (§3): feeder IDs are unique across the whole fleet; placement
// IDs are unique within a job.
type Node struct {
	ID       string
	Kind     NodeKind
	PartType string
	Point    geometry.Point
}

// NewNode constructs a Node, rejecting empty IDs and unknown kinds.
//
// Complexity: O(1).
func NewNode(id string, kind NodeKind, partType string, x, y float64) (Node, error) {
	if id == "" {
		return Node{}, ErrEmptyID
	}
	if kind != FeederNode && kind != PlacementNode {
		return Node{}, ErrInvalidKind
	}

	return Node{ID: id, Kind: kind, PartType: partType, Point: geometry.Point{X: x, Y: y}}, nil
}

// String matches the original model's `<id: part_type>` repr, useful in logs.
func (n Node) String() string {
	return fmt.Sprintf("<%s: %s>", n.ID, n.PartType)
}
