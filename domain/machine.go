package domain

// Machine describes the pick-and-place head's capacity and timing constants
// (§3). It is immutable after construction.
type Machine struct {
	HeadCount         int
	HeadCapacity      int
	TravelSpeed       float64 // mm/s, > 0
	PickTime          float64 // s, >= 0
	PlaceTime         float64 // s, >= 0
	VisionAlignTime   float64 // s, >= 0
	PCBChangeoverTime float64 // s, >= 0
}

// NewMachine validates and constructs a Machine.
//
// Complexity: O(1).
func NewMachine(headCount, headCapacity int, travelSpeed, pickTime, placeTime, visionAlignTime, pcbChangeoverTime float64) (Machine, error) {
	if headCount < 1 || headCapacity < 1 {
		return Machine{}, ErrInvalidMachine
	}
	if travelSpeed <= 0 {
		return Machine{}, ErrInvalidMachine
	}
	if pickTime < 0 || placeTime < 0 || visionAlignTime < 0 || pcbChangeoverTime < 0 {
		return Machine{}, ErrInvalidMachine
	}

	return Machine{
		HeadCount:         headCount,
		HeadCapacity:      headCapacity,
		TravelSpeed:       travelSpeed,
		PickTime:          pickTime,
		PlaceTime:         placeTime,
		VisionAlignTime:   visionAlignTime,
		PCBChangeoverTime: pcbChangeoverTime,
	}, nil
}
