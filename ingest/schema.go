package ingest

// Document is the top-level shape of the YAML workbook (§6): one machine
// record shared by every job, a feeder bank shared by every job, a list of
// job headers, and a list of placements scoped to their job_id.
type Document struct {
	Machine    MachineRecord      `yaml:"machine"`
	Feeders    []FeederRecord     `yaml:"feeders"`
	Jobs       []JobRecord        `yaml:"jobs"`
	Placements []PlacementRecord  `yaml:"placements"`
}

// MachineRecord mirrors domain.Machine's fields under their workbook names.
type MachineRecord struct {
	HeadCount         int     `yaml:"head_count"`
	HeadCapacity      int     `yaml:"head_capacity"`
	TravelSpeedMMs    float64 `yaml:"travel_speed_mm_s"`
	PickTimeS         float64 `yaml:"pick_time_s"`
	PlaceTimeS        float64 `yaml:"place_time_s"`
	VisionAlignS      float64 `yaml:"vision_align_s"`
	PCBChangeoverS    float64 `yaml:"pcb_changeover_s"`
}

// FeederRecord is one row of the feeders table.
type FeederRecord struct {
	ID        string  `yaml:"id"`
	PartType  string  `yaml:"part_type"`
	PickupXMM float64 `yaml:"pickup_x_mm"`
	PickupYMM float64 `yaml:"pickup_y_mm"`
}

// JobRecord is one row of the jobs table.
type JobRecord struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	Quantity int     `yaml:"quantity"`
	DueTimeS float64 `yaml:"due_time_s"`
}

// PlacementRecord is one row of the placements table.
type PlacementRecord struct {
	JobID    string  `yaml:"job_id"`
	ID       string  `yaml:"id"`
	PartType string  `yaml:"part_type"`
	XMM      float64 `yaml:"x_mm"`
	YMM      float64 `yaml:"y_mm"`
}
