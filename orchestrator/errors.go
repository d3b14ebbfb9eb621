package orchestrator

import "errors"

// ErrNoJobs indicates a Setup with zero job instances was handed to Run.
var ErrNoJobs = errors.New("orchestrator: setup has no jobs")
