package engine

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/lvlath-contrib/pnpsched/domain"
	"github.com/lvlath-contrib/pnpsched/figure"
	"github.com/lvlath-contrib/pnpsched/orchestrator"
	"github.com/lvlath-contrib/pnpsched/resulttable"
	"github.com/lvlath-contrib/pnpsched/routing"
	"github.com/lvlath-contrib/pnpsched/schedmetrics"
)

// Options configures one Engine run (§12, supplemented from the original's
// `PNPEngine(setup, save_figs=True)` constructor argument).
type Options struct {
	// RenderFigures renders one HTML figure per unique job when true.
	RenderFigures bool

	// Solver performs each cluster's routing solve. Defaults to
	// &routing.HeldKarpSolver{} when nil.
	Solver routing.MipSolver

	// SolveOptions configures every solve. Defaults to routing.DefaultSolveOptions().
	SolveOptions routing.SolveOptions

	// Log receives lifecycle messages; nil is safe.
	Log *zap.Logger

	// Metrics records run instrumentation; nil disables it.
	Metrics *schedmetrics.Recorder
}

// Engine runs one Setup through the full pipeline.
type Engine struct {
	opts Options
}

// New builds an Engine, filling in Options defaults.
func New(opts Options) *Engine {
	if opts.Solver == nil {
		opts.Solver = &routing.HeldKarpSolver{Log: opts.Log}
	}
	if opts.SolveOptions == (routing.SolveOptions{}) {
		opts.SolveOptions = routing.DefaultSolveOptions()
	}

	return &Engine{opts: opts}
}

// Result is the output of one Engine.Run: the flat result table and,
// when Options.RenderFigures is set, one rendered HTML figure per job ID.
type Result struct {
	Table   resulttable.Table
	Figures map[string][]byte
}

// Run drives setup through the orchestrator, builds the result table, and
// (optionally) renders per-job figures (§6).
func (e *Engine) Run(setup *domain.Setup) (Result, error) {
	o := &orchestrator.Orchestrator{
		Solver:       e.opts.Solver,
		SolveOptions: e.opts.SolveOptions,
		Log:          e.opts.Log,
		Metrics:      e.opts.Metrics,
	}

	entries, err := o.Run(setup)
	if err != nil {
		return Result{}, fmt.Errorf("engine: %w", err)
	}

	table := resulttable.Build(entries)
	result := Result{Table: table}

	if e.opts.RenderFigures {
		figures, err := renderFigures(setup, entries)
		if err != nil {
			return Result{}, fmt.Errorf("engine: %w", err)
		}
		result.Figures = figures
	}

	return result, nil
}

func renderFigures(setup *domain.Setup, entries []orchestrator.Entry) (map[string][]byte, error) {
	jobsByID := make(map[string]*domain.Job, len(setup.Jobs))
	for _, jq := range setup.Jobs {
		jobsByID[jq.Job.ID] = jq.Job
	}

	entriesByJob := make(map[string][]orchestrator.Entry)
	for _, e := range entries {
		entriesByJob[e.JobID] = append(entriesByJob[e.JobID], e)
	}

	out := make(map[string][]byte, len(jobsByID))
	for jobID, job := range jobsByID {
		var buf bytes.Buffer
		if err := figure.Render(job, entriesByJob[jobID], &buf); err != nil {
			return nil, fmt.Errorf("job %s: %w", jobID, err)
		}
		out[jobID] = buf.Bytes()
	}

	return out, nil
}
