package orchestrator

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lvlath-contrib/pnpsched/cluster"
	"github.com/lvlath-contrib/pnpsched/domain"
	"github.com/lvlath-contrib/pnpsched/eventbuilder"
	"github.com/lvlath-contrib/pnpsched/geometry"
	"github.com/lvlath-contrib/pnpsched/routing"
	"github.com/lvlath-contrib/pnpsched/schedmetrics"
)

// Entry pairs one emitted Event with the job instance it belongs to
// ("<job_id>-<iteration>", §4.5), which the result table needs for its
// job_id column (§4.6), and the underlying job ID (stable across repeats),
// which the figure renderer groups by (§6: "one figure per unique job").
type Entry struct {
	JobID         string
	JobInstanceID string
	Event         domain.Event
}

// Orchestrator drives the pipeline of §4.5: cluster -> solve -> build events,
// stitched with feeder-to-feeder travels and job/repeat changeovers.
type Orchestrator struct {
	// Solver performs each cluster's routing solve. Required.
	Solver routing.MipSolver

	// SolveOptions configures every Solver.Solve call.
	SolveOptions routing.SolveOptions

	// Log receives lifecycle messages; nil is safe (falls back to a no-op logger).
	Log *zap.Logger

	// Metrics records per-cluster/per-event instrumentation; nil disables it.
	Metrics *schedmetrics.Recorder
}

func (o *Orchestrator) log() *zap.Logger {
	if o.Log == nil {
		return zap.NewNop()
	}

	return o.Log
}

// Run drives the entire setup end to end and returns the flat, ordered
// timeline (§4.5). Any fatal error aborts the whole run: partial sequences
// are never returned.
func (o *Orchestrator) Run(setup *domain.Setup) ([]Entry, error) {
	if len(setup.Jobs) == 0 {
		return nil, ErrNoJobs
	}

	var (
		sequence           []Entry
		feederPrevious     *domain.Node
		prevLastInstanceID string
	)

	for jobIdx, jq := range setup.Jobs {
		job := jq.Job

		firstInstanceID := fmt.Sprintf("%s-%d", job.ID, 1)
		if jobIdx > 0 {
			sequence = append(sequence, Entry{
				JobID:         job.ID,
				JobInstanceID: firstInstanceID,
				Event:         eventbuilder.ChangeoverEvent(prevLastInstanceID, firstInstanceID, job.Machine),
			})
		}

		if err := job.CalculateDistances(); err != nil {
			return nil, fmt.Errorf("orchestrator: job %s: %w", job.ID, err)
		}

		clustersByPartType, err := cluster.BuildClusters(job)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: job %s: %w", job.ID, err)
		}

		body, err := o.runJobOnce(job, clustersByPartType, &feederPrevious)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: job %s: %w", job.ID, err)
		}

		sequence = append(sequence, stampInstance(job.ID, firstInstanceID, body)...)
		lastInstanceID := firstInstanceID

		for iter := 2; iter <= jq.Quantity; iter++ {
			thisInstanceID := fmt.Sprintf("%s-%d", job.ID, iter)
			sequence = append(sequence, Entry{
				JobID:         job.ID,
				JobInstanceID: thisInstanceID,
				Event:         eventbuilder.ChangeoverEvent(lastInstanceID, thisInstanceID, job.Machine),
			})
			sequence = append(sequence, stampInstance(job.ID, thisInstanceID, domain.CloneEvents(body))...)
			lastInstanceID = thisInstanceID
		}

		prevLastInstanceID = lastInstanceID
	}

	if o.Metrics != nil {
		for _, e := range sequence {
			o.Metrics.ObserveEvent(e.Event.Kind.String())
		}
	}

	return sequence, nil
}

func stampInstance(jobID, instanceID string, events []domain.Event) []Entry {
	out := make([]Entry, len(events))
	for i, e := range events {
		out[i] = Entry{JobID: jobID, JobInstanceID: instanceID, Event: e}
	}

	return out
}

// runJobOnce builds the event body for one pass through job's feeders and
// clusters (iteration 1 of §4.5's pseudocode), updating feederPrevious as it
// goes (it is a pointer so it persists across job boundaries in Run).
func (o *Orchestrator) runJobOnce(job *domain.Job, clustersByPartType map[string][]cluster.Cluster, feederPrevious **domain.Node) ([]domain.Event, error) {
	var body []domain.Event

	for _, feeder := range job.Feeders {
		clusters := clustersByPartType[feeder.PartType]
		if len(clusters) == 0 {
			// A feeder with no matching placements is skipped entirely: no
			// pickup/travel events, and it never becomes feeder_previous.
			continue
		}

		if *feederPrevious != nil && feeder.ID != (*feederPrevious).ID {
			// feederPrevious may belong to a different job at a job boundary
			// (§9's cross-job resolution), so its ID is not necessarily a
			// member of this job's precomputed feeder<->feeder distance map;
			// the distance is recomputed directly from both feeders' points
			// rather than looked up in job's map.
			d := geometry.Distance((*feederPrevious).Point, feeder.Point)
			body = append(body, eventbuilder.FeederTravelEvent(**feederPrevious, feeder, d, job.Machine.TravelSpeed))
		}

		for _, c := range clusters {
			start := time.Now()
			result, err := routing.SolveCluster(job, feeder, c.Placements, o.Solver, o.SolveOptions)
			if err != nil {
				o.log().Error("cluster solve failed",
					zap.String("job_id", job.ID),
					zap.String("feeder_id", feeder.ID),
					zap.Error(err),
				)
				if o.Metrics != nil && errors.Is(err, routing.ErrSolverTimeLimit) {
					o.Metrics.ObserveSolverTimeout()
				}

				return nil, err
			}
			if o.Metrics != nil {
				o.Metrics.ObserveClusterSolved(time.Since(start).Seconds())
			}

			events, err := eventbuilder.ClusterEvents(feeder, result, job.Machine)
			if err != nil {
				return nil, err
			}
			body = append(body, events...)
		}

		f := feeder
		*feederPrevious = &f
	}

	return body, nil
}
