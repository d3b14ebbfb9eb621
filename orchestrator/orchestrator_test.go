package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-contrib/pnpsched/domain"
	"github.com/lvlath-contrib/pnpsched/routing"
)

func mustNode(t *testing.T, id string, kind domain.NodeKind, partType string, x, y float64) domain.Node {
	t.Helper()
	n, err := domain.NewNode(id, kind, partType, x, y)
	require.NoError(t, err)
	return n
}

func s1Job(t *testing.T) *domain.Job {
	t.Helper()
	machine, err := domain.NewMachine(1, 2, 100, 1, 0.5, 0.2, 5)
	require.NoError(t, err)

	f1 := mustNode(t, "F1", domain.FeederNode, "R", 0, 0)
	p1 := mustNode(t, "P1", domain.PlacementNode, "R", 30, 40)
	p2 := mustNode(t, "P2", domain.PlacementNode, "R", 60, 80)

	job, err := domain.NewJob("J1", "scenario one", machine, []domain.Node{f1}, []domain.Node{p1, p2})
	require.NoError(t, err)

	return job
}

func TestOrchestrator_S1SingleClusterSequence(t *testing.T) {
	job := s1Job(t)
	setup, err := domain.NewSetup([]domain.SetupEntry{{Job: job, Quantity: 1, DueTimeS: 0}})
	require.NoError(t, err)

	o := &Orchestrator{Solver: &routing.HeldKarpSolver{}, SolveOptions: routing.DefaultSolveOptions()}
	entries, err := o.Run(setup)
	require.NoError(t, err)

	var kinds []domain.EventKind
	for _, e := range entries {
		kinds = append(kinds, e.Event.Kind)
		assert.Equal(t, "J1-1", e.JobInstanceID)
	}
	assert.Equal(t, []domain.EventKind{
		domain.Pickup, domain.Travel, domain.Place, domain.Travel, domain.Place, domain.Travel,
	}, kinds)

	// No CHANGEOVER for a single job, quantity=1 (§8 property).
	for _, e := range entries {
		assert.NotEqual(t, domain.Changeover, e.Event.Kind)
	}
}

func TestOrchestrator_TwoFeedersWithinOneJobEmitFeederTravelNoChangeover(t *testing.T) {
	machine, err := domain.NewMachine(1, 2, 100, 1, 0.5, 0.2, 5)
	require.NoError(t, err)

	f1 := mustNode(t, "F1", domain.FeederNode, "R", 0, 0)
	f2 := mustNode(t, "F2", domain.FeederNode, "C", 100, 0)
	p1 := mustNode(t, "P1", domain.PlacementNode, "R", 10, 50)
	p2 := mustNode(t, "P2", domain.PlacementNode, "C", 90, 50)

	job, err := domain.NewJob("J1", "two feeders", machine, []domain.Node{f1, f2}, []domain.Node{p1, p2})
	require.NoError(t, err)

	setup, err := domain.NewSetup([]domain.SetupEntry{{Job: job, Quantity: 1, DueTimeS: 0}})
	require.NoError(t, err)

	o := &Orchestrator{Solver: &routing.HeldKarpSolver{}, SolveOptions: routing.DefaultSolveOptions()}
	entries, err := o.Run(setup)
	require.NoError(t, err)

	sawFeederTravel := false
	for _, e := range entries {
		assert.NotEqual(t, domain.Changeover, e.Event.Kind)
		if e.Event.Kind == domain.Travel && e.Event.Detail == "travel_F1-Feeder-F2-C" {
			sawFeederTravel = true
		}
	}
	assert.True(t, sawFeederTravel, "expected a feeder-to-feeder travel between F1 and F2")
}

func TestOrchestrator_RepeatsEmitChangeoverBetweenIterations(t *testing.T) {
	job := s1Job(t)
	setup, err := domain.NewSetup([]domain.SetupEntry{{Job: job, Quantity: 3, DueTimeS: 0}})
	require.NoError(t, err)

	o := &Orchestrator{Solver: &routing.HeldKarpSolver{}, SolveOptions: routing.DefaultSolveOptions()}
	entries, err := o.Run(setup)
	require.NoError(t, err)

	changeovers := 0
	instances := map[string]bool{}
	for _, e := range entries {
		instances[e.JobInstanceID] = true
		if e.Event.Kind == domain.Changeover {
			changeovers++
		}
	}
	assert.Equal(t, 2, changeovers)
	assert.Equal(t, map[string]bool{"J1-1": true, "J1-2": true, "J1-3": true}, instances)
}

func TestOrchestrator_TwoJobsEmitBoundaryChangeover(t *testing.T) {
	machine, err := domain.NewMachine(1, 2, 100, 1, 0.5, 0.2, 5)
	require.NoError(t, err)

	f1 := mustNode(t, "F1", domain.FeederNode, "R", 0, 0)
	p1 := mustNode(t, "P1", domain.PlacementNode, "R", 10, 0)
	job1, err := domain.NewJob("J1", "first", machine, []domain.Node{f1}, []domain.Node{p1})
	require.NoError(t, err)

	f2 := mustNode(t, "F2", domain.FeederNode, "C", 0, 0)
	p2 := mustNode(t, "P2", domain.PlacementNode, "C", 10, 0)
	job2, err := domain.NewJob("J2", "second", machine, []domain.Node{f2}, []domain.Node{p2})
	require.NoError(t, err)

	setup, err := domain.NewSetup([]domain.SetupEntry{
		{Job: job1, Quantity: 1, DueTimeS: 0},
		{Job: job2, Quantity: 1, DueTimeS: 1},
	})
	require.NoError(t, err)

	o := &Orchestrator{Solver: &routing.HeldKarpSolver{}, SolveOptions: routing.DefaultSolveOptions()}
	entries, err := o.Run(setup)
	require.NoError(t, err)

	changeoverIdx := -1
	for i, e := range entries {
		if e.Event.Kind == domain.Changeover {
			changeoverIdx = i
			assert.Equal(t, "changeover_J1-1_J2-1", e.Event.Detail)
			assert.Equal(t, "J2-1", e.JobInstanceID)
		}
	}
	require.NotEqual(t, -1, changeoverIdx)

	// The second job's feeder differs from the first's, so a cross-job
	// feeder-to-feeder TRAVEL should precede its first PICKUP (§9 resolution).
	sawCrossJobTravel := false
	for _, e := range entries {
		if e.JobInstanceID == "J2-1" && e.Event.Kind == domain.Travel && e.Event.Detail == "travel_F1-Feeder-F2-C" {
			sawCrossJobTravel = true
		}
	}
	assert.True(t, sawCrossJobTravel)
}

func TestOrchestrator_RejectsEmptySetup(t *testing.T) {
	o := &Orchestrator{Solver: &routing.HeldKarpSolver{}, SolveOptions: routing.DefaultSolveOptions()}
	_, err := o.Run(&domain.Setup{})
	assert.ErrorIs(t, err, ErrNoJobs)
}
