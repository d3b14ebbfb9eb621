package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-contrib/pnpsched/domain"
)

func mustJob(t *testing.T, headCapacity int, feeders, placements []domain.Node) *domain.Job {
	t.Helper()
	m, err := domain.NewMachine(1, headCapacity, 100, 1, 0.5, 0.2, 5)
	require.NoError(t, err)
	job, err := domain.NewJob("J1", "board", m, feeders, placements)
	require.NoError(t, err)
	require.NoError(t, job.CalculateDistances())

	return job
}

func TestBuildClusters_ChunksByHeadCapacity(t *testing.T) {
	f1, _ := domain.NewNode("F1", domain.FeederNode, "R", 0, 0)
	p1, _ := domain.NewNode("P1", domain.PlacementNode, "R", 10, 0)
	p2, _ := domain.NewNode("P2", domain.PlacementNode, "R", 20, 0)
	p3, _ := domain.NewNode("P3", domain.PlacementNode, "R", 30, 0)

	job := mustJob(t, 2, []domain.Node{f1}, []domain.Node{p3, p1, p2})

	clusters, err := BuildClusters(job)
	require.NoError(t, err)

	cs := clusters["R"]
	require.Len(t, cs, 2)
	require.Len(t, cs[0].Placements, 2)
	require.Len(t, cs[1].Placements, 1)

	// Nearest-first: P1 (d=10) then P2 (d=20) in the first cluster.
	assert.Equal(t, "P1", cs[0].Placements[0].ID)
	assert.Equal(t, "P2", cs[0].Placements[1].ID)
	assert.Equal(t, "P3", cs[1].Placements[0].ID)
}

func TestBuildClusters_FeederWithNoPlacementsSkipped(t *testing.T) {
	f1, _ := domain.NewNode("F1", domain.FeederNode, "R", 0, 0)
	f2, _ := domain.NewNode("F2", domain.FeederNode, "C", 50, 0)
	p1, _ := domain.NewNode("P1", domain.PlacementNode, "R", 10, 0)

	job := mustJob(t, 2, []domain.Node{f1, f2}, []domain.Node{p1})

	clusters, err := BuildClusters(job)
	require.NoError(t, err)

	assert.Len(t, clusters["R"], 1)
	assert.Empty(t, clusters["C"])
}

func TestBuildClusters_TieBreakByID(t *testing.T) {
	f1, _ := domain.NewNode("F1", domain.FeederNode, "R", 0, 0)
	// Two placements equidistant from the feeder.
	pb, _ := domain.NewNode("PB", domain.PlacementNode, "R", 10, 0)
	pa, _ := domain.NewNode("PA", domain.PlacementNode, "R", -10, 0)

	job := mustJob(t, 2, []domain.Node{f1}, []domain.Node{pb, pa})

	clusters, err := BuildClusters(job)
	require.NoError(t, err)

	require.Len(t, clusters["R"][0].Placements, 2)
	assert.Equal(t, "PA", clusters["R"][0].Placements[0].ID)
	assert.Equal(t, "PB", clusters["R"][0].Placements[1].ID)
}

func TestBuildClusters_DistancesNotComputed(t *testing.T) {
	f1, _ := domain.NewNode("F1", domain.FeederNode, "R", 0, 0)
	p1, _ := domain.NewNode("P1", domain.PlacementNode, "R", 10, 0)
	m, err := domain.NewMachine(1, 2, 100, 1, 0.5, 0.2, 5)
	require.NoError(t, err)
	job, err := domain.NewJob("J1", "board", m, []domain.Node{f1}, []domain.Node{p1})
	require.NoError(t, err)

	_, err = BuildClusters(job)
	assert.ErrorIs(t, err, ErrDistancesNotComputed)
}
