package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-contrib/pnpsched/domain"
)

func mustNode(t *testing.T, id string, kind domain.NodeKind, partType string, x, y float64) domain.Node {
	t.Helper()
	n, err := domain.NewNode(id, kind, partType, x, y)
	require.NoError(t, err)
	return n
}

func TestEngine_RunProducesTableAndFigure(t *testing.T) {
	machine, err := domain.NewMachine(1, 2, 100, 1, 0.5, 0.2, 5)
	require.NoError(t, err)

	f1 := mustNode(t, "F1", domain.FeederNode, "R", 0, 0)
	p1 := mustNode(t, "P1", domain.PlacementNode, "R", 30, 40)
	p2 := mustNode(t, "P2", domain.PlacementNode, "R", 60, 80)
	job, err := domain.NewJob("J1", "scenario one", machine, []domain.Node{f1}, []domain.Node{p1, p2})
	require.NoError(t, err)

	setup, err := domain.NewSetup([]domain.SetupEntry{{Job: job, Quantity: 1, DueTimeS: 0}})
	require.NoError(t, err)

	e := New(Options{RenderFigures: true})
	result, err := e.Run(setup)
	require.NoError(t, err)

	assert.NotEmpty(t, result.Table.Rows)
	require.Contains(t, result.Figures, "J1")
	assert.NotEmpty(t, result.Figures["J1"])
}

func TestEngine_RunWithoutFigures(t *testing.T) {
	machine, err := domain.NewMachine(1, 2, 100, 1, 0.5, 0.2, 5)
	require.NoError(t, err)

	f1 := mustNode(t, "F1", domain.FeederNode, "R", 0, 0)
	p1 := mustNode(t, "P1", domain.PlacementNode, "R", 10, 0)
	job, err := domain.NewJob("J1", "scenario one", machine, []domain.Node{f1}, []domain.Node{p1})
	require.NoError(t, err)

	setup, err := domain.NewSetup([]domain.SetupEntry{{Job: job, Quantity: 1, DueTimeS: 0}})
	require.NoError(t, err)

	e := New(Options{})
	result, err := e.Run(setup)
	require.NoError(t, err)
	assert.Nil(t, result.Figures)
}
