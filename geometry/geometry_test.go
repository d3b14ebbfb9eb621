package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	d := Distance(Point{X: 0, Y: 0}, Point{X: 30, Y: 40})
	assert.InDelta(t, 50.0, d, 1e-9)
}

func TestDistanceMap_SymmetricAndSelf(t *testing.T) {
	ids := []string{"A", "B", "C"}
	pts := []Point{{X: 0, Y: 0}, {X: 30, Y: 40}, {X: 60, Y: 80}}

	dm, err := NewDistanceMap(ids, pts)
	require.NoError(t, err)

	ab, err := dm.At("A", "B")
	require.NoError(t, err)
	ba, err := dm.At("B", "A")
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
	assert.InDelta(t, 50.0, ab, 1e-9)

	_, err = dm.At("A", "A")
	assert.ErrorIs(t, err, ErrSelfDistance)

	_, err = dm.At("A", "Z")
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestDistanceMap_DuplicateID(t *testing.T) {
	_, err := NewDistanceMap([]string{"A", "A"}, []Point{{}, {}})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestDistanceMap_DimensionMismatch(t *testing.T) {
	_, err := NewDistanceMap([]string{"A"}, nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCrossDistanceMap(t *testing.T) {
	cm, err := NewCrossDistanceMap(
		[]string{"F1"}, []Point{{X: 0, Y: 0}},
		[]string{"P1", "P2"}, []Point{{X: 30, Y: 40}, {X: 3, Y: 4}},
	)
	require.NoError(t, err)

	d, err := cm.At("F1", "P1")
	require.NoError(t, err)
	assert.InDelta(t, 50.0, d, 1e-9)

	d2, err := cm.At("F1", "P2")
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d2, 1e-9)
}

func TestMinRotatedRectContains_SquareFootprint(t *testing.T) {
	square := []Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}}

	inside, err := MinRotatedRectContains(square, Point{X: 50, Y: 50})
	require.NoError(t, err)
	assert.True(t, inside)

	outside, err := MinRotatedRectContains(square, Point{X: -10, Y: 50})
	require.NoError(t, err)
	assert.False(t, outside)
}

func TestMinRotatedRectContains_RotatedFootprint(t *testing.T) {
	// A diamond (rotated square) centred at the origin.
	diamond := []Point{{X: 0, Y: 50}, {X: 50, Y: 0}, {X: 0, Y: -50}, {X: -50, Y: 0}}

	inside, err := MinRotatedRectContains(diamond, Point{X: 0, Y: 0})
	require.NoError(t, err)
	assert.True(t, inside)

	// The minimum rotated rectangle of a diamond is the diamond itself
	// (zero extra slack), so its own corners lie on the boundary.
	onBoundary, err := MinRotatedRectContains(diamond, Point{X: 0, Y: 50})
	require.NoError(t, err)
	assert.True(t, onBoundary)

	outside, err := MinRotatedRectContains(diamond, Point{X: 49, Y: 49})
	require.NoError(t, err)
	assert.False(t, outside)
}

func TestMinRotatedRectContains_EmptyPoints(t *testing.T) {
	_, err := MinRotatedRectContains(nil, Point{})
	assert.ErrorIs(t, err, ErrEmptyPoints)
}
