package resulttable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvlath-contrib/pnpsched/domain"
	"github.com/lvlath-contrib/pnpsched/orchestrator"
)

func TestBuild_BackfillsFirstRowFromSecond(t *testing.T) {
	entries := []orchestrator.Entry{
		{JobInstanceID: "J1-1", Event: domain.Event{Kind: domain.Pickup, Detail: "pickup_F1_R", Time: 1}},
		{JobInstanceID: "J1-1", Event: domain.Event{
			Kind: domain.Travel, Detail: "travel_F1-R-P1-R", Time: 1.2,
			Arc: &domain.Arc{XI: 0, YI: 0, XJ: 30, YJ: 40, Distance: 50},
		}},
	}

	tbl := Build(entries)
	require.Len(t, tbl.Rows, 2)

	assert.Equal(t, 0.0, tbl.Rows[0].X1)
	assert.Equal(t, 0.0, tbl.Rows[0].Y1)
	assert.Equal(t, 0.0, tbl.Rows[0].X2)
	assert.Equal(t, 0.0, tbl.Rows[0].Y2)

	assert.Equal(t, 30.0, tbl.Rows[1].X2)
	assert.Equal(t, 40.0, tbl.Rows[1].Y2)
}

func TestBuild_NonTravelCarriesForwardPreviousDestination(t *testing.T) {
	entries := []orchestrator.Entry{
		{JobInstanceID: "J1-1", Event: domain.Event{Kind: domain.Pickup, Detail: "pickup_F1_R", Time: 1}},
		{JobInstanceID: "J1-1", Event: domain.Event{
			Kind: domain.Travel, Detail: "travel_F1-R-P1-R", Time: 1.2,
			Arc: &domain.Arc{XI: 0, YI: 0, XJ: 30, YJ: 40, Distance: 50},
		}},
		{JobInstanceID: "J1-1", Event: domain.Event{Kind: domain.Place, Detail: "place_P1_R", Time: 0.5}},
	}

	tbl := Build(entries)
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, 30.0, tbl.Rows[2].X1)
	assert.Equal(t, 40.0, tbl.Rows[2].Y1)
	assert.Equal(t, 30.0, tbl.Rows[2].X2)
	assert.Equal(t, 40.0, tbl.Rows[2].Y2)
}

func TestWriteCSV(t *testing.T) {
	entries := []orchestrator.Entry{
		{JobInstanceID: "J1-1", Event: domain.Event{Kind: domain.Pickup, Detail: "pickup_F1_R", Time: 1}},
	}
	tbl := Build(entries)

	var buf strings.Builder
	require.NoError(t, tbl.WriteCSV(&buf))

	out := buf.String()
	assert.Contains(t, out, "job_id,event_type,detail,x1,y1,x2,y2,distance,time")
	assert.Contains(t, out, "J1-1,PICKUP,pickup_F1_R")
}
