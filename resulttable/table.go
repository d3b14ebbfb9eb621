package resulttable

import (
	"github.com/lvlath-contrib/pnpsched/domain"
	"github.com/lvlath-contrib/pnpsched/orchestrator"
)

// Row is one line of the flat result table (§4.6): job_id, event_type,
// detail, x1, y1, x2, y2, distance, time.
type Row struct {
	JobID     string
	EventType string
	Detail    string
	X1, Y1    float64
	X2, Y2    float64
	Distance  float64
	Time      float64
}

// Table is the ordered, row-per-event view of a full orchestrator run.
type Table struct {
	Rows []Row
}

// Build flattens entries into a Table. For non-TRAVEL events, coordinates
// carry forward from the previous row's destination (x2,y2); the very first
// row (always a PICKUP of the first job) has no prior coordinate, so it is
// backfilled from the second row's x1,y1 once the whole table is built
// (§4.6) — this lets downstream consumers treat every row uniformly.
func Build(entries []orchestrator.Entry) Table {
	rows := make([]Row, len(entries))

	var prevX, prevY float64
	for i, e := range entries {
		row := Row{
			JobID:     e.JobInstanceID,
			EventType: e.Event.Kind.String(),
			Detail:    e.Event.Detail,
			Time:      e.Event.Time,
		}

		if e.Event.Kind == domain.Travel && e.Event.Arc != nil {
			row.X1, row.Y1 = e.Event.Arc.XI, e.Event.Arc.YI
			row.X2, row.Y2 = e.Event.Arc.XJ, e.Event.Arc.YJ
			row.Distance = e.Event.Arc.Distance
		} else {
			row.X1, row.Y1 = prevX, prevY
			row.X2, row.Y2 = prevX, prevY
		}

		prevX, prevY = row.X2, row.Y2
		rows[i] = row
	}

	if len(rows) > 1 {
		rows[0].X1, rows[0].Y1 = rows[1].X1, rows[1].Y1
		rows[0].X2, rows[0].Y2 = rows[1].X1, rows[1].Y1
	}

	return Table{Rows: rows}
}
