package resulttable

import (
	"encoding/csv"
	"io"
	"strconv"
)

var header = []string{"job_id", "event_type", "detail", "x1", "y1", "x2", "y2", "distance", "time"}

// WriteCSV renders the table as CSV per §4.6's column contract, header first.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range t.Rows {
		record := []string{
			r.JobID,
			r.EventType,
			r.Detail,
			formatFloat(r.X1),
			formatFloat(r.Y1),
			formatFloat(r.X2),
			formatFloat(r.Y2),
			formatFloat(r.Distance),
			formatFloat(r.Time),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
