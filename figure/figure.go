package figure

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/lvlath-contrib/pnpsched/domain"
	"github.com/lvlath-contrib/pnpsched/orchestrator"
)

// partTypePalette cycles a small fixed palette across part types so each one
// gets a stable, distinct colour without pulling in a colour-space library.
var partTypePalette = []string{
	"#5470c6", "#91cc75", "#fac858", "#ee6666", "#73c0de", "#3ba272", "#fc8452", "#9a60b4",
}

// Render builds the HTML figure for one job from the entries of all its
// instances: feeders as black
// squares, placements coloured by part_type, travel arcs drawn progressively
// lighter per trip, and the placement footprint's bounding box dashed.
func Render(job *domain.Job, entries []orchestrator.Entry, w io.Writer) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("job %s", job.ID)}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x (mm)", SplitLine: &opts.SplitLine{Show: opts.Bool(true)}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y (mm)", SplitLine: &opts.SplitLine{Show: opts.Bool(true)}}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	feederPoints := make([]opts.ScatterData, len(job.Feeders))
	for i, f := range job.Feeders {
		feederPoints[i] = opts.ScatterData{Value: []float64{f.Point.X, f.Point.Y}, Symbol: "rect", SymbolSize: 14}
	}
	scatter.AddSeries("feeders", feederPoints).SetSeriesOptions(
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#000000"}),
	)

	byPartType := make(map[string][]domain.Node)
	for _, p := range job.Placements {
		byPartType[p.PartType] = append(byPartType[p.PartType], p)
	}
	colorIdx := 0
	for partType, placements := range byPartType {
		points := make([]opts.ScatterData, len(placements))
		for i, p := range placements {
			points[i] = opts.ScatterData{Value: []float64{p.Point.X, p.Point.Y}, Symbol: "circle", SymbolSize: 8}
		}
		color := partTypePalette[colorIdx%len(partTypePalette)]
		colorIdx++
		scatter.AddSeries(partType, points).SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		)
	}

	line := travelArcsLine(entries)
	line.AddSeries("footprint", footprintBoxData(job), charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))

	scatter.Overlap(line)

	return scatter.Render(w)
}

// travelArcsLine draws the TRAVEL arcs of each trip (the arcs between one
// PICKUP and the next PICKUP or CHANGEOVER) as a separate line series, with
// later trips rendered at decreasing opacity (progressively lighter) so
// repeated visits to the same region remain visually distinguishable.
func travelArcsLine(entries []orchestrator.Entry) *charts.Line {
	line := charts.NewLine()

	trip := 0
	var current []opts.LineData
	flush := func() {
		if len(current) == 0 {
			return
		}
		trip++
		opacity := 1.0 - 0.7*float64(trip)/float64(trip+2)
		line.AddSeries(fmt.Sprintf("trip %d", trip), current).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{Opacity: opacity}),
		)
		current = nil
	}

	for _, e := range entries {
		if e.Event.Kind == domain.Pickup || e.Event.Kind == domain.Changeover {
			flush()

			continue
		}
		if e.Event.Kind != domain.Travel || e.Event.Arc == nil {
			continue
		}
		a := e.Event.Arc
		current = append(current,
			opts.LineData{Value: []float64{a.XI, a.YI}},
			opts.LineData{Value: []float64{a.XJ, a.YJ}},
		)
	}
	flush()

	return line
}

// footprintBoxData returns the axis-aligned bounding box of job's placements
// as a closed 5-point polyline (§6: "PCB bounding box drawn dashed").
func footprintBoxData(job *domain.Job) []opts.LineData {
	if len(job.Placements) == 0 {
		return nil
	}

	minX, minY := job.Placements[0].Point.X, job.Placements[0].Point.Y
	maxX, maxY := minX, minY
	for _, p := range job.Placements[1:] {
		minX, maxX = minF(minX, p.Point.X), maxF(maxX, p.Point.X)
		minY, maxY = minF(minY, p.Point.Y), maxF(maxY, p.Point.Y)
	}

	return []opts.LineData{
		{Value: []float64{minX, minY}},
		{Value: []float64{maxX, minY}},
		{Value: []float64{maxX, maxY}},
		{Value: []float64{minX, maxY}},
		{Value: []float64{minX, minY}},
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}
