package geometry

import (
	"math"
	"sort"
)

// MinRotatedRectContains reports whether pt lies inside (or on the boundary
// of) the minimum-area rotated bounding rectangle of points.
//
// This backs the fatal "feeder inside the PCB footprint" validation (§3 of
// the core specification). It is computed from first principles (convex
// hull + rotating calipers) since no graph/matrix library in the retrieval
// pack offers computational geometry primitives; see DESIGN.md for the
// standard-library justification.
//
// Complexity: O(n log n) for the hull, O(h²) for the sweep (each of the h
// hull edges projects all h hull vertices), O(1) to test pt against the
// winning rectangle.
func MinRotatedRectContains(points []Point, pt Point) (bool, error) {
	if len(points) == 0 {
		return false, ErrEmptyPoints
	}
	hull := convexHull(points)

	// A single point or a degenerate (collinear) hull has zero area; the
	// "rectangle" degenerates to a point/segment, which cannot contain pt
	// unless pt lies exactly on it. Treat as "does not contain" — a
	// degenerate placement footprint can never trap a feeder.
	if len(hull) < 3 {
		return false, nil
	}

	best := rotatedRect{area: -1}
	n := len(hull)
	for i := 0; i < n; i++ {
		edge := sub(hull[(i+1)%n], hull[i])
		theta := -angle(edge)
		cosT, sinT := math.Cos(theta), math.Sin(theta)

		minX, minY := rotate(hull[0], cosT, sinT).X, rotate(hull[0], cosT, sinT).Y
		maxX, maxY := minX, minY
		for _, p := range hull[1:] {
			r := rotate(p, cosT, sinT)
			if r.X < minX {
				minX = r.X
			}
			if r.X > maxX {
				maxX = r.X
			}
			if r.Y < minY {
				minY = r.Y
			}
			if r.Y > maxY {
				maxY = r.Y
			}
		}
		area := (maxX - minX) * (maxY - minY)
		if best.area < 0 || area < best.area {
			best = rotatedRect{cosT: cosT, sinT: sinT, minX: minX, maxX: maxX, minY: minY, maxY: maxY, area: area}
		}
	}

	r := rotate(pt, best.cosT, best.sinT)

	return r.X >= best.minX && r.X <= best.maxX && r.Y >= best.minY && r.Y <= best.maxY, nil
}

// rotatedRect captures one candidate minimum-area rectangle under the
// rotation that aligns a hull edge with the X axis.
type rotatedRect struct {
	cosT, sinT         float64
	minX, maxX         float64
	minY, maxY         float64
	area               float64
}

func sub(a, b Point) Point { return Point{X: a.X - b.X, Y: a.Y - b.Y} }

func angle(v Point) float64 { return math.Atan2(v.Y, v.X) }

func rotate(p Point, cosT, sinT float64) Point {
	return Point{
		X: p.X*cosT - p.Y*sinT,
		Y: p.X*sinT + p.Y*cosT,
	}
}

// convexHull computes the convex hull of points via the monotone chain
// algorithm, returning hull vertices in counter-clockwise order with no
// repeated closing point.
//
// Complexity: O(n log n).
func convexHull(points []Point) []Point {
	pts := append([]Point(nil), points...)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	pts = dedupe(pts)
	if len(pts) <= 2 {
		return pts
	}

	cross := func(o, a, b Point) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	lower := make([]Point, 0, len(pts))
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]Point, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Drop the last point of each half: it's the first point of the other half.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)

	return hull
}

func dedupe(sorted []Point) []Point {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, p := range sorted[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}

	return out
}
