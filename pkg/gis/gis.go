// Package gis supplies route geometry and elevation samples to the energy
// pipeline. The pipeline only depends on the Source interface; FileSource
// reads GeoJSON route shapes and ASCII-grid elevation rasters, and Static
// feeds fixed tables to tests.
package gis

import (
	"math"

	"github.com/openmobilitylab/routeenergy/pkg/geo"
)

// Geometry is one route's line geometry as loaded from a shape file.
type Geometry struct {
	RouteID string
	Line    []geo.Point2D
}

// GradientData carries elevation-derived columns, one value per route point,
// aligned by index. BackDiffDistance has one value per segment (length N-1).
type GradientData struct {
	Elevation          []float64
	Gradient           []float64
	CumulativeDistance []float64
	BackDiffDistance   []float64
}

// Source is the geometry/elevation collaborator consumed by the pipeline.
// All reads happen once, before kinematics begins.
type Source interface {
	// ReadShape loads a single route's line geometry.
	ReadShape(file, routeID string) (*Geometry, error)

	// ExtractPoints returns the route's ordered coordinate sequence.
	ExtractPoints(g *Geometry) []geo.Point2D

	// Gradient samples elevation along the route and derives the gradient
	// and distance columns.
	Gradient(g *Geometry, rasterFile string) (*GradientData, error)

	// MakeSegments builds the per-point connecting line segments. The final
	// point gets a degenerate segment onto itself.
	MakeSegments(points []geo.Point2D) []geo.LineSegment
}

// Distances computes the cumulative and backward-difference distances along a
// polyline. Cumulative distance starts at 0 and is monotonically
// non-decreasing.
func Distances(points []geo.Point2D) (cum []float64, back []float64) {
	cum = make([]float64, len(points))
	if len(points) == 0 {
		return cum, nil
	}
	back = make([]float64, len(points)-1)
	for i := 1; i < len(points); i++ {
		back[i-1] = points[i].Distance(points[i-1])
		cum[i] = cum[i-1] + back[i-1]
	}
	return cum, back
}

// GradientFromElevation derives rise-over-run from sampled elevations and
// segment lengths. The first point has no previous segment and gets
// gradient 0.
func GradientFromElevation(elevation, backDiff []float64) []float64 {
	grad := make([]float64, len(elevation))
	for i := 1; i < len(elevation); i++ {
		run := backDiff[i-1]
		if run <= 0 || math.IsNaN(run) {
			grad[i] = 0
			continue
		}
		grad[i] = (elevation[i] - elevation[i-1]) / run
	}
	return grad
}

// Segments connects each point to its successor; the last segment is
// degenerate.
func Segments(points []geo.Point2D) []geo.LineSegment {
	segs := make([]geo.LineSegment, len(points))
	for i := range points {
		if i < len(points)-1 {
			segs[i] = geo.Seg(points[i], points[i+1])
		} else {
			segs[i] = geo.Seg(points[i], points[i])
		}
	}
	return segs
}
