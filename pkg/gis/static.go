package gis

import (
	"fmt"

	"github.com/openmobilitylab/routeenergy/pkg/geo"
)

// Static is an in-memory Source for tests and synthetic scenarios. File
// arguments are ignored.
type Static struct {
	// Lines maps route id to its coordinate sequence.
	Lines map[string][]geo.Point2D

	// Elevation returns the elevation at a coordinate. A nil func means a
	// flat route at elevation 0.
	Elevation func(geo.Point2D) float64
}

var _ Source = Static{}

// ReadShape returns the configured line for routeID.
func (s Static) ReadShape(_, routeID string) (*Geometry, error) {
	line, ok := s.Lines[routeID]
	if !ok {
		return nil, fmt.Errorf("no static geometry for route %q", routeID)
	}
	return &Geometry{RouteID: routeID, Line: line}, nil
}

// ExtractPoints returns the geometry's coordinate sequence.
func (s Static) ExtractPoints(g *Geometry) []geo.Point2D {
	return g.Line
}

// Gradient evaluates the configured elevation function along the route.
func (s Static) Gradient(g *Geometry, _ string) (*GradientData, error) {
	elevation := make([]float64, len(g.Line))
	if s.Elevation != nil {
		for i, p := range g.Line {
			elevation[i] = s.Elevation(p)
		}
	}
	cum, back := Distances(g.Line)
	return &GradientData{
		Elevation:          elevation,
		Gradient:           GradientFromElevation(elevation, back),
		CumulativeDistance: cum,
		BackDiffDistance:   back,
	}, nil
}

// MakeSegments builds the per-point connecting segments.
func (s Static) MakeSegments(points []geo.Point2D) []geo.LineSegment {
	return Segments(points)
}
