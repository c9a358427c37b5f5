package gis

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/openmobilitylab/routeenergy/pkg/geo"
)

// FileSource loads route shapes from GeoJSON files and elevations from
// ESRI ASCII grid rasters.
type FileSource struct{}

var _ Source = FileSource{}

// geojson wire types, narrowed to what route shapes need.
type featureCollection struct {
	Type     string    `json:"type"`
	Features []feature `json:"features"`
}

type feature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   featureGeometry `json:"geometry"`
}

type featureGeometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

// ReadShape loads the LineString feature whose route_id property matches
// routeID. A file holding a bare LineString geometry (no feature collection)
// matches any route id.
func (FileSource) ReadShape(file, routeID string) (*Geometry, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading shape file: %w", err)
	}

	var fc featureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing shape GeoJSON: %w", err)
	}

	if fc.Type == "LineString" {
		var g featureGeometry
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("parsing LineString geometry: %w", err)
		}
		return lineGeometry(routeID, g.Coordinates)
	}

	for _, f := range fc.Features {
		if f.Geometry.Type != "LineString" {
			continue
		}
		if id, ok := f.Properties["route_id"]; ok && fmt.Sprint(id) != routeID {
			continue
		}
		return lineGeometry(routeID, f.Geometry.Coordinates)
	}
	return nil, fmt.Errorf("no LineString feature for route %q in %s", routeID, file)
}

func lineGeometry(routeID string, coords [][]float64) (*Geometry, error) {
	if len(coords) < 2 {
		return nil, fmt.Errorf("route %q has %d coordinates, need at least 2", routeID, len(coords))
	}
	line := make([]geo.Point2D, len(coords))
	for i, c := range coords {
		if len(c) < 2 {
			return nil, fmt.Errorf("route %q: coordinate %d has %d components", routeID, i, len(c))
		}
		line[i] = geo.Pt(c[0], c[1])
	}
	return &Geometry{RouteID: routeID, Line: line}, nil
}

// ExtractPoints returns the geometry's ordered coordinate sequence.
func (FileSource) ExtractPoints(g *Geometry) []geo.Point2D {
	return g.Line
}

// Gradient samples the raster at each route point and derives the gradient
// and distance columns.
func (FileSource) Gradient(g *Geometry, rasterFile string) (*GradientData, error) {
	grid, err := loadASCIIGrid(rasterFile)
	if err != nil {
		return nil, fmt.Errorf("loading elevation raster: %w", err)
	}

	elevation := make([]float64, len(g.Line))
	for i, p := range g.Line {
		e, err := grid.Sample(p)
		if err != nil {
			return nil, fmt.Errorf("sampling elevation at point %d: %w", i, err)
		}
		elevation[i] = e
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
func (FileSource) MakeSegments(points []geo.Point2D) []geo.LineSegment {
	return Segments(points)
}
