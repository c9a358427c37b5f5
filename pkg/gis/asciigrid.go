package gis

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/openmobilitylab/routeenergy/pkg/geo"
)

// asciiGrid is an ESRI ASCII grid raster: a header (ncols, nrows, corner,
// cellsize, optional nodata marker) followed by rows of cell values from the
// top of the grid down.
type asciiGrid struct {
	ncols, nrows         int
	xllcorner, yllcorner float64
	cellsize             float64
	nodata               float64
	hasNodata            bool
	cells                []float64 // row-major, top row first
}

func loadASCIIGrid(path string) (*asciiGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g := &asciiGrid{cellsize: 1}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	inHeader := true
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if inHeader {
			key := strings.ToLower(fields[0])
			switch key {
			case "ncols", "nrows", "xllcorner", "yllcorner", "cellsize", "nodata_value":
				if len(fields) != 2 {
					return nil, fmt.Errorf("malformed header line %q", scanner.Text())
				}
				v, err := strconv.ParseFloat(fields[1], 64)
				if err != nil {
					return nil, fmt.Errorf("header %s: %w", key, err)
				}
				switch key {
				case "ncols":
					g.ncols = int(v)
				case "nrows":
					g.nrows = int(v)
				case "xllcorner":
					g.xllcorner = v
				case "yllcorner":
					g.yllcorner = v
				case "cellsize":
					g.cellsize = v
				case "nodata_value":
					g.nodata = v
					g.hasNodata = true
				}
				continue
			}
			inHeader = false
		}

		for _, fv := range fields {
			v, err := strconv.ParseFloat(fv, 64)
			if err != nil {
				return nil, fmt.Errorf("bad cell value %q: %w", fv, err)
			}
			g.cells = append(g.cells, v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if g.ncols <= 0 || g.nrows <= 0 {
		return nil, fmt.Errorf("raster missing ncols/nrows header")
	}
	if len(g.cells) != g.ncols*g.nrows {
		return nil, fmt.Errorf("raster has %d cells, expected %d", len(g.cells), g.ncols*g.nrows)
	}
	return g, nil
}

// Sample returns the value of the cell containing p (nearest cell for points
// on the boundary).
func (g *asciiGrid) Sample(p geo.Point2D) (float64, error) {
	// Floor before converting: plain int() truncates toward zero and would
	// fold the band just outside the lower-left edge onto cell 0.
	col := int(math.Floor((p.X - g.xllcorner) / g.cellsize))
	row := int(math.Floor((p.Y - g.yllcorner) / g.cellsize))
	if col < 0 || col >= g.ncols || row < 0 || row >= g.nrows {
		return 0, fmt.Errorf("point (%g, %g) outside raster extent", p.X, p.Y)
	}
	// Rows are stored top-down; row index counts up from the lower-left corner.
	v := g.cells[(g.nrows-1-row)*g.ncols+col]
	if g.hasNodata && v == g.nodata {
		return 0, fmt.Errorf("no elevation data at (%g, %g)", p.X, p.Y)
	}
	return v, nil
}
