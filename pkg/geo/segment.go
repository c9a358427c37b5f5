package geo

// LineSegment is the straight connection between two consecutive route points.
// Carried on the route table for rendering clients; the energy pipeline itself
// never consumes it.
type LineSegment struct {
	A Point2D `json:"a"`
	B Point2D `json:"b"`
}

// Seg is a shorthand constructor for LineSegment.
func Seg(a, b Point2D) LineSegment {
	return LineSegment{A: a, B: b}
}

// Length returns the segment length.
func (s LineSegment) Length() float64 {
	return s.A.Distance(s.B)
}

// Midpoint returns the point halfway along the segment.
func (s LineSegment) Midpoint() Point2D {
	return s.A.Lerp(s.B, 0.5)
}
