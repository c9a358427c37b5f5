package geo

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestPointDistance(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(3, 4)
	if !approxEqual(a.Distance(b), 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", a.Distance(b))
	}
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, 10)
	mid := a.Lerp(b, 0.5)
	if !approxEqual(mid.X, 5, tolerance) || !approxEqual(mid.Y, 5, tolerance) {
		t.Errorf("expected (5,5), got (%f,%f)", mid.X, mid.Y)
	}
}

func TestPointVector(t *testing.T) {
	v := Pt(1.5, -2.5).Vector()
	if len(v) != 2 || v[0] != 1.5 || v[1] != -2.5 {
		t.Errorf("expected [1.5 -2.5], got %v", v)
	}
}

func TestSegmentLength(t *testing.T) {
	s := Seg(Pt(0, 0), Pt(0, 7))
	if !approxEqual(s.Length(), 7, tolerance) {
		t.Errorf("expected length 7, got %f", s.Length())
	}
}

func TestSegmentMidpoint(t *testing.T) {
	s := Seg(Pt(-2, 0), Pt(2, 4))
	m := s.Midpoint()
	if !approxEqual(m.X, 0, tolerance) || !approxEqual(m.Y, 2, tolerance) {
		t.Errorf("expected (0,2), got (%f,%f)", m.X, m.Y)
	}
}
