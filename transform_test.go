package colr

import (
	"math"
	"testing"
)

func pointNear(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// Transform nodes are specified on the y-up design grid; paintMatrix
// must produce the equivalent motion on the y-down sink grid. Each case
// checks where a design-space point lands in sink space.
func TestPaintMatrix(t *testing.T) {
	tests := []struct {
		name string
		p    Paint
		in   Point // sink-space input point
		want Point // sink-space result
	}{
		{
			name: "affine passthrough scale",
			p:    PaintTransform{Affine: Affine{XX: 2, YY: 3}},
			in:   Pt(10, 10),
			want: Pt(20, 30),
		},
		{
			name: "affine translation flips y",
			p:    PaintTransform{Affine: Affine{XX: 1, YY: 1, Dx: 5, Dy: 7}},
			in:   Pt(0, 0),
			want: Pt(5, -7),
		},
		{
			name: "translate flips y",
			p:    PaintTranslate{Dx: 10, Dy: 20},
			in:   Pt(0, 0),
			want: Pt(10, -20),
		},
		{
			name: "scale about design center",
			p:    PaintScale{ScaleX: 2, ScaleY: 2, CenterX: 10, CenterY: 10},
			// Design point (20, 20) is sink (20, -20); scaling about
			// design (10, 10) moves it to design (30, 30) = sink (30, -30).
			in:   Pt(20, -20),
			want: Pt(30, -30),
		},
		{
			name: "rotate counter-clockwise in design space",
			p:    PaintRotate{Angle: 90},
			// Design (1, 0) rotates CCW to design (0, 1) = sink (0, -1).
			in:   Pt(1, 0),
			want: Pt(0, -1),
		},
		{
			name: "rotate about design center",
			p:    PaintRotate{Angle: 180, CenterX: 10, CenterY: 0},
			in:   Pt(20, 0),
			want: Pt(0, 0),
		},
		{
			name: "skew x leans along design x",
			p:    PaintSkew{XAngle: 45},
			// A positive x skew shifts points with larger sink y
			// toward positive x.
			in:   Pt(0, 10),
			want: Pt(10, 10),
		},
		{
			name: "skew y negates for the axis flip",
			p:    PaintSkew{YAngle: 45},
			in:   Pt(10, 0),
			want: Pt(10, -10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := paintMatrix(tt.p)
			if !ok {
				t.Fatalf("paintMatrix(%T) failed", tt.p)
			}
			got := m.TransformPoint(tt.in)
			if !pointNear(got, tt.want, 1e-9) {
				t.Errorf("%v maps to %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPaintMatrixNonTransform(t *testing.T) {
	if _, ok := paintMatrix(PaintSolid{}); ok {
		t.Error("paintMatrix accepted a fill node")
	}
	if _, ok := paintMatrix(PaintGlyph{}); ok {
		t.Error("paintMatrix accepted a glyph node")
	}
}

// Tiny skew tangents snap to exactly zero so nearly-axis-aligned skews
// do not accumulate drift.
func TestPaintMatrixSkewSnap(t *testing.T) {
	m, ok := paintMatrix(PaintSkew{XAngle: 1e-4, YAngle: -1e-4})
	if !ok {
		t.Fatal("paintMatrix failed")
	}
	if m.B != 0 || m.D != 0 {
		t.Errorf("tiny skew tangents not snapped: B=%g D=%g", m.B, m.D)
	}

	m, _ = paintMatrix(PaintSkew{XAngle: 5})
	if m.B == 0 {
		t.Error("real skew tangent snapped to zero")
	}
}
