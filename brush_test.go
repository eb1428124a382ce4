package colr

import (
	"math"
	"testing"
)

func TestApplyExtendMode(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		mode ExtendMode
		want float64
	}{
		{"pad clamps low", -0.5, ExtendPad, 0},
		{"pad clamps high", 1.5, ExtendPad, 1},
		{"pad passes through", 0.25, ExtendPad, 0.25},
		{"repeat wraps", 1.25, ExtendRepeat, 0.25},
		{"repeat wraps negative", -0.25, ExtendRepeat, 0.75},
		{"reflect forward", 0.25, ExtendReflect, 0.25},
		{"reflect mirrors odd period", 1.25, ExtendReflect, 0.75},
		{"reflect repeats even period", 2.25, ExtendReflect, 0.25},
		{"reflect mirrors negative", -0.25, ExtendReflect, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyExtendMode(tt.t, tt.mode); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("applyExtendMode(%g, %d) = %g, want %g", tt.t, tt.mode, got, tt.want)
			}
		})
	}
}

func TestColorAtOffset(t *testing.T) {
	stops := []GradientStop{
		{Offset: 0, Color: RGBA{A: 1}},
		{Offset: 1, Color: RGBA{R: 1, G: 1, B: 1, A: 1}},
	}

	if c := colorAtOffset(stops, -1, ExtendPad); c != stops[0].Color {
		t.Errorf("below range pad = %+v, want first stop", c)
	}
	if c := colorAtOffset(stops, 2, ExtendPad); c != stops[1].Color {
		t.Errorf("above range pad = %+v, want last stop", c)
	}

	mid := colorAtOffset(stops, 0.5, ExtendPad)
	want := stops[0].Color.Lerp(stops[1].Color, 0.5)
	if math.Abs(mid.R-want.R) > 1e-9 {
		t.Errorf("midpoint = %+v, want %+v", mid, want)
	}

	if c := colorAtOffset(nil, 0.5, ExtendPad); c != Transparent {
		t.Errorf("no stops = %+v, want transparent", c)
	}
	one := []GradientStop{{Offset: 0.5, Color: RGBA{R: 1, A: 1}}}
	if c := colorAtOffset(one, 0.1, ExtendRepeat); c != one[0].Color {
		t.Errorf("single stop = %+v, want its color", c)
	}
}

// Coincident stops form a hard edge: the lower stop's color holds
// exactly at the shared offset.
func TestColorAtOffsetCoincidentStops(t *testing.T) {
	stops := []GradientStop{
		{Offset: 0, Color: RGBA{R: 1, A: 1}},
		{Offset: 0.5, Color: RGBA{G: 1, A: 1}},
		{Offset: 0.5, Color: RGBA{B: 1, A: 1}},
		{Offset: 1, Color: RGBA{A: 1}},
	}
	if c := colorAtOffset(stops, 0.5, ExtendPad); c != stops[1].Color {
		t.Errorf("at shared offset = %+v, want lower stop", c)
	}
	just := colorAtOffset(stops, 0.500001, ExtendPad)
	if just.B < 0.9 {
		t.Errorf("just past shared offset = %+v, want upper stop side", just)
	}
}

func TestSortStopsStable(t *testing.T) {
	stops := []GradientStop{
		{Offset: 0.5, Color: RGBA{R: 1}},
		{Offset: 0.2, Color: RGBA{G: 1}},
		{Offset: 0.5, Color: RGBA{B: 1}},
	}
	sortStops(stops)
	if stops[0].Color != (RGBA{G: 1}) {
		t.Fatalf("sorted order wrong: %+v", stops)
	}
	// Equal offsets keep their arrival order.
	if stops[1].Color != (RGBA{R: 1}) || stops[2].Color != (RGBA{B: 1}) {
		t.Errorf("equal-offset stops reordered: %+v", stops)
	}
}

func TestLinearGradientBrushColorAt(t *testing.T) {
	b := &LinearGradientBrush{
		Start: Pt(0, 0),
		End:   Pt(100, 0),
		Stops: []GradientStop{
			{Offset: 0, Color: RGBA{A: 1}},
			{Offset: 1, Color: RGBA{R: 1, G: 1, B: 1, A: 1}},
		},
		Extend: ExtendPad,
	}

	if c := b.ColorAt(-50, 0); c != b.Stops[0].Color {
		t.Errorf("before start = %+v, want first stop", c)
	}
	if c := b.ColorAt(200, 0); c != b.Stops[1].Color {
		t.Errorf("past end = %+v, want last stop", c)
	}
	// The axis projection ignores the perpendicular component.
	onAxis := b.ColorAt(25, 0)
	offAxis := b.ColorAt(25, 500)
	if onAxis != offAxis {
		t.Errorf("perpendicular offset changed color: %+v vs %+v", onAxis, offAxis)
	}

	degenerate := &LinearGradientBrush{
		Start: Pt(10, 10), End: Pt(10, 10),
		Stops: b.Stops,
	}
	if c := degenerate.ColorAt(0, 0); c != b.Stops[0].Color {
		t.Errorf("zero-length axis = %+v, want first stop", c)
	}
}

func TestRadialGradientBrushColorAt(t *testing.T) {
	// Concentric circles: radius grows 0 to 100 about the origin.
	b := &RadialGradientBrush{
		C0: Pt(0, 0), R0: 0,
		C1: Pt(0, 0), R1: 100,
		Stops: []GradientStop{
			{Offset: 0, Color: RGBA{A: 1}},
			{Offset: 1, Color: RGBA{R: 1, G: 1, B: 1, A: 1}},
		},
		Extend: ExtendPad,
	}

	mid := b.ColorAt(50, 0)
	want := b.Stops[0].Color.Lerp(b.Stops[1].Color, 0.5)
	if math.Abs(mid.R-want.R) > 1e-9 {
		t.Errorf("at half radius = %+v, want %+v", mid, want)
	}
	if c := b.ColorAt(300, 0); c != b.Stops[1].Color {
		t.Errorf("outside pad = %+v, want last stop", c)
	}
	if c := b.ColorAt(0, 0); c != b.Stops[0].Color {
		t.Errorf("at center = %+v, want first stop", c)
	}
}

// Points the gradient cone never reaches are transparent rather than
// extended.
func TestRadialGradientBrushUnreachable(t *testing.T) {
	b := &RadialGradientBrush{
		C0: Pt(0, 0), R0: 0,
		C1: Pt(100, 0), R1: 0,
		Stops: []GradientStop{
			{Offset: 0, Color: RGBA{R: 1, A: 1}},
			{Offset: 1, Color: RGBA{B: 1, A: 1}},
		},
		Extend: ExtendPad,
	}
	if c := b.ColorAt(50, 50); c != Transparent {
		t.Errorf("off-axis zero-radius cone = %+v, want transparent", c)
	}
}

func TestSweepGradientBrushCenter(t *testing.T) {
	b := &SweepGradientBrush{
		Center: Pt(0, 0),
		Sweep:  360,
		Local:  Identity(),
		Stops: []GradientStop{
			{Offset: 0, Color: RGBA{R: 1, A: 1}},
			{Offset: 1, Color: RGBA{B: 1, A: 1}},
		},
		Extend: ExtendPad,
	}
	// The center has no angle; it takes the first stop's color.
	if c := b.ColorAt(0, 0); c != b.Stops[0].Color {
		t.Errorf("at center = %+v, want first stop", c)
	}
}
