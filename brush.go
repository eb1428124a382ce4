package colr

import (
	"math"
	"sort"
)

// Brush is a renderer-ready fill description produced by the fill
// resolver. This is a sealed interface: only types in this package
// implement it.
//
// Every brush supports software evaluation through ColorAt so that
// sinks without native gradient shaders can still rasterize fills.
// Geometry-aware sinks can instead type-switch on the concrete brush
// types and hand the geometry to their own shader machinery.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ColorAt returns the color at the given sink coordinates.
	ColorAt(x, y float64) RGBA
}

// GradientStop is a resolved color stop: palette and foreground
// references are already substituted and alpha-modulated.
type GradientStop struct {
	Offset float64
	Color  RGBA
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	Color RGBA
}

func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ float64) RGBA {
	return b.Color
}

// LinearGradientBrush is a linear color transition between two points.
// Stops are sorted ascending and normalized to the [0, 1] range, so the
// extend mode tiles over the canonical interval.
type LinearGradientBrush struct {
	Start  Point
	End    Point
	Stops  []GradientStop
	Extend ExtendMode
}

func (LinearGradientBrush) brushMarker() {}

// ColorAt implements Brush.
func (b *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	d := b.End.Sub(b.Start)
	lengthSq := d.LengthSquared()
	if lengthSq == 0 {
		return firstStopColor(b.Stops)
	}

	// Project the point onto the gradient axis.
	f := Pt(x, y).Sub(b.Start)
	t := f.Dot(d) / lengthSq
	return colorAtOffset(b.Stops, t, b.Extend)
}

// RadialGradientBrush is a two-point conical gradient between the
// circles (C0, R0) and (C1, R1).
type RadialGradientBrush struct {
	C0     Point
	R0     float64
	C1     Point
	R1     float64
	Stops  []GradientStop
	Extend ExtendMode
}

func (RadialGradientBrush) brushMarker() {}

// ColorAt implements Brush. It solves for the parameter t at which the
// interpolated circle lerp((C0,R0), (C1,R1), t) passes through the
// point, preferring the larger root with a non-negative radius.
func (b *RadialGradientBrush) ColorAt(x, y float64) RGBA {
	d := b.C1.Sub(b.C0)
	dr := b.R1 - b.R0
	f := Pt(x, y).Sub(b.C0)

	a := d.LengthSquared() - dr*dr
	bq := f.Dot(d) + b.R0*dr
	cq := f.LengthSquared() - b.R0*b.R0

	var t float64
	if math.Abs(a) < 1e-12 {
		// Concentric-like case: the quadratic degenerates to linear.
		if bq == 0 {
			return Transparent
		}
		t = cq / (2 * bq)
	} else {
		disc := bq*bq - a*cq
		if disc < 0 {
			return Transparent
		}
		sq := math.Sqrt(disc)
		t = (bq + sq) / a
		if b.R0+t*dr < 0 {
			t = (bq - sq) / a
			if b.R0+t*dr < 0 {
				return Transparent
			}
		}
	}
	return colorAtOffset(b.Stops, t, b.Extend)
}

// SweepGradientBrush is an angular gradient around Center. The color
// line spans the angles [0, Sweep] in degrees; Local carries the
// start-angle rotation and the mirror that converts the design grid's
// counter-clockwise convention to the sink's clockwise one.
type SweepGradientBrush struct {
	Center Point
	Sweep  float64
	Local  Matrix
	Stops  []GradientStop
	Extend ExtendMode
}

func (SweepGradientBrush) brushMarker() {}

// ColorAt implements Brush.
func (b *SweepGradientBrush) ColorAt(x, y float64) RGBA {
	q := b.Local.Invert().TransformPoint(Pt(x, y))
	dx := q.X - b.Center.X
	dy := q.Y - b.Center.Y
	if dx == 0 && dy == 0 {
		return firstStopColor(b.Stops)
	}
	if b.Sweep == 0 {
		return firstStopColor(b.Stops)
	}

	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return colorAtOffset(b.Stops, deg/b.Sweep, b.Extend)
}

// sortStops stable-sorts stops ascending by offset, preserving the
// relative order of equal offsets. The input slice is sorted in place.
func sortStops(stops []GradientStop) {
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Offset < stops[j].Offset
	})
}

// applyExtendMode maps t into [0, 1] according to the extend mode.
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// firstStopColor returns the lowest-offset stop's color, or Transparent
// if there are no stops. Callers pass pre-sorted stops.
func firstStopColor(stops []GradientStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	return stops[0].Color
}

// colorAtOffset returns the interpolated color at parameter t.
// Stops must be sorted ascending by offset.
func colorAtOffset(stops []GradientStop, t float64, mode ExtendMode) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	t = applyExtendMode(t, mode)
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	if t >= stops[len(stops)-1].Offset {
		return stops[len(stops)-1].Color
	}

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset >= t
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s1 := stops[idx-1]
	s2 := stops[idx]
	if s2.Offset == s1.Offset {
		return s1.Color
	}
	localT := (t - s1.Offset) / (s2.Offset - s1.Offset)
	if localT <= 0 {
		return s1.Color
	}
	if localT >= 1 {
		return s2.Color
	}
	return s1.Color.Lerp(s2.Color, localT)
}
