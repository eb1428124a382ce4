package colr

import "math"

// resolveColorIndex produces the final color for a palette reference:
// palette lookup or foreground substitution, with the node's 14-bit
// alpha multiplied onto the resolved color's own alpha. Returns false
// if the palette index is out of range.
func resolveColorIndex(ci ColorIndex, palette []RGBA, foreground RGBA) (RGBA, bool) {
	if ci.PaletteIndex == ForegroundPaletteIndex {
		return foreground.WithAlpha(colrAlpha(ci.Alpha)), true
	}
	if int(ci.PaletteIndex) >= len(palette) {
		Logger().Debug("palette index out of range",
			"index", ci.PaletteIndex, "palette", len(palette))
		return RGBA{}, false
	}
	return palette[ci.PaletteIndex].WithAlpha(colrAlpha(ci.Alpha)), true
}

// fetchStops materializes and resolves a color line's stop list.
// Stops arrive in undefined order; they are stable-sorted ascending by
// offset, preserving the relative order of equal offsets. Returns false
// for an empty color line or an out-of-range palette index.
func fetchStops(line ColorLine, palette []RGBA, foreground RGBA) ([]GradientStop, bool) {
	if line.Stops == nil {
		return nil, false
	}
	var stops []GradientStop
	for {
		stop, ok := line.Stops.NextStop()
		if !ok {
			break
		}
		c, ok := resolveColorIndex(stop.Color, palette, foreground)
		if !ok {
			return nil, false
		}
		stops = append(stops, GradientStop{Offset: stop.Offset, Color: c})
	}
	if len(stops) == 0 {
		return nil, false
	}
	sortStops(stops)
	return stops, true
}

// resolveFill converts a fill-kind paint node into a Brush.
// Returns false for non-fill nodes and for unresolvable color
// references. Degenerate gradient geometry is not a failure: it falls
// back to a flat fill of the first stop's color.
//
// All geometry read from the node is converted from the design grid's
// y-up space to the sink's y-down space here, at the single point each
// coordinate is first read.
func resolveFill(p Paint, palette []RGBA, foreground RGBA) (Brush, bool) {
	switch fill := p.(type) {
	case PaintSolid:
		c, ok := resolveColorIndex(fill.Color, palette, foreground)
		if !ok {
			return nil, false
		}
		return SolidBrush{Color: c}, true

	case PaintLinearGradient:
		stops, ok := fetchStops(fill.ColorLine, palette, foreground)
		if !ok {
			return nil, false
		}
		if len(stops) == 1 {
			return SolidBrush{Color: stops[0].Color}, true
		}
		return linearBrush(fill, stops), true

	case PaintRadialGradient:
		stops, ok := fetchStops(fill.ColorLine, palette, foreground)
		if !ok {
			return nil, false
		}
		if len(stops) == 1 {
			return SolidBrush{Color: stops[0].Color}, true
		}
		return &RadialGradientBrush{
			C0:     Pt(fill.C0.X, -fill.C0.Y),
			R0:     fill.R0,
			C1:     Pt(fill.C1.X, -fill.C1.Y),
			R1:     fill.R1,
			Stops:  stops,
			Extend: fill.ColorLine.Extend,
		}, true

	case PaintSweepGradient:
		stops, ok := fetchStops(fill.ColorLine, palette, foreground)
		if !ok {
			return nil, false
		}
		if len(stops) == 1 {
			return SolidBrush{Color: stops[0].Color}, true
		}
		return sweepBrush(fill, stops), true

	default:
		return nil, false
	}
}

// linearBrush reconstructs the gradient axis from the three wire
// points. P2 is off the P0-P1 line and establishes the gradient's
// rotation: the axis endpoint P3 is the projection of P0P1 onto the
// line through P0 perpendicular to P0P2. Stops are then renormalized to
// [0, 1] so the extend mode tiles over the canonical range.
func linearBrush(g PaintLinearGradient, stops []GradientStop) Brush {
	p0 := Pt(g.P0.X, -g.P0.Y)
	p1 := Pt(g.P1.X, -g.P1.Y)
	p2 := Pt(g.P2.X, -g.P2.Y)

	// If P0P1 or P0P2 is degenerate, or the two are parallel, there is
	// no useful axis. Fall back to the first stop's flat color.
	if p1 == p0 || p2 == p0 || p1.Sub(p0).Cross(p2.Sub(p0)) == 0 {
		return SolidBrush{Color: stops[0].Color}
	}

	perp := p2.Sub(p0)
	perp = Pt(perp.Y, -perp.X)
	p3 := p0.Add(p1.Sub(p0).projectOnto(perp))

	// Scale the axis endpoints to the stop extrema, then renormalize
	// the stops so repeat and mirror tiling operate over [0, 1].
	axis := p3.Sub(p0)
	front := stops[0].Offset
	back := stops[len(stops)-1].Offset
	start := p0.Add(axis.Mul(front))
	end := p0.Add(axis.Mul(back))

	// All stops at one position carry no direction to tile along.
	if back == front {
		return SolidBrush{Color: stops[0].Color}
	}

	scale := 1 / (back - front)
	norm := make([]GradientStop, len(stops))
	for i, s := range stops {
		norm[i] = GradientStop{Offset: (s.Offset - front) * scale, Color: s.Color}
	}

	return &LinearGradientBrush{
		Start:  start,
		End:    end,
		Stops:  norm,
		Extend: g.ColorLine.Extend,
	}
}

// sweepBrush wraps the wire angles into [0, 360) and computes the arc
// swept counter-clockwise from start to end, wrapping through 360 when
// end <= start. The start rotation and the mirror that flips the design
// grid's counter-clockwise angles into the sink's clockwise ones go
// into the brush's local transform; the color line then spans
// [0, sweep] degrees.
func sweepBrush(g PaintSweepGradient, stops []GradientStop) Brush {
	center := Pt(g.Center.X, -g.Center.Y)
	start := wrapDegrees(g.StartAngle)
	end := wrapDegrees(g.EndAngle)

	sweep := end - start
	if end <= start {
		sweep = end + 360 - start
	}

	rotate := RotateAbout(start*math.Pi/180, center.X, center.Y)
	mirror := ScaleAbout(1, -1, center.X, center.Y)

	return &SweepGradientBrush{
		Center: center,
		Sweep:  sweep,
		Local:  mirror.Multiply(rotate),
		Stops:  stops,
		Extend: g.ColorLine.Extend,
	}
}

// wrapDegrees wraps an angle into the [0, 360) range.
func wrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
