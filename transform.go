package colr

import "math"

// nearlyZero is the tolerance below which a computed skew tangent is
// snapped to exactly zero, mirroring the rotation matrix snapping of
// the sink's transform math.
const nearlyZero = 1.0 / (1 << 12)

// paintMatrix converts a transform-kind paint node into an affine
// transform in sink coordinates. The design grid is y-up with
// counter-clockwise angles; the sink is y-down with clockwise angles,
// so y coordinates and rotation angles negate here.
//
// Returns false for non-transform node kinds.
func paintMatrix(p Paint) (Matrix, bool) {
	switch t := p.(type) {
	case PaintTransform:
		// Wire layout is column-major and y-up; the sink matrix is
		// row-major and y-down. The off-diagonal terms and the y
		// translation pick up the axis flip.
		return Matrix{
			A: t.Affine.XX, B: -t.Affine.XY, C: t.Affine.Dx,
			D: -t.Affine.YX, E: t.Affine.YY, F: -t.Affine.Dy,
		}, true

	case PaintTranslate:
		return Translate(t.Dx, -t.Dy), true

	case PaintScale:
		return ScaleAbout(t.ScaleX, t.ScaleY, t.CenterX, -t.CenterY), true

	case PaintRotate:
		// Wire angles are counter-clockwise, the sink rotates
		// clockwise for positive angles.
		return RotateAbout(-t.Angle*math.Pi/180, t.CenterX, -t.CenterY), true

	case PaintSkew:
		// The y angle negates for the axis-convention flip. The x
		// angle does not: its wire direction already matches the sink
		// once the y-axis is flipped. This asymmetry is deliberate;
		// keep it.
		xTan := math.Tan(t.XAngle * math.Pi / 180)
		if math.Abs(xTan) < nearlyZero {
			xTan = 0
		}
		yTan := math.Tan(-t.YAngle * math.Pi / 180)
		if math.Abs(yTan) < nearlyZero {
			yTan = 0
		}
		return SkewAbout(xTan, yTan, t.CenterX, -t.CenterY), true

	default:
		return Matrix{}, false
	}
}
