package colr

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path made of one or more contours.
type Path struct {
	elements []PathElement
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() {
	p.elements = append(p.elements, Close{})
}

// Rectangle appends a closed rectangular contour.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
}

// Elements returns the path's element list. The returned slice is owned
// by the path and must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	clone := &Path{
		elements: make([]PathElement, len(p.elements)),
		current:  p.current,
	}
	copy(clone.elements, p.elements)
	return clone
}

// Transform returns a new path with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	out := &Path{elements: make([]PathElement, 0, len(p.elements))}
	for _, e := range p.elements {
		switch el := e.(type) {
		case MoveTo:
			out.elements = append(out.elements, MoveTo{Point: m.TransformPoint(el.Point)})
		case LineTo:
			out.elements = append(out.elements, LineTo{Point: m.TransformPoint(el.Point)})
		case QuadTo:
			out.elements = append(out.elements, QuadTo{
				Control: m.TransformPoint(el.Control),
				Point:   m.TransformPoint(el.Point),
			})
		case CubicTo:
			out.elements = append(out.elements, CubicTo{
				Control1: m.TransformPoint(el.Control1),
				Control2: m.TransformPoint(el.Control2),
				Point:    m.TransformPoint(el.Point),
			})
		case Close:
			out.elements = append(out.elements, Close{})
		}
	}
	out.current = m.TransformPoint(p.current)
	return out
}

// Bounds returns the bounding rectangle of the path. Curve control
// points are included, so the result is conservative for curved
// contours. Returns the zero Rect for an empty path.
func (p *Path) Bounds() Rect {
	var r Rect
	first := true
	add := func(pt Point) {
		if first {
			r = Rect{MinX: pt.X, MinY: pt.Y, MaxX: pt.X, MaxY: pt.Y}
			first = false
			return
		}
		r = r.expand(pt)
	}
	for _, e := range p.elements {
		switch el := e.(type) {
		case MoveTo:
			add(el.Point)
		case LineTo:
			add(el.Point)
		case QuadTo:
			add(el.Control)
			add(el.Point)
		case CubicTo:
			add(el.Control1)
			add(el.Control2)
			add(el.Point)
		}
	}
	return r
}
