package colr

// Rect represents an axis-aligned bounding rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty returns true if the rectangle has zero or negative area.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Union returns the smallest rectangle containing both r and s.
// An empty rectangle does not contribute to the result.
func (r Rect) Union(s Rect) Rect {
	if s.Empty() {
		return r
	}
	if r.Empty() {
		return s
	}
	out := r
	if s.MinX < out.MinX {
		out.MinX = s.MinX
	}
	if s.MinY < out.MinY {
		out.MinY = s.MinY
	}
	if s.MaxX > out.MaxX {
		out.MaxX = s.MaxX
	}
	if s.MaxY > out.MaxY {
		out.MaxY = s.MaxY
	}
	return out
}

// expand grows the rectangle to include the point p.
func (r Rect) expand(p Point) Rect {
	if p.X < r.MinX {
		r.MinX = p.X
	}
	if p.Y < r.MinY {
		r.MinY = p.Y
	}
	if p.X > r.MaxX {
		r.MaxX = p.X
	}
	if p.Y > r.MaxY {
		r.MaxY = p.Y
	}
	return r
}
