package colr

// ForegroundPaletteIndex is the reserved palette index meaning
// "substitute the caller-supplied foreground color".
const ForegroundPaletteIndex uint16 = 0xFFFF

// GlyphID is a unique identifier for a glyph within a font.
type GlyphID uint16

// PaintRef is an opaque, copyable handle identifying a paint node inside
// an externally owned paint graph. The graph outlives any evaluation;
// refs are never owned by the evaluator.
//
// Two refs are equal iff they address the same node and carry the same
// root-transform flag, which makes PaintRef usable as a map key for
// cycle detection.
type PaintRef struct {
	// Node addresses the paint node within the graph. Its meaning is
	// private to the Graph implementation (typically a table offset).
	Node uint32

	// InsertRootTransform is set only on the synthetic root reference of
	// a glyph whose intrinsic root transform is folded in.
	InsertRootTransform bool
}

// Paint is a single decoded node of a color-glyph paint graph.
// This is a sealed interface: the Paint* types in this package are the
// complete set of node kinds. Traversals match exhaustively and treat
// any unknown kind as a hard failure of the subtree, so node kinds
// introduced by future format revisions fail closed.
type Paint interface {
	paintMarker()
}

// PaintLayers paints an ordered sequence of child subgraphs, bottom to
// top, each independently.
type PaintLayers struct {
	Layers LayerIterator
}

// PaintGlyph clips to a glyph outline and applies the Fill subgraph
// inside it.
type PaintGlyph struct {
	GlyphID GlyphID
	Fill    PaintRef
}

// PaintColrGlyph recurses into another color glyph's own paint graph.
type PaintColrGlyph struct {
	GlyphID GlyphID
}

// PaintSolid is a flat color fill.
type PaintSolid struct {
	Color ColorIndex
}

// PaintLinearGradient is a three-point linear gradient fill.
// P2 establishes the gradient's rotation: the color progression runs
// along the projection of P0P1 onto the line through P0 perpendicular
// to P0P2. Points are in design-grid (y-up) coordinates.
type PaintLinearGradient struct {
	ColorLine  ColorLine
	P0, P1, P2 Point
}

// PaintRadialGradient is a two-circle radial gradient fill.
// Centers are in design-grid (y-up) coordinates.
type PaintRadialGradient struct {
	ColorLine ColorLine
	C0        Point
	R0        float64
	C1        Point
	R1        float64
}

// PaintSweepGradient is an angular gradient around Center.
// Angles are in counter-clockwise degrees from the positive x-axis of
// the design grid; the color line progresses counter-clockwise from
// StartAngle to EndAngle.
type PaintSweepGradient struct {
	ColorLine  ColorLine
	Center     Point
	StartAngle float64
	EndAngle   float64
}

// PaintTransform applies a general 2x3 affine transform to the child
// subgraph. The matrix is in the wire layout: column-major, y-up.
type PaintTransform struct {
	Affine Affine
	Child  PaintRef
}

// PaintTranslate translates the child subgraph by (Dx, Dy) in
// design-grid units.
type PaintTranslate struct {
	Dx, Dy float64
	Child  PaintRef
}

// PaintScale scales the child subgraph about a center point.
type PaintScale struct {
	ScaleX, ScaleY   float64
	CenterX, CenterY float64
	Child            PaintRef
}

// PaintRotate rotates the child subgraph about a center point.
// The angle is in counter-clockwise degrees.
type PaintRotate struct {
	Angle            float64
	CenterX, CenterY float64
	Child            PaintRef
}

// PaintSkew skews the child subgraph about a center point.
// Angles are in counter-clockwise degrees.
type PaintSkew struct {
	XAngle, YAngle   float64
	CenterX, CenterY float64
	Child            PaintRef
}

// PaintComposite blends the Source subgraph onto the Backdrop subgraph
// in an isolated group using Mode.
type PaintComposite struct {
	Backdrop PaintRef
	Source   PaintRef
	Mode     CompositeMode
}

func (PaintLayers) paintMarker()         {}
func (PaintGlyph) paintMarker()          {}
func (PaintColrGlyph) paintMarker()      {}
func (PaintSolid) paintMarker()          {}
func (PaintLinearGradient) paintMarker() {}
func (PaintRadialGradient) paintMarker() {}
func (PaintSweepGradient) paintMarker()  {}
func (PaintTransform) paintMarker()      {}
func (PaintTranslate) paintMarker()      {}
func (PaintScale) paintMarker()          {}
func (PaintRotate) paintMarker()         {}
func (PaintSkew) paintMarker()           {}
func (PaintComposite) paintMarker()      {}

// Affine is a 2x3 affine matrix in the COLR wire layout:
// column-major with a y-up axis.
//
//	| XX  XY  Dx |
//	| YX  YY  Dy |
type Affine struct {
	XX, YX float64
	XY, YY float64
	Dx, Dy float64
}

// ColorIndex references a palette entry together with a 14-bit alpha
// multiplier (16384 means fully opaque). PaletteIndex may be
// ForegroundPaletteIndex.
type ColorIndex struct {
	PaletteIndex uint16
	Alpha        uint16
}

// colrAlpha converts a 14-bit wire alpha to the [0, 1] range.
func colrAlpha(a uint16) float64 {
	return float64(a) / (1 << 14)
}

// ColorStop is a color at a position along a gradient color line.
// The wire format does not guarantee stop ordering; the fill resolver
// sorts stops by Offset before use.
type ColorStop struct {
	Offset float64
	Color  ColorIndex
}

// ExtendMode defines how a gradient extends beyond its stop range.
type ExtendMode int

const (
	// ExtendPad extends edge colors beyond bounds (default behavior).
	ExtendPad ExtendMode = iota
	// ExtendRepeat repeats the gradient pattern.
	ExtendRepeat
	// ExtendReflect mirrors the gradient pattern.
	ExtendReflect
)

// ColorLine is a gradient's color stop sequence plus extend mode.
type ColorLine struct {
	Extend ExtendMode
	Stops  StopIterator
}

// LayerIterator walks the child refs of a PaintLayers node in paint
// order. Iterators are single-use; each Graph.Paint call returns a
// fresh one.
type LayerIterator interface {
	// NextLayer returns the next child ref, or false when exhausted.
	NextLayer() (PaintRef, bool)
}

// StopIterator walks the color stops of a ColorLine.
// Iterators are single-use; each Graph.Paint call returns a fresh one.
type StopIterator interface {
	// NextStop returns the next stop, or false when exhausted.
	NextStop() (ColorStop, bool)
}

// NewLayerList returns a LayerIterator over a fixed slice of refs.
func NewLayerList(refs ...PaintRef) LayerIterator {
	return &sliceLayers{refs: refs}
}

type sliceLayers struct {
	refs []PaintRef
	next int
}

func (it *sliceLayers) NextLayer() (PaintRef, bool) {
	if it.next >= len(it.refs) {
		return PaintRef{}, false
	}
	ref := it.refs[it.next]
	it.next++
	return ref, true
}

// NewStopList returns a StopIterator over a fixed slice of stops.
func NewStopList(stops ...ColorStop) StopIterator {
	return &sliceStops{stops: stops}
}

type sliceStops struct {
	stops []ColorStop
	next  int
}

func (it *sliceStops) NextStop() (ColorStop, bool) {
	if it.next >= len(it.stops) {
		return ColorStop{}, false
	}
	stop := it.stops[it.next]
	it.next++
	return stop, true
}
