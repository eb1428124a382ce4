package colr

// RootTransform selects whether a glyph's intrinsic root transform is
// folded into the root paint reference returned by Graph.RootPaint.
type RootTransform int

const (
	// IncludeRootTransform folds the font's root transform into the
	// returned root reference. Used for top-level glyph rendering.
	IncludeRootTransform RootTransform = iota

	// NoRootTransform returns the graph untransformed. Used when one
	// color glyph references another: the outer glyph's coordinate
	// space already applies.
	NoRootTransform
)

// Graph resolves paint nodes of a color-glyph graph on demand.
// The graph is owned by the font object and outlives any evaluation.
//
// Implementations must be safe for reentrant single-threaded use: a
// traversal resolves nodes while iterating layers of their parents.
type Graph interface {
	// Paint resolves a node reference. Returns false if the reference
	// cannot be resolved (corrupt or truncated data).
	Paint(ref PaintRef) (Paint, bool)

	// RootPaint returns the root paint reference of a glyph's graph, or
	// false if the glyph has no color graph.
	RootPaint(glyphID GlyphID, root RootTransform) (PaintRef, bool)

	// ClipBox returns the glyph's precomputed clip path in sink (y-down)
	// coordinates, or false if the font supplies none. When root is
	// NoRootTransform the box is reported in unscaled design units.
	ClipBox(glyphID GlyphID, root RootTransform) (*Path, bool)
}

// OutlineProvider extracts glyph outlines. Paths are returned in sink
// (y-down) coordinates; the y-flip happens inside the provider, at the
// single point outline geometry enters the evaluator.
type OutlineProvider interface {
	// GlyphPath returns the filled outline path for a glyph, or false
	// if the outline cannot be produced.
	GlyphPath(glyphID GlyphID) (*Path, bool)
}
