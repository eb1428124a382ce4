// Package colr evaluates OpenType COLR color-glyph paint graphs.
//
// A color glyph is described by a directed graph of paint nodes: fills
// (solid colors and gradients), glyph outlines used as clip shapes,
// coordinate transforms, and blend composites. The package walks such a
// graph and either issues drawing operations against an abstract Canvas
// sink, or computes the tight bounding rectangle of the glyph without
// drawing anything.
//
// The evaluator does not parse font files. Paint nodes are resolved on
// demand through the Graph interface and glyph outlines come from an
// OutlineProvider; the colrtable and otglyph subpackages supply
// implementations backed by raw table data and go-text/typesetting.
//
// Graphs come from untrusted font files and are not guaranteed to be
// acyclic. Both traversals carry a visited set for cycle detection and an
// explicit recursion depth ceiling, so malformed fonts fail the affected
// subtree instead of hanging or exhausting the stack.
//
// Coordinate conventions: the COLR table is y-up with counter-clockwise
// angles, the Canvas sink is y-down with clockwise angles. The conversion
// (y negation, angle negation) happens exactly once, at the point each
// value is read from the graph.
package colr
