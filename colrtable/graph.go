package colrtable

import (
	"github.com/gogpu/colr"
)

// Synthetic node tags. COLRv0 fonts have no paint records, so the table
// synthesizes a v1-shaped graph for them: a layer list of solid-filled
// glyph paints. Synthetic refs carry a tag in the top bits of Node and
// a record index in the low bits. Real v1 refs hold table offsets,
// which are bounds-checked at parse time and never reach this range.
const (
	synthTagMask  = 0xC0000000
	synthLayers   = 0xC0000000 // v0 base glyph -> PaintLayers
	synthGlyph    = 0x80000000 // v0 layer record -> PaintGlyph
	synthSolid    = 0x40000000 // v0 layer record -> PaintSolid
	synthIndexMax = 0x3FFFFFFF
)

// fullAlpha is the fixed-point encoding of alpha 1.0.
const fullAlpha = 1 << 14

// RootPaint returns the reference to the root paint node of a glyph's
// color graph. Version 1 paint records take precedence over version 0
// layer records for the same glyph. The returned reference requests
// root transform insertion only when the caller asked for it and a
// root transform has been configured.
func (t *Table) RootPaint(glyphID colr.GlyphID, root colr.RootTransform) (colr.PaintRef, bool) {
	insert := root == colr.IncludeRootTransform && t.hasRoot

	if rec, ok := t.findBasePaint(uint16(glyphID)); ok {
		return colr.PaintRef{Node: rec.paintOff, InsertRootTransform: insert}, true
	}
	if i, ok := t.findBaseGlyphIndex(uint16(glyphID)); ok {
		return colr.PaintRef{Node: synthLayers | uint32(i), InsertRootTransform: insert}, true
	}
	return colr.PaintRef{}, false
}

// ClipBox returns the glyph's clip box as a rectangular path in sink
// coordinates, or false if the font defines no clip for the glyph.
func (t *Table) ClipBox(glyphID colr.GlyphID, root colr.RootTransform) (*colr.Path, bool) {
	gid := uint16(glyphID)
	for _, c := range t.clips {
		if gid < c.startGlyphID || gid > c.endGlyphID {
			continue
		}
		// Design-space y-up box maps to a y-down rectangle with the
		// top edge at -yMax.
		p := colr.NewPath()
		p.Rectangle(
			float64(c.xMin), -float64(c.yMax),
			float64(c.xMax-c.xMin), float64(c.yMax-c.yMin),
		)
		if root == colr.IncludeRootTransform && t.hasRoot {
			p = p.Transform(affineMatrix(t.root))
		}
		return p, true
	}
	return nil, false
}

// Paint resolves a paint reference to its node. References with the
// root transform flag resolve to a transform node wrapping the same
// node without the flag, so the whole-glyph transform participates in
// traversal like any other node.
func (t *Table) Paint(ref colr.PaintRef) (colr.Paint, bool) {
	if ref.InsertRootTransform {
		if !t.hasRoot {
			return nil, false
		}
		return colr.PaintTransform{
			Affine: t.root,
			Child:  colr.PaintRef{Node: ref.Node},
		}, true
	}

	switch ref.Node & synthTagMask {
	case synthLayers:
		return t.synthesizeLayers(ref.Node &^ synthTagMask)
	case synthGlyph:
		return t.synthesizeGlyph(ref.Node &^ synthTagMask)
	case synthSolid:
		return t.synthesizeSolid(ref.Node &^ synthTagMask)
	}
	return t.decodePaint(ref.Node)
}

// synthesizeLayers builds the layer list node for a v0 base glyph.
func (t *Table) synthesizeLayers(index uint32) (colr.Paint, bool) {
	if index >= uint32(len(t.baseGlyphs)) {
		return nil, false
	}
	base := t.baseGlyphs[index]
	first := uint32(base.firstLayer)
	last := first + uint32(base.numLayers)
	if last > uint32(len(t.layers)) {
		return nil, false
	}

	refs := make([]colr.PaintRef, 0, base.numLayers)
	for i := first; i < last; i++ {
		refs = append(refs, colr.PaintRef{Node: synthGlyph | i})
	}
	return colr.PaintLayers{Layers: colr.NewLayerList(refs...)}, true
}

// synthesizeGlyph builds the glyph node for a v0 layer record.
func (t *Table) synthesizeGlyph(index uint32) (colr.Paint, bool) {
	if index >= uint32(len(t.layers)) {
		return nil, false
	}
	return colr.PaintGlyph{
		GlyphID: colr.GlyphID(t.layers[index].glyphID),
		Fill:    colr.PaintRef{Node: synthSolid | index},
	}, true
}

// synthesizeSolid builds the fill node for a v0 layer record.
func (t *Table) synthesizeSolid(index uint32) (colr.Paint, bool) {
	if index >= uint32(len(t.layers)) {
		return nil, false
	}
	return colr.PaintSolid{
		Color: colr.ColorIndex{
			PaletteIndex: t.layers[index].paletteIndex,
			Alpha:        fullAlpha,
		},
	}, true
}

// affineMatrix converts a y-up column-major affine to the evaluator's
// y-down row-major matrix, mirroring the conversion the renderer
// applies to transform nodes.
func affineMatrix(a colr.Affine) colr.Matrix {
	return colr.Matrix{
		A: a.XX, B: -a.XY, C: a.Dx,
		D: -a.YX, E: a.YY, F: -a.Dy,
	}
}

// findBaseGlyphIndex finds the index of the v0 base glyph record for a
// glyph ID.
func (t *Table) findBaseGlyphIndex(glyphID uint16) (int, bool) {
	lo, hi := 0, len(t.baseGlyphs)
	for lo < hi {
		mid := (lo + hi) / 2
		if t.baseGlyphs[mid].glyphID < glyphID {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(t.baseGlyphs) && t.baseGlyphs[lo].glyphID == glyphID {
		return lo, true
	}
	return 0, false
}
