package colr

// GlyphBounds computes the tight bounding rectangle the color glyph
// would occupy if rendered, without touching a canvas. Only glyph
// outline leaves contribute extent: a bare fill has none of its own.
//
// Cycle detection, depth limiting, and failure propagation follow the
// same rules as RenderGlyph.
func (r *Renderer) GlyphBounds(glyphID GlyphID) (Rect, bool) {
	visited := make(visitedSet)
	ctm := Identity()
	var bounds Rect
	if !r.startGlyphBounds(&ctm, &bounds, glyphID, IncludeRootTransform, visited, r.maxDepth()) {
		return Rect{}, false
	}
	return bounds, true
}

func (r *Renderer) startGlyphBounds(ctm *Matrix, bounds *Rect, glyphID GlyphID, root RootTransform, visited visitedSet, depth int) bool {
	ref, ok := r.Graph.RootPaint(glyphID, root)
	if !ok {
		return false
	}
	return r.paintBounds(ctm, bounds, ref, visited, depth)
}

// paintBounds mirrors renderPaint but accumulates a transform and a
// bounding rectangle instead of issuing draw calls.
func (r *Renderer) paintBounds(ctm *Matrix, bounds *Rect, ref PaintRef, visited visitedSet, depth int) bool {
	if depth <= 0 {
		Logger().Debug("paint graph exceeds depth limit", "node", ref.Node)
		return false
	}

	if !visited.enter(ref) {
		Logger().Debug("paint graph cycle refused", "node", ref.Node)
		return false
	}
	defer visited.leave(ref)

	p, ok := r.Graph.Paint(ref)
	if !ok {
		return false
	}

	// The transform accumulator plays the role of the canvas save and
	// restore: siblings never see each other's concatenations.
	saved := *ctm
	defer func() { *ctm = saved }()

	switch n := p.(type) {
	case PaintLayers:
		if n.Layers == nil {
			return true
		}
		for {
			layer, ok := n.Layers.NextLayer()
			if !ok {
				return true
			}
			if !r.paintBounds(ctm, bounds, layer, visited, depth-1) {
				return false
			}
		}

	case PaintGlyph:
		path, ok := r.Outlines.GlyphPath(n.GlyphID)
		if !ok {
			return false
		}
		*bounds = bounds.Union(path.Transform(*ctm).Bounds())
		return true

	case PaintColrGlyph:
		return r.startGlyphBounds(ctm, bounds, n.GlyphID, NoRootTransform, visited, depth-1)

	case PaintTransform:
		m, _ := paintMatrix(p)
		*ctm = ctm.Multiply(m)
		return r.paintBounds(ctm, bounds, n.Child, visited, depth-1)

	case PaintTranslate:
		m, _ := paintMatrix(p)
		*ctm = ctm.Multiply(m)
		return r.paintBounds(ctm, bounds, n.Child, visited, depth-1)

	case PaintScale:
		m, _ := paintMatrix(p)
		*ctm = ctm.Multiply(m)
		return r.paintBounds(ctm, bounds, n.Child, visited, depth-1)

	case PaintRotate:
		m, _ := paintMatrix(p)
		*ctm = ctm.Multiply(m)
		return r.paintBounds(ctm, bounds, n.Child, visited, depth-1)

	case PaintSkew:
		m, _ := paintMatrix(p)
		*ctm = ctm.Multiply(m)
		return r.paintBounds(ctm, bounds, n.Child, visited, depth-1)

	case PaintComposite:
		// Blend mode is irrelevant to extent; both subgraphs
		// contribute to the union.
		return r.paintBounds(ctm, bounds, n.Backdrop, visited, depth-1) &&
			r.paintBounds(ctm, bounds, n.Source, visited, depth-1)

	case PaintSolid, PaintLinearGradient, PaintRadialGradient, PaintSweepGradient:
		// Fills have no intrinsic extent.
		return true

	default:
		return false
	}
}
