package colr

// DefaultMaxDepth is the recursion depth ceiling used when
// Renderer.MaxDepth is zero. The cycle guard catches loops; the depth
// ceiling additionally bounds pathological acyclic chains (for example
// thousands of nested transforms) that would otherwise exhaust the
// call stack.
const DefaultMaxDepth = 64

// Renderer evaluates color-glyph paint graphs against a Canvas sink.
//
// The zero value is not usable: Graph and Outlines must be set. All
// other fields have usable zero values. A Renderer holds no per-call
// state and may be shared, but each concurrent evaluation needs its own
// Canvas.
type Renderer struct {
	// Graph resolves paint nodes on demand.
	Graph Graph

	// Outlines produces glyph outline paths for glyph leaf nodes.
	Outlines OutlineProvider

	// Palette is the color palette indexed by paint color references.
	Palette []RGBA

	// Foreground is substituted for the reserved foreground palette
	// index. Its alpha multiplies the referencing node's alpha.
	Foreground RGBA

	// MaxDepth caps traversal recursion depth. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

func (r *Renderer) maxDepth() int {
	if r.MaxDepth > 0 {
		return r.MaxDepth
	}
	return DefaultMaxDepth
}

// RenderGlyph renders the color glyph's paint graph to the canvas.
//
// It returns true if the whole graph rendered. A false return means
// some subtree failed (cycle, unresolvable node, bad palette index);
// geometry drawn by earlier siblings remains on the canvas, so callers
// should treat false as "fall back to non-color rendering", not as a
// corrupted canvas. The canvas transform and layer stack are left
// balanced on every path; the root clip, if the font supplies one,
// remains applied as in any direct clip call.
func (r *Renderer) RenderGlyph(canvas Canvas, glyphID GlyphID) bool {
	visited := make(visitedSet)
	return r.startGlyph(canvas, glyphID, IncludeRootTransform, visited, r.maxDepth())
}

// startGlyph resolves a glyph's root paint, applies the optional clip
// box, and walks the graph. Nested color glyphs re-enter here with
// NoRootTransform.
func (r *Renderer) startGlyph(canvas Canvas, glyphID GlyphID, root RootTransform, visited visitedSet, depth int) bool {
	ref, ok := r.Graph.RootPaint(glyphID, root)
	if !ok {
		return false
	}

	if clip, ok := r.Graph.ClipBox(glyphID, root); ok && !clip.IsEmpty() {
		canvas.ClipPath(clip)
	}

	return r.renderPaint(canvas, ref, visited, depth)
}

// renderPaint evaluates one node and its subtree. Failure of any child
// aborts the subtree and propagates false; the canvas save/restore
// bracketing keeps sibling subtrees isolated regardless.
func (r *Renderer) renderPaint(canvas Canvas, ref PaintRef, visited visitedSet, depth int) bool {
	if depth <= 0 {
		Logger().Debug("paint graph exceeds depth limit", "node", ref.Node)
		return false
	}

	// Cycle detection: refuse to re-enter a node already on the active
	// path.
	if !visited.enter(ref) {
		Logger().Debug("paint graph cycle refused", "node", ref.Node)
		return false
	}
	defer visited.leave(ref)

	p, ok := r.Graph.Paint(ref)
	if !ok {
		return false
	}

	canvas.Save()
	defer canvas.Restore()

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
			if !r.renderPaint(canvas, layer, visited, depth-1) {
				return false
			}
		}

	case PaintGlyph:
		// Leaf fast path: a glyph whose fill is a plain solid or
		// gradient can fill the outline directly with the resolved
		// brush, which is equivalent to clip-then-paint but issues
		// fewer sink operations.
		fill, ok := r.Graph.Paint(n.Fill)
		if !ok {
			return false
		}
		if isFillPaint(fill) {
			return r.drawGlyphWithFill(canvas, n.GlyphID, fill)
		}
		path, ok := r.Outlines.GlyphPath(n.GlyphID)
		if !ok {
			return false
		}
		canvas.ClipPath(path)
		return r.renderPaint(canvas, n.Fill, visited, depth-1)

	case PaintColrGlyph:
		return r.startGlyph(canvas, n.GlyphID, NoRootTransform, visited, depth-1)

	case PaintTransform:
		m, _ := paintMatrix(p)
		canvas.Concat(m)
		return r.renderPaint(canvas, n.Child, visited, depth-1)

	case PaintTranslate:
		m, _ := paintMatrix(p)
		canvas.Concat(m)
		return r.renderPaint(canvas, n.Child, visited, depth-1)

	case PaintScale:
		m, _ := paintMatrix(p)
		canvas.Concat(m)
		return r.renderPaint(canvas, n.Child, visited, depth-1)

	case PaintRotate:
		m, _ := paintMatrix(p)
		canvas.Concat(m)
		return r.renderPaint(canvas, n.Child, visited, depth-1)

	case PaintSkew:
		m, _ := paintMatrix(p)
		canvas.Concat(m)
		return r.renderPaint(canvas, n.Child, visited, depth-1)

	case PaintComposite:
		// The backdrop renders into its own unblended isolation layer
		// first. Compositing directly onto pre-existing content would
		// be wrong whenever the backdrop subgraph itself draws
		// overlapping shapes.
		canvas.PushLayer(BlendSrcOver)
		defer canvas.PopLayer()
		if !r.renderPaint(canvas, n.Backdrop, visited, depth-1) {
			return false
		}
		canvas.PushLayer(blendMode(n.Mode))
		defer canvas.PopLayer()
		return r.renderPaint(canvas, n.Source, visited, depth-1)

	case PaintSolid, PaintLinearGradient, PaintRadialGradient, PaintSweepGradient:
		// A fill reached directly (not through the glyph fast path)
		// covers the whole clipped area.
		brush, ok := resolveFill(p, r.Palette, r.Foreground)
		if !ok {
			return false
		}
		canvas.FillPaint(brush)
		return true

	default:
		// Unknown node kinds fail closed.
		return false
	}
}

// drawGlyphWithFill fills a glyph outline directly with a resolved
// brush.
func (r *Renderer) drawGlyphWithFill(canvas Canvas, glyphID GlyphID, fill Paint) bool {
	brush, ok := resolveFill(fill, r.Palette, r.Foreground)
	if !ok {
		return false
	}
	path, ok := r.Outlines.GlyphPath(glyphID)
	if !ok {
		return false
	}
	canvas.FillPath(path, brush)
	return true
}

// isFillPaint reports whether p is one of the plain fill kinds eligible
// for the glyph leaf fast path.
func isFillPaint(p Paint) bool {
	switch p.(type) {
	case PaintSolid, PaintLinearGradient, PaintRadialGradient, PaintSweepGradient:
		return true
	}
	return false
}
