package colr

// Canvas is the abstract rendering sink the evaluator issues drawing
// and compositing operations against. Implementations are expected to
// maintain a transform/clip state stack with Save/Restore and a layer
// stack for isolated compositing, in the manner of an immediate-mode
// 2D context.
//
// The evaluator never retains a reference to the canvas beyond the
// current RenderGlyph call and assumes single-threaded access.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// Restore pops to the most recently saved state. Any layers pushed
	// since the matching Save have already been popped.
	Restore()

	// Concat concatenates m onto the current transform: subsequent
	// geometry is mapped through m before the existing transform.
	Concat(m Matrix)

	// ClipPath intersects the current clip with the path's interior.
	ClipPath(p *Path)

	// FillPath fills the path's interior with the brush under the
	// current transform and clip.
	FillPath(p *Path, b Brush)

	// FillPaint fills the entire clipped area with the brush.
	FillPaint(b Brush)

	// PushLayer begins an offscreen layer. When the layer is popped its
	// contents composite onto what is below using the blend mode given
	// here.
	PushLayer(mode BlendMode)

	// PopLayer composites and discards the most recently pushed layer.
	PopLayer()
}
