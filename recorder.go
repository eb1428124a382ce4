package colr

// OpKind identifies a recorded canvas operation.
type OpKind uint8

const (
	OpSave OpKind = iota
	OpRestore
	OpConcat
	OpClipPath
	OpFillPath
	OpFillPaint
	OpPushLayer
	OpPopLayer
)

// String returns the operation name.
func (k OpKind) String() string {
	switch k {
	case OpSave:
		return "Save"
	case OpRestore:
		return "Restore"
	case OpConcat:
		return "Concat"
	case OpClipPath:
		return "ClipPath"
	case OpFillPath:
		return "FillPath"
	case OpFillPaint:
		return "FillPaint"
	case OpPushLayer:
		return "PushLayer"
	case OpPopLayer:
		return "PopLayer"
	default:
		return "Unknown"
	}
}

// Op is one recorded canvas operation. Only the fields relevant to the
// kind are set.
type Op struct {
	Kind   OpKind
	Matrix Matrix
	Path   *Path
	Brush  Brush
	Blend  BlendMode
}

// Recorder is a Canvas that records the operations issued to it instead
// of rasterizing. It can replay the sequence onto another canvas, which
// makes it usable as a display list; tests use it to inspect the exact
// op stream a graph produces.
type Recorder struct {
	ops []Op
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Ops returns the recorded operations. The slice is owned by the
// recorder and is invalidated by Reset.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Reset discards all recorded operations.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

// Replay issues the recorded operations to another canvas in order.
func (r *Recorder) Replay(c Canvas) {
	for _, op := range r.ops {
		switch op.Kind {
		case OpSave:
			c.Save()
		case OpRestore:
			c.Restore()
		case OpConcat:
			c.Concat(op.Matrix)
		case OpClipPath:
			c.ClipPath(op.Path)
		case OpFillPath:
			c.FillPath(op.Path, op.Brush)
		case OpFillPaint:
			c.FillPaint(op.Brush)
		case OpPushLayer:
			c.PushLayer(op.Blend)
		case OpPopLayer:
			c.PopLayer()
		}
	}
}

// Save implements Canvas.
func (r *Recorder) Save() {
	r.ops = append(r.ops, Op{Kind: OpSave})
}

// Restore implements Canvas.
func (r *Recorder) Restore() {
	r.ops = append(r.ops, Op{Kind: OpRestore})
}

// Concat implements Canvas.
func (r *Recorder) Concat(m Matrix) {
	r.ops = append(r.ops, Op{Kind: OpConcat, Matrix: m})
}

// ClipPath implements Canvas.
func (r *Recorder) ClipPath(p *Path) {
	r.ops = append(r.ops, Op{Kind: OpClipPath, Path: p})
}

// FillPath implements Canvas.
func (r *Recorder) FillPath(p *Path, b Brush) {
	r.ops = append(r.ops, Op{Kind: OpFillPath, Path: p, Brush: b})
}

// FillPaint implements Canvas.
func (r *Recorder) FillPaint(b Brush) {
	r.ops = append(r.ops, Op{Kind: OpFillPaint, Brush: b})
}

// PushLayer implements Canvas.
func (r *Recorder) PushLayer(mode BlendMode) {
	r.ops = append(r.ops, Op{Kind: OpPushLayer, Blend: mode})
}

// PopLayer implements Canvas.
func (r *Recorder) PopLayer() {
	r.ops = append(r.ops, Op{Kind: OpPopLayer})
}
