package colr

// CompositeMode is the blend mode carried by a PaintComposite node, in
// the COLR wire enumeration.
type CompositeMode uint8

// Composite modes in wire order: Porter-Duff operators, then separable
// blend modes, then the non-separable HSL modes.
const (
	CompositeClear CompositeMode = iota
	CompositeSrc
	CompositeDest
	CompositeSrcOver
	CompositeDestOver
	CompositeSrcIn
	CompositeDestIn
	CompositeSrcOut
	CompositeDestOut
	CompositeSrcAtop
	CompositeDestAtop
	CompositeXor
	CompositePlus
	CompositeScreen
	CompositeOverlay
	CompositeDarken
	CompositeLighten
	CompositeColorDodge
	CompositeColorBurn
	CompositeHardLight
	CompositeSoftLight
	CompositeDifference
	CompositeExclusion
	CompositeMultiply
	CompositeHSLHue
	CompositeHSLSaturation
	CompositeHSLColor
	CompositeHSLLuminosity
)

// BlendMode is the sink-side blend vocabulary passed to
// Canvas.PushLayer.
type BlendMode uint8

const (
	BlendClear BlendMode = iota
	BlendSrc
	BlendDst
	BlendSrcOver
	BlendDstOver
	BlendSrcIn
	BlendDstIn
	BlendSrcOut
	BlendDstOut
	BlendSrcATop
	BlendDstATop
	BlendXor
	BlendPlus
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion
	BlendMultiply
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	if int(m) < len(blendModeNames) {
		return blendModeNames[m]
	}
	return "Unknown"
}

var blendModeNames = [...]string{
	"Clear", "Src", "Dst", "SrcOver", "DstOver", "SrcIn", "DstIn",
	"SrcOut", "DstOut", "SrcATop", "DstATop", "Xor", "Plus", "Screen",
	"Overlay", "Darken", "Lighten", "ColorDodge", "ColorBurn",
	"HardLight", "SoftLight", "Difference", "Exclusion", "Multiply",
	"Hue", "Saturation", "Color", "Luminosity",
}

// blendMode maps a wire composite mode to the sink blend vocabulary.
// Unknown modes map to BlendDst, which leaves the backdrop untouched.
func blendMode(mode CompositeMode) BlendMode {
	switch mode {
	case CompositeClear:
		return BlendClear
	case CompositeSrc:
		return BlendSrc
	case CompositeDest:
		return BlendDst
	case CompositeSrcOver:
		return BlendSrcOver
	case CompositeDestOver:
		return BlendDstOver
	case CompositeSrcIn:
		return BlendSrcIn
	case CompositeDestIn:
		return BlendDstIn
	case CompositeSrcOut:
		return BlendSrcOut
	case CompositeDestOut:
		return BlendDstOut
	case CompositeSrcAtop:
		return BlendSrcATop
	case CompositeDestAtop:
		return BlendDstATop
	case CompositeXor:
		return BlendXor
	case CompositePlus:
		return BlendPlus
	case CompositeScreen:
		return BlendScreen
	case CompositeOverlay:
		return BlendOverlay
	case CompositeDarken:
		return BlendDarken
	case CompositeLighten:
		return BlendLighten
	case CompositeColorDodge:
		return BlendColorDodge
	case CompositeColorBurn:
		return BlendColorBurn
	case CompositeHardLight:
		return BlendHardLight
	case CompositeSoftLight:
		return BlendSoftLight
	case CompositeDifference:
		return BlendDifference
	case CompositeExclusion:
		return BlendExclusion
	case CompositeMultiply:
		return BlendMultiply
	case CompositeHSLHue:
		return BlendHue
	case CompositeHSLSaturation:
		return BlendSaturation
	case CompositeHSLColor:
		return BlendColor
	case CompositeHSLLuminosity:
		return BlendLuminosity
	default:
		return BlendDst
	}
}
