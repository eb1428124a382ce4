package colrtable

import (
	"encoding/binary"

	"github.com/gogpu/colr"
)

// COLRv1 paint formats. Odd-numbered formats are the variable-font
// variants of the preceding even format; they carry a trailing
// varIndexBase (and variable color lines) which this decoder ignores,
// yielding the default instance.
const (
	paintColrLayers               = 1
	paintSolid                    = 2
	paintVarSolid                 = 3
	paintLinearGradient           = 4
	paintVarLinearGradient        = 5
	paintRadialGradient           = 6
	paintVarRadialGradient        = 7
	paintSweepGradient            = 8
	paintVarSweepGradient         = 9
	paintGlyph                    = 10
	paintColrGlyph                = 11
	paintTransform                = 12
	paintVarTransform             = 13
	paintTranslate                = 14
	paintVarTranslate             = 15
	paintScale                    = 16
	paintVarScale                 = 17
	paintScaleAroundCenter        = 18
	paintVarScaleAroundCenter     = 19
	paintScaleUniform             = 20
	paintVarScaleUniform          = 21
	paintScaleUniformAroundCenter = 22
	paintVarScaleUniformAround    = 23
	paintRotate                   = 24
	paintVarRotate                = 25
	paintRotateAroundCenter       = 26
	paintVarRotateAroundCenter    = 27
	paintSkew                     = 28
	paintVarSkew                  = 29
	paintSkewAroundCenter         = 30
	paintVarSkewAroundCenter      = 31
	paintComposite                = 32
)

// paintBaseSize gives the fixed byte size of each paint format,
// counting only the fields the decoder reads.
var paintBaseSize = [33]int{
	paintColrLayers: 6, paintSolid: 5, paintVarSolid: 5,
	paintLinearGradient: 16, paintVarLinearGradient: 16,
	paintRadialGradient: 16, paintVarRadialGradient: 16,
	paintSweepGradient: 12, paintVarSweepGradient: 12,
	paintGlyph: 6, paintColrGlyph: 3,
	paintTransform: 7, paintVarTransform: 7,
	paintTranslate: 8, paintVarTranslate: 8,
	paintScale: 8, paintVarScale: 8,
	paintScaleAroundCenter: 12, paintVarScaleAroundCenter: 12,
	paintScaleUniform: 6, paintVarScaleUniform: 6,
	paintScaleUniformAroundCenter: 10, paintVarScaleUniformAround: 10,
	paintRotate: 6, paintVarRotate: 6,
	paintRotateAroundCenter: 10, paintVarRotateAroundCenter: 10,
	paintSkew: 8, paintVarSkew: 8,
	paintSkewAroundCenter: 12, paintVarSkewAroundCenter: 12,
	paintComposite: 8,
}

// decodePaint decodes the paint record at an absolute table offset.
// Child offsets inside paint records are relative to the record start;
// they are converted to absolute offsets in the returned refs and
// validated when the child itself is decoded.
func (t *Table) decodePaint(offset uint32) (colr.Paint, bool) {
	data := t.data
	pos := int(offset)
	if pos < 0 || pos >= len(data) {
		return nil, false
	}

	format := data[pos]
	if format == 0 || int(format) >= len(paintBaseSize) {
		return nil, false
	}
	if pos+paintBaseSize[format] > len(data) {
		return nil, false
	}

	child := func(rel uint32) colr.PaintRef {
		return colr.PaintRef{Node: offset + rel}
	}

	switch format {
	case paintColrLayers:
		num := uint32(data[pos+1])
		first := binary.BigEndian.Uint32(data[pos+2 : pos+6])
		if first > uint32(len(t.layerList)) || num > uint32(len(t.layerList))-first {
			return nil, false
		}
		refs := make([]colr.PaintRef, 0, num)
		for _, off := range t.layerList[first : first+num] {
			refs = append(refs, colr.PaintRef{Node: off})
		}
		return colr.PaintLayers{Layers: colr.NewLayerList(refs...)}, true

	case paintSolid, paintVarSolid:
		return colr.PaintSolid{
			Color: colr.ColorIndex{
				PaletteIndex: binary.BigEndian.Uint16(data[pos+1 : pos+3]),
				Alpha:        clampAlpha(t.i16(pos + 3)),
			},
		}, true

	case paintLinearGradient, paintVarLinearGradient:
		line, ok := t.colorLine(pos, format == paintVarLinearGradient)
		if !ok {
			return nil, false
		}
		return colr.PaintLinearGradient{
			ColorLine: line,
			P0:        colr.Pt(float64(t.i16(pos+4)), float64(t.i16(pos+6))),
			P1:        colr.Pt(float64(t.i16(pos+8)), float64(t.i16(pos+10))),
			P2:        colr.Pt(float64(t.i16(pos+12)), float64(t.i16(pos+14))),
		}, true

	case paintRadialGradient, paintVarRadialGradient:
		line, ok := t.colorLine(pos, format == paintVarRadialGradient)
		if !ok {
			return nil, false
		}
		return colr.PaintRadialGradient{
			ColorLine: line,
			C0:        colr.Pt(float64(t.i16(pos+4)), float64(t.i16(pos+6))),
			R0:        float64(binary.BigEndian.Uint16(data[pos+8 : pos+10])),
			C1:        colr.Pt(float64(t.i16(pos+10)), float64(t.i16(pos+12))),
			R1:        float64(binary.BigEndian.Uint16(data[pos+14 : pos+16])),
		}, true

	case paintSweepGradient, paintVarSweepGradient:
		line, ok := t.colorLine(pos, format == paintVarSweepGradient)
		if !ok {
			return nil, false
		}
		return colr.PaintSweepGradient{
			ColorLine:  line,
			Center:     colr.Pt(float64(t.i16(pos+4)), float64(t.i16(pos+6))),
			StartAngle: f2Dot14(t.i16(pos+8)) * 180,
			EndAngle:   f2Dot14(t.i16(pos+10)) * 180,
		}, true

	case paintGlyph:
		return colr.PaintGlyph{
			GlyphID: colr.GlyphID(binary.BigEndian.Uint16(data[pos+4 : pos+6])),
			Fill:    child(readUint24(data[pos+1 : pos+4])),
		}, true

	case paintColrGlyph:
		return colr.PaintColrGlyph{
			GlyphID: colr.GlyphID(binary.BigEndian.Uint16(data[pos+1 : pos+3])),
		}, true

	case paintTransform, paintVarTransform:
		aff := pos + int(readUint24(data[pos+4:pos+7]))
		if aff < 0 || aff+24 > len(data) {
			return nil, false
		}
		return colr.PaintTransform{
			Affine: colr.Affine{
				XX: t.fixed(aff), YX: t.fixed(aff + 4),
				XY: t.fixed(aff + 8), YY: t.fixed(aff + 12),
				Dx: t.fixed(aff + 16), Dy: t.fixed(aff + 20),
			},
			Child: child(readUint24(data[pos+1 : pos+4])),
		}, true

	case paintTranslate, paintVarTranslate:
		return colr.PaintTranslate{
			Dx:    float64(t.i16(pos + 4)),
			Dy:    float64(t.i16(pos + 6)),
			Child: child(readUint24(data[pos+1 : pos+4])),
		}, true

	case paintScale, paintVarScale:
		return colr.PaintScale{
			ScaleX: f2Dot14(t.i16(pos + 4)),
			ScaleY: f2Dot14(t.i16(pos + 6)),
			Child:  child(readUint24(data[pos+1 : pos+4])),
		}, true

	case paintScaleAroundCenter, paintVarScaleAroundCenter:
		return colr.PaintScale{
			ScaleX:  f2Dot14(t.i16(pos + 4)),
			ScaleY:  f2Dot14(t.i16(pos + 6)),
			CenterX: float64(t.i16(pos + 8)),
			CenterY: float64(t.i16(pos + 10)),
			Child:   child(readUint24(data[pos+1 : pos+4])),
		}, true

	case paintScaleUniform, paintVarScaleUniform:
		s := f2Dot14(t.i16(pos + 4))
		return colr.PaintScale{
			ScaleX: s, ScaleY: s,
			Child: child(readUint24(data[pos+1 : pos+4])),
		}, true

	case paintScaleUniformAroundCenter, paintVarScaleUniformAround:
		s := f2Dot14(t.i16(pos + 4))
		return colr.PaintScale{
			ScaleX: s, ScaleY: s,
			CenterX: float64(t.i16(pos + 6)),
			CenterY: float64(t.i16(pos + 8)),
			Child:   child(readUint24(data[pos+1 : pos+4])),
		}, true

	case paintRotate, paintVarRotate:
		return colr.PaintRotate{
			Angle: f2Dot14(t.i16(pos+4)) * 180,
			Child: child(readUint24(data[pos+1 : pos+4])),
		}, true

	case paintRotateAroundCenter, paintVarRotateAroundCenter:
		return colr.PaintRotate{
			Angle:   f2Dot14(t.i16(pos+4)) * 180,
			CenterX: float64(t.i16(pos + 6)),
			CenterY: float64(t.i16(pos + 8)),
			Child:   child(readUint24(data[pos+1 : pos+4])),
		}, true

	case paintSkew, paintVarSkew:
		return colr.PaintSkew{
			XAngle: f2Dot14(t.i16(pos+4)) * 180,
			YAngle: f2Dot14(t.i16(pos+6)) * 180,
			Child:  child(readUint24(data[pos+1 : pos+4])),
		}, true

	case paintSkewAroundCenter, paintVarSkewAroundCenter:
		return colr.PaintSkew{
			XAngle:  f2Dot14(t.i16(pos+4)) * 180,
			YAngle:  f2Dot14(t.i16(pos+6)) * 180,
			CenterX: float64(t.i16(pos + 8)),
			CenterY: float64(t.i16(pos + 10)),
			Child:   child(readUint24(data[pos+1 : pos+4])),
		}, true

	case paintComposite:
		return colr.PaintComposite{
			Source:   child(readUint24(data[pos+1 : pos+4])),
			Mode:     colr.CompositeMode(data[pos+4]),
			Backdrop: child(readUint24(data[pos+5 : pos+8])),
		}, true
	}
	return nil, false
}

// colorLine decodes the color line referenced by the gradient paint
// record at pos. Stops are read lazily through the returned iterator.
func (t *Table) colorLine(pos int, variable bool) (colr.ColorLine, bool) {
	data := t.data
	off := pos + int(readUint24(data[pos+1:pos+4]))
	if off < 0 || off+3 > len(data) {
		return colr.ColorLine{}, false
	}

	extend := colr.ExtendPad
	switch data[off] {
	case 1:
		extend = colr.ExtendRepeat
	case 2:
		extend = colr.ExtendReflect
	}

	count := int(binary.BigEndian.Uint16(data[off+1 : off+3]))
	stride := 6 // stopOffset (2) + paletteIndex (2) + alpha (2)
	if variable {
		stride = 10 // + varIndexBase (4)
	}
	if off+3+count*stride > len(data) {
		return colr.ColorLine{}, false
	}

	return colr.ColorLine{
		Extend: extend,
		Stops:  &tableStops{data: data, pos: off + 3, stride: stride, remaining: count},
	}, true
}

// tableStops iterates color stop records directly from table bytes.
type tableStops struct {
	data      []byte
	pos       int
	stride    int
	remaining int
}

func (s *tableStops) NextStop() (colr.ColorStop, bool) {
	if s.remaining == 0 {
		return colr.ColorStop{}, false
	}
	b := s.data[s.pos:]
	stop := colr.ColorStop{
		Offset: f2Dot14(int16(binary.BigEndian.Uint16(b[0:2]))),
		Color: colr.ColorIndex{
			PaletteIndex: binary.BigEndian.Uint16(b[2:4]),
			Alpha:        clampAlpha(int16(binary.BigEndian.Uint16(b[4:6]))),
		},
	}
	s.pos += s.stride
	s.remaining--
	return stop, true
}

// i16 reads a big-endian int16 at an absolute offset.
func (t *Table) i16(pos int) int16 {
	return int16(binary.BigEndian.Uint16(t.data[pos : pos+2]))
}

// fixed reads a 16.16 fixed-point value at an absolute offset.
func (t *Table) fixed(pos int) float64 {
	return float64(int32(binary.BigEndian.Uint32(t.data[pos:pos+4]))) / 65536
}

// f2Dot14 converts a 2.14 fixed-point value to a float.
func f2Dot14(v int16) float64 {
	return float64(v) / 16384
}

// clampAlpha converts a 2.14 alpha to the evaluator's 14-bit encoding,
// clamping out-of-range values to [0, 1].
func clampAlpha(v int16) uint16 {
	if v < 0 {
		return 0
	}
	if v > fullAlpha {
		return fullAlpha
	}
	return uint16(v)
}
