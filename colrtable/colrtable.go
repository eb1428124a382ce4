// Package colrtable decodes raw COLR and CPAL table data into the paint
// graph and palette structures consumed by the colr evaluator.
//
// The package works directly on table bytes sliced out of a font file;
// it does not parse the surrounding sfnt container. COLR version 0
// fonts are presented through the same Graph interface as version 1 by
// synthesizing a paint graph (a layer list of solid-filled glyphs) from
// the v0 records, so callers render both versions through one code
// path.
//
// All multi-byte values are big-endian per the OpenType specification.
// Offsets and counts coming from font files are untrusted; every read
// is bounds-checked and malformed structures resolve to failure rather
// than panic.
package colrtable

import (
	"encoding/binary"
	"errors"

	"github.com/gogpu/colr"
)

// COLR table format errors.
var (
	// ErrNoCOLRTable indicates the COLR table data is empty.
	ErrNoCOLRTable = errors.New("colrtable: font has no COLR table")

	// ErrInvalidCOLRData indicates the COLR table data is malformed.
	ErrInvalidCOLRData = errors.New("colrtable: invalid COLR table data")

	// ErrUnsupportedCOLRVersion indicates an unsupported COLR version.
	ErrUnsupportedCOLRVersion = errors.New("colrtable: unsupported COLR version")
)

// baseGlyphRecord is a COLRv0 base glyph record.
type baseGlyphRecord struct {
	glyphID    uint16
	firstLayer uint16
	numLayers  uint16
}

// layerRecord is a COLRv0 layer record.
type layerRecord struct {
	glyphID      uint16
	paletteIndex uint16
}

// baseGlyphPaint is a COLRv1 BaseGlyphList record with its paint offset
// resolved to an absolute table offset.
type baseGlyphPaint struct {
	glyphID  uint16
	paintOff uint32
}

// clipRecord is a COLRv1 ClipList record with the clip box resolved.
type clipRecord struct {
	startGlyphID uint16
	endGlyphID   uint16
	xMin, yMin   int16
	xMax, yMax   int16
}

// Table is a decoded COLR table. It implements colr.Graph: paint nodes
// are decoded on demand from the table bytes, with colr.PaintRef.Node
// holding the node's absolute offset within the table.
type Table struct {
	data    []byte
	version uint16

	// v0 records.
	baseGlyphs []baseGlyphRecord
	layers     []layerRecord

	// v1 structures. basePaints is sorted by glyph ID; layerList holds
	// absolute paint offsets.
	basePaints []baseGlyphPaint
	layerList  []uint32
	clips      []clipRecord

	// root, when set, is inserted as a transform node above every
	// glyph's graph when the root paint is requested with
	// IncludeRootTransform.
	root    colr.Affine
	hasRoot bool
}

// New decodes a COLR table from raw table bytes.
func New(data []byte) (*Table, error) {
	if len(data) == 0 {
		return nil, ErrNoCOLRTable
	}
	if len(data) < 14 {
		return nil, ErrInvalidCOLRData
	}

	t := &Table{data: data}
	t.version = binary.BigEndian.Uint16(data[0:2])
	if t.version > 1 {
		return nil, ErrUnsupportedCOLRVersion
	}

	numBaseGlyphs := binary.BigEndian.Uint16(data[2:4])
	baseGlyphOffset := binary.BigEndian.Uint32(data[4:8])
	layerRecordOffset := binary.BigEndian.Uint32(data[8:12])
	numLayers := binary.BigEndian.Uint16(data[12:14])

	if err := t.parseBaseGlyphs(baseGlyphOffset, numBaseGlyphs); err != nil {
		return nil, err
	}
	if err := t.parseLayers(layerRecordOffset, numLayers); err != nil {
		return nil, err
	}

	if t.version == 1 {
		if err := t.parseV1(); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// SetRootTransform configures the whole-glyph root transform inserted
// when a root paint is requested with colr.IncludeRootTransform.
// Fonts express their paint graphs in design units; loaders typically
// set a scale-to-pixel transform here.
func (t *Table) SetRootTransform(a colr.Affine) {
	t.root = a
	t.hasRoot = true
}

// Version returns the COLR table version (0 or 1).
func (t *Table) Version() uint16 {
	return t.version
}

// HasGlyph returns true if the glyph has a color graph in this table.
func (t *Table) HasGlyph(glyphID colr.GlyphID) bool {
	if _, ok := t.findBasePaint(uint16(glyphID)); ok {
		return true
	}
	_, ok := t.findBaseGlyphIndex(uint16(glyphID))
	return ok
}

// parseBaseGlyphs parses the COLRv0 base glyph records.
func (t *Table) parseBaseGlyphs(offset uint32, count uint16) error {
	const recordSize = 6 // glyphID (2) + firstLayer (2) + numLayers (2)
	data := t.data

	for i := uint16(0); i < count; i++ {
		pos := int(offset) + int(i)*recordSize
		if pos < 0 || pos+recordSize > len(data) {
			return ErrInvalidCOLRData
		}
		t.baseGlyphs = append(t.baseGlyphs, baseGlyphRecord{
			glyphID:    binary.BigEndian.Uint16(data[pos : pos+2]),
			firstLayer: binary.BigEndian.Uint16(data[pos+2 : pos+4]),
			numLayers:  binary.BigEndian.Uint16(data[pos+4 : pos+6]),
		})
	}
	return nil
}

// parseLayers parses the COLRv0 layer records.
func (t *Table) parseLayers(offset uint32, count uint16) error {
	const recordSize = 4 // glyphID (2) + paletteIndex (2)
	data := t.data

	for i := uint16(0); i < count; i++ {
		pos := int(offset) + int(i)*recordSize
		if pos < 0 || pos+recordSize > len(data) {
			return ErrInvalidCOLRData
		}
		t.layers = append(t.layers, layerRecord{
			glyphID:      binary.BigEndian.Uint16(data[pos : pos+2]),
			paletteIndex: binary.BigEndian.Uint16(data[pos+2 : pos+4]),
		})
	}
	return nil
}

// parseV1 parses the version 1 header extension: BaseGlyphList,
// LayerList, and ClipList.
func (t *Table) parseV1() error {
	data := t.data
	if len(data) < 34 {
		return ErrInvalidCOLRData
	}

	baseGlyphListOffset := binary.BigEndian.Uint32(data[14:18])
	layerListOffset := binary.BigEndian.Uint32(data[18:22])
	clipListOffset := binary.BigEndian.Uint32(data[22:26])
	// varIndexMapOffset (26:30) and itemVariationStoreOffset (30:34)
	// describe variable-font deltas, which the evaluator does not
	// apply; Var paint formats decode to their base values.

	if baseGlyphListOffset != 0 {
		if err := t.parseBaseGlyphList(baseGlyphListOffset); err != nil {
			return err
		}
	}
	if layerListOffset != 0 {
		if err := t.parseLayerList(layerListOffset); err != nil {
			return err
		}
	}
	if clipListOffset != 0 {
		if err := t.parseClipList(clipListOffset); err != nil {
			return err
		}
	}
	return nil
}

// parseBaseGlyphList parses the v1 base glyph paint records. Paint
// offsets are relative to the start of the list and stored absolute.
func (t *Table) parseBaseGlyphList(offset uint32) error {
	data := t.data
	pos := int(offset)
	if pos < 0 || pos+4 > len(data) {
		return ErrInvalidCOLRData
	}
	count := binary.BigEndian.Uint32(data[pos : pos+4])

	const recordSize = 6 // glyphID (2) + paintOffset (4)
	for i := uint32(0); i < count; i++ {
		rec := pos + 4 + int(i)*recordSize
		if rec+recordSize > len(data) {
			return ErrInvalidCOLRData
		}
		paintOff := offset + binary.BigEndian.Uint32(data[rec+2:rec+6])
		if int(paintOff) >= len(data) {
			return ErrInvalidCOLRData
		}
		t.basePaints = append(t.basePaints, baseGlyphPaint{
			glyphID:  binary.BigEndian.Uint16(data[rec : rec+2]),
			paintOff: paintOff,
		})
	}
	return nil
}

// parseLayerList parses the v1 layer list. Offsets are relative to the
// start of the list and stored absolute.
func (t *Table) parseLayerList(offset uint32) error {
	data := t.data
	pos := int(offset)
	if pos < 0 || pos+4 > len(data) {
		return ErrInvalidCOLRData
	}
	count := binary.BigEndian.Uint32(data[pos : pos+4])

	for i := uint32(0); i < count; i++ {
		rec := pos + 4 + int(i)*4
		if rec+4 > len(data) {
			return ErrInvalidCOLRData
		}
		paintOff := offset + binary.BigEndian.Uint32(data[rec:rec+4])
		if int(paintOff) >= len(data) {
			return ErrInvalidCOLRData
		}
		t.layerList = append(t.layerList, paintOff)
	}
	return nil
}

// parseClipList parses the v1 clip list, resolving each clip box.
func (t *Table) parseClipList(offset uint32) error {
	data := t.data
	pos := int(offset)
	if pos < 0 || pos+5 > len(data) {
		return ErrInvalidCOLRData
	}
	if data[pos] != 1 {
		return ErrInvalidCOLRData
	}
	count := binary.BigEndian.Uint32(data[pos+1 : pos+5])

	const recordSize = 7 // startGlyphID (2) + endGlyphID (2) + clipBoxOffset (3)
	for i := uint32(0); i < count; i++ {
		rec := pos + 5 + int(i)*recordSize
		if rec+recordSize > len(data) {
			return ErrInvalidCOLRData
		}
		boxOff := pos + int(readUint24(data[rec+4:rec+7]))
		// ClipBox: format (1 static, 2 variable) + four FWORDs.
		if boxOff+9 > len(data) {
			return ErrInvalidCOLRData
		}
		format := data[boxOff]
		if format != 1 && format != 2 {
			return ErrInvalidCOLRData
		}
		t.clips = append(t.clips, clipRecord{
			startGlyphID: binary.BigEndian.Uint16(data[rec : rec+2]),
			endGlyphID:   binary.BigEndian.Uint16(data[rec+2 : rec+4]),
			xMin:         int16(binary.BigEndian.Uint16(data[boxOff+1 : boxOff+3])),
			yMin:         int16(binary.BigEndian.Uint16(data[boxOff+3 : boxOff+5])),
			xMax:         int16(binary.BigEndian.Uint16(data[boxOff+5 : boxOff+7])),
			yMax:         int16(binary.BigEndian.Uint16(data[boxOff+7 : boxOff+9])),
		})
	}
	return nil
}

// findBasePaint finds the v1 base glyph paint record for a glyph ID.
func (t *Table) findBasePaint(glyphID uint16) (baseGlyphPaint, bool) {
	for _, rec := range t.basePaints {
		if rec.glyphID == glyphID {
			return rec, true
		}
	}
	return baseGlyphPaint{}, false
}

// readUint24 reads a 3-byte big-endian unsigned integer.
func readUint24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}
