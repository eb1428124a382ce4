package colrtable

import (
	"encoding/binary"
	"errors"

	"github.com/gogpu/colr"
)

// CPAL table format errors.
var (
	// ErrNoCPALTable indicates the CPAL table data is empty.
	ErrNoCPALTable = errors.New("colrtable: font has no CPAL table")

	// ErrInvalidCPALData indicates the CPAL table data is malformed.
	ErrInvalidCPALData = errors.New("colrtable: invalid CPAL table data")
)

// CPAL is a decoded color palette table. Palettes are converted to the
// evaluator's color type up front; the slice returned by Palette can be
// handed directly to colr.Renderer.
type CPAL struct {
	palettes [][]colr.RGBA
}

// ParseCPAL decodes a CPAL table from raw table bytes.
func ParseCPAL(data []byte) (*CPAL, error) {
	if len(data) == 0 {
		return nil, ErrNoCPALTable
	}
	if len(data) < 12 {
		return nil, ErrInvalidCPALData
	}

	version := binary.BigEndian.Uint16(data[0:2])
	if version > 1 {
		return nil, ErrInvalidCPALData
	}
	numEntries := int(binary.BigEndian.Uint16(data[2:4]))
	numPalettes := int(binary.BigEndian.Uint16(data[4:6]))
	numRecords := int(binary.BigEndian.Uint16(data[6:8]))
	recordsOffset := int(binary.BigEndian.Uint32(data[8:12]))

	if numPalettes == 0 || numEntries == 0 {
		return nil, ErrInvalidCPALData
	}
	if 12+numPalettes*2 > len(data) {
		return nil, ErrInvalidCPALData
	}
	if recordsOffset < 0 || recordsOffset+numRecords*4 > len(data) {
		return nil, ErrInvalidCPALData
	}

	c := &CPAL{palettes: make([][]colr.RGBA, 0, numPalettes)}
	for i := 0; i < numPalettes; i++ {
		first := int(binary.BigEndian.Uint16(data[12+i*2 : 14+i*2]))
		if first+numEntries > numRecords {
			return nil, ErrInvalidCPALData
		}
		palette := make([]colr.RGBA, numEntries)
		for j := 0; j < numEntries; j++ {
			// Color records are BGRA byte order.
			rec := recordsOffset + (first+j)*4
			palette[j] = colr.RGBA{
				B: float64(data[rec]) / 255,
				G: float64(data[rec+1]) / 255,
				R: float64(data[rec+2]) / 255,
				A: float64(data[rec+3]) / 255,
			}
		}
		c.palettes = append(c.palettes, palette)
	}
	return c, nil
}

// NumPalettes returns the number of palettes in the table.
func (c *CPAL) NumPalettes() int {
	return len(c.palettes)
}

// Palette returns palette i, or nil if i is out of range. The returned
// slice is owned by the CPAL and must not be modified.
func (c *CPAL) Palette(i int) []colr.RGBA {
	if i < 0 || i >= len(c.palettes) {
		return nil
	}
	return c.palettes[i]
}
