package otglyph

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/colr"
)

// SFNTProvider resolves glyph outlines through an x/image sfnt font.
// It exists for callers already holding an *sfnt.Font; Provider is the
// primary backend.
//
// Outlines are loaded at a ppem equal to the font's units per em, so
// coordinates come back in design units. The sfnt rasterizer already
// uses a y-down axis, so no flip is applied. The internal buffer is
// reused across calls, which makes the provider unsafe for concurrent
// use.
type SFNTProvider struct {
	font   *sfnt.Font
	buffer sfnt.Buffer
	upem   fixed.Int26_6
}

// NewSFNTProvider wraps an sfnt font as an outline source.
func NewSFNTProvider(f *sfnt.Font) *SFNTProvider {
	return &SFNTProvider{
		font: f,
		upem: fixed.I(int(f.UnitsPerEm())),
	}
}

// GlyphPath returns the glyph's outline, or false if the glyph cannot
// be loaded. Color glyphs without their own outline (sfnt reports them
// as colored) resolve to false as well.
func (p *SFNTProvider) GlyphPath(glyphID colr.GlyphID) (*colr.Path, bool) {
	segments, err := p.font.LoadGlyph(&p.buffer, sfnt.GlyphIndex(glyphID), p.upem, nil)
	if err != nil {
		return nil, false
	}

	path := colr.NewPath()
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			path.MoveTo(fixedCoord(seg.Args[0].X), fixedCoord(seg.Args[0].Y))
		case sfnt.SegmentOpLineTo:
			path.LineTo(fixedCoord(seg.Args[0].X), fixedCoord(seg.Args[0].Y))
		case sfnt.SegmentOpQuadTo:
			path.QuadraticTo(
				fixedCoord(seg.Args[0].X), fixedCoord(seg.Args[0].Y),
				fixedCoord(seg.Args[1].X), fixedCoord(seg.Args[1].Y),
			)
		case sfnt.SegmentOpCubeTo:
			path.CubicTo(
				fixedCoord(seg.Args[0].X), fixedCoord(seg.Args[0].Y),
				fixedCoord(seg.Args[1].X), fixedCoord(seg.Args[1].Y),
				fixedCoord(seg.Args[2].X), fixedCoord(seg.Args[2].Y),
			)
		}
	}
	return path, true
}

// fixedCoord converts a 26.6 fixed-point coordinate to a float.
func fixedCoord(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
