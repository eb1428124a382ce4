// Package otglyph supplies glyph outlines and color tables from
// OpenType fonts to the colr evaluator.
//
// Two outline backends are provided: Provider reads outlines through
// go-text/typesetting, and SFNTProvider reads them through
// golang.org/x/image/font/sfnt. Both deliver paths in font design
// units with the y axis pointing down, which is the coordinate space
// the evaluator expects from its outline source.
//
// Load ties the pieces together: it parses a font file, slices out the
// COLR and CPAL tables, and yields a ready-to-use renderer.
package otglyph

import (
	"bytes"
	"errors"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/colr"
	"github.com/gogpu/colr/colrtable"
)

// ErrNotColorFont indicates the font has no COLR table.
var ErrNotColorFont = errors.New("otglyph: font has no COLR table")

// Provider resolves glyph outlines through a go-text face. Outlines
// come back in font design units, y-down.
//
// The underlying face is not safe for concurrent use, so neither is
// the provider.
type Provider struct {
	face *font.Face
}

// NewProvider wraps a go-text face as an outline source.
func NewProvider(face *font.Face) *Provider {
	return &Provider{face: face}
}

// GlyphPath returns the glyph's outline, or false if the glyph has no
// outline data. An empty outline (such as a space) reports true with
// an empty path.
func (p *Provider) GlyphPath(glyphID colr.GlyphID) (*colr.Path, bool) {
	data := p.face.GlyphData(font.GID(glyphID))
	outline, ok := data.(font.GlyphOutline)
	if !ok {
		return nil, false
	}

	// Font outlines are y-up; flip to the evaluator's y-down space.
	path := colr.NewPath()
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			path.MoveTo(float64(seg.Args[0].X), -float64(seg.Args[0].Y))
		case ot.SegmentOpLineTo:
			path.LineTo(float64(seg.Args[0].X), -float64(seg.Args[0].Y))
		case ot.SegmentOpQuadTo:
			path.QuadraticTo(
				float64(seg.Args[0].X), -float64(seg.Args[0].Y),
				float64(seg.Args[1].X), -float64(seg.Args[1].Y),
			)
		case ot.SegmentOpCubeTo:
			path.CubicTo(
				float64(seg.Args[0].X), -float64(seg.Args[0].Y),
				float64(seg.Args[1].X), -float64(seg.Args[1].Y),
				float64(seg.Args[2].X), -float64(seg.Args[2].Y),
			)
		}
	}
	return path, true
}

// Font bundles the pieces needed to render a color font: the parsed
// face for outlines, the COLR paint graphs, and the CPAL palettes.
type Font struct {
	// Face is the parsed font face.
	Face *font.Face

	// COLR holds the decoded color glyph graphs.
	COLR *colrtable.Table

	// CPAL holds the decoded palettes, or nil if the font has none.
	CPAL *colrtable.CPAL
}

// Load parses a font file and decodes its COLR and CPAL tables.
// Returns ErrNotColorFont if the font has no COLR table.
func Load(data []byte) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	ld, err := ot.NewLoader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	colrData, err := ld.RawTable(ot.MustNewTag("COLR"))
	if err != nil {
		return nil, ErrNotColorFont
	}
	table, err := colrtable.New(colrData)
	if err != nil {
		return nil, err
	}

	f := &Font{Face: face, COLR: table}
	if cpalData, err := ld.RawTable(ot.MustNewTag("CPAL")); err == nil {
		cpal, err := colrtable.ParseCPAL(cpalData)
		if err != nil {
			return nil, err
		}
		f.CPAL = cpal
	}
	return f, nil
}

// SetPixelSize configures the root transform so rendered glyphs come
// out scaled to the given pixel-per-em size instead of design units.
func (f *Font) SetPixelSize(ppem float64) {
	s := ppem / float64(f.Face.Upem())
	f.COLR.SetRootTransform(colr.Affine{XX: s, YY: s})
}

// Renderer builds an evaluator over this font using the given palette
// and foreground color. A missing or out-of-range palette index leaves
// the renderer without palette colors; palette lookups then fail and
// the affected fills are skipped.
func (f *Font) Renderer(paletteIndex int, foreground colr.RGBA) *colr.Renderer {
	var palette []colr.RGBA
	if f.CPAL != nil {
		palette = f.CPAL.Palette(paletteIndex)
	}
	return &colr.Renderer{
		Graph:      f.COLR,
		Outlines:   NewProvider(f.Face),
		Palette:    palette,
		Foreground: foreground,
	}
}
