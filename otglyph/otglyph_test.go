package otglyph

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/colr"
)

func TestProviderGlyphPath(t *testing.T) {
	face, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("ParseTTF() error = %v", err)
	}
	gid, ok := face.NominalGlyph('A')
	if !ok {
		t.Fatal("no glyph for 'A'")
	}

	p := NewProvider(face)
	path, ok := p.GlyphPath(colr.GlyphID(gid))
	if !ok {
		t.Fatal("GlyphPath() failed")
	}
	if path.IsEmpty() {
		t.Fatal("GlyphPath() returned empty path for 'A'")
	}

	// Above-baseline outlines flip to negative y.
	b := path.Bounds()
	if b.MinY >= 0 {
		t.Errorf("bounds MinY = %g, want negative (above baseline)", b.MinY)
	}
	upem := float64(face.Upem())
	if b.MaxX-b.MinX <= 0 || b.MaxX-b.MinX > 2*upem {
		t.Errorf("implausible glyph width %g for upem %g", b.MaxX-b.MinX, upem)
	}
}

func TestSFNTProviderGlyphPath(t *testing.T) {
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("sfnt.Parse() error = %v", err)
	}
	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, 'A')
	if err != nil || gid == 0 {
		t.Fatalf("GlyphIndex() = %d, %v", gid, err)
	}

	p := NewSFNTProvider(f)
	path, ok := p.GlyphPath(colr.GlyphID(gid))
	if !ok {
		t.Fatal("GlyphPath() failed")
	}
	if path.IsEmpty() {
		t.Fatal("GlyphPath() returned empty path for 'A'")
	}
	if b := path.Bounds(); b.MinY >= 0 {
		t.Errorf("bounds MinY = %g, want negative (above baseline)", b.MinY)
	}
}

// Both backends read the same glyf data in design units, so their
// outlines must agree.
func TestProvidersAgree(t *testing.T) {
	face, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("ParseTTF() error = %v", err)
	}
	sf, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("sfnt.Parse() error = %v", err)
	}
	gid, ok := face.NominalGlyph('o')
	if !ok {
		t.Fatal("no glyph for 'o'")
	}

	gt, ok := NewProvider(face).GlyphPath(colr.GlyphID(gid))
	if !ok {
		t.Fatal("go-text GlyphPath() failed")
	}
	xi, ok := NewSFNTProvider(sf).GlyphPath(colr.GlyphID(gid))
	if !ok {
		t.Fatal("sfnt GlyphPath() failed")
	}

	gb, xb := gt.Bounds(), xi.Bounds()
	const eps = 1.0
	if math.Abs(gb.MinX-xb.MinX) > eps || math.Abs(gb.MinY-xb.MinY) > eps ||
		math.Abs(gb.MaxX-xb.MaxX) > eps || math.Abs(gb.MaxY-xb.MaxY) > eps {
		t.Errorf("bounds disagree: go-text %+v, sfnt %+v", gb, xb)
	}
}

func TestLoadNotColorFont(t *testing.T) {
	if _, err := Load(goregular.TTF); !errors.Is(err, ErrNotColorFont) {
		t.Errorf("Load(goregular) error = %v, want ErrNotColorFont", err)
	}
}
