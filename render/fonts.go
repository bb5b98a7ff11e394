package render

import (
	"sync"

	"github.com/carbocation/pfx"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts are the Go fonts: regular for all text except the italic run of the
// y label. Both are embedded, so rendering works without system fonts.
type Fonts struct {
	Regular *truetype.Font
	Italic  *truetype.Font
}

var (
	fontsOnce sync.Once
	fonts     Fonts
	fontsErr  error
)

// LoadFonts parses the embedded fonts once per process.
func LoadFonts() (Fonts, error) {
	fontsOnce.Do(func() {
		fonts.Regular, fontsErr = truetype.Parse(goregular.TTF)
		if fontsErr != nil {
			fontsErr = pfx.Err(fontsErr)
			return
		}
		fonts.Italic, fontsErr = truetype.Parse(goitalic.TTF)
		if fontsErr != nil {
			fontsErr = pfx.Err(fontsErr)
		}
	})
	return fonts, fontsErr
}

// Pick returns the italic or the regular font.
func (f Fonts) Pick(italic bool) *truetype.Font {
	if italic {
		return f.Italic
	}
	return f.Regular
}

// metrics measures text the way the raster renderer will draw it.
type metrics struct {
	points, dpi float64
}

func (m metrics) face(f *truetype.Font) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: m.points, DPI: m.dpi})
}

// width is the advance of s in pixels. Unlike the glyph bounds, the advance
// counts spaces, which matters when a label is drawn in several runs.
func (m metrics) width(f *truetype.Font, s string) int {
	face := m.face(f)
	defer face.Close()
	return font.MeasureString(face, s).Ceil()
}

// lineHeight is the baseline-to-baseline distance in pixels.
func (m metrics) lineHeight(f *truetype.Font) int {
	face := m.face(f)
	defer face.Close()
	return face.Metrics().Height.Ceil()
}

// ascent is the height of the tallest glyphs above the baseline in pixels.
func (m metrics) ascent(f *truetype.Font) int {
	face := m.face(f)
	defer face.Close()
	return face.Metrics().Ascent.Ceil()
}
