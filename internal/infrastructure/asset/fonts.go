package asset

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/dinolevel/internal/domain/node"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// lineSpacingFactor is the line height relative to the font size
const lineSpacingFactor = 1.2

// Fonts maps CSS font families onto bundled Go fonts.
//
// System fonts such as Arial are not shipped, so sans-serif families resolve
// to Go Regular and monospace families to Go Mono. Unknown families fall
// back to the default source.
type Fonts struct {
	sources  map[string]*text.GoTextFaceSource
	fallback *text.GoTextFaceSource
	faces    map[faceKey]*text.GoTextFace
}

type faceKey struct {
	family string
	size   float64
}

// NewFonts creates a registry with the bundled Go fonts
func NewFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load mono font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	f := &Fonts{
		sources:  make(map[string]*text.GoTextFaceSource),
		fallback: regular,
		faces:    make(map[faceKey]*text.GoTextFace),
	}
	for _, family := range []string{"arial", "helvetica", "sans-serif", "verdana", "go"} {
		f.sources[family] = regular
	}
	for _, family := range []string{"courier", "courier new", "monospace", "go mono"} {
		f.sources[family] = mono
	}
	for _, family := range []string{"arial black", "impact", "go bold"} {
		f.sources[family] = bold
	}
	return f, nil
}

// Register binds a family name to a TrueType/OpenType font
func (f *Fonts) Register(family string, data []byte) error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to load font %s: %w", family, err)
	}
	f.sources[normalizeFamily(family)] = src
	for k := range f.faces {
		if k.family == normalizeFamily(family) {
			delete(f.faces, k)
		}
	}
	return nil
}

// Face returns a cached face for the style's family and pixel size
func (f *Fonts) Face(style node.TextStyle) *text.GoTextFace {
	key := faceKey{family: f.familyFor(style.Family()), size: style.FontSizePx()}
	if face, ok := f.faces[key]; ok {
		return face
	}

	src, ok := f.sources[key.family]
	if !ok {
		src = f.fallback
	}
	face := &text.GoTextFace{
		Source:    src,
		Size:      key.size,
		Direction: text.DirectionLeftToRight,
	}
	f.faces[key] = face
	return face
}

// LineSpacing returns the distance between baselines for the style
func (f *Fonts) LineSpacing(style node.TextStyle) float64 {
	return style.FontSizePx() * lineSpacingFactor
}

// Measure implements node.TextMeasurer
func (f *Fonts) Measure(s string, style node.TextStyle) (float64, float64) {
	if s == "" {
		return 0, f.LineSpacing(style)
	}
	return text.Measure(s, f.Face(style), f.LineSpacing(style))
}

// familyFor picks the first known family from a CSS family list
// such as "Arial, sans-serif".
func (f *Fonts) familyFor(families string) string {
	for _, name := range strings.Split(families, ",") {
		name = normalizeFamily(name)
		if _, ok := f.sources[name]; ok {
			return name
		}
	}
	return normalizeFamily(families)
}

func normalizeFamily(family string) string {
	family = strings.TrimSpace(family)
	family = strings.Trim(family, `"'`)
	return strings.ToLower(family)
}
