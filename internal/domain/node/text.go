package node

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Defaults applied to empty TextStyle fields
const (
	DefaultFontFamily = "Courier"
	DefaultFontSize   = "16px"
	DefaultColor      = "#fff"

	defaultFontSizePx = 16.0
)

// TextStyle configures how a Text node is rendered.
// Field values use CSS-like strings, e.g. FontSize "30px", Color "#ff0000".
type TextStyle struct {
	FontFamily string `yaml:"fontFamily,omitempty" json:"fontFamily,omitempty"`
	FontSize   string `yaml:"fontSize,omitempty" json:"fontSize,omitempty"`
	Color      string `yaml:"color,omitempty" json:"color,omitempty"`
	Align      string `yaml:"align,omitempty" json:"align,omitempty"`
}

// Family returns the font family, or DefaultFontFamily when unset
func (s TextStyle) Family() string {
	if s.FontFamily == "" {
		return DefaultFontFamily
	}
	return s.FontFamily
}

// FontSizePx parses FontSize ("30px" or "30") into pixels.
// Missing or invalid sizes fall back to 16.
func (s TextStyle) FontSizePx() float64 {
	v := strings.TrimSpace(s.FontSize)
	v = strings.TrimSuffix(v, "px")
	size, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || size <= 0 {
		return defaultFontSizePx
	}
	return size
}

// RGBA parses Color as "#rgb", "#rrggbb" or a CSS color name.
// Unknown values fall back to white.
func (s TextStyle) RGBA() color.RGBA {
	c := strings.ToLower(strings.TrimSpace(s.Color))
	if c == "" {
		c = DefaultColor
	}
	if named, ok := colornames.Map[c]; ok {
		return named
	}
	if rgba, ok := parseHex(c); ok {
		return rgba
	}
	return colornames.White
}

func parseHex(s string) (color.RGBA, bool) {
	s, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.RGBA{}, false
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}

// TextMeasurer reports the rendered size of a string in a given style
type TextMeasurer interface {
	Measure(s string, style TextStyle) (w, h float64)
}

// Text displays a string. Its origin defaults to the top-left corner.
type Text struct {
	base
	text    string
	style   TextStyle
	measure TextMeasurer
	width   float64
	height  float64
}

// NewText creates a detached text node. measure may be nil, in which case
// the node reports a zero size.
func NewText(id ID, x, y float64, s string, style TextStyle, measure TextMeasurer) *Text {
	t := &Text{
		base:    newBase(id, x, y, 0, 0),
		text:    s,
		style:   style,
		measure: measure,
	}
	t.remeasure()
	return t
}

// Text returns the current content
func (t *Text) Text() string { return t.text }

// SetText replaces the content
func (t *Text) SetText(s string) {
	t.text = s
	t.remeasure()
}

// Style returns the current style
func (t *Text) Style() TextStyle { return t.style }

// SetStyle replaces the whole style record
func (t *Text) SetStyle(style TextStyle) {
	t.style = style
	t.remeasure()
}

func (t *Text) Size() (float64, float64) { return t.width, t.height }

func (t *Text) Bounds() Rect { return t.bounds(t.width, t.height) }

func (t *Text) Destroy() { t.destroy() }

func (t *Text) remeasure() {
	if t.measure == nil {
		return
	}
	t.width, t.height = t.measure.Measure(t.text, t.style)
}
