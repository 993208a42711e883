// Package render draws a scene's display list with ebiten.
package render

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/younwookim/dinolevel/internal/domain/node"
	"github.com/younwookim/dinolevel/internal/infrastructure/asset"
)

// Renderer draws images and text nodes in display list order
type Renderer struct {
	textures   *asset.Textures
	fonts      *asset.Fonts
	background color.RGBA
	failed     map[string]bool
}

// NewRenderer creates a renderer clearing the screen to background
func NewRenderer(textures *asset.Textures, fonts *asset.Fonts, background color.RGBA) *Renderer {
	return &Renderer{
		textures:   textures,
		fonts:      fonts,
		background: background,
		failed:     make(map[string]bool),
	}
}

// Draw clears screen and draws every visible node
func (r *Renderer) Draw(screen *ebiten.Image, list *node.DisplayList) {
	screen.Fill(r.background)

	for _, n := range list.All() {
		if !n.Visible() {
			continue
		}
		switch v := n.(type) {
		case *node.Image:
			r.drawImage(screen, v)
		case *node.Text:
			r.drawText(screen, v)
		}
	}
}

func (r *Renderer) drawImage(screen *ebiten.Image, img *node.Image) {
	tex, err := r.textures.Get(img.Texture())
	if err != nil {
		if !r.failed[img.Texture()] {
			r.failed[img.Texture()] = true
			log.Printf("Failed to draw texture %q: %v", img.Texture(), err)
		}
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = transform(img)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(tex, op)
}

func (r *Renderer) drawText(screen *ebiten.Image, txt *node.Text) {
	if txt.Text() == "" {
		return
	}
	style := txt.Style()

	op := &text.DrawOptions{}
	op.GeoM = transform(txt)
	op.ColorScale.ScaleWithColor(style.RGBA())
	op.LineSpacing = r.fonts.LineSpacing(style)

	// Align lines inside the text's own box
	w, _ := txt.Size()
	switch style.Align {
	case "center":
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(w/2*scaleX(txt), 0)
	case "right":
		op.PrimaryAlign = text.AlignEnd
		op.GeoM.Translate(w*scaleX(txt), 0)
	}

	text.Draw(screen, txt.Text(), r.fonts.Face(style), op)
}

// transform maps frame space to screen space honoring origin and scale
func transform(n node.Node) ebiten.GeoM {
	w, h := n.Size()
	ox, oy := n.Origin()
	sx, sy := n.Scale()
	x, y := n.Position()

	var g ebiten.GeoM
	g.Translate(-w*ox, -h*oy)
	g.Scale(sx, sy)
	g.Translate(x, y)
	return g
}

func scaleX(n node.Node) float64 {
	sx, _ := n.Scale()
	return sx
}
