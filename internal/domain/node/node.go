// Package node defines the display objects a scene places in its display list.
package node

import "github.com/younwookim/dinolevel/internal/event"

// ID identifies a node within its display list
type ID uint32

// Rect is an axis-aligned rectangle in scene coordinates
type Rect struct {
	X, Y float64
	W, H float64
}

// Contains reports whether the point lies inside the rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Node is a renderable object placed in a scene's display list
type Node interface {
	ID() ID
	Name() string
	SetName(name string)

	Position() (x, y float64)
	SetPosition(x, y float64)
	Scale() (sx, sy float64)
	SetScale(sx, sy float64)
	Origin() (ox, oy float64)
	SetOrigin(ox, oy float64)
	Visible() bool
	SetVisible(visible bool)

	// Size returns the unscaled frame size.
	Size() (w, h float64)
	// Bounds returns the scaled rectangle the node covers, honoring its origin.
	Bounds() Rect

	Interactive() bool
	SetInteractive(interactive bool)

	// Events is the node's own channel (pointer events, destroy).
	Events() *event.Emitter

	// Destroy emits event.Destroy once and drops every listener.
	Destroy()
	Destroyed() bool
}

// base holds the transform and lifecycle state shared by every node type
type base struct {
	id          ID
	name        string
	x, y        float64
	scaleX      float64
	scaleY      float64
	originX     float64
	originY     float64
	visible     bool
	interactive bool
	destroyed   bool
	events      *event.Emitter
}

func newBase(id ID, x, y, originX, originY float64) base {
	return base{
		id:      id,
		x:       x,
		y:       y,
		scaleX:  1,
		scaleY:  1,
		originX: originX,
		originY: originY,
		visible: true,
		events:  event.NewEmitter(),
	}
}

func (b *base) ID() ID              { return b.id }
func (b *base) Name() string        { return b.name }
func (b *base) SetName(name string) { b.name = name }

func (b *base) Position() (float64, float64) { return b.x, b.y }

func (b *base) SetPosition(x, y float64) {
	b.x = x
	b.y = y
}

func (b *base) Scale() (float64, float64) { return b.scaleX, b.scaleY }

func (b *base) SetScale(sx, sy float64) {
	b.scaleX = sx
	b.scaleY = sy
}

func (b *base) Origin() (float64, float64) { return b.originX, b.originY }

func (b *base) SetOrigin(ox, oy float64) {
	b.originX = ox
	b.originY = oy
}

func (b *base) Visible() bool           { return b.visible }
func (b *base) SetVisible(visible bool) { b.visible = visible }

func (b *base) Interactive() bool { return b.interactive }

func (b *base) SetInteractive(interactive bool) {
	if b.destroyed {
		return
	}
	b.interactive = interactive
}

func (b *base) Events() *event.Emitter { return b.events }

func (b *base) Destroyed() bool { return b.destroyed }

func (b *base) destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.interactive = false
	b.events.Emit(event.Destroy)
	b.events.RemoveAll()
}

// bounds computes the covered rectangle for a frame of size w x h
func (b *base) bounds(w, h float64) Rect {
	sw := w * b.scaleX
	sh := h * b.scaleY
	return Rect{
		X: b.x - sw*b.originX,
		Y: b.y - sh*b.originY,
		W: sw,
		H: sh,
	}
}
