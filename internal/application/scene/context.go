package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/dinolevel/internal/application/system"
	"github.com/younwookim/dinolevel/internal/domain/node"
	"github.com/younwookim/dinolevel/internal/event"
)

// Renderer draws a display list onto the screen
type Renderer interface {
	Draw(screen *ebiten.Image, list *node.DisplayList)
}

// Resources are the shared services a scene needs to build and draw nodes.
// Renderer and Fonts may be nil in headless use.
type Resources struct {
	Textures node.TextureSizer
	Fonts    node.TextMeasurer
	Renderer Renderer
}

// Context is what a scene's build code receives instead of reaching into
// an engine-wide object: a node factory, the scene's event channel and
// the per-scene tween manager.
type Context struct {
	Key    string
	Add    *node.Factory
	Events *event.Emitter
	Tweens *system.TweenSystem
}

// NewContext creates a context with a fresh display list.
// events is the scene's long-lived channel; a new one is made when nil.
func NewContext(key string, events *event.Emitter, res Resources) *Context {
	if events == nil {
		events = event.NewEmitter()
	}
	return &Context{
		Key:    key,
		Add:    node.NewFactory(node.NewDisplayList(), res.Textures, res.Fonts),
		Events: events,
		Tweens: system.NewTweenSystem(),
	}
}

// Nodes returns the display list the context's factory fills
func (c *Context) Nodes() *node.DisplayList {
	return c.Add.List()
}

// Handle is the result of building a scene: its context plus the created
// nodes by label.
type Handle struct {
	Context *Context
	Labels  map[string]node.Node
}

// Node returns the node created under label, or nil
func (h *Handle) Node(label string) node.Node {
	return h.Labels[label]
}

// BuildFunc fills a context with nodes, returning them by label
type BuildFunc func(ctx *Context) (map[string]node.Node, error)

// Build runs fn against ctx and wraps the result in a Handle
func Build(ctx *Context, fn BuildFunc) (*Handle, error) {
	labels, err := fn(ctx)
	if err != nil {
		return nil, err
	}
	if labels == nil {
		labels = make(map[string]node.Node)
	}
	return &Handle{Context: ctx, Labels: labels}, nil
}
