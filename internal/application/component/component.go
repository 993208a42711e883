// Package component holds behaviors that attach to display nodes.
//
// A behavior embeds UserComponent and implements any of Awaker, Updater
// or Destroyer. Attach hooks those methods to the scene's events: Awake
// runs on scene-awake, Update on every update, Destroy when the node or
// the scene goes away.
package component

import (
	"fmt"
	"sort"

	"github.com/younwookim/dinolevel/internal/application/scene"
	"github.com/younwookim/dinolevel/internal/domain/node"
	"github.com/younwookim/dinolevel/internal/event"
)

// Awaker is implemented by components that start work once the scene is built
type Awaker interface {
	Awake()
}

// Updater is implemented by components that run every frame
type Updater interface {
	Update(dt float64)
}

// Destroyer is implemented by components that release resources on detach
type Destroyer interface {
	Destroy()
}

type subscription struct {
	emitter *event.Emitter
	name    string
	id      event.ListenerID
}

// UserComponent is the lifecycle plumbing shared by every behavior
type UserComponent struct {
	ctx        *scene.Context
	gameObject node.Node
	subs       []subscription
	detached   bool
}

// GameObject returns the node the component is attached to
func (c *UserComponent) GameObject() node.Node { return c.gameObject }

// Scene returns the context of the scene that owns the node
func (c *UserComponent) Scene() *scene.Context { return c.ctx }

// Detached reports whether the component stopped receiving events
func (c *UserComponent) Detached() bool { return c.detached }

// Listen subscribes fn on emitter for the component's lifetime
func (c *UserComponent) Listen(emitter *event.Emitter, name string, fn event.Listener) {
	if c.detached {
		return
	}
	id := emitter.On(name, fn)
	c.subs = append(c.subs, subscription{emitter: emitter, name: name, id: id})
}

// Attach binds self (which embeds c) to obj inside ctx
func (c *UserComponent) Attach(self any, obj node.Node, ctx *scene.Context) {
	c.ctx = ctx
	c.gameObject = obj

	if a, ok := self.(Awaker); ok {
		id := ctx.Events.Once(event.SceneAwake, func(args ...any) {
			if !c.detached {
				a.Awake()
			}
		})
		c.subs = append(c.subs, subscription{emitter: ctx.Events, name: event.SceneAwake, id: id})
	}

	if u, ok := self.(Updater); ok {
		c.Listen(ctx.Events, event.Update, func(args ...any) {
			if len(args) == 0 {
				return
			}
			if dt, ok := args[0].(float64); ok {
				u.Update(dt)
			}
		})
	}

	detach := func(args ...any) {
		if c.detached {
			return
		}
		c.detach()
		if d, ok := self.(Destroyer); ok {
			d.Destroy()
		}
	}
	c.Listen(obj.Events(), event.Destroy, detach)
	c.Listen(ctx.Events, event.Shutdown, detach)
}

func (c *UserComponent) detach() {
	c.detached = true
	for _, s := range c.subs {
		s.emitter.Off(s.name, s.id)
	}
	c.subs = nil
}

// Constructor creates a component bound to obj. The returned value is the
// component itself; scene builders are free to discard it.
type Constructor func(obj node.Node, ctx *scene.Context) any

// Registry maps the component names used in scene files to constructors
type Registry map[string]Constructor

// DefaultRegistry returns the built-in components
func DefaultRegistry() Registry {
	return Registry{
		PushOnClickName: func(obj node.Node, ctx *scene.Context) any {
			return NewPushOnClick(obj, ctx)
		},
	}
}

// Has reports whether name is registered
func (r Registry) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Names returns the registered names in sorted order
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Attach constructs the named component on obj
func (r Registry) Attach(name string, obj node.Node, ctx *scene.Context) (any, error) {
	ctor, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown component %q", name)
	}
	return ctor(obj, ctx), nil
}
