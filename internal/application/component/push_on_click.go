package component

import (
	"time"

	"github.com/younwookim/dinolevel/internal/application/scene"
	"github.com/younwookim/dinolevel/internal/domain/node"
	"github.com/younwookim/dinolevel/internal/event"
)

// PushOnClickName is the name scene files use for PushOnClick
const PushOnClickName = "PushOnClick"

const (
	pushScale    = 0.8
	pushDuration = 80 * time.Millisecond
)

// PushOnClick shrinks its node briefly when clicked, like a pressed button.
type PushOnClick struct {
	UserComponent

	restX, restY float64
}

// NewPushOnClick attaches the behavior to obj. Input is enabled on
// scene-awake, not here, so the node is fully configured first.
func NewPushOnClick(obj node.Node, ctx *scene.Context) *PushOnClick {
	p := &PushOnClick{}
	p.Attach(p, obj, ctx)
	return p
}

// Awake makes the node interactive and starts listening for clicks
func (p *PushOnClick) Awake() {
	obj := p.GameObject()
	obj.SetInteractive(true)
	p.restX, p.restY = obj.Scale()
	p.Listen(obj.Events(), event.PointerDown, p.push)
}

// Destroy stops any push in progress
func (p *PushOnClick) Destroy() {
	p.Scene().Tweens.KillTweensOf(p.GameObject())
}

// push restarts the tween from the rest scale so rapid clicks do not drift
func (p *PushOnClick) push(args ...any) {
	obj := p.GameObject()
	tweens := p.Scene().Tweens

	tweens.KillTweensOf(obj)
	obj.SetScale(p.restX, p.restY)
	tweens.ScaleTo(obj, p.restX*pushScale, p.restY*pushScale, pushDuration, true)
}
