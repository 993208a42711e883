package system

import (
	"time"

	"github.com/younwookim/dinolevel/internal/domain/node"
)

// Tween interpolates a node's scale linearly over a duration
type Tween struct {
	target    node.Node
	fromX     float64
	fromY     float64
	toX       float64
	toY       float64
	duration  float64 // seconds
	elapsed   float64
	yoyo      bool
	reversing bool
	done      bool

	// OnComplete runs once when the tween finishes (not when killed)
	OnComplete func()
}

// Target returns the tweened node
func (t *Tween) Target() node.Node { return t.target }

// Done reports whether the tween finished or was killed
func (t *Tween) Done() bool { return t.done }

// Reversing reports whether a yoyo tween is on its way back
func (t *Tween) Reversing() bool { return t.reversing }

// advance moves the tween forward by dt and applies the new scale
func (t *Tween) advance(dt float64) {
	if t.done {
		return
	}
	if t.duration <= 0 {
		t.finish()
		return
	}

	t.elapsed += dt
	for {
		p := t.elapsed / t.duration
		if p < 1 {
			t.apply(p)
			return
		}
		if t.yoyo && !t.reversing {
			t.reversing = true
			t.elapsed -= t.duration
			continue
		}
		t.finish()
		return
	}
}

func (t *Tween) apply(p float64) {
	fromX, fromY, toX, toY := t.fromX, t.fromY, t.toX, t.toY
	if t.reversing {
		fromX, fromY, toX, toY = toX, toY, fromX, fromY
	}
	t.target.SetScale(lerp(fromX, toX, p), lerp(fromY, toY, p))
}

func (t *Tween) finish() {
	if t.yoyo {
		t.target.SetScale(t.fromX, t.fromY)
	} else {
		t.target.SetScale(t.toX, t.toY)
	}
	t.done = true
	if t.OnComplete != nil {
		t.OnComplete()
	}
}

func lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}

// TweenSystem owns the running tweens of one scene
type TweenSystem struct {
	tweens []*Tween
}

// NewTweenSystem creates an empty tween system
func NewTweenSystem() *TweenSystem {
	return &TweenSystem{}
}

// ScaleTo starts a tween from the target's current scale to (sx, sy).
// With yoyo the tween plays back to the starting scale, doubling its length.
func (s *TweenSystem) ScaleTo(target node.Node, sx, sy float64, duration time.Duration, yoyo bool) *Tween {
	fromX, fromY := target.Scale()
	t := &Tween{
		target:   target,
		fromX:    fromX,
		fromY:    fromY,
		toX:      sx,
		toY:      sy,
		duration: duration.Seconds(),
		yoyo:     yoyo,
	}
	s.tweens = append(s.tweens, t)
	return t
}

// Update advances every tween by dt seconds and drops finished ones.
// Tweens whose target was destroyed are dropped without completing.
func (s *TweenSystem) Update(dt float64) {
	// Snapshot: OnComplete may start new tweens
	running := s.tweens
	s.tweens = nil

	for _, t := range running {
		if t.target.Destroyed() {
			t.done = true
			continue
		}
		t.advance(dt)
	}

	kept := make([]*Tween, 0, len(running)+len(s.tweens))
	for _, t := range running {
		if !t.done {
			kept = append(kept, t)
		}
	}
	s.tweens = append(kept, s.tweens...)
}

// KillTweensOf stops every tween on target, leaving its scale as is
func (s *TweenSystem) KillTweensOf(target node.Node) {
	kept := s.tweens[:0]
	for _, t := range s.tweens {
		if t.target == target {
			t.done = true
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = kept
}

// IsTweening reports whether target has a running tween
func (s *TweenSystem) IsTweening(target node.Node) bool {
	for _, t := range s.tweens {
		if t.target == target && !t.done {
			return true
		}
	}
	return false
}

// Len returns the number of running tweens
func (s *TweenSystem) Len() int {
	return len(s.tweens)
}

// Clear kills every tween
func (s *TweenSystem) Clear() {
	for _, t := range s.tweens {
		t.done = true
	}
	s.tweens = nil
}
