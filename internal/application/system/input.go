package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/dinolevel/internal/domain/node"
	"github.com/younwookim/dinolevel/internal/event"
)

// InputState holds the pointer state for one frame
type InputState struct {
	MouseX   int
	MouseY   int
	Down     bool // Left button held
	Pressed  bool // Left button went down this frame
	Released bool // Left button went up this frame
}

// Pointer is passed as the first argument of pointer events
type Pointer struct {
	X, Y float64
}

// InputSystem turns pointer state into pointerdown/pointerup events on
// interactive nodes.
type InputSystem struct {
	topOnly bool
}

// NewInputSystem creates a new input system.
// With topOnly, only the topmost node under the pointer receives events.
func NewInputSystem(topOnly bool) *InputSystem {
	return &InputSystem{topOnly: topOnly}
}

// GetInput reads the current pointer state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		MouseX:   mx,
		MouseY:   my,
		Down:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

// Dispatch emits pointer events for input on the nodes of list.
// Returns the nodes that received an event, topmost first.
func (s *InputSystem) Dispatch(list *node.DisplayList, input InputState) []node.Node {
	if !input.Pressed && !input.Released {
		return nil
	}

	p := Pointer{X: float64(input.MouseX), Y: float64(input.MouseY)}
	hits := list.InteractiveAt(p.X, p.Y)
	if s.topOnly && len(hits) > 1 {
		hits = hits[:1]
	}

	for _, n := range hits {
		// A previous listener may have destroyed this node
		if n.Destroyed() {
			continue
		}
		if input.Pressed {
			n.Events().Emit(event.PointerDown, p)
		}
		if input.Released && !n.Destroyed() {
			n.Events().Emit(event.PointerUp, p)
		}
	}
	return hits
}
