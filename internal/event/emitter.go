// Package event provides a small synchronous event emitter.
//
// Scenes, display nodes and components each own an Emitter. Listeners run
// on the caller's goroutine, in registration order, inside Emit.
package event

// Well-known event names
const (
	SceneAwake  = "scene-awake"
	Update      = "update"
	Shutdown    = "shutdown"
	Destroy     = "destroy"
	PointerDown = "pointerdown"
	PointerUp   = "pointerup"
)

// Listener receives the arguments passed to Emit.
type Listener func(args ...any)

// ListenerID identifies a registered listener so it can be removed with Off.
type ListenerID uint64

type entry struct {
	id   ListenerID
	fn   Listener
	once bool
}

// Emitter dispatches named events to registered listeners.
// The zero value is ready to use. Not safe for concurrent use.
type Emitter struct {
	listeners map[string][]entry
	nextID    ListenerID
}

// NewEmitter creates an empty emitter
func NewEmitter() *Emitter {
	return &Emitter{}
}

// On registers fn for every emission of name.
func (e *Emitter) On(name string, fn Listener) ListenerID {
	return e.add(name, fn, false)
}

// Once registers fn for the next emission of name only.
func (e *Emitter) Once(name string, fn Listener) ListenerID {
	return e.add(name, fn, true)
}

func (e *Emitter) add(name string, fn Listener, once bool) ListenerID {
	if e.listeners == nil {
		e.listeners = make(map[string][]entry)
	}
	e.nextID++
	e.listeners[name] = append(e.listeners[name], entry{id: e.nextID, fn: fn, once: once})
	return e.nextID
}

// Off removes the listener with the given id. Returns false if it was not registered.
func (e *Emitter) Off(name string, id ListenerID) bool {
	list := e.listeners[name]
	for i, l := range list {
		if l.id != id {
			continue
		}
		next := make([]entry, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		e.setList(name, next)
		return true
	}
	return false
}

// Emit calls every listener registered for name with args.
// Returns true if at least one listener ran.
//
// The listener set is snapshotted before dispatch: listeners added during
// Emit wait for the next emission, listeners removed during Emit still run.
func (e *Emitter) Emit(name string, args ...any) bool {
	list := e.listeners[name]
	if len(list) == 0 {
		return false
	}

	snapshot := make([]entry, len(list))
	copy(snapshot, list)

	// Drop once-listeners before calling them so re-entrant emits skip them
	kept := list[:0:0]
	for _, l := range list {
		if !l.once {
			kept = append(kept, l)
		}
	}
	e.setList(name, kept)

	for _, l := range snapshot {
		l.fn(args...)
	}
	return true
}

// ListenerCount returns the number of listeners registered for name.
func (e *Emitter) ListenerCount(name string) int {
	return len(e.listeners[name])
}

// RemoveAll drops every listener. With names, only those events are cleared.
func (e *Emitter) RemoveAll(names ...string) {
	if len(names) == 0 {
		e.listeners = nil
		return
	}
	for _, name := range names {
		delete(e.listeners, name)
	}
}

func (e *Emitter) setList(name string, list []entry) {
	if len(list) == 0 {
		delete(e.listeners, name)
		return
	}
	e.listeners[name] = list
}
