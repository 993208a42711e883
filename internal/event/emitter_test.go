package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitter_ZeroValue(t *testing.T) {
	var e Emitter

	assert.False(t, e.Emit(SceneAwake), "No listeners should report false")
	assert.Equal(t, 0, e.ListenerCount(SceneAwake))
}

func TestEmitter_OnCalledInOrder(t *testing.T) {
	e := NewEmitter()
	var order []int

	e.On(Update, func(args ...any) { order = append(order, 1) })
	e.On(Update, func(args ...any) { order = append(order, 2) })
	e.On(Update, func(args ...any) { order = append(order, 3) })

	assert.True(t, e.Emit(Update))
	assert.Equal(t, []int{1, 2, 3}, order)

	e.Emit(Update)
	assert.Len(t, order, 6, "On listeners run on every emit")
}

func TestEmitter_PassesArgs(t *testing.T) {
	e := NewEmitter()
	var got []any

	e.On(PointerDown, func(args ...any) { got = args })
	e.Emit(PointerDown, 10, 20)

	require.Len(t, got, 2)
	assert.Equal(t, 10, got[0])
	assert.Equal(t, 20, got[1])
}

func TestEmitter_Once(t *testing.T) {
	e := NewEmitter()
	calls := 0

	e.Once(SceneAwake, func(args ...any) { calls++ })
	assert.Equal(t, 1, e.ListenerCount(SceneAwake))

	e.Emit(SceneAwake)
	e.Emit(SceneAwake)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, e.ListenerCount(SceneAwake))
}

func TestEmitter_Off(t *testing.T) {
	e := NewEmitter()
	a, b := 0, 0

	idA := e.On(Update, func(args ...any) { a++ })
	e.On(Update, func(args ...any) { b++ })

	assert.True(t, e.Off(Update, idA))
	assert.False(t, e.Off(Update, idA), "Second Off should report false")

	e.Emit(Update)
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
}

func TestEmitter_ListenerAddedDuringEmit(t *testing.T) {
	e := NewEmitter()
	late := 0

	e.On(Update, func(args ...any) {
		e.On(Update, func(args ...any) { late++ })
	})

	e.Emit(Update)
	assert.Equal(t, 0, late, "Listener added during emit waits for next emit")

	e.Emit(Update)
	assert.Equal(t, 1, late)
}

func TestEmitter_ReentrantOnce(t *testing.T) {
	e := NewEmitter()
	calls := 0

	e.Once(SceneAwake, func(args ...any) {
		calls++
		e.Emit(SceneAwake)
	})

	e.Emit(SceneAwake)
	assert.Equal(t, 1, calls, "Once listener must not run again from a nested emit")
}

func TestEmitter_RemoveAll(t *testing.T) {
	e := NewEmitter()
	noop := func(args ...any) {}

	e.On(Update, noop)
	e.On(Shutdown, noop)
	e.On(Destroy, noop)

	e.RemoveAll(Update)
	assert.Equal(t, 0, e.ListenerCount(Update))
	assert.Equal(t, 1, e.ListenerCount(Shutdown))

	e.RemoveAll()
	assert.Equal(t, 0, e.ListenerCount(Shutdown))
	assert.Equal(t, 0, e.ListenerCount(Destroy))

	// Still usable after clearing
	e.On(Update, noop)
	assert.Equal(t, 1, e.ListenerCount(Update))
}
