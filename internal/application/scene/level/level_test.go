package level

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/dinolevel/internal/application/component"
	"github.com/younwookim/dinolevel/internal/application/replay"
	"github.com/younwookim/dinolevel/internal/application/scene"
	"github.com/younwookim/dinolevel/internal/application/state"
	"github.com/younwookim/dinolevel/internal/domain/node"
	"github.com/younwookim/dinolevel/internal/event"
	"github.com/younwookim/dinolevel/internal/infrastructure/config"
)

// dinoTextures reports a 100x60 frame for every key
type dinoTextures struct{}

func (dinoTextures) Size(string) (int, int) { return 100, 60 }

// fakeReloader hands out queued paths
type fakeReloader struct {
	paths []string
}

func (f *fakeReloader) Poll() (string, bool) {
	if len(f.paths) == 0 {
		return "", false
	}
	p := f.paths[0]
	f.paths = f.paths[1:]
	return p, true
}

func testResources() scene.Resources {
	return scene.Resources{Textures: dinoTextures{}}
}

func newTestLevel(t *testing.T, opts ...Option) *Level {
	t.Helper()
	l, err := New(testResources(), opts...)
	require.NoError(t, err)
	return l
}

func TestDefaultScene(t *testing.T) {
	def, err := DefaultScene()
	require.NoError(t, err)

	assert.Equal(t, Key, def.Key)
	require.Len(t, def.Objects, 2)
}

func TestLevel_Key(t *testing.T) {
	l := newTestLevel(t)

	assert.Equal(t, "Level", l.Key())
	assert.Equal(t, state.StatePending, l.State())
	assert.Nil(t, l.Nodes(), "No nodes before Create")
	assert.Nil(t, l.Handle())
}

func TestLevel_CreateBuildsOneImageAndOneText(t *testing.T) {
	l := newTestLevel(t)
	l.Create()

	nodes := l.Nodes()
	require.NotNil(t, nodes)
	assert.Equal(t, 2, nodes.Len())
	assert.Len(t, nodes.Images(), 1)
	assert.Len(t, nodes.Texts(), 1)
	assert.Equal(t, state.StateRunning, l.State())
}

func TestLevel_ImageNode(t *testing.T) {
	l := newTestLevel(t)
	l.Create()

	img := l.Nodes().Images()[0]
	x, y := img.Position()
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 218.0, y)
	assert.Equal(t, "dino", img.Texture())
	assert.Equal(t, "dino", img.Name())
	assert.Same(t, img, l.Handle().Node("dino"))
}

func TestLevel_TextNode(t *testing.T) {
	l := newTestLevel(t)
	l.Create()

	txt := l.Nodes().Texts()[0]
	x, y := txt.Position()
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 408.0, y)
	assert.Equal(t, "Phaser 3 + Phaser Editor 2D", txt.Text())
	assert.Equal(t, "Arial", txt.Style().FontFamily)
	assert.Equal(t, "30px", txt.Style().FontSize)
	assert.Same(t, txt, l.Handle().Node("text_1"))
}

func TestLevel_SceneAwakeOncePerCreate(t *testing.T) {
	l := newTestLevel(t)

	calls := 0
	nodesAtAwake := -1
	l.Events().On(event.SceneAwake, func(args ...any) {
		calls++
		nodesAtAwake = l.Nodes().Len()
		assert.Empty(t, args, "scene-awake carries no payload")
		assert.Equal(t, state.StateCreating, l.State(), "Awake happens during construction")
	})

	l.Create()
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, nodesAtAwake, "Both nodes exist before scene-awake")

	l.Create()
	assert.Equal(t, 2, calls, "One emission per Create")
}

func TestLevel_RecreateReplacesNodes(t *testing.T) {
	l := newTestLevel(t)
	l.Create()
	first := l.Nodes().Images()[0]

	l.Create()

	assert.True(t, first.Destroyed(), "Previous contents are torn down")
	assert.Equal(t, 2, l.Nodes().Len())
	assert.NotSame(t, first, l.Nodes().Images()[0])
}

func TestLevel_IndependentInstances(t *testing.T) {
	a := newTestLevel(t)
	b := newTestLevel(t)
	a.Create()
	b.Create()

	imgA := a.Nodes().Images()[0]
	imgB := b.Nodes().Images()[0]
	require.NotSame(t, imgA, imgB)
	assert.NotSame(t, a.Nodes(), b.Nodes())

	imgA.SetPosition(0, 0)
	a.Nodes().Texts()[0].SetText("changed")

	x, y := imgB.Position()
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 218.0, y)
	assert.Equal(t, "Phaser 3 + Phaser Editor 2D", b.Nodes().Texts()[0].Text())
}

func TestLevel_ImageIsClickableAfterCreate(t *testing.T) {
	data := replay.ReplayData{}
	data.Click(400, 218)
	l := newTestLevel(t, WithInput(replay.NewReplayer(data)))
	l.OnEnter()

	img := l.Nodes().Images()[0]
	assert.True(t, img.Interactive(), "PushOnClick enables input on scene-awake")

	// Press frame: tween starts and advances
	next, err := l.Update(0.04)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.True(t, l.Context().Tweens.IsTweening(img))
	sx, _ := img.Scale()
	assert.InDelta(t, 0.9, sx, 1e-9)

	// Release frame and idle frames: tween returns to rest
	for i := 0; i < 10; i++ {
		_, err = l.Update(1.0 / 60)
		require.NoError(t, err)
	}
	sx, sy := img.Scale()
	assert.Equal(t, 1.0, sx)
	assert.Equal(t, 1.0, sy)
}

func TestLevel_ClickOutsideDoesNothing(t *testing.T) {
	data := replay.ReplayData{}
	data.Click(10, 10)
	l := newTestLevel(t, WithInput(replay.NewReplayer(data)))
	l.OnEnter()

	_, err := l.Update(1.0 / 60)
	require.NoError(t, err)
	assert.Equal(t, 0, l.Context().Tweens.Len())
}

func TestLevel_UpdateEmitsUpdateEvent(t *testing.T) {
	l := newTestLevel(t, WithInput(replay.NewReplayer(replay.ReplayData{})))
	var got []float64
	l.Events().On(event.Update, func(args ...any) { got = append(got, args[0].(float64)) })

	_, err := l.Update(0.5)
	require.NoError(t, err)
	assert.Empty(t, got, "No updates before Create")

	l.Create()
	_, err = l.Update(0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, got)
}

func TestLevel_RecordsInput(t *testing.T) {
	data := replay.ReplayData{}
	data.Click(400, 218)
	rec := replay.NewRecorder(Key)
	l := newTestLevel(t, WithInput(replay.NewReplayer(data)), WithRecorder(rec))
	l.Create()

	for i := 0; i < 3; i++ {
		_, err := l.Update(1.0 / 60)
		require.NoError(t, err)
	}

	require.Equal(t, 3, rec.FrameCount())
	frames := rec.GetData().Frames
	assert.True(t, frames[0].P)
	assert.True(t, frames[1].R)
	assert.Equal(t, 400, frames[2].MX)
}

func TestLevel_OnExit(t *testing.T) {
	l := newTestLevel(t)
	shutdowns := 0
	l.Events().On(event.Shutdown, func(args ...any) { shutdowns++ })

	l.OnEnter()
	img := l.Nodes().Images()[0]
	l.OnExit()

	assert.Equal(t, 1, shutdowns)
	assert.True(t, img.Destroyed())
	assert.Nil(t, l.Nodes())
	assert.Equal(t, state.StateShutdown, l.State())

	l.OnExit()
	assert.Equal(t, 1, shutdowns, "Second exit is a no-op")
}

func TestLevel_DrawWithoutRenderer(t *testing.T) {
	l := newTestLevel(t)
	l.Create()

	assert.NotPanics(t, func() { l.Draw(nil) })
}

func TestNew_UnknownComponent(t *testing.T) {
	def, err := config.ParseScene([]byte(`
key: Level
objects:
  - {type: image, label: dino, x: 1, y: 2, texture: dino, components: [Spin]}
`), "test.yaml")
	require.NoError(t, err)

	_, err = New(testResources(), WithScene(def))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown component "Spin"`)
}

func TestNew_CustomRegistry(t *testing.T) {
	attached := 0
	reg := component.Registry{
		component.PushOnClickName: func(obj node.Node, ctx *scene.Context) any {
			attached++
			return nil
		},
	}

	l := newTestLevel(t, WithComponents(reg))
	l.Create()

	assert.Equal(t, 1, attached)
	assert.False(t, l.Nodes().Images()[0].Interactive())
}

func TestNew_FromSceneFileAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Level.yaml")
	require.NoError(t, os.WriteFile(path, levelYAML, 0o644))

	reloader := &fakeReloader{}
	l := newTestLevel(t, WithSceneFile(path, reloader), WithInput(replay.NewReplayer(replay.ReplayData{})))
	l.OnEnter()

	awakes := 0
	l.Events().On(event.SceneAwake, func(args ...any) { awakes++ })

	// Unrelated file: no reload
	reloader.paths = []string{filepath.Join(dir, "Other.yaml")}
	next, err := l.Update(1.0 / 60)
	require.NoError(t, err)
	assert.Nil(t, next)

	// Move the dino and reload
	moved := []byte(`
key: Level
objects:
  - {type: image, label: dino, x: 10, y: 20, texture: dino, components: [PushOnClick]}
`)
	require.NoError(t, os.WriteFile(path, moved, 0o644))
	reloader.paths = []string{path}

	next, err = l.Update(1.0 / 60)
	require.NoError(t, err)
	require.NotNil(t, next)

	nextLevel, ok := next.(*Level)
	require.True(t, ok)
	assert.Same(t, l.Events(), nextLevel.Events(), "Listeners survive reloads")

	l.OnExit()
	nextLevel.OnEnter()
	assert.Equal(t, 1, awakes)

	x, y := nextLevel.Nodes().Images()[0].Position()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
}

func TestLevel_ReloadFailureKeepsScene(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Level.yaml")
	require.NoError(t, os.WriteFile(path, levelYAML, 0o644))

	reloader := &fakeReloader{}
	l := newTestLevel(t, WithSceneFile(path, reloader), WithInput(replay.NewReplayer(replay.ReplayData{})))
	l.OnEnter()

	require.NoError(t, os.WriteFile(path, []byte("key: ["), 0o644))
	reloader.paths = []string{path}

	next, err := l.Update(1.0 / 60)
	require.NoError(t, err)
	assert.Nil(t, next)
	assert.Equal(t, 2, l.Nodes().Len())
}

func TestNew_MissingSceneFile(t *testing.T) {
	_, err := New(testResources(), WithSceneFile(filepath.Join(t.TempDir(), "nope.yaml"), nil))
	assert.Error(t, err)
}

func TestNew_InvalidSceneValue(t *testing.T) {
	def := &config.SceneFile{
		Key:     "Level",
		Objects: []config.ObjectDef{{Type: "sprite", Label: "x"}},
	}

	_, err := New(testResources(), WithScene(def))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown type "sprite"`)
}
