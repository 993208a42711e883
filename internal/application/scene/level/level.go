// Package level provides the "Level" scene: a clickable dino image and a
// title line.
package level

import (
	_ "embed"
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/dinolevel/internal/application/component"
	"github.com/younwookim/dinolevel/internal/application/replay"
	"github.com/younwookim/dinolevel/internal/application/scene"
	"github.com/younwookim/dinolevel/internal/application/state"
	"github.com/younwookim/dinolevel/internal/application/system"
	"github.com/younwookim/dinolevel/internal/domain/node"
	"github.com/younwookim/dinolevel/internal/event"
	"github.com/younwookim/dinolevel/internal/infrastructure/config"
)

// Key is the name the scene registers under
const Key = "Level"

//go:embed Level.yaml
var levelYAML []byte

// DefaultScene parses the embedded layout
func DefaultScene() (*config.SceneFile, error) {
	return config.ParseScene(levelYAML, "Level.yaml")
}

// InputSource supplies pointer state once per frame
type InputSource interface {
	GetInput() system.InputState
}

// Reloader reports changed scene files without blocking
type Reloader interface {
	Poll() (string, bool)
}

// Level is the scene. Its event channel lives as long as the Level value,
// so listeners may subscribe before Create.
type Level struct {
	def        *config.SceneFile
	res        scene.Resources
	components component.Registry
	events     *event.Emitter
	ctx        *scene.Context
	handle     *scene.Handle
	state      state.SceneState

	input      *system.InputSystem
	source     InputSource
	recorder   *replay.Recorder
	reloader   Reloader
	sourcePath string
	opts       []Option
}

// Option configures a Level
type Option func(*Level)

// WithScene replaces the embedded layout
func WithScene(def *config.SceneFile) Option {
	return func(l *Level) { l.def = def }
}

// WithSceneFile loads the layout from path and reloads it when reloader
// reports a change to the same path.
func WithSceneFile(path string, reloader Reloader) Option {
	return func(l *Level) {
		l.sourcePath = path
		l.reloader = reloader
	}
}

// WithComponents replaces the component registry
func WithComponents(reg component.Registry) Option {
	return func(l *Level) { l.components = reg }
}

// WithInput sets the pointer source; the live cursor is used by default
func WithInput(src InputSource) Option {
	return func(l *Level) { l.source = src }
}

// WithRecorder records every frame's pointer state
func WithRecorder(rec *replay.Recorder) Option {
	return func(l *Level) { l.recorder = rec }
}

// WithTopOnly controls whether only the topmost node receives clicks
func WithTopOnly(topOnly bool) Option {
	return func(l *Level) { l.input = system.NewInputSystem(topOnly) }
}

// New creates the scene. The layout and its component names are checked
// here, so Create itself cannot fail.
func New(res scene.Resources, opts ...Option) (*Level, error) {
	l := &Level{
		res:        res,
		components: component.DefaultRegistry(),
		events:     event.NewEmitter(),
		state:      state.StatePending,
		input:      system.NewInputSystem(true),
		opts:       opts,
	}
	for _, opt := range opts {
		opt(l)
	}

	if l.def == nil && l.sourcePath != "" {
		def, err := config.LoadSceneFile(l.sourcePath)
		if err != nil {
			return nil, err
		}
		l.def = def
	}
	if l.def == nil {
		def, err := DefaultScene()
		if err != nil {
			return nil, err
		}
		l.def = def
	}

	if err := l.validate(); err != nil {
		return nil, err
	}
	if l.source == nil {
		l.source = l.input
	}
	return l, nil
}

func (l *Level) validate() error {
	if err := l.def.Validate(); err != nil {
		return fmt.Errorf("invalid scene %s: %w", l.def.Key, err)
	}
	for _, obj := range l.def.Objects {
		for _, name := range obj.Components {
			if !l.components.Has(name) {
				return fmt.Errorf("invalid scene %s: object %s: unknown component %q", l.def.Key, obj.Label, name)
			}
		}
	}
	return nil
}

// Key implements scene.Scene
func (l *Level) Key() string { return Key }

// Events returns the scene's event channel
func (l *Level) Events() *event.Emitter { return l.events }

// State returns the lifecycle state
func (l *Level) State() state.SceneState { return l.state }

// Nodes returns the display list, or nil before Create
func (l *Level) Nodes() *node.DisplayList {
	if l.ctx == nil {
		return nil
	}
	return l.ctx.Nodes()
}

// Context returns the construction context of the current run, or nil
func (l *Level) Context() *scene.Context { return l.ctx }

// Handle returns the nodes built by the last Create, or nil
func (l *Level) Handle() *scene.Handle { return l.handle }

// Create builds the scene contents. Calling it again tears down the
// previous contents first.
func (l *Level) Create() {
	if l.ctx != nil {
		l.shutdown()
	}
	l.state = state.StateCreating
	l.EditorCreate()
	l.state = state.StateRunning
}

// EditorCreate builds the objects of the layout, attaches their components
// and announces scene-awake.
func (l *Level) EditorCreate() {
	l.ctx = scene.NewContext(Key, l.events, l.res)

	handle, err := scene.Build(l.ctx, l.build)
	if err != nil {
		// Components were validated in New
		panic(err)
	}
	l.handle = handle

	l.ctx.Events.Emit(event.SceneAwake)
}

func (l *Level) build(ctx *scene.Context) (map[string]node.Node, error) {
	labels := make(map[string]node.Node, len(l.def.Objects))
	created := make([]node.Node, len(l.def.Objects))

	for i, obj := range l.def.Objects {
		var n node.Node
		switch obj.Type {
		case config.ObjectImage:
			n = ctx.Add.Image(obj.X, obj.Y, obj.Texture)
		case config.ObjectText:
			txt := ctx.Add.Text(obj.X, obj.Y, "", node.TextStyle{})
			txt.SetText(obj.Text)
			txt.SetStyle(textStyle(obj.Style))
			n = txt
		}
		n.SetName(obj.Label)
		created[i] = n
		if obj.Label != "" {
			labels[obj.Label] = n
		}
	}

	// Components go on after every object exists
	for i, obj := range l.def.Objects {
		for _, name := range obj.Components {
			if _, err := l.components.Attach(name, created[i], ctx); err != nil {
				return nil, err
			}
		}
	}

	return labels, nil
}

func textStyle(s config.StyleDef) node.TextStyle {
	return node.TextStyle{
		FontFamily: s.FontFamily,
		FontSize:   s.FontSize,
		Color:      s.Color,
		Align:      s.Align,
	}
}

// Update implements scene.Scene
func (l *Level) Update(dt float64) (scene.Scene, error) {
	if next := l.checkReload(); next != nil {
		return next, nil
	}
	if !l.state.Ready() {
		return nil, nil
	}

	input := l.source.GetInput()
	if l.recorder != nil {
		l.recorder.RecordFrame(input)
	}
	l.input.Dispatch(l.ctx.Nodes(), input)

	l.ctx.Events.Emit(event.Update, dt)
	l.ctx.Tweens.Update(dt)
	l.ctx.Nodes().Prune()
	return nil, nil
}

// checkReload returns a fresh Level when the scene file changed on disk
func (l *Level) checkReload() scene.Scene {
	if l.reloader == nil {
		return nil
	}
	path, ok := l.reloader.Poll()
	if !ok || filepath.Clean(path) != filepath.Clean(l.sourcePath) {
		return nil
	}

	next, err := New(l.res, l.opts...)
	if err != nil {
		log.Printf("Scene reload failed, keeping current layout: %v", err)
		return nil
	}
	// Listeners stay subscribed across reloads
	next.events = l.events
	log.Printf("Scene reloaded: %s", path)
	return next
}

// Draw implements scene.Scene
func (l *Level) Draw(screen *ebiten.Image) {
	if l.ctx == nil || l.res.Renderer == nil {
		return
	}
	l.res.Renderer.Draw(screen, l.ctx.Nodes())
}

// OnEnter implements scene.Scene
func (l *Level) OnEnter() {
	l.Create()
}

// OnExit implements scene.Scene
func (l *Level) OnExit() {
	l.shutdown()
}

func (l *Level) shutdown() {
	if l.ctx == nil {
		return
	}
	l.ctx.Events.Emit(event.Shutdown)
	l.ctx.Tweens.Clear()
	l.ctx.Nodes().DestroyAll()
	l.ctx = nil
	l.handle = nil
	l.state = state.StateShutdown
}
