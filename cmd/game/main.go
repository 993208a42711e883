package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/dinolevel/internal/application/game"
	"github.com/younwookim/dinolevel/internal/application/replay"
	"github.com/younwookim/dinolevel/internal/application/scene"
	"github.com/younwookim/dinolevel/internal/application/scene/level"
	"github.com/younwookim/dinolevel/internal/domain/node"
	"github.com/younwookim/dinolevel/internal/event"
	"github.com/younwookim/dinolevel/internal/infrastructure/asset"
	"github.com/younwookim/dinolevel/internal/infrastructure/config"
	"github.com/younwookim/dinolevel/internal/infrastructure/render"
)

type options struct {
	configDir string
	scenePath string
	watch     bool
	record    string
	replay    string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configDir, "config", "", "Config directory with game.json (default: embedded)")
	flag.StringVar(&o.scenePath, "scene", "", "Scene file to load instead of the embedded layout (e.g., -scene Level.yaml)")
	flag.BoolVar(&o.watch, "watch", false, "Reload the -scene file when it changes")
	flag.StringVar(&o.record, "record", "", "Record input to file (e.g., -record replay.json)")
	flag.StringVar(&o.replay, "replay", "", "Play back recorded input from file")
	flag.Parse()
	return o
}

func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadGame()
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadGame()
}

func textureFS(cfg *config.GameConfig) (fs.FS, error) {
	if cfg.Scene.AssetsDir != "" {
		return os.DirFS(cfg.Scene.AssetsDir), nil
	}
	return fs.Sub(assetsFS, "assets")
}

func main() {
	opts := parseFlags()

	cfg, err := loadConfig(opts.configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Scene.Start != level.Key {
		log.Fatalf("Unknown start scene %q", cfg.Scene.Start)
	}

	texFS, err := textureFS(cfg)
	if err != nil {
		log.Fatalf("Failed to open assets: %v", err)
	}
	textures := asset.NewTextures(texFS)
	fonts, err := asset.NewFonts()
	if err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	background := node.TextStyle{Color: cfg.Display.BackgroundColor}.RGBA()

	res := scene.Resources{
		Textures: textures,
		Fonts:    fonts,
		Renderer: render.NewRenderer(textures, fonts, background),
	}

	levelOpts := []level.Option{level.WithTopOnly(cfg.Input.TopOnly)}

	if opts.scenePath != "" {
		var reloader level.Reloader
		if opts.watch {
			watcher, err := config.NewWatcher(filepath.Dir(opts.scenePath))
			if err != nil {
				log.Fatalf("Failed to watch %s: %v", opts.scenePath, err)
			}
			defer func() { _ = watcher.Close() }()
			reloader = watcher
			log.Printf("Watching %s for changes", opts.scenePath)
		}
		levelOpts = append(levelOpts, level.WithSceneFile(opts.scenePath, reloader))
	} else if opts.watch {
		log.Printf("-watch has no effect without -scene")
	}

	if opts.replay != "" {
		data, err := replay.LoadReplay(opts.replay)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		log.Printf("Replaying %s (%d frames)", opts.replay, len(data.Frames))
		levelOpts = append(levelOpts, level.WithInput(replay.NewReplayer(*data)))
	}

	var recorder *replay.Recorder
	if opts.record != "" {
		recorder = replay.NewRecorder(level.Key)
		levelOpts = append(levelOpts, level.WithRecorder(recorder))
		log.Printf("Recording enabled: %s", opts.record)
	}

	lvl, err := level.New(res, levelOpts...)
	if err != nil {
		log.Fatalf("Failed to create scene: %v", err)
	}
	lvl.Events().On(event.SceneAwake, func(args ...any) {
		log.Printf("Scene %s awake", lvl.Key())
	})

	g := game.New(lvl, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetDT(1.0 / float64(cfg.Display.Framerate))

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale, cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.Framerate)

	runErr := ebiten.RunGame(g)
	g.Close()

	if recorder != nil {
		if err := recorder.Save(opts.record); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d frames)", opts.record, recorder.FrameCount())
		}
	}

	if runErr != nil {
		log.Fatal(runErr)
	}
}
