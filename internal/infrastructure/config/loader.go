package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json on top of Default.
// A missing file yields the defaults; a malformed one is an error.
func (l *Loader) LoadGame() (*GameConfig, error) {
	cfg := Default()

	data, err := fs.ReadFile(l.fsys, "game.json")
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game.json: %w", err)
	}

	return cfg, nil
}

// LoadScene loads a scene file by key from the scenes/ directory
func (l *Loader) LoadScene(key string) (*SceneFile, error) {
	return LoadSceneFS(l.fsys, "scenes/"+key+".yaml")
}

// Validate checks the values the game loop depends on
func (c *GameConfig) Validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Display.Framerate <= 0 {
		return fmt.Errorf("framerate must be positive, got %d", c.Display.Framerate)
	}
	if c.Display.Scale <= 0 {
		c.Display.Scale = 1
	}
	if c.Scene.Start == "" {
		return errors.New("scene.start must not be empty")
	}
	return nil
}
