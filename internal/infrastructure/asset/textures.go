// Package asset resolves texture keys and font families for the scene renderer.
package asset

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
)

// MissingKey is the texture drawn in place of keys that cannot be resolved
const MissingKey = "__MISSING"

// missingSize is the edge length of the placeholder texture
const missingSize = 32

var colorMissing = color.RGBA{0, 255, 0, 255}

type textureEntry struct {
	data   []byte
	width  int
	height int
	image  *ebiten.Image
}

// Textures loads images from a filesystem by key.
//
// Key "dino" resolves to "dino.png" (then "dino.jpg") under the root.
// Frame sizes come from the image header, so Size never touches the GPU;
// the ebiten.Image is created on the first Get.
//
// Not safe for concurrent use; the game loop is the only caller.
type Textures struct {
	fsys    fs.FS
	entries map[string]*textureEntry
	missing map[string]bool
	logf    func(format string, args ...any)
}

// NewTextures creates a texture store reading from fsys
func NewTextures(fsys fs.FS) *Textures {
	return &Textures{
		fsys:    fsys,
		entries: make(map[string]*textureEntry),
		missing: make(map[string]bool),
		logf:    log.Printf,
	}
}

// Load reads and decodes the header of the texture for key.
// Loading an already loaded key is a no-op.
func (t *Textures) Load(key string) error {
	if _, ok := t.entries[key]; ok {
		return nil
	}

	var lastErr error
	for _, ext := range []string{".png", ".jpg"} {
		name := path.Clean(key + ext)
		data, err := fs.ReadFile(t.fsys, name)
		if err != nil {
			lastErr = err
			continue
		}

		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to decode texture %s: %w", name, err)
		}

		t.entries[key] = &textureEntry{data: data, width: cfg.Width, height: cfg.Height}
		return nil
	}
	return fmt.Errorf("failed to read texture %s: %w", key, lastErr)
}

// Has reports whether key resolves to a real texture
func (t *Textures) Has(key string) bool {
	return t.resolve(key) != nil
}

// Size returns the frame size for key, or the placeholder size when missing.
func (t *Textures) Size(key string) (int, int) {
	e := t.resolve(key)
	if e == nil {
		return missingSize, missingSize
	}
	return e.width, e.height
}

// Get returns the ebiten image for key, or the placeholder when missing.
func (t *Textures) Get(key string) (*ebiten.Image, error) {
	e := t.resolve(key)
	if e == nil {
		return t.placeholder(), nil
	}
	if e.image != nil {
		return e.image, nil
	}

	img, _, err := image.Decode(bytes.NewReader(e.data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", key, err)
	}
	e.image = ebiten.NewImageFromImage(img)
	e.data = nil
	return e.image, nil
}

// resolve loads key on demand. Failures are logged once per key.
func (t *Textures) resolve(key string) *textureEntry {
	if e, ok := t.entries[key]; ok {
		return e
	}
	if t.missing[key] {
		return nil
	}
	if err := t.Load(key); err != nil {
		t.missing[key] = true
		t.logf("Texture %q not found, using placeholder: %v", key, err)
		return nil
	}
	return t.entries[key]
}

func (t *Textures) placeholder() *ebiten.Image {
	if e, ok := t.entries[MissingKey]; ok && e.image != nil {
		return e.image
	}

	img := ebiten.NewImage(missingSize, missingSize)
	// Outline only, so the node bounds stay visible
	for i := 0; i < missingSize; i++ {
		img.Set(i, 0, colorMissing)
		img.Set(i, missingSize-1, colorMissing)
		img.Set(0, i, colorMissing)
		img.Set(missingSize-1, i, colorMissing)
	}
	t.entries[MissingKey] = &textureEntry{width: missingSize, height: missingSize, image: img}
	return img
}
