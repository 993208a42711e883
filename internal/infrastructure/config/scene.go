package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Object types a scene file may declare
const (
	ObjectImage = "image"
	ObjectText  = "text"
)

// SceneFile is the editor output describing a scene's initial contents.
// Objects are created in file order; components are attached after every
// object exists.
type SceneFile struct {
	Key     string      `yaml:"key"`
	Objects []ObjectDef `yaml:"objects"`
}

// ObjectDef describes one display object
type ObjectDef struct {
	Type       string   `yaml:"type"`
	Label      string   `yaml:"label"`
	X          float64  `yaml:"x"`
	Y          float64  `yaml:"y"`
	Texture    string   `yaml:"texture,omitempty"`
	Text       string   `yaml:"text,omitempty"`
	Style      StyleDef `yaml:"style,omitempty"`
	Components []string `yaml:"components,omitempty"`
}

// StyleDef mirrors the text style record of the editor
type StyleDef struct {
	FontFamily string `yaml:"fontFamily,omitempty"`
	FontSize   string `yaml:"fontSize,omitempty"`
	Color      string `yaml:"color,omitempty"`
	Align      string `yaml:"align,omitempty"`
}

// LoadSceneFile reads a scene file from disk
func LoadSceneFile(path string) (*SceneFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	return ParseScene(data, path)
}

// LoadSceneFS reads a scene file from fsys
func LoadSceneFS(fsys fs.FS, name string) (*SceneFile, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", name, err)
	}
	return ParseScene(data, name)
}

// ParseScene decodes and validates scene YAML. name is used in errors only.
func ParseScene(data []byte, name string) (*SceneFile, error) {
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", name, err)
	}
	if err := sf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", name, err)
	}
	return &sf, nil
}

// Validate checks that every object can be built
func (s *SceneFile) Validate() error {
	if s.Key == "" {
		return fmt.Errorf("scene key must not be empty")
	}
	labels := make(map[string]bool, len(s.Objects))
	for i, obj := range s.Objects {
		switch obj.Type {
		case ObjectImage:
			if obj.Texture == "" {
				return fmt.Errorf("object %d (%s): image requires a texture", i, obj.Label)
			}
		case ObjectText:
		default:
			return fmt.Errorf("object %d (%s): unknown type %q", i, obj.Label, obj.Type)
		}
		if obj.Label != "" {
			if labels[obj.Label] {
				return fmt.Errorf("object %d: duplicate label %q", i, obj.Label)
			}
			labels[obj.Label] = true
		}
	}
	return nil
}

// Object returns the object with the given label
func (s *SceneFile) Object(label string) (ObjectDef, bool) {
	for _, obj := range s.Objects {
		if obj.Label == label {
			return obj, true
		}
	}
	return ObjectDef{}, false
}
