package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Display DisplayConfig `json:"display"`
	Scene   SceneConfig   `json:"scene"`
	Input   InputConfig   `json:"input"`
}

// DisplayConfig configures the window and frame rate
type DisplayConfig struct {
	Title           string `json:"title"`
	ScreenWidth     int    `json:"screenWidth"`
	ScreenHeight    int    `json:"screenHeight"`
	Scale           int    `json:"scale"`
	Framerate       int    `json:"framerate"`
	BackgroundColor string `json:"backgroundColor"` // "#rrggbb"
}

// SceneConfig selects the scene to start and where its assets live
type SceneConfig struct {
	Start     string `json:"start"`     // Scene key, e.g. "Level"
	AssetsDir string `json:"assetsDir"` // Texture directory; empty means embedded assets
}

// InputConfig configures pointer handling
type InputConfig struct {
	// TopOnly delivers pointer events to the topmost hit node only
	TopOnly bool `json:"topOnly"`
}

// Default returns the configuration used when game.json is absent
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			Title:           "Level",
			ScreenWidth:     800,
			ScreenHeight:    600,
			Scale:           1,
			Framerate:       60,
			BackgroundColor: "#000000",
		},
		Scene: SceneConfig{
			Start: "Level",
		},
		Input: InputConfig{
			TopOnly: true,
		},
	}
}
