package state

// SceneState represents where a scene is in its lifecycle
type SceneState int

const (
	StatePending SceneState = iota
	StateCreating
	StateRunning
	StateShutdown
)

// String returns the string representation of the scene state
func (s SceneState) String() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateCreating:
		return "Creating"
	case StateRunning:
		return "Running"
	case StateShutdown:
		return "Shutdown"
	default:
		return "Unknown"
	}
}

// Ready reports whether the scene finished construction and is live
func (s SceneState) Ready() bool {
	return s == StateRunning
}
