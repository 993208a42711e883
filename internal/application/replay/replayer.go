package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/dinolevel/internal/application/system"
)

// Replayer handles input playback from recorded data.
// It satisfies the same GetInput shape as system.InputSystem.
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the input for the current frame and advances.
// ok is false once every frame was played.
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		MouseX:   fi.MX,
		MouseY:   fi.MY,
		Down:     fi.D,
		Pressed:  fi.P,
		Released: fi.R,
	}, true
}

// GetInput returns the next frame, or an idle state at the last pointer
// position when the recording is exhausted.
func (r *Replayer) GetInput() system.InputState {
	in, ok := r.Next()
	if ok {
		return in
	}
	if n := len(r.data.Frames); n > 0 {
		last := r.data.Frames[n-1]
		return system.InputState{MouseX: last.MX, MouseY: last.MY}
	}
	return system.InputState{}
}

// Finished reports whether every frame was played
func (r *Replayer) Finished() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Scene returns the key of the recorded scene
func (r *Replayer) Scene() string {
	return r.data.Scene
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data with the pointer resting at (mouseX, mouseY)
func CreateTestReplayData(frames int, mouseX, mouseY int) ReplayData {
	data := ReplayData{
		Version:   Version,
		Scene:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}

// Click appends a press on one frame and a release on the next
func (d *ReplayData) Click(x, y int) {
	f := len(d.Frames)
	d.Frames = append(d.Frames,
		FrameInput{F: f, MX: x, MY: y, D: true, P: true},
		FrameInput{F: f + 1, MX: x, MY: y, R: true},
	)
}
