package replay

// FrameInput records pointer state for a single frame
type FrameInput struct {
	F  int  `json:"f"`           // Frame number
	MX int  `json:"mx"`          // MouseX
	MY int  `json:"my"`          // MouseY
	D  bool `json:"d,omitempty"` // Button held
	P  bool `json:"p,omitempty"` // Pressed this frame
	R  bool `json:"r,omitempty"` // Released this frame
}

// ReplayData contains all data needed to replay a scene session
type ReplayData struct {
	Version   string       `json:"version"`
	Scene     string       `json:"scene"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Version is written into new recordings
const Version = "1.0"
