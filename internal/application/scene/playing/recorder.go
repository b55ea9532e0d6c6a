package playing

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/younwookim/crypt/internal/application/replay"
	"github.com/younwookim/crypt/internal/application/system"
)

// Recorder handles input recording
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder starts a recording session for one run
func NewRecorder(seed int64, world string) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:   replay.Version,
			Session:   uuid.NewString(),
			Seed:      seed,
			World:     world,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]replay.FrameInput, 0, 3600), // ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(input system.InputState) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, replay.NewFrameInput(r.frame, input))
	r.frame++
}

// Finish stores the run outcome and stops recording
func (r *Recorder) Finish(summary replay.Summary) {
	r.data.Summary = &summary
	r.recording = false
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	// buffered writes surface their errors on close
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close replay file: %w", err)
	}
	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Session returns the recording's session id
func (r *Recorder) Session() string {
	return r.data.Session
}

// Data returns the recorded data
func (r *Recorder) Data() replay.ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
