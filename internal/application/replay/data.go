// Package replay stores recorded runs and plays their input back.
package replay

import "github.com/younwookim/crypt/internal/application/system"

// Version is the current replay file format
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	MX int  `json:"mx,omitempty"` // Move axis X (-1, 0, 1)
	MY int  `json:"my,omitempty"` // Move axis Y
	AX int  `json:"ax"`           // Aim X, screen pixels
	AY int  `json:"ay"`           // Aim Y
	A  bool `json:"a,omitempty"`  // Attack pressed
	P  bool `json:"p,omitempty"`  // Pause pressed
}

// NewFrameInput captures one frame of input
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		MX: in.MoveX,
		MY: in.MoveY,
		AX: in.AimX,
		AY: in.AimY,
		A:  in.Attack,
		P:  in.Pause,
	}
}

// Input converts the record back to the simulation's input snapshot
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		MoveX:  clampAxis(fi.MX),
		MoveY:  clampAxis(fi.MY),
		AimX:   fi.AX,
		AimY:   fi.AY,
		Attack: fi.A,
		Pause:  fi.P,
	}
}

// Summary is the outcome stored alongside the inputs so a re-simulation can be checked
type Summary struct {
	Frames       int    `json:"frames"`
	State        string `json:"state"`
	Health       int    `json:"health"`
	Tokens       int    `json:"tokens"`
	Kills        int    `json:"kills"`
	RoomsCleared int    `json:"roomsCleared"`
}

// ReplayData contains all data needed to replay a run
type ReplayData struct {
	Version   string       `json:"version"`
	Session   string       `json:"session"`
	Seed      int64        `json:"seed"`
	World     string       `json:"world"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	Summary   *Summary     `json:"summary,omitempty"`
}

func clampAxis(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
