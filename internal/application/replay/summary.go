package replay

import "github.com/younwookim/crypt/internal/application/sim"

// Summarize captures the outcome of a world at its current frame
func Summarize(w *sim.World) Summary {
	return Summary{
		Frames:       w.Frame,
		State:        w.State.String(),
		Health:       w.Player.Health,
		Tokens:       w.Player.Tokens,
		Kills:        w.Stats.Kills,
		RoomsCleared: w.Stats.RoomsCleared,
	}
}

// Run feeds every recorded frame to w and returns the resulting summary.
// Frames after the run finishes are still consumed and ignored, as they were live.
func Run(w *sim.World, r *Replayer) Summary {
	for {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		w.Step(in)
	}
	return Summarize(w)
}
