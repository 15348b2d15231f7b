package corral

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a play script.
type scriptStep struct {
	Action string `json:"action"`           // "hold", "release", "space", "wait"
	Key    string `json:"key,omitempty"`    // "left", "right", "up", "down"
	Frames int    `json:"frames,omitempty"` // frame count for "wait"
}

// playScript is the top-level JSON structure.
type playScript struct {
	Steps []scriptStep `json:"steps"`
}

// Script is a pre-compiled sequence of per-frame input states for driving a
// Game through a scripted play session. Used by automated tests to reproduce
// multi-second interactions deterministically.
type Script struct {
	frames []InputFrame
}

// LoadScript parses a JSON play script and compiles it into per-frame input.
// "hold" and "release" change the held direction keys without consuming a
// frame; "space" emits one frame with the space press; "wait" emits the
// current held state for the given number of frames.
func LoadScript(jsonData []byte) (*Script, error) {
	var script playScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("corral: parse play script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("corral: parse play script: no steps")
	}

	var held InputFrame
	var frames []InputFrame
	for i, st := range script.Steps {
		switch st.Action {
		case "hold", "release":
			down := st.Action == "hold"
			switch st.Key {
			case "left":
				held.Left = down
			case "right":
				held.Right = down
			case "up":
				held.Up = down
			case "down":
				held.Down = down
			default:
				return nil, fmt.Errorf("corral: play script step %d: unknown key %q", i, st.Key)
			}
		case "space":
			f := held
			f.Space = true
			frames = append(frames, f)
		case "wait":
			for n := 0; n < st.Frames; n++ {
				frames = append(frames, held)
			}
		default:
			return nil, fmt.Errorf("corral: play script step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{frames: frames}, nil
}

// Len returns the number of frames the script spans.
func (s *Script) Len() int { return len(s.frames) }

// Frame returns the input state for frame i.
func (s *Script) Frame(i int) InputFrame { return s.frames[i] }

// Run advances the game through every frame of the script at a fixed dt.
func (s *Script) Run(g *Game, dt float64) {
	for _, f := range s.frames {
		g.Advance(dt, f)
	}
}
