package skyline

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a scene script.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	On       bool    `json:"on,omitempty"`
	Value    float64 `json:"value,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// script is the top-level JSON structure for a scene script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// knownActions lists every action a script may use.
var knownActions = map[string]bool{
	"wait": true, "surge": true, "city_surge": true,
	"rain": true, "speed": true, "screenshot": true,
}

// ScriptRunner sequences scene actions across frames for unattended runs
// such as capture sessions. Attach to a Scene via SetScript.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON scene script and returns a ScriptRunner ready to
// be attached via SetScript.
//
//	{"steps": [
//	  {"action": "rain", "on": true},
//	  {"action": "wait", "frames": 120},
//	  {"action": "speed", "value": 600, "duration": 2},
//	  {"action": "surge"},
//	  {"action": "screenshot", "label": "storm"}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse scene script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse scene script: no steps")
	}
	for i, st := range sc.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse scene script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScript attaches a ScriptRunner to the scene. The runner advances one
// step per Update call, before the scene simulates.
func (s *Scene) SetScript(runner *ScriptRunner) {
	s.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Scene.Update.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "surge":
		s.TriggerPowerSurge()
	case "city_surge":
		s.TriggerCitySurge()
	case "rain":
		s.SetRain(st.On)
	case "speed":
		s.SetSpeed(st.Value, st.Duration)
	case "screenshot":
		if s.ScreenshotFunc != nil {
			s.ScreenshotFunc(st.Label)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
