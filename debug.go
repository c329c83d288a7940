package skyline

import (
	"fmt"
	"os"
)

// debugLogInterval is the number of frames between debug stat lines.
const debugLogInterval = 120

// debugLog prints per-system activity to stderr.
func (s *Scene) debugLog(st Stats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[skyline] frame: %d | speed: %.1f | buildings: %d | stars: %d | steam: %d | rain: %d | clouds: %d\n",
		st.Frame, st.Speed, st.Buildings, st.Stars, st.Steam, st.Rain, st.Clouds)
}

// SetDebug toggles periodic stats logging.
func (s *Scene) SetDebug(debug bool) {
	s.debug = debug
}
