package tui

import (
	"time"

	"github.com/vovakirdan/arbolin/internal/core"
)

// holdWindow is how long a direction stays pressed after its last key
// event. Terminals report no key releases, so auto-repeat keeps a held key
// alive and letting go lets it lapse.
const holdWindow = 150 * time.Millisecond

// heldKeys tracks the remaining hold time of each direction.
type heldKeys struct {
	left [4]time.Duration
}

func (h *heldKeys) press(d Direction) {
	h.left[d] = holdWindow
	// opposite directions cancel instead of adding up to zero
	switch d {
	case DirUp:
		h.left[DirDown] = 0
	case DirDown:
		h.left[DirUp] = 0
	case DirLeft:
		h.left[DirRight] = 0
	case DirRight:
		h.left[DirLeft] = 0
	}
}

// vector sums the held directions into a unit-or-shorter vector.
func (h *heldKeys) vector() core.Vec {
	var v core.Vec
	for d, left := range h.left {
		if left > 0 {
			v = v.Add(dirVectors[d])
		}
	}
	return v.Normalize()
}

// decay ages every hold by dt.
func (h *heldKeys) decay(dt time.Duration) {
	for d := range h.left {
		h.left[d] = max(h.left[d]-dt, 0)
	}
}

func (h *heldKeys) release() {
	h.left = [4]time.Duration{}
}
