package pongora

import "github.com/vovakirdan/skies-of-pongora/internal/core"

// cycleTitle advances the requested window title to the next frame of the
// cycle. Frames are matched by address, not text, so repeated strings in
// the cycle are still visited in turn. A nil or foreign title restarts the
// cycle at the first frame.
func (g *Game) cycleTitle(ws *core.WindowSettings) {
	if len(g.titles) == 0 {
		return
	}
	for i := range g.titles {
		if ws.Title == &g.titles[i] {
			ws.Title = &g.titles[(i+1)%len(g.titles)]
			return
		}
	}
	ws.Title = &g.titles[0]
}
