package tui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skies-of-pongora/internal/core"
	"github.com/vovakirdan/skies-of-pongora/internal/render"
)

// halfBlock paints the top half of a cell in the foreground color and
// leaves the bottom half to the background, giving two pixels per cell.
const halfBlock = '▀'

// faintOpacity is the window opacity below which the frame renders faint.
const faintOpacity = 0.5

// paintScreen copies a raster into a screen, two raster rows per cell row.
func paintScreen(r *render.Raster, s *core.Screen) {
	for y := range s.Height() {
		for x := range s.Width() {
			s.SetCell(x, y, core.Cell{
				Rune: halfBlock,
				Fg:   r.At(x, 2*y),
				Bg:   r.At(x, 2*y+1),
			})
		}
	}
}

// hexColor formats a color for lipgloss, dropping alpha.
func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// cellStyle builds the style for one run of cells. Transparent colors
// fall back to the terminal default.
func cellStyle(re *lipgloss.Renderer, fg, bg color.RGBA, faint bool) lipgloss.Style {
	st := re.NewStyle()
	if fg.A != 0 {
		st = st.Foreground(hexColor(fg))
	}
	if bg.A != 0 {
		st = st.Background(hexColor(bg))
	}
	if faint {
		st = st.Faint(true)
	}
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(re *lipgloss.Renderer, s *core.Screen, faint bool) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(re, start.Fg, start.Bg, faint).Render(run.String()))
		}
	}
	return sb.String()
}

// statusLine describes the game state and the window the game asked for,
// since a terminal cannot move or resize itself.
func statusLine(title string, state core.GameState, ws core.WindowSettings) string {
	var modes []string
	if state.Flipped {
		modes = append(modes, "flipped")
	}
	if state.Rainbow {
		modes = append(modes, "rainbow")
	}
	mode := "normal"
	if len(modes) > 0 {
		mode = strings.Join(modes, "+")
	}

	return fmt.Sprintf(" %s | score %d | bricks %d | %s | window %dx%d at %d,%d | q quit, r restart",
		title,
		state.Score,
		state.BricksRemaining,
		mode,
		ws.Size.X, ws.Size.Y,
		ws.Position.X, ws.Position.Y,
	)
}
