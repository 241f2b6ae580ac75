package pongora

import (
	"image/color"
	"math/rand"

	"github.com/vovakirdan/skies-of-pongora/internal/config"
	"github.com/vovakirdan/skies-of-pongora/internal/core"
)

// Palette is the set of colors one frame is drawn with.
type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
	Brick      color.RGBA
	POI        color.RGBA
	Trail      []color.RGBA // Newest to oldest
}

func newPalette(c config.Colors) Palette {
	return Palette{
		Background: c.Background,
		Foreground: c.Foreground,
		Brick:      c.Brick,
		POI:        c.Foreground,
		Trail:      append([]color.RGBA(nil), c.Trail...),
	}
}

// Inverted returns the palette with every color's RGB flipped.
func (p Palette) Inverted() Palette {
	out := Palette{
		Background: core.InvertRGB(p.Background),
		Foreground: core.InvertRGB(p.Foreground),
		Brick:      core.InvertRGB(p.Brick),
		POI:        core.InvertRGB(p.POI),
		Trail:      make([]color.RGBA, len(p.Trail)),
	}
	for i, c := range p.Trail {
		out.Trail[i] = core.InvertRGB(c)
	}
	return out
}

// randomized returns a copy of base with random foreground, brick, POI and
// trail colors. Trail alpha is kept so the fade still reads.
func randomized(rng *rand.Rand, base Palette) Palette {
	out := base
	out.Foreground = randomRGB(rng, 255)
	out.Brick = randomRGB(rng, 255)
	out.POI = randomRGB(rng, 255)
	out.Trail = make([]color.RGBA, len(base.Trail))
	for i, c := range base.Trail {
		out.Trail[i] = randomRGB(rng, c.A)
	}
	return out
}

func randomRGB(rng *rand.Rand, a uint8) color.RGBA {
	v := rng.Uint32()
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: a}
}
