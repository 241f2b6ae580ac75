package config

import (
	_ "embed"

	"github.com/go-gl/mathgl/mgl32"
)

//go:embed defaults/pongora.yaml
var defaultPongoraYAML []byte

//go:embed defaults/pongora_extended.yaml
var defaultExtendedYAML []byte

// Variant IDs with built-in defaults.
const (
	IDPongora  = "pongora"
	IDExtended = "pongora_extended"
)

// DefaultTitles is the window title cycle. The second and fourth frames
// are the same text.
var DefaultTitles = []string{
	"Skies of Pongora   <(^o^<)",
	"Skies of Pongora    <(^o^)>",
	"Skies of Pongora     (>^o^)>",
	"Skies of Pongora    <(^o^)>",
}

// DefaultTrail is the trail palette, newest to oldest.
var DefaultTrail = []string{
	"#604d29ff", "#624f29fc", "#69542df2", "#6a552df1", "#6b562ef0", "#6b562ef0",
	"#6d572eed", "#6f592feb", "#725b31e7", "#745d31e3", "#755e32e0", "#765f33de",
	"#7a6234d8", "#826838ca", "#977840a4", "#96773fa5", "#a07f4493", "#a1814590",
	"#9e7e4496", "#a6844887", "#a9864884", "#ad8a4a7c",
}

// DefaultPongoraConfig returns the classic layout: one flip POI above the
// court and four brick walls.
func DefaultPongoraConfig() PongoraConfig {
	return PongoraConfig{
		Layout: LayoutConfig{
			BrickWidth:    1.5,
			BrickHeight:   0.5,
			BrickPadding:  0.5,
			LayerRows:     7,
			CourtRadius:   mgl32.Vec2{8, 6},
			ExtremeRadius: mgl32.Vec2{40, 30},
			PaddleReach:   ReachCourt,
			POIs: []POISpec{
				{Position: mgl32.Vec2{0, 10}, Radius: 5, Flip: true},
			},
		},
		Physics: PhysicsConfig{
			BallRadius:        mgl32.Vec2{0.2, 0.2},
			BallVelocity:      mgl32.Vec2{-1, 0},
			VertPaddleRadius:  mgl32.Vec2{0.2, 1},
			HorizPaddleRadius: mgl32.Vec2{1, 0.2},
			PaddleInset:       0.5,
			Speed:             SpeedCurve{Base: 4, DoubleEvery: 4, Cap: 10},
			TrailLength:       1.3,
			POIOpacityInner:   0.5,
			POIOpacityOuter:   2,
		},
		Camera: CameraConfig{
			FollowBall:      true,
			Bounds:          mgl32.Vec2{8, 6},
			BoundsPerBounce: 0.25,
		},
		Window: WindowConfig{
			Width:         640,
			Height:        480,
			SizePerBounce: 20,
			Titles:        append([]string(nil), DefaultTitles...),
		},
		Palette: PaletteConfig{
			Background:    "#171714ff",
			Foreground:    "#d1bb54ff",
			Brick:         "#03fca1ff",
			Trail:         append([]string(nil), DefaultTrail...),
			RainbowPeriod: 0.15,
		},
		Gameplay: GameplayConfig{
			BricksPerPoint: 4,
		},
	}
}

// DefaultExtendedConfig returns the extended layout: paddles at the arena
// edge, a rainbow POI, a portal pair and fixed blocks in the corners.
func DefaultExtendedConfig() PongoraConfig {
	cfg := DefaultPongoraConfig()
	cfg.Layout.PaddleReach = ReachFar
	cfg.Layout.POIs = []POISpec{
		{Position: mgl32.Vec2{0, 10}, Radius: 5, Flip: true},
		{Position: mgl32.Vec2{0, -10}, Radius: 3, Rainbow: true},
		{Position: mgl32.Vec2{-30, -22}, Radius: 1.5, Starting: true},
		{Position: mgl32.Vec2{30, 22}, Radius: 2, EndPortal: true},
	}
	cfg.Layout.Blocks = []BlockSpec{
		{Position: mgl32.Vec2{37, 27}, Radius: mgl32.Vec2{1.5, 1.5}, Warp: true},
		{Position: mgl32.Vec2{-37, 27}, Radius: mgl32.Vec2{1.5, 1.5}, Warp: true},
		{Position: mgl32.Vec2{37, -27}, Radius: mgl32.Vec2{1.5, 1.5}, Warp: true},
		{Position: mgl32.Vec2{-37, -27}, Radius: mgl32.Vec2{1.5, 1.5}, Warp: true},
		{Position: mgl32.Vec2{-30, -18}, Radius: mgl32.Vec2{4, 0.25}},
		{Position: mgl32.Vec2{-25.5, -22}, Radius: mgl32.Vec2{0.25, 4}},
	}
	return cfg
}

// DefaultFor returns the hard-coded defaults for a variant ID.
func DefaultFor(id string) PongoraConfig {
	if id == IDExtended {
		return DefaultExtendedConfig()
	}
	return DefaultPongoraConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(id string) []byte {
	switch id {
	case IDPongora:
		return defaultPongoraYAML
	case IDExtended:
		return defaultExtendedYAML
	default:
		return nil
	}
}
