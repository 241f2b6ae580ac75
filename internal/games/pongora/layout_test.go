package pongora

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/skies-of-pongora/internal/config"
	"github.com/vovakirdan/skies-of-pongora/internal/core"
)

func TestBuildLayoutClassic(t *testing.T) {
	cfg := config.DefaultPongoraConfig().Layout
	l := BuildLayout(cfg)

	if len(l.Bricks[Normal]) != 480 {
		t.Errorf("normal bricks = %d, expected 480", len(l.Bricks[Normal]))
	}
	if len(l.Bricks[Flipped]) != 448 {
		t.Errorf("flipped bricks = %d, expected 448", len(l.Bricks[Flipped]))
	}

	first := l.Bricks[Normal][0]
	if first.Center != (mgl32.Vec2{1, 6.5}) || first.Radius != (mgl32.Vec2{0.75, 0.25}) {
		t.Errorf("first brick = %v r %v, expected (1, 6.5) r (0.75, 0.25)", first.Center, first.Radius)
	}

	if len(l.POIs) != 1 || !l.POIs[0].Flip {
		t.Errorf("classic layout should have one flip POI, got %+v", l.POIs)
	}
	if len(l.Blocks) != 0 {
		t.Errorf("classic layout should have no blocks, got %d", len(l.Blocks))
	}
}

func TestBuildLayoutBricksOutsideCourt(t *testing.T) {
	cfg := config.DefaultPongoraConfig().Layout
	court := cfg.CourtRadius
	l := BuildLayout(cfg)

	for _, o := range []Orientation{Normal, Flipped} {
		for i, b := range l.Bricks[o] {
			outX := core.Abs(b.Center.X())-b.Radius.X() >= court.X()
			outY := core.Abs(b.Center.Y())-b.Radius.Y() >= court.Y()
			if !outX && !outY {
				t.Fatalf("%v brick %d at %v r %v intrudes into the court", o, i, b.Center, b.Radius)
			}
		}
	}
}

func TestBricksClearOfPaddles(t *testing.T) {
	g := newTestGame(t, config.DefaultPongoraConfig())

	for _, o := range []Orientation{Normal, Flipped} {
		for _, p := range g.Paddles() {
			for i, b := range g.layout.Bricks[o] {
				if _, _, hit := p.Box.Overlap(b.Box); hit {
					t.Errorf("%v brick %d at %v overlaps the paddle at %v", o, i, b.Center, p.Center)
				}
			}
		}
	}
}

func TestBuildLayoutFlippedIsTurned(t *testing.T) {
	l := BuildLayout(config.DefaultPongoraConfig().Layout)

	first := l.Bricks[Flipped][0]
	if first.Center != (mgl32.Vec2{0.5, 7.5}) || first.Radius != (mgl32.Vec2{0.25, 0.75}) {
		t.Errorf("first flipped brick = %v r %v, expected (0.5, 7.5) r (0.25, 0.75)", first.Center, first.Radius)
	}
	court := config.DefaultPongoraConfig().Layout.CourtRadius
	var edges int
	for i, b := range l.Bricks[Flipped] {
		switch b.Radius {
		case mgl32.Vec2{0.25, 0.75}:
			edges++
			if core.Abs(b.Center.Y())-b.Radius.Y() < court.Y() {
				t.Fatalf("flipped brick %d at %v should sit beyond the top or bottom edge", i, b.Center)
			}
		case mgl32.Vec2{0.75, 0.25}:
			if core.Abs(b.Center.X())-b.Radius.X() < court.X() {
				t.Fatalf("flipped brick %d at %v should sit beyond the left or right edge", i, b.Center)
			}
		default:
			t.Fatalf("flipped brick %d has radius %v", i, b.Radius)
		}
	}
	if edges != 240 {
		t.Errorf("flipped top and bottom bricks = %d, expected 240", edges)
	}
}

func TestBuildLayoutDeterministic(t *testing.T) {
	cfg := config.DefaultExtendedConfig().Layout
	a := BuildLayout(cfg)
	b := BuildLayout(cfg)

	if !reflect.DeepEqual(a, b) {
		t.Error("BuildLayout should produce identical layouts for identical configs")
	}
}

func TestBuildLayoutExtended(t *testing.T) {
	l := BuildLayout(config.DefaultExtendedConfig().Layout)

	var flips, rainbows, starts, ends int
	for _, p := range l.POIs {
		if p.Flip {
			flips++
		}
		if p.Rainbow {
			rainbows++
		}
		if p.Starting {
			starts++
		}
		if p.EndPortal {
			ends++
		}
	}
	if flips != 1 || rainbows != 1 || starts != 1 || ends != 1 {
		t.Errorf("POI flags = flip %d rainbow %d start %d end %d, expected one each", flips, rainbows, starts, ends)
	}

	start, ok := l.startingPOI()
	if !ok || start.Position != (mgl32.Vec2{-30, -22}) {
		t.Errorf("startingPOI() = %v, %v, expected (-30, -22)", start.Position, ok)
	}
	if len(l.Blocks) != 6 {
		t.Errorf("blocks = %d, expected 6", len(l.Blocks))
	}
}

func TestBuildLayoutWalls(t *testing.T) {
	l := BuildLayout(config.DefaultPongoraConfig().Layout)

	left := l.Walls[0]
	if left.Center != (mgl32.Vec2{-40.05, 0}) {
		t.Errorf("left wall center = %v, expected (-40.05, 0)", left.Center)
	}
	top := l.Walls[3]
	if top.Radius != (mgl32.Vec2{40, wallRadius}) {
		t.Errorf("top wall radius = %v, expected (40, %v)", top.Radius, wallRadius)
	}
}

func TestSteps(t *testing.T) {
	tests := []struct {
		start, limit, step float32
		expected           int
	}{
		{1, 15, 2, 8},
		{6.5, 13.5, 1, 8},
		{0, 0, 1, 1},
		{1, 0, 1, 0},
		{0, 10, 0, 0},
	}

	for _, tt := range tests {
		got := steps(tt.start, tt.limit, tt.step)
		if len(got) != tt.expected {
			t.Errorf("steps(%v, %v, %v) has %d values, expected %d", tt.start, tt.limit, tt.step, len(got), tt.expected)
		}
	}
}

func TestLiveBricks(t *testing.T) {
	l := BuildLayout(config.DefaultPongoraConfig().Layout)
	l.Bricks[Normal][0].Deleted = true
	l.Bricks[Normal][5].Deleted = true

	if got := l.LiveBricks(Normal); got != 478 {
		t.Errorf("LiveBricks(Normal) = %d, expected 478", got)
	}
	if got := l.LiveBricks(Flipped); got != 448 {
		t.Errorf("LiveBricks(Flipped) = %d, expected 448", got)
	}
}
