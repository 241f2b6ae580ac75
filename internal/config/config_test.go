package config

import (
	"os"
	"path/filepath"
	"testing"
)

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-5 && d > -1e-5
}

func TestSpeedCurveMultiplier(t *testing.T) {
	curve := SpeedCurve{Base: 4, DoubleEvery: 4, Cap: 10}

	tests := []struct {
		score    int
		expected float32
	}{
		{0, 4},
		{2, 5.656854},
		{4, 8},
		{5, 9.513657},
		{8, 10},
		{100, 10},
	}

	for _, tt := range tests {
		got := curve.Multiplier(tt.score)
		if !approx(got, tt.expected) {
			t.Errorf("Multiplier(%d) = %f, expected %f", tt.score, got, tt.expected)
		}
	}
}

func TestSpeedCurveFixed(t *testing.T) {
	curve := SpeedCurve{Base: 4, DoubleEvery: 0, Cap: 10}
	if got := curve.Multiplier(40); got != 4 {
		t.Errorf("Multiplier with no doubling = %f, expected 4", got)
	}
}

func TestApplyPongoraPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		base        float32
		doubleEvery float32
		perPoint    int
	}{
		{DifficultyEasy, 3, 6, 6},
		{DifficultyNormal, 4, 4, 4},
		{DifficultyHard, 5, 3, 3},
		{DifficultyFixed, 4, 0, 4},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultPongoraConfig()
			ApplyPongoraPreset(&cfg, tt.preset)

			if cfg.Physics.Speed.Base != tt.base {
				t.Errorf("Speed.Base = %f, expected %f", cfg.Physics.Speed.Base, tt.base)
			}
			if cfg.Physics.Speed.DoubleEvery != tt.doubleEvery {
				t.Errorf("Speed.DoubleEvery = %f, expected %f", cfg.Physics.Speed.DoubleEvery, tt.doubleEvery)
			}
			if cfg.Gameplay.BricksPerPoint != tt.perPoint {
				t.Errorf("BricksPerPoint = %d, expected %d", cfg.Gameplay.BricksPerPoint, tt.perPoint)
			}
		})
	}
}

func TestDefaultsValidate(t *testing.T) {
	for _, id := range []string{IDPongora, IDExtended} {
		if err := DefaultFor(id).Validate(); err != nil {
			t.Errorf("DefaultFor(%q).Validate() = %v", id, err)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*PongoraConfig)
	}{
		{"zero brick width", func(c *PongoraConfig) { c.Layout.BrickWidth = 0 }},
		{"no layer rows", func(c *PongoraConfig) { c.Layout.LayerRows = 0 }},
		{"unknown reach", func(c *PongoraConfig) { c.Layout.PaddleReach = "sideways" }},
		{"extreme inside court", func(c *PongoraConfig) { c.Layout.ExtremeRadius[0] = 1 }},
		{"no titles", func(c *PongoraConfig) { c.Window.Titles = nil }},
		{"bad color", func(c *PongoraConfig) { c.Palette.Brick = "#zzz" }},
		{"inverted opacity radii", func(c *PongoraConfig) { c.Physics.POIOpacityOuter = 0.1 }},
		{"zero bricks per point", func(c *PongoraConfig) { c.Gameplay.BricksPerPoint = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultPongoraConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestPaletteColors(t *testing.T) {
	c, err := DefaultPongoraConfig().Palette.Colors()
	if err != nil {
		t.Fatalf("Colors() error: %v", err)
	}
	if c.Background.R != 0x17 || c.Background.A != 0xff {
		t.Errorf("Background = %v, expected 0x171714ff", c.Background)
	}
	if len(c.Trail) != 22 {
		t.Fatalf("Trail has %d colors, expected 22", len(c.Trail))
	}
	if c.Trail[21].A != 0x7c {
		t.Errorf("Trail[21].A = %#x, expected 0x7c", c.Trail[21].A)
	}
}

func TestEmbeddedDefaultsMatch(t *testing.T) {
	for _, id := range []string{IDPongora, IDExtended} {
		t.Run(id, func(t *testing.T) {
			fromYAML, err := decode(id, GetDefaultYAML(id))
			if err != nil {
				t.Fatalf("decode embedded %s: %v", id, err)
			}
			want := DefaultFor(id)

			if len(fromYAML.Layout.POIs) != len(want.Layout.POIs) {
				t.Fatalf("POIs = %d, expected %d", len(fromYAML.Layout.POIs), len(want.Layout.POIs))
			}
			for i := range want.Layout.POIs {
				if fromYAML.Layout.POIs[i] != want.Layout.POIs[i] {
					t.Errorf("POI %d = %+v, expected %+v", i, fromYAML.Layout.POIs[i], want.Layout.POIs[i])
				}
			}
			if len(fromYAML.Layout.Blocks) != len(want.Layout.Blocks) {
				t.Errorf("Blocks = %d, expected %d", len(fromYAML.Layout.Blocks), len(want.Layout.Blocks))
			}
			if fromYAML.Layout.PaddleReach != want.Layout.PaddleReach {
				t.Errorf("PaddleReach = %q, expected %q", fromYAML.Layout.PaddleReach, want.Layout.PaddleReach)
			}
			if !approx(fromYAML.Physics.TrailLength, want.Physics.TrailLength) {
				t.Errorf("TrailLength = %f, expected %f", fromYAML.Physics.TrailLength, want.Physics.TrailLength)
			}
			if fromYAML.Physics.Speed != want.Physics.Speed {
				t.Errorf("Speed = %+v, expected %+v", fromYAML.Physics.Speed, want.Physics.Speed)
			}
			for i, title := range want.Window.Titles {
				if fromYAML.Window.Titles[i] != title {
					t.Errorf("Titles[%d] = %q, expected %q", i, fromYAML.Window.Titles[i], title)
				}
			}
			for i, c := range want.Palette.Trail {
				if fromYAML.Palette.Trail[i] != c {
					t.Errorf("Trail[%d] = %q, expected %q", i, fromYAML.Palette.Trail[i], c)
				}
			}
		})
	}
}

func TestLoadPongoraCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("physics:\n  trail_length: 2.5\ngameplay:\n  bricks_per_point: 2\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadPongora(path, IDPongora)
	if err != nil {
		t.Fatalf("LoadPongora() error: %v", err)
	}
	if cfg.Physics.TrailLength != 2.5 {
		t.Errorf("TrailLength = %f, expected 2.5", cfg.Physics.TrailLength)
	}
	if cfg.Gameplay.BricksPerPoint != 2 {
		t.Errorf("BricksPerPoint = %d, expected 2", cfg.Gameplay.BricksPerPoint)
	}
	// Untouched keys keep their defaults
	if cfg.Layout.LayerRows != 7 {
		t.Errorf("LayerRows = %d, expected default 7", cfg.Layout.LayerRows)
	}
}

func TestLoadPongoraErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadPongora(filepath.Join(dir, "missing.yaml"), IDPongora); err == nil {
		t.Error("missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("layout: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPongora(bad, IDPongora); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("layout:\n  layer_rows: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPongora(invalid, IDPongora); err == nil {
		t.Error("invalid config should fail validation")
	}
}
