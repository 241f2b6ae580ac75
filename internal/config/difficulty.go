package config

import "math"

// SpeedCurve maps score to the ball speed multiplier.
// Speed doubles every DoubleEvery points, starting at Base and never
// exceeding Cap. DoubleEvery <= 0 keeps the speed at Base.
type SpeedCurve struct {
	Base        float32 `yaml:"base"`
	DoubleEvery float32 `yaml:"double_every"`
	Cap         float32 `yaml:"cap"`
}

// Multiplier returns the speed multiplier for a score.
func (s SpeedCurve) Multiplier(score int) float32 {
	m := float64(s.Base)
	if s.DoubleEvery > 0 {
		m *= math.Pow(2, float64(score)/float64(s.DoubleEvery))
	}
	return float32(math.Min(m, float64(s.Cap)))
}

// ApplyPongoraPreset modifies the config based on a difficulty preset.
func ApplyPongoraPreset(cfg *PongoraConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.Speed = SpeedCurve{Base: 3, DoubleEvery: 6, Cap: 8}
		cfg.Gameplay.BricksPerPoint = 6
	case DifficultyHard:
		cfg.Physics.Speed = SpeedCurve{Base: 5, DoubleEvery: 3, Cap: 12}
		cfg.Gameplay.BricksPerPoint = 3
	case DifficultyFixed:
		cfg.Physics.Speed.DoubleEvery = 0
	}
}
