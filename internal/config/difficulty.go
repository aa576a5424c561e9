package config

// ApplyPongPreset modifies the AI section based on a difficulty preset.
// Normal keeps whatever the loaded config says.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.AI.SpeedFactor *= 0.75
		cfg.AI.Error *= 3
		cfg.AI.Prediction *= 0.5
	case DifficultyHard:
		cfg.AI.SpeedFactor *= 1.3
		cfg.AI.Error *= 0.3
		cfg.AI.Prediction = min(1, cfg.AI.Prediction*2)
	}
}
