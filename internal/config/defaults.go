package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used when even
// the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Levels: LevelsConfig{
			Path: "",
		},
		Scores: ScoresConfig{
			Enabled: true,
			Path:    "~/.sokoban/scores.db",
		},
		Game: GameConfig{
			TickRate:    60,
			SplashTicks: 90,
		},
		SSH: SSHConfig{
			Address:            ":23235",
			HostKeyPath:        "",
			IdleTimeoutMinutes: 30,
		},
	}
}
