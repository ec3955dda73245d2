// Package config loads the game configuration from YAML, with an
// embedded default as the final fallback.
package config

// Config is the full game configuration.
type Config struct {
	Levels LevelsConfig `yaml:"levels"`
	Scores ScoresConfig `yaml:"scores"`
	Game   GameConfig   `yaml:"game"`
	SSH    SSHConfig    `yaml:"ssh"`
}

// LevelsConfig selects the level source.
type LevelsConfig struct {
	// Path points at a level file. Empty means the embedded default
	// level set.
	Path string `yaml:"path"`
}

// ScoresConfig configures the highscore store.
type ScoresConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Path     string `yaml:"path"`
	ReadOnly bool   `yaml:"read_only"`
}

// GameConfig tunes the game loop.
type GameConfig struct {
	TickRate    int  `yaml:"tick_rate"`
	FastStart   bool `yaml:"fast_start"`
	SplashTicks int  `yaml:"splash_ticks"`
}

// SSHConfig configures the remote-play server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}
