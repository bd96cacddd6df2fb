package config

import (
	"fmt"

	"boardgames/meta"
	"boardgames/searcher"

	"github.com/spf13/viper"
)

type Config struct {
	GamesPerMatchup int      `mapstructure:"GAMES_PER_MATCHUP"`
	MaxTurns        int      `mapstructure:"MAX_TURNS"`
	LogLevel        string   `mapstructure:"LOG_LEVEL"`
	OutputDir       string   `mapstructure:"OUTPUT_DIR"`
	Goroutines      int      `mapstructure:"GOROUTINES"`
	Connect4Depth   int      `mapstructure:"CONNECT4_DEPTH"`
	ReversiDepth    int      `mapstructure:"REVERSI_DEPTH"`
	Games           []string `mapstructure:"GAMES"`
	Seed            uint64   `mapstructure:"SEED"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("GAMES_PER_MATCHUP", meta.GAMES_PER_MATCHUP)
	v.SetDefault("MAX_TURNS", meta.MAX_TURNS)
	v.SetDefault("LOG_LEVEL", meta.LOG_LEVEL)
	v.SetDefault("OUTPUT_DIR", meta.OUTPUT_DIR)
	v.SetDefault("GOROUTINES", meta.GO_ROUTINES)
	v.SetDefault("CONNECT4_DEPTH", searcher.Connect4Depth)
	v.SetDefault("REVERSI_DEPTH", searcher.ReversiDepth)
	v.SetDefault("GAMES", []string{"tictactoe", "connect4", "reversi"})
	v.SetDefault("SEED", 1)
}

// Load reads the config file at cfgPath on top of the defaults. An empty path uses the
// defaults and the environment only.
func Load(cfgPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if cfg.GamesPerMatchup <= 0 || cfg.MaxTurns <= 0 {
		return nil, fmt.Errorf("games per matchup and max turns must be positive, got %d and %d", cfg.GamesPerMatchup, cfg.MaxTurns)
	}
	return &cfg, nil
}
