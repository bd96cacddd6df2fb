package config

import (
	"os"
	"path/filepath"
	"testing"

	"boardgames/meta"
	"boardgames/searcher"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)

		require.Equal(t, meta.GAMES_PER_MATCHUP, cfg.GamesPerMatchup)
		require.Equal(t, meta.MAX_TURNS, cfg.MaxTurns)
		require.Equal(t, meta.LOG_LEVEL, cfg.LogLevel)
		require.Equal(t, searcher.Connect4Depth, cfg.Connect4Depth)
		require.Equal(t, searcher.ReversiDepth, cfg.ReversiDepth)
		require.Equal(t, []string{"tictactoe", "connect4", "reversi"}, cfg.Games)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "games_per_matchup: 2\nreversi_depth: 2\nlog_level: debug\ngames:\n  - connect4\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)

		require.Equal(t, 2, cfg.GamesPerMatchup)
		require.Equal(t, 2, cfg.ReversiDepth)
		require.Equal(t, "debug", cfg.LogLevel)
		require.Equal(t, []string{"connect4"}, cfg.Games)
		require.Equal(t, meta.MAX_TURNS, cfg.MaxTurns, "Unset keys should keep their defaults")
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("MAX_TURNS", "42")

		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, 42, cfg.MaxTurns)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("rejecting non-positive limits", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"max_turns": 0}`), 0644))

		_, err := Load(path)
		require.Error(t, err)
	})
}
