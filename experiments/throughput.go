package experiments

import (
	"boardgames/config"
	"boardgames/experiments/metrics"
	"boardgames/game"
)

var goroutineCounts = []int{1, 2, 4, 8}

// RunThroughputExperiment plays reversi between equal bots at increasing goroutine
// counts. Every pairing plays the same game, so the move records isolate the speedup
// of the parallel root split.
func RunThroughputExperiment(cfg *config.Config) ([]MatchupSummary, error) {
	configs := make([]metrics.AgentConfig, len(goroutineCounts))
	for i, goroutines := range goroutineCounts {
		configs[i] = metrics.AgentConfig{ID: i + 1, Depth: cfg.ReversiDepth, Goroutines: goroutines}
	}

	// Same config for both players in each game
	// for the same playing strength and identical game length
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, config})
	}

	return runExperiment("throughput", game.Reversi, configs, matchUps, cfg)
}
