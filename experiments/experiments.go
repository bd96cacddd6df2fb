package experiments

import (
	"fmt"

	"boardgames/config"
	"boardgames/engine"
	"boardgames/experiments/metrics"
	"boardgames/game"
	"boardgames/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MatchupSummary tallies the results of one matchup.
type MatchupSummary struct {
	Agent1      int // AgentConfig.ID
	Agent2      int // AgentConfig.ID
	Player1Wins int
	Player2Wins int
	Draws       int
	Unfinished  int
}

// RunTournament pits the default bot of every configured game against a random baseline,
// in both seats, and against its parallel version.
func RunTournament(cfg *config.Config) ([]MatchupSummary, error) {
	var summaries []MatchupSummary
	for _, name := range cfg.Games {
		kind, err := game.ParseKind(name)
		if err != nil {
			return summaries, err
		}

		depth := depthFor(kind, cfg)
		baseline := metrics.AgentConfig{ID: 0, Random: true, Goroutines: 1, Seed: cfg.Seed}
		configs := []metrics.AgentConfig{
			baseline,
			{ID: 1, Depth: depth, Goroutines: 1},
			{ID: 2, Depth: depth, Goroutines: cfg.Goroutines},
		}
		matchUps := [][]metrics.AgentConfig{
			{configs[1], baseline},
			{baseline, configs[1]},
			{configs[1], configs[2]},
		}

		s, err := runExperiment(kind.String()+"_tournament", kind, configs, matchUps, cfg)
		summaries = append(summaries, s...)
		if err != nil {
			return summaries, err
		}
	}
	return summaries, nil
}

func runExperiment(name string, kind game.Kind, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, cfg *config.Config) ([]MatchupSummary, error) {
	// Run a number of games for each matchup
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := []MatchupSummary{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]
		summary := MatchupSummary{Agent1: config1.ID, Agent2: config2.ID}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < cfg.GamesPerMatchup; i++ {
			// Vary the random baseline between games
			seed := uint64(i)
			result, err := runGame(kind, config1, config2, seed, cfg.MaxTurns)
			if err != nil {
				return summaries, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}

			id := uuid.NewString()
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         id,
				Matchup:    mi + 1,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: result.GameMetric,
			})
			for _, mm := range result.MoveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       id,
					MoveMetric: mm,
				})
			}

			switch result.Outcome {
			case game.Player1Won:
				summary.Player1Wins++
			case game.Player2Won:
				summary.Player2Wins++
			case game.Draw:
				summary.Draws++
			default:
				summary.Unfinished++
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with result: %v", mi+1, len(matchUps), i+1, cfg.GamesPerMatchup, result.Outcome)
		}
		summaries = append(summaries, summary)
		log.Info().Msgf("completed matchup %d of %d: %+v", mi+1, len(matchUps), summary)
	}

	log.Info().Msgf("completed %s experiment", name)

	err := store(name, cfg.OutputDir, configs, gameRecords, moveRecords)
	return summaries, err
}

func store(name, outputDir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	// Store experiment metadata
	writer, err := metrics.NewWriter(outputDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame executes a single game between two agents
func runGame(kind game.Kind, config1, config2 metrics.AgentConfig, seed uint64, maxTurns int) (engine.Result, error) {
	agent1, err := createAgent(kind, config1, seed)
	if err != nil {
		return engine.Result{}, err
	}
	agent2, err := createAgent(kind, config2, seed)
	if err != nil {
		return engine.Result{}, err
	}

	e, err := engine.NewLocalEngine(kind, []engine.Agent{agent1, agent2}, engine.WithMaxTurns(maxTurns))
	if err != nil {
		return engine.Result{}, err
	}
	return e.Run()
}

func createAgent(kind game.Kind, config metrics.AgentConfig, seed uint64) (engine.Agent, error) {
	if config.Random {
		return engine.NewBotAgent(searcher.NewRandom(config.Seed + seed)), nil
	}

	options := []searcher.Option{}

	if config.Depth > 0 || config.Depth == searcher.Unbounded {
		options = append(options, searcher.WithDepth(config.Depth))
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}

	options = append(options, searcher.WithMetrics())
	bot, err := searcher.NewBot(kind, options...)
	if err != nil {
		return nil, err
	}
	return engine.NewBotAgent(bot), nil
}

func depthFor(kind game.Kind, cfg *config.Config) int {
	switch kind {
	case game.Connect4:
		return cfg.Connect4Depth
	case game.Reversi:
		return cfg.ReversiDepth
	default:
		return searcher.Unbounded
	}
}
