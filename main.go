package main

import (
	"flag"
	"os"

	"boardgames/config"
	"boardgames/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a YAML, JSON or TOML config file")
	experiment := flag.String("experiment", "tournament", "Experiment to run: tournament or throughput")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("invalid log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)

	var summaries []experiments.MatchupSummary
	switch *experiment {
	case "tournament":
		summaries, err = experiments.RunTournament(cfg)
	case "throughput":
		summaries, err = experiments.RunThroughputExperiment(cfg)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
	}

	for i, s := range summaries {
		log.Info().Msgf("matchup %d: agent %d vs agent %d, %d-%d with %d draws", i+1, s.Agent1, s.Agent2, s.Player1Wins, s.Player2Wins, s.Draws)
	}
}
