package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"war/config"
	"war/engine"
	"war/game"
	"war/gamemaster"
	"war/logging"
	"war/metrics"
	"war/player"
)

func main() {
	configPath := flag.String("config", "", "Path to the match config (defaults to configs/war.yml when present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger := logging.Setup(cfg.Log)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info().Uint64("seed", seed).Msg("starting match")

	collector := metrics.NewCollector()
	session, err := gamemaster.NewSession(len(cfg.Territories),
		gamemaster.WithSeed(seed),
		gamemaster.WithPlayers(cfg.Players[0], cfg.Players[1]),
		gamemaster.WithLogger(logger),
		gamemaster.WithMetrics(collector),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start session")
	}
	for _, t := range cfg.Territories {
		if _, err := session.RegisterTerritory(t.Name, t.Color, t.Troops); err != nil {
			log.Fatal().Err(err).Msgf("failed to register territory %q", t.Name)
		}
	}

	// Agents draw from their own sources so the session's dice stay reproducible
	agents := []player.Agent{
		player.NewRandom(game.NewSource(seed + 1)),
		player.NewRandom(game.NewSource(seed + 2)),
	}
	e := engine.LocalEngine(session, agents, cfg.MaxTurns)

	winner, gameMetric, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("match aborted")
	}
	if winner == "" {
		log.Info().Msgf("no winner after %d turns", gameMetric.Turns)
	} else {
		log.Info().Msgf("winner: %s (%s)", winner, gameMetric.Mission)
	}
	for _, t := range session.Territories() {
		log.Info().Msgf("%-29s %-9s %3d", t.Name, t.Color, t.Troops)
	}

	if cfg.Report != "" {
		if err := writeReport(cfg.Report, gameMetric, collector.Battles()); err != nil {
			log.Fatal().Err(err).Msg("failed to write report")
		}
		log.Info().Msgf("stored report in %s", cfg.Report)
	}
}

func writeReport(path string, gameMetric metrics.GameMetric, battles []metrics.BattleMetric) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	writer := metrics.NewWriter(f)
	if err := writer.WriteGame(gameMetric); err != nil {
		return err
	}
	return writer.WriteBattles(battles)
}
