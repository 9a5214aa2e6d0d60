package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/user/cultivation-life/config"
	"github.com/user/cultivation-life/internal/game"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "./config/config.json", "Path to configuration file")
	runs := flag.Int("runs", 100, "Number of playthroughs to simulate")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Server.LogLevel)
	defer logger.Sync()

	catalog, err := game.NewDataLoader(cfg.Game.DataDir).LoadCatalog(cfg.Game.CatalogFile)
	if err != nil {
		logger.Fatal("Failed to load game data", zap.Error(err))
	}

	baseSeed := cfg.Game.Seed
	if baseSeed == 0 {
		if baseSeed, err = game.NewSeed(); err != nil {
			logger.Fatal("Failed to draw seed", zap.Error(err))
		}
	}
	logger.Info("Starting simulation",
		zap.Int("runs", *runs),
		zap.Int64("seed", baseSeed),
		zap.Int("events", catalog.Len()))

	endings := make(map[string]int)
	unfinished := 0
	totalTurns := 0
	for i := 0; i < *runs; i++ {
		seed := baseSeed + int64(i)

		runCfg := cfg
		runCfg.Game.Seed = seed
		gm := game.NewGameManager(runCfg, catalog)
		gm.SetLogger(logger.Named("game").WithOptions(zap.IncreaseLevel(zapcore.WarnLevel)))

		ap := game.NewAutoPilot(gm, game.NewDiceRoller(seed), cfg.Game.AutoPilotMaxTurns)
		ap.Logger = logger.Named("autopilot")
		summary := ap.Play()

		totalTurns += summary.Turns
		if !summary.Ended {
			unfinished++
			continue
		}
		endings[summary.Ending]++
	}

	ranked := make([]string, 0, len(endings))
	for ending := range endings {
		ranked = append(ranked, ending)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if endings[ranked[i]] != endings[ranked[j]] {
			return endings[ranked[i]] > endings[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	for _, ending := range ranked {
		logger.Info("Ending",
			zap.Int("count", endings[ending]),
			zap.String("ending", ending))
	}

	avgTurns := 0.0
	if *runs > 0 {
		avgTurns = float64(totalTurns) / float64(*runs)
	}
	logger.Info("Simulation finished",
		zap.Int("runs", *runs),
		zap.Int("unfinished", unfinished),
		zap.Float64("avg_turns", avgTurns))
}

func setupLogger(level string) *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, _ := config.Build()
	return logger
}
