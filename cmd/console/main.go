package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/user/cultivation-life/config"
	"github.com/user/cultivation-life/internal/game"
	"github.com/user/cultivation-life/internal/interfaces"
	"github.com/user/cultivation-life/internal/textcmd"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "./config/config.json", "Path to configuration file")
	plain := flag.Bool("plain", false, "Play with slash commands over stdin instead of the terminal UI")
	logPath := flag.String("log", "", "Write logs to this file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := setupLogger(*logPath, cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	catalog, err := game.NewDataLoader(cfg.Game.DataDir).LoadCatalog(cfg.Game.CatalogFile)
	if err != nil {
		logger.Error("Failed to load game data", zap.Error(err))
		fmt.Fprintf(os.Stderr, "failed to load game data: %v\n", err)
		os.Exit(1)
	}

	gameManager := game.NewGameManager(cfg, catalog)
	gameManager.SetLogger(logger.Named("game"))

	if *plain {
		runPlain(gameManager, logger, os.Stdin, os.Stdout)
		return
	}

	if _, err := tea.NewProgram(newModel(gameManager, cfg.Console.WrapWidth)).Run(); err != nil {
		logger.Error("Console UI stopped", zap.Error(err))
		fmt.Fprintf(os.Stderr, "console error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogger logs to a file when a path is given. The terminal belongs to
// the UI, so without a path logging is discarded.
func setupLogger(path, level string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	return config.Build()
}

func runPlain(g interfaces.Game, logger *zap.Logger, in io.Reader, out io.Writer) {
	interpreter := textcmd.NewInterpreter(g)
	interpreter.Logger = logger.Named("textcmd")

	fmt.Fprintln(out, textcmd.NewMessageFormatter().FormatWelcome())

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line == "/quit" {
			return
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, interpreter.Process(line))
		fmt.Fprintln(out)
	}
	if err := scanner.Err(); err != nil {
		logger.Error("Failed to read input", zap.Error(err))
	}
}
