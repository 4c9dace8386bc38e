package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-solver/internal"
	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/spf13/pflag"
)

type flags struct {
	configPath string
	logLevel   string
	mode       string
	humanMark  string
	board      string
	parallel   bool
}

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	f := parseFlags()
	conf := initConfig(f)
	if err := conf.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func parseFlags() *flags {
	f := &flags{}

	pflag.StringVarP(&f.configPath, "config", "c", "", "path to config file (default ./config.yml)")
	pflag.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pflag.StringVarP(&f.mode, "mode", "m", "", "mode: play, selfplay or solve")
	pflag.StringVar(&f.humanMark, "human", "", "mark the human plays in play mode: X or O")
	pflag.StringVarP(&f.board, "board", "b", "", "board to solve, e.g. X../OO./..X")
	pflag.BoolVar(&f.parallel, "parallel", false, "evaluate root moves concurrently")
	pflag.Parse()

	return f
}

// initialize config. Flags that were set explicitly override the file and environment.
func initConfig(f *flags) *config.Config {
	path := f.configPath
	if path == "" {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}
		path = filepath.Join(baseDir, "./config.yml")
	}

	conf := config.MustLoad(path)

	if pflag.CommandLine.Changed("log-level") {
		conf.LogLevel = f.logLevel
	}
	if pflag.CommandLine.Changed("mode") {
		conf.Mode = f.mode
	}
	if pflag.CommandLine.Changed("human") {
		conf.HumanMark = f.humanMark
	}
	if pflag.CommandLine.Changed("board") {
		conf.Board = f.board
	}
	if pflag.CommandLine.Changed("parallel") {
		conf.Search.Parallel = f.parallel
	}

	return conf
}

// initialize logger. Logs go to stderr so they do not mix with the board on stdout.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case config.LogLevelDebug:
		level = slog.LevelDebug
	case config.LogLevelInfo:
		level = slog.LevelInfo
	case config.LogLevelWarn:
		level = slog.LevelWarn
	case config.LogLevelError:
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
