package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModePlay     = "play"
	ModeSelfPlay = "selfplay"
	ModeSolve    = "solve"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

var (
	ErrUnknownMode     = errors.New("unknown mode")
	ErrUnknownLogLevel = errors.New("unknown log level")
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info"`
	Mode      string `yaml:"mode" env:"TTT_MODE" env-default:"play"`
	HumanMark string `yaml:"human-mark" env:"TTT_HUMAN_MARK" env-default:"X"`
	Board     string `yaml:"board" env:"TTT_BOARD" env-default:".../.../..."`
	Search    Search `yaml:"search"`
}

type Search struct {
	Parallel bool          `yaml:"parallel" env:"TTT_SEARCH_PARALLEL" env-default:"false"`
	Timeout  time.Duration `yaml:"timeout" env:"TTT_SEARCH_TIMEOUT" env-default:"0s"`
}

// Load - reads the YAML file at path when it exists, otherwise only the
// environment. Environment variables override values from the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Validate - checks the mode, the log level and the search settings.
// An empty log level means info.
func (that *Config) Validate() error {
	switch that.LogLevel {
	case "", LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	switch that.Mode {
	case ModePlay, ModeSelfPlay, ModeSolve:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, that.Mode)
	}

	if that.Search.Timeout < 0 {
		return fmt.Errorf("search timeout must not be negative, got %s", that.Search.Timeout)
	}

	return nil
}
