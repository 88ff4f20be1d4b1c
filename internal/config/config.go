// Package config collects the board server's settings from flags and the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/log"
)

// ErrInvalidConfig indicates invalid configuration values.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Addr         string
	Origins      string
	DataDir      string
	LogLevel     log.Level
	SquarePixels int
}

func Default() Config {
	return Config{
		Addr:         "127.0.0.1:3000",
		Origins:      "http://localhost:5173",
		DataDir:      "",
		LogLevel:     log.LevelInfo,
		SquarePixels: 120,
	}
}

// Load reads flags from args. Each flag falls back to its CHESS_* environment
// variable and then to Default.
func Load(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("chess-server", flag.ContinueOnError)
	addr := fs.String("addr", env("CHESS_ADDR", cfg.Addr), "listen address")
	origins := fs.String("origins", env("CHESS_ORIGINS", cfg.Origins), "comma separated CORS origins of the board renderer")
	dataDir := fs.String("data-dir", env("CHESS_DATA_DIR", cfg.DataDir), "directory of the results store (empty keeps it in memory)")
	level := fs.String("log-level", env("CHESS_LOG_LEVEL", "info"), "trace, debug, info, warn or error")
	pixels := fs.String("square-pixels", env("CHESS_SQUARE_PIXELS", strconv.Itoa(cfg.SquarePixels)), "rendered size of one board square")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg.Addr = *addr
	cfg.Origins = *origins
	cfg.DataDir = *dataDir

	lvl, err := ParseLevel(*level)
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = lvl

	n, err := strconv.Atoi(*pixels)
	if err != nil || n <= 0 {
		return Config{}, fmt.Errorf("%w: square-pixels must be a positive integer, got %q", ErrInvalidConfig, *pixels)
	}
	cfg.SquarePixels = n

	if cfg.Addr == "" {
		return Config{}, fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	return cfg, nil
}

func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info", "":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return 0, fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, s)
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
