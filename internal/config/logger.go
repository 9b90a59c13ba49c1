package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a stdout logger based on the configuration.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	return NewLoggerTo(os.Stdout, cfg)
}

// NewLoggerTo creates a logger writing to out.
// Unknown levels fall back to info.
func NewLoggerTo(out io.Writer, cfg LoggerConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
