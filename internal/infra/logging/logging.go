package logging

import (
	"io"
	"log/slog"

	"github.com/ormanli/atm-aspects/internal/config"
)

// Setup creates the application logger. It is passed explicitly to every component.
func Setup(cfg config.Config, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if cfg.InitDebug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	logger.Debug("Initializing debug level logging")

	return logger
}
