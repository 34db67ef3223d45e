package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup builds the process logger at the given level, installs it as the
// slog default, and returns it. Unrecognized level strings fall back to info.
func Setup(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	}))
	slog.SetDefault(logger)
	return logger
}
