package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

const (
	JSONFormat   = "json"
	TextFormat   = "text"
	LogfmtFormat = "logfmt"

	// EnvLogLevel and EnvLogFormat configure [NewWithCurrentConfig].
	EnvLogLevel  = "PATHSTRING_LOG_LEVEL"
	EnvLogFormat = "PATHSTRING_LOG_FORMAT"
)

var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// NewWithCurrentConfig creates a [slog.Logger] writing to stderr, configured
// by the PATHSTRING_LOG_LEVEL and PATHSTRING_LOG_FORMAT environment variables.
// Invalid values fall back to warn-level text output.
func NewWithCurrentConfig() *slog.Logger {
	level := os.Getenv(EnvLogLevel)
	if level == "" {
		level = "warn"
	}

	format := os.Getenv(EnvLogFormat)
	if format == "" {
		format = TextFormat
	}

	h, err := CreateHandlerWithStrings(os.Stderr, level, format)
	if err != nil {
		h, _ = CreateHandlerWithStrings(os.Stderr, "warn", TextFormat) //nolint:errcheck // Static arguments.
	}

	return slog.New(h)
}

// CreateHandlerWithStrings creates a [slog.Handler] from a level and format
// name, as accepted on the command line.
func CreateHandlerWithStrings(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := GetLevel(logLevel)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case TextFormat:
		return newCharmHandler(w, level, log.TextFormatter), nil
	case LogfmtFormat:
		return newCharmHandler(w, level, log.LogfmtFormatter), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidLogFormat, logFormat)
}

func newCharmHandler(w io.Writer, level slog.Level, formatter log.Formatter) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Level:           log.Level(level),
		Formatter:       formatter,
		ReportTimestamp: true,
	})

	if !isTerminal(w) {
		l.SetColorProfile(termenv.Ascii)
	}

	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })

	return ok && isatty.IsTerminal(f.Fd())
}

// GetLevel parses a log level name.
func GetLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
}
