// Package log provides [log/slog] handler construction for the CLI.
package log

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

const (
	FormatText   = "text"
	FormatLogfmt = "logfmt"
	FormatJSON   = "json"
)

var (
	// ErrInvalidLevel indicates an unknown log level string.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidFormat indicates an unknown log format string.
	ErrInvalidFormat = errors.New("invalid log format")
)

// CreateHandler creates a [slog.Handler] writing to w from level and
// format strings. Format is one of "text", "logfmt", or "json"; an empty
// level or format falls back to "info" and "text".
func CreateHandler(w io.Writer, logLevel, logFormat string) (slog.Handler, error) {
	level, err := parseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	var formatter charmlog.Formatter

	switch strings.ToLower(logFormat) {
	case FormatText, "":
		formatter = charmlog.TextFormatter
	case FormatLogfmt:
		formatter = charmlog.LogfmtFormatter
	case FormatJSON:
		formatter = charmlog.JSONFormatter
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, logFormat)
	}

	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
	}), nil
}

func parseLevel(level string) (charmlog.Level, error) {
	switch strings.ToLower(level) {
	case "debug", "trace":
		return charmlog.DebugLevel, nil
	case "info", "":
		return charmlog.InfoLevel, nil
	case "warn", "warning":
		return charmlog.WarnLevel, nil
	case "error", "fatal", "panic":
		return charmlog.ErrorLevel, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
}
