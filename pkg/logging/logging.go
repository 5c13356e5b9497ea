// Package logging configures the zerolog logger shared by every bases
// component. Records go to stderr in console form and, in JSON, to
// $XDG_STATE_HOME/bases/bases.log.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	// AppDirName is the directory created under the XDG state home
	AppDirName = "bases"

	// LogFileName is the name of the log file
	LogFileName = "bases.log"
)

// levelFor maps the -v count: none shows warnings only, -v info,
// -vv statements and timings, -vvv everything.
func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// SetupLogger installs the global logger for one bases run. When the state
// file cannot be opened the run still logs to stderr.
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(levelFor(verbosity))

	sinks := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}}

	path := logFilePath()
	f, fileErr := openLogFile(path)
	if fileErr == nil {
		sinks = append(sinks, f)
	}

	ctx := zerolog.New(io.MultiWriter(sinks...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Log file unavailable, logging to stderr only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger initialized")
}

// GetLogger returns the global logger tagged with a component field,
// e.g. "store.relational" or "menu".
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// logFilePath resolves bases.log under XDG_STATE_HOME, falling back to the
// platform state dir from xdg.
func logFilePath() string {
	state := os.Getenv("XDG_STATE_HOME")
	if state == "" {
		state = xdg.StateHome
	}
	if state == "" {
		return LogFileName
	}
	return filepath.Join(state, AppDirName, LogFileName)
}

// openLogFile opens path for appending, creating missing directories.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

// Must exits through log.Fatal when err is set.
func Must(err error, msg string) {
	if err != nil {
		log.Fatal().Err(err).Msg(msg)
	}
}

// LogOperationStart logs op at debug level and returns the func that logs
// its duration, usually deferred by the caller.
func LogOperationStart(logger zerolog.Logger, op string) func() {
	start := time.Now()
	logger.Debug().Str("operation", op).Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", op).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
