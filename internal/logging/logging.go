// Package logging provides structured logging for carbontrack built on zerolog.
//
// All packages obtain their logger from a context.Context so a single
// configured logger (and its trace ID) flows through an entire CLI
// invocation.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Output destinations accepted by Config.Output.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
	OutputFile   = "file"
)

// Config controls how the process logger is constructed.
type Config struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Unparseable values fall back to info.
	Level string

	// Format selects "console" (human-readable) or "json" output.
	Format string

	// Output selects the destination: stderr, stdout, or file.
	Output string

	// File is the log file path, used when Output is "file".
	File string

	// Caller enables caller annotation on every event.
	Caller bool
}

// Result describes the logger produced by New, including whether the
// configured file destination was usable.
type Result struct {
	Logger       zerolog.Logger
	UsingFile    bool
	FilePath     string
	FallbackUsed bool

	file *os.File
}

// Close releases the log file handle if one was opened.
func (r *Result) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New builds a zerolog logger from cfg.
//
// A file destination that cannot be opened is not fatal: the logger falls
// back to stderr and the Result records that a fallback occurred so the CLI
// can warn the user.
func New(cfg Config) Result {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer
	result := Result{}

	switch cfg.Output {
	case OutputFile:
		f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if openErr != nil {
			out = os.Stderr
			result.FallbackUsed = true
		} else {
			out = f
			result.UsingFile = true
			result.FilePath = cfg.File
			result.file = f
		}
	case OutputStdout:
		out = os.Stdout
	default:
		out = os.Stderr
	}

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logCtx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}
	result.Logger = logCtx.Logger()

	return result
}

// ComponentLogger returns a child logger tagged with a component name.
// Every event emitted through it carries a "component" field.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
