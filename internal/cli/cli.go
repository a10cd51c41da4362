package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/gogpu/assetpipe"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string

	// Printed is set when the message was already written with the usage
	// text, as the flag package does for parse errors.
	Printed bool
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: ExitUsage, Message: fmt.Sprintf(format, args...)}
}

// Report prints err to w and returns the process exit code for it.
func Report(w io.Writer, err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if !exitErr.Printed {
			fmt.Fprintln(w, exitErr.Message)
		}
		return exitErr.Code
	}
	fmt.Fprintln(w, err)
	return ExitFailure
}

// LogConfig selects the handler installed on stderr.
type LogConfig struct {
	Level  slog.Level
	Format string
}

// NewLogger builds the command logger writing to w.
func NewLogger(w io.Writer, cfg LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// InstallLogger builds the command logger and makes it both the assetpipe
// logger and the slog default.
func InstallLogger(w io.Writer, cfg LogConfig) *slog.Logger {
	l := NewLogger(w, cfg)
	assetpipe.SetLogger(l)
	slog.SetDefault(l)
	return l
}

// command wraps a FlagSet with the flags every command shares.
type command struct {
	fs        *flag.FlagSet
	out       io.Writer
	logLevel  *string
	logFormat *string
}

func newCommand(name, summary, usage string, out io.Writer) *command {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "%s - %s\n\nUsage:\n  %s %s\n\nOptions:\n", name, summary, name, usage)
		fs.PrintDefaults()
	}

	return &command{
		fs:        fs,
		out:       out,
		logLevel:  fs.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'."),
		logFormat: fs.String("log-format", "text", "Log output format. Options: 'text' or 'json'."),
	}
}

// parse parses args. It reports help requests as (true, nil).
func (c *command) parse(args []string) (bool, error) {
	if err := c.fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, &ExitError{Code: ExitUsage, Message: err.Error(), Printed: true}
	}
	return false, nil
}

// required pairs a flag name with its parsed value.
type required struct {
	name  string
	value string
}

// require returns a usage error naming the first empty flag.
func (c *command) require(flags ...required) error {
	for _, f := range flags {
		if f.value == "" {
			c.fs.Usage()
			return usageError("missing required flag: --%s", f.name)
		}
	}
	return nil
}

func (c *command) logConfig() (LogConfig, error) {
	var cfg LogConfig

	switch strings.ToLower(*c.logLevel) {
	case "debug":
		cfg.Level = slog.LevelDebug
	case "info":
		cfg.Level = slog.LevelInfo
	case "warn":
		cfg.Level = slog.LevelWarn
	case "error":
		cfg.Level = slog.LevelError
	default:
		return cfg, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	cfg.Format = strings.ToLower(*c.logFormat)
	if cfg.Format != "text" && cfg.Format != "json" {
		return cfg, usageError("invalid log-format: must be 'text' or 'json'")
	}
	return cfg, nil
}
