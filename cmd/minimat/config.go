package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// Flag names and defaults.
const (
	flagInt       = "int"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"

	envLogLevel = "MINIMAT_LOG_LEVEL"

	formatText = "text"
	formatJSON = "json"

	defaultLogLevel  = slog.LevelWarn
	defaultLogFormat = formatText
)

// config is the resolved state shared by every subcommand.
type config struct {
	intMode   bool
	logLevel  levelValue
	logFormat string

	logger *slog.Logger
}

func newConfig() *config {
	lvl := defaultLogLevel

	return &config{
		logLevel:  levelValue{level: &lvl},
		logFormat: defaultLogFormat,
	}
}

// bindFlags registers the persistent flags on fs.
func (c *config) bindFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.intMode, flagInt, false, "use int64 scalars instead of float64 (input must be integral)")
	fs.Var(c.logLevel, flagLogLevel, "log level: debug, info, warn, error (env "+envLogLevel+")")
	fs.StringVar(&c.logFormat, flagLogFormat, defaultLogFormat, "log format: text or json")
}

// resolve applies the environment fallback and builds the logger on stderr.
func (c *config) resolve(fs *pflag.FlagSet, stderr io.Writer) error {
	if !fs.Changed(flagLogLevel) {
		if env, ok := os.LookupEnv(envLogLevel); ok {
			if err := c.logLevel.Set(env); err != nil {
				return fmt.Errorf("%s: %w", envLogLevel, err)
			}
		}
	}

	opts := &slog.HandlerOptions{Level: *c.logLevel.level}
	switch strings.ToLower(c.logFormat) {
	case formatText:
		c.logger = slog.New(slog.NewTextHandler(stderr, opts))
	case formatJSON:
		c.logger = slog.New(slog.NewJSONHandler(stderr, opts))
	default:
		return fmt.Errorf("--%s: unknown format %q", flagLogFormat, c.logFormat)
	}

	return nil
}

// levelValue adapts slog.Level to pflag.Value.
type levelValue struct {
	level *slog.Level
}

var _ pflag.Value = levelValue{}

func (v levelValue) String() string {
	if v.level == nil {
		return defaultLogLevel.String()
	}

	return strings.ToLower(v.level.String())
}

func (v levelValue) Set(s string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return err
	}
	*v.level = lvl

	return nil
}

func (v levelValue) Type() string { return "level" }
