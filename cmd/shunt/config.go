package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/shunt"
	"github.com/zephyrtronium/shunt/internal/logger"
)

// envLogLevel names the environment variable that sets the log level when
// --log-level is not given.
const envLogLevel = "SHUNT_LOG_LEVEL"

// config holds the settings for one run of the command.
type config struct {
	Digits       int
	Conventional bool
	Steps        bool
	NoColor      bool
	LogLevel     string
	LogFile      string
}

// defaultConfig returns a config that reproduces the plain "Result: %.5f"
// behavior.
func defaultConfig() config {
	return config{
		Digits:   shunt.DefaultDigits,
		LogLevel: "none",
	}
}

// bindFlags registers the config's flags on cmd.
func (c *config) bindFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&c.Digits, "digits", c.Digits, "decimal places in the result")
	f.BoolVar(&c.Conventional, "conventional", c.Conventional, "apply operators to their operands in textbook order (10/2 is 5)")
	f.BoolVar(&c.Steps, "steps", c.Steps, "print the token and postfix sequences before the result")
	f.BoolVar(&c.NoColor, "no-color", c.NoColor, "disable colored output for --steps")
	f.StringVar(&c.LogLevel, "log-level", c.LogLevel, "diagnostic log level (debug, info, warn, error, none); also "+envLogLevel)
	f.StringVar(&c.LogFile, "log-file", c.LogFile, "append diagnostics to this file instead of stderr")
}

// applyEnv fills settings from the environment that were not given as flags.
func (c *config) applyEnv(cmd *cobra.Command) {
	if cmd.Flags().Changed("log-level") {
		return
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		c.LogLevel = v
	}
}

// validate checks the config for settings the command cannot use.
func (c *config) validate() error {
	if c.Digits < 0 {
		return fmt.Errorf("digits (%d) must not be negative", c.Digits)
	}
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// openLogger creates the diagnostic logger the config describes.
func (c *config) openLogger(stderr io.Writer) (*logger.Logger, error) {
	level, _ := logger.ParseLevel(c.LogLevel)
	if c.LogFile != "" {
		return logger.Open(level, c.LogFile, "shunt")
	}
	return logger.New(level, stderr, "shunt"), nil
}

// options converts the config to evaluation options.
func (c *config) options() []shunt.Option {
	if c.Conventional {
		return []shunt.Option{shunt.Conventional()}
	}
	return nil
}
