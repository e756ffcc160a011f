// Package cli implements the rbtree command: small tools for sorting input,
// dumping YAML mappings in key order, exploring a sorted map interactively and
// stress testing the red-black tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amp-labs/amp-ordered/logger"
	"github.com/spf13/cobra"
)

// ErrInvalidInput is returned when command input cannot be parsed.
var ErrInvalidInput = errors.New("invalid input")

const appName = "rbtree"

// app is the state shared by the subcommands of one invocation.
type app struct {
	configPath string
	logJSON    bool
	logLevel   string

	cfg Config
}

// NewRootCommand builds the rbtree command tree.
func NewRootCommand() *cobra.Command {
	a := &app{cfg: DefaultConfig()}

	root := &cobra.Command{
		Use:           appName,
		Short:         "Sort, dump and stress test with a red-black tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.BoolVar(&a.logJSON, "log-json", false, "log in JSON")
	flags.StringVar(&a.logLevel, "log-level", "", "minimum log level (debug, info, warn, error)")

	root.AddCommand(
		newSortCommand(),
		newDumpCommand(),
		newReplCommand(),
		newStressCommand(a),
		newVersionCommand(),
	)

	return root
}

// Execute runs the rbtree command with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// setup loads the config file and configures logging. Explicit flags win over
// the config file, which wins over LOG_JSON and LOG_LEVEL.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	a.cfg = cfg

	opts := []logger.Option{logger.WithOutput(cmd.ErrOrStderr())}

	switch {
	case cmd.Flags().Changed("log-json"):
		opts = append(opts, logger.WithJSON(a.logJSON))
	case cfg.Log.JSON != nil:
		opts = append(opts, logger.WithJSON(*cfg.Log.JSON))
	}

	level := cfg.Log.Level
	if cmd.Flags().Changed("log-level") {
		level = a.logLevel
	}

	if level != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("%w: log level %q", ErrInvalidInput, level)
		}

		opts = append(opts, logger.WithLevel(lvl))
	}

	if _, err := logger.ConfigureLogging(appName, opts...); err != nil {
		return err
	}

	logger.Get(cmd.Context()).Debug("configured", "config", a.configPath, "command", cmd.Name())

	return nil
}
