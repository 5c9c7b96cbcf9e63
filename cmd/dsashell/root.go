package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/iotaledger/dsashell/configuration"
	"github.com/iotaledger/dsashell/logger"
	"github.com/iotaledger/dsashell/shell"
)

const (
	envPrefix      = "DSASHELL"
	flagConfigFile = "config"
)

func newRootCommand(in io.Reader, out, errw io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "dsashell",
		Short:         "Interactive shell with OS passthrough and in-memory data structure commands",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := loadConfiguration(cmd)
			if err != nil {
				return err
			}

			rootLogger, err := logger.NewRootLoggerFromConfiguration(config)
			if err != nil {
				return err
			}
			defer func() { _ = rootLogger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			s := shell.New(in, out, errw, shell.ConfigFromConfiguration(config), shell.NewDefaultExecutor(os.Getenv("PATH")), rootLogger)

			// Ctrl-C only aborts the running command
			interrupts := make(chan os.Signal, 1)
			signal.Notify(interrupts, os.Interrupt)
			defer signal.Stop(interrupts)
			done := make(chan struct{})
			defer close(done)
			go func() {
				for {
					select {
					case <-interrupts:
						s.Interrupt()
					case <-done:
						return
					}
				}
			}()

			if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}

			return nil
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errw)

	flags := cmd.Flags()
	flags.SortFlags = false
	flags.String(flagConfigFile, "", "path to a JSON or YAML config file")
	flags.String(shell.ConfigurationKeyPrompt, shell.DefaultCfg.Prompt, "the prompt printed before every command")
	flags.Bool(shell.ConfigurationKeyBanner, shell.DefaultCfg.Banner, "print the welcome banner on start")
	flags.Bool(shell.ConfigurationKeyColor, shell.DefaultCfg.Color, "enable colored output")
	flags.String(logger.ConfigurationKeyLevel, logger.DefaultCfg.Level, "the minimum enabled logging level")
	flags.String(logger.ConfigurationKeyEncoding, logger.DefaultCfg.Encoding, "the logger's encoding (options: \"json\", \"console\")")
	flags.StringSlice(logger.ConfigurationKeyOutputPaths, logger.DefaultCfg.OutputPaths, "a list of file paths or stdout/stderr to write logging output to")

	return cmd
}

// loadConfiguration merges defaults, the optional config file, env vars and command line flags, in that order.
func loadConfiguration(cmd *cobra.Command) (*configuration.Configuration, error) {
	config := configuration.New()

	if err := config.LoadDefaults(shell.Defaults()); err != nil {
		return nil, err
	}
	if err := config.LoadDefaults(logger.Defaults()); err != nil {
		return nil, err
	}

	configFile, err := cmd.Flags().GetString(flagConfigFile)
	if err != nil {
		return nil, err
	}
	if configFile != "" {
		if err := config.LoadFile(configFile); err != nil {
			return nil, err
		}
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return nil, errors.Wrap(err, "unable to load environment variables")
	}

	if err := config.LoadFlagSet(cmd.Flags()); err != nil {
		return nil, errors.Wrap(err, "unable to load flags")
	}

	return config, nil
}
