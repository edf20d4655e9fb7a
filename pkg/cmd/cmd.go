// Package cmd wires the fifo-ipc command tree.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fifo-ipc/pkg/conf"
	"fifo-ipc/pkg/logging"
)

// app carries the state every subcommand needs once the root command's
// setup has run.
type app struct {
	cfg    *conf.Config
	logger *zap.Logger
}

// NewFifoIPCCmd builds the root command with its provision, send, recv and
// remove subcommands.
func NewFifoIPCCmd() *cobra.Command {
	var (
		configFile string
		pipeFlags  conf.PipeConfig
		a          = new(app)
	)

	rootCmd := &cobra.Command{
		Use:           "fifo-ipc",
		Short:         "pass a message between two processes through a named pipe",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("pipe-path") {
				cfg.Pipe.Path = pipeFlags.Path
			}
			if cmd.Flags().Changed("pipe-mode") {
				cfg.Pipe.Mode = pipeFlags.Mode
			}
			if err := conf.Validate(cfg); err != nil {
				return err
			}
			logger, err := logging.New(logging.Config{
				Level:       cfg.Log.Level,
				Development: cfg.Log.Development,
			})
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", conf.DefaultConfigFile, "path to the config file")
	flags.AddFlagSet(conf.FlagsForPipe("pipe-", &pipeFlags))

	rootCmd.AddCommand(
		newProvisionCmd(a),
		newSendCmd(a),
		newRecvCmd(a),
		newRemoveCmd(a),
	)
	return rootCmd
}

// loadConfig reads the config file; a missing file is only an error when
// the user pointed at it explicitly.
func loadConfig(cmd *cobra.Command, path string) (*conf.Config, error) {
	cfg, err := conf.Load(path)
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("config") {
		return conf.Load("")
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}
