package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fifo-ipc/pkg/fifo"
)

func newProvisionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "provision",
		Short: "create the named pipe if it does not already exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvision(a)
		},
	}
}

func runProvision(a *app) error {
	path := a.cfg.Pipe.Path
	mode, err := a.cfg.Pipe.FileMode()
	if err != nil {
		return err
	}
	if err := fifo.Ensure(path, mode); err != nil {
		return err
	}
	// A pre-existing pipe is accepted whatever its permission bits are;
	// surface the difference instead of guessing at a policy.
	if info, err := os.Lstat(path); err == nil && info.Mode().Perm() != mode.Perm() {
		a.logger.Warn("existing pipe permissions differ from configured mode",
			zap.String("path", path),
			zap.String("have", info.Mode().Perm().String()),
			zap.String("want", mode.Perm().String()))
	}
	a.logger.Info("pipe ready", zap.String("path", path))
	return nil
}
