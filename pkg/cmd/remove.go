package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fifo-ipc/pkg/fifo"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "unlink the named pipe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := fifo.Remove(a.cfg.Pipe.Path); err != nil {
				return err
			}
			a.logger.Info("pipe removed", zap.String("path", a.cfg.Pipe.Path))
			return nil
		},
	}
}
