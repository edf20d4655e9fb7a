package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"fifo-ipc/pkg/fifo"
)

func newSendCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "send [message]",
		Short: "write a message to the pipe, waiting for a reader",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := a.cfg.Send.Message
			if len(args) == 1 {
				msg = args[0]
			}
			return runSend(a, msg)
		},
	}
}

func runSend(a *app, msg string) error {
	path := a.cfg.Pipe.Path
	mode, err := a.cfg.Pipe.FileMode()
	if err != nil {
		return err
	}
	if err := fifo.Ensure(path, mode); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Send.Timeout())
	defer cancel()

	a.logger.Info("waiting for a reader", zap.String("path", path))
	w, err := fifo.OpenWriter(ctx, path)
	if err != nil {
		return err
	}
	_, werr := io.WriteString(w, msg)
	if err := multierr.Append(werr, w.Close()); err != nil {
		return err
	}
	a.logger.Info("message sent", zap.Int("bytes", len(msg)))
	return nil
}
