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

func newRecvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recv",
		Short: "read the pipe to end-of-stream and copy it to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecv(a)
		},
	}
}

func runRecv(a *app) error {
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
	ctx, cancel := context.WithTimeout(ctx, a.cfg.Recv.Timeout())
	defer cancel()

	var r *os.File
	if a.cfg.Recv.Nonblocking {
		r, err = fifo.OpenReaderNonblock(path)
	} else {
		a.logger.Info("waiting for a writer", zap.String("path", path))
		r, err = fifo.OpenReader(ctx, path)
	}
	if err != nil {
		return err
	}

	n, cerr := io.Copy(os.Stdout, r)
	if err := multierr.Append(cerr, r.Close()); err != nil {
		return err
	}
	a.logger.Info("end of stream", zap.Int64("bytes", n))
	return nil
}
