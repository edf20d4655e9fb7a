//go:build unix

package fifo

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"fifo-ipc/pkg/strerror"
)

// mkfifo creates the pipe and wraps any failure with the OS diagnostic.
// The syscall wrapper hands the error number back as the returned error, so
// it is captured before any later call on this thread can clobber it.
func mkfifo(path string, mode uint32) error {
	err := unix.Mkfifo(path, mode)
	if err == nil {
		return nil
	}
	// Lost a race against another provisioner; whatever won must still be
	// a pipe.
	if errors.Is(err, unix.EEXIST) {
		if info, serr := os.Stat(path); serr == nil {
			if info.Mode()&os.ModeNamedPipe != 0 {
				return nil
			}
			return &UnexpectedFileTypeError{Path: path, Mode: info.Mode()}
		}
	}
	return provisionError(path, err)
}

func provisionError(path string, err error) *ProvisionError {
	pe := &ProvisionError{Path: path, Err: err}
	var errno unix.Errno
	if errors.As(err, &errno) {
		pe.Code = int(errno)
		if msg, lerr := strerror.Lookup(int(errno)); lerr == nil {
			pe.Message = msg
		}
	}
	if pe.Message == "" {
		pe.Message = err.Error()
	}
	return pe
}

// OpenReader opens the pipe for reading, blocking until a writer opens the
// other end or ctx is done. The reader/writer handshake is the OS pipe
// object's, not ours.
func OpenReader(ctx context.Context, path string) (*os.File, error) {
	return openBlocking(ctx, path, os.O_RDONLY)
}

// OpenWriter opens the pipe for writing, blocking until a reader opens the
// other end or ctx is done.
func OpenWriter(ctx context.Context, path string) (*os.File, error) {
	return openBlocking(ctx, path, os.O_WRONLY)
}

func openBlocking(ctx context.Context, path string, flag int) (*os.File, error) {
	if err := checkPath(path); err != nil {
		return nil, err
	}
	type result struct {
		f   *os.File
		err error
	}
	ch := make(chan result, 1)
	go func() {
		f, err := os.OpenFile(path, flag, 0)
		ch <- result{f, err}
	}()
	select {
	case r := <-ch:
		return r.f, r.err
	case <-ctx.Done():
		// Poke the opposite end so the blocked open(2) returns, then
		// discard whatever it produced.
		unblockOpen(path, flag)
		go func() {
			if r := <-ch; r.f != nil {
				_ = r.f.Close()
			}
		}()
		return nil, ctx.Err()
	}
}

func unblockOpen(path string, flag int) {
	opposite := unix.O_RDONLY
	if flag == os.O_RDONLY {
		opposite = unix.O_WRONLY
	}
	fd, err := unix.Open(path, opposite|unix.O_NONBLOCK, 0)
	if err == nil {
		_ = unix.Close(fd)
	}
}

// OpenReaderNonblock opens the pipe for reading without waiting for a
// writer. The open returns immediately; reads block in the runtime poller
// until data arrives or report EOF while no writer holds the pipe.
func OpenReaderNonblock(path string) (*os.File, error) {
	return openNonblock(path, unix.O_RDONLY)
}

// OpenWriterNonblock opens the pipe for writing without waiting for a
// reader. With no reader present the OS refuses the open (ENXIO), reported
// here as ErrNoPeer.
func OpenWriterNonblock(path string) (*os.File, error) {
	f, err := openNonblock(path, unix.O_WRONLY)
	if err != nil {
		var errno unix.Errno
		if errors.As(err, &errno) && errno == unix.ENXIO {
			return nil, fmt.Errorf("%w: %s", ErrNoPeer, path)
		}
		return nil, err
	}
	return f, nil
}

func openNonblock(path string, flag int) (*os.File, error) {
	if err := checkPath(path); err != nil {
		return nil, err
	}
	fd, err := unix.Open(path, flag|unix.O_NONBLOCK, 0)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: path, Err: err}
	}
	return os.NewFile(uintptr(fd), path), nil
}
