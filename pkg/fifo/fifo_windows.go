//go:build windows

package fifo

import (
	"context"
	"os"
)

// FIFOs are a Unix feature; every operation reports ErrNotSupported here.

func mkfifo(path string, mode uint32) error {
	return ErrNotSupported
}

func OpenReader(ctx context.Context, path string) (*os.File, error) {
	return nil, ErrNotSupported
}

func OpenWriter(ctx context.Context, path string) (*os.File, error) {
	return nil, ErrNotSupported
}

func OpenReaderNonblock(path string) (*os.File, error) {
	return nil, ErrNotSupported
}

func OpenWriterNonblock(path string) (*os.File, error) {
	return nil, ErrNotSupported
}
