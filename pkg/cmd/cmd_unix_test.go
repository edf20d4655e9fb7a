//go:build unix

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fifo-ipc/pkg/fifo"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	root := NewFifoIPCCmd()
	root.SetArgs(args)
	return root.Execute()
}

func TestProvisionAndRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipe")

	require.NoError(t, run(t, "--pipe-path", path, "provision"))
	ok, err := fifo.IsFIFO(path)
	require.NoError(t, err)
	assert.True(t, ok)

	// Provisioning twice is a no-op.
	require.NoError(t, run(t, "--pipe-path", path, "provision"))

	require.NoError(t, run(t, "--pipe-path", path, "remove"))
	_, err = os.Stat(path)
	require.Error(t, err)
}

func TestProvisionRejectsRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	err := run(t, "--pipe-path", path, "provision")
	var typeErr *fifo.UnexpectedFileTypeError
	require.ErrorAs(t, err, &typeErr)
}

func TestSendRecvRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipe")
	require.NoError(t, run(t, "--pipe-path", path, "provision"))

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(t, "--pipe-path", path, "send", "hello\n")
	}()

	require.NoError(t, run(t, "--pipe-path", path, "recv"))
	require.NoError(t, <-errCh)
}

func TestExplicitMissingConfigFails(t *testing.T) {
	err := run(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "provision")
	require.Error(t, err)
}

func TestBadPipeModeFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipe")
	err := run(t, "--pipe-path", path, "--pipe-mode", "abc", "provision")
	require.Error(t, err)
}
