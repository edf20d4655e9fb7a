// Package fifo provisions and opens named pipes (FIFOs).
//
// Provisioning is idempotent: an existing FIFO at the target path is
// accepted as-is, anything else at the path is reported as an error and
// never overwritten. Platform-specific behavior is selected at build time;
// on systems without FIFO support every operation fails with
// ErrNotSupported.
package fifo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultMode is the permission set for newly created pipes: owner
// read/write only.
const DefaultMode os.FileMode = 0o600

var (
	// ErrPathEncoding reports a pipe path that cannot be handed to the OS
	// because it embeds a NUL byte.
	ErrPathEncoding = errors.New("fifo: path contains a NUL byte")

	// ErrNotSupported is returned on platforms without FIFO support.
	ErrNotSupported = errors.New("fifo: named pipes are not supported on this platform")

	// ErrNoPeer is returned by non-blocking writer opens when no process
	// has the pipe open for reading.
	ErrNoPeer = errors.New("fifo: no peer has the pipe open")
)

// UnexpectedFileTypeError reports an entry at the pipe path that is not a
// named pipe. The entry is left untouched.
type UnexpectedFileTypeError struct {
	Path string
	Mode os.FileMode
}

func (e *UnexpectedFileTypeError) Error() string {
	return fmt.Sprintf("fifo: %s exists but is not a named pipe (mode %s)", e.Path, e.Mode)
}

// ProvisionError reports a failed FIFO creation together with the OS
// diagnostic for the error number the call produced.
type ProvisionError struct {
	Path    string
	Code    int
	Message string
	Err     error
}

func (e *ProvisionError) Error() string {
	return fmt.Sprintf("fifo: mkfifo %s: errno=%d %s", e.Path, e.Code, e.Message)
}

func (e *ProvisionError) Unwrap() error { return e.Err }

// Ensure creates a FIFO at path with the given permission bits unless one
// already exists there. An existing entry of any other type is an error and
// is never replaced. Creation is not retried: the causes mkfifo can fail
// for (permissions, missing directories) recur identically.
func Ensure(path string, mode os.FileMode) error {
	if err := checkPath(path); err != nil {
		return err
	}
	info, err := os.Stat(path)
	if err == nil {
		if info.Mode()&os.ModeNamedPipe != 0 {
			return nil
		}
		return &UnexpectedFileTypeError{Path: path, Mode: info.Mode()}
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return mkfifo(path, uint32(mode.Perm()))
}

// Remove unlinks the FIFO at path. A missing entry is not an error; an
// entry that is not a FIFO is refused.
func Remove(path string) error {
	if err := checkPath(path); err != nil {
		return err
	}
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Mode()&os.ModeNamedPipe == 0 {
		return &UnexpectedFileTypeError{Path: path, Mode: info.Mode()}
	}
	return os.Remove(path)
}

// IsFIFO reports whether the entry at path is a named pipe.
func IsFIFO(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.Mode()&os.ModeNamedPipe != 0, nil
}

// TempPath returns a unique pipe path under the OS temp directory, suitable
// for per-session pipes that must not collide.
func TempPath(prefix string) string {
	if prefix == "" {
		prefix = "fifo"
	}
	return filepath.Join(os.TempDir(), prefix+"-"+uuid.NewString())
}

// checkPath rejects paths the OS string layer cannot represent.
func checkPath(path string) error {
	if strings.IndexByte(path, 0) >= 0 {
		return fmt.Errorf("%w: %q", ErrPathEncoding, path)
	}
	return nil
}
