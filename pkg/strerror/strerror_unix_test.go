//go:build unix

package strerror

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestLookupENOENT(t *testing.T) {
	msg, err := Lookup(int(unix.ENOENT))
	require.NoError(t, err)
	// Go's errno table is lower-case where C's is capitalised.
	assert.Equal(t, "no such file or directory", strings.ToLower(msg))
}

func TestLookupEACCES(t *testing.T) {
	msg, err := Lookup(int(unix.EACCES))
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(msg), "permission denied")
}

func TestLookupInvalidCodes(t *testing.T) {
	for _, code := range []int{0, -1, 1 << 20} {
		_, err := Lookup(code)
		var resErr *ResolutionError
		require.ErrorAs(t, err, &resErr, "code %d", code)
		assert.Equal(t, code, resErr.Code)
	}
}

func TestName(t *testing.T) {
	assert.Equal(t, "ENOENT", Name(int(unix.ENOENT)))
	assert.Equal(t, "", Name(0))
	assert.Equal(t, "", Name(1<<20))
}
