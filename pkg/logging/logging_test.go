package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger, err := New(Config{Level: "debug", Development: true})
	require.NoError(t, err)
	logger.Debug("development logger up")

	logger, err = New(Config{Level: "info"})
	require.NoError(t, err)
	logger.Info("production logger up")
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.Error(t, err)
}
