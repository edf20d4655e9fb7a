package conf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultPipePath, cfg.Pipe.Path)
	assert.Equal(t, "0600", cfg.Pipe.Mode)
	assert.Equal(t, "hello\n", cfg.Send.Message)
	assert.Equal(t, 10*time.Second, cfg.Send.Timeout())
	assert.Equal(t, 10*time.Second, cfg.Recv.Timeout())
	assert.False(t, cfg.Recv.Nonblocking)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, Validate(cfg))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
pipe:
  path: /tmp/other/pipe
  mode: "0644"
send:
  message: "hi\n"
  timeout_seconds: 3
recv:
  nonblocking: true
log:
  level: debug
  development: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other/pipe", cfg.Pipe.Path)
	assert.Equal(t, "0644", cfg.Pipe.Mode)
	assert.Equal(t, "hi\n", cfg.Send.Message)
	assert.Equal(t, 3, cfg.Send.TimeoutSeconds)
	assert.True(t, cfg.Recv.Nonblocking)
	assert.Equal(t, 10, cfg.Recv.TimeoutSeconds) // default fills the gap
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	require.NoError(t, Validate(cfg))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FIFOIPC_PIPE_PATH", "/tmp/env/pipe")
	t.Setenv("FIFOIPC_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env/pipe", cfg.Pipe.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestFileMode(t *testing.T) {
	m, err := PipeConfig{Mode: "0600"}.FileMode()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), m)

	m, err = PipeConfig{Mode: "0o644"}.FileMode()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), m)

	_, err = PipeConfig{Mode: "912"}.FileMode()
	require.Error(t, err)

	_, err = PipeConfig{Mode: "10600"}.FileMode()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	cfg := base()
	cfg.Pipe.Path = ""
	require.Error(t, Validate(cfg))

	cfg = base()
	cfg.Pipe.Path = "/tmp/bad\x00pipe"
	require.Error(t, Validate(cfg))

	cfg = base()
	cfg.Pipe.Mode = "abc"
	require.Error(t, Validate(cfg))

	cfg = base()
	cfg.Send.TimeoutSeconds = -1
	require.Error(t, Validate(cfg))

	cfg = base()
	cfg.Log.Level = "loud"
	require.Error(t, Validate(cfg))
}
