// Package conf holds the YAML-backed configuration for the fifo-ipc tool.
// Values come from the config file, then FIFOIPC_* environment variables,
// then built-in defaults. See config.example.yaml for a reference.
package conf

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is where the tool looks when --config is not given.
const DefaultConfigFile = "/etc/fifo-ipc/config.yaml"

// DefaultPipePath is the pipe both demo processes rendezvous on when no
// path is configured.
const DefaultPipePath = "/tmp/fifo-ipc/pipe"

// Config is the root of the YAML configuration.
type Config struct {
	Pipe PipeConfig `yaml:"pipe"`
	Send SendConfig `yaml:"send"`
	Recv RecvConfig `yaml:"recv"`
	Log  LogConfig  `yaml:"log"`
}

// PipeConfig locates the named pipe and the permission bits used when it
// has to be created.
type PipeConfig struct {
	Path string `yaml:"path" envconfig:"PIPE_PATH"`
	// Mode is kept as an octal string ("0600"); YAML's bare octal literals
	// are too easy to get wrong in configs.
	Mode string `yaml:"mode" envconfig:"PIPE_MODE"`
}

// SendConfig controls the send subcommand.
type SendConfig struct {
	Message        string `yaml:"message" envconfig:"SEND_MESSAGE"`
	TimeoutSeconds int    `yaml:"timeout_seconds" envconfig:"SEND_TIMEOUT_SECONDS"`
}

// RecvConfig controls the recv subcommand.
type RecvConfig struct {
	Nonblocking    bool `yaml:"nonblocking" envconfig:"RECV_NONBLOCKING"`
	TimeoutSeconds int  `yaml:"timeout_seconds" envconfig:"RECV_TIMEOUT_SECONDS"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level       string `yaml:"level" envconfig:"LOG_LEVEL"`
	Development bool   `yaml:"development" envconfig:"LOG_DEV"`
}

// FileMode parses the configured octal mode string.
func (p PipeConfig) FileMode() (os.FileMode, error) {
	s := strings.TrimPrefix(p.Mode, "0o")
	n, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid pipe.mode %q: %w", p.Mode, err)
	}
	if n&^0o777 != 0 {
		return 0, fmt.Errorf("pipe.mode %q sets non-permission bits", p.Mode)
	}
	return os.FileMode(n), nil
}

// Timeout converts the configured seconds into a duration.
func (s SendConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// Timeout converts the configured seconds into a duration.
func (r RecvConfig) Timeout() time.Duration {
	return time.Duration(r.TimeoutSeconds) * time.Second
}

// Load reads and parses the YAML config at path, applies FIFOIPC_*
// environment overrides, and fills defaults for missing values. An empty
// path skips the file and yields env plus defaults.
func Load(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	if err := envconfig.Process("fifoipc", &c); err != nil {
		return nil, err
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Pipe.Path == "" {
		c.Pipe.Path = DefaultPipePath
	}
	if c.Pipe.Mode == "" {
		c.Pipe.Mode = "0600"
	}
	if c.Send.Message == "" {
		c.Send.Message = "hello\n"
	}
	if c.Send.TimeoutSeconds <= 0 {
		c.Send.TimeoutSeconds = 10
	}
	if c.Recv.TimeoutSeconds <= 0 {
		c.Recv.TimeoutSeconds = 10
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate validates required config fields and value ranges.
func Validate(c *Config) error {
	if c.Pipe.Path == "" {
		return errors.New("missing pipe.path")
	}
	if strings.IndexByte(c.Pipe.Path, 0) >= 0 {
		return fmt.Errorf("pipe.path %q contains a NUL byte", c.Pipe.Path)
	}
	if _, err := c.Pipe.FileMode(); err != nil {
		return err
	}
	if c.Send.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid send.timeout_seconds: %d", c.Send.TimeoutSeconds)
	}
	if c.Recv.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid recv.timeout_seconds: %d", c.Recv.TimeoutSeconds)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level: %q", c.Log.Level)
	}
	return nil
}

// FlagsForPipe exposes the pipe section as command-line flags so either
// demo process can point at a different pipe without editing the config.
func FlagsForPipe(prefix string, p *PipeConfig) *pflag.FlagSet {
	fs := pflag.NewFlagSet("pipe", pflag.ContinueOnError)
	fs.StringVar(&p.Path, prefix+"path", "", "path of the named pipe")
	fs.StringVar(&p.Mode, prefix+"mode", "", "octal permission bits for a newly created pipe")
	return fs
}
