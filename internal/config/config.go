package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/bluecolored/gitversion/internal/domain"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	BackendExec  = "exec"
	BackendGoGit = "gogit"
)

type Config struct {
	WorkDir        string        `mapstructure:"work_dir"`
	Backend        string        `mapstructure:"backend"`
	CommandTimeout time.Duration `mapstructure:"command_timeout"`
	StrictStderr   bool          `mapstructure:"strict_stderr"`
	TagPrefix      string        `mapstructure:"tag_prefix"`
	Group          string        `mapstructure:"group"`
	Artifact       string        `mapstructure:"artifact"`
	Format         string        `mapstructure:"format"`
	Output         string        `mapstructure:"output"`
	LogLevel       string        `mapstructure:"log_level"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		WorkDir:        ".",
		Backend:        BackendExec,
		CommandTimeout: 10 * time.Second,
		StrictStderr:   true,
		TagPrefix:      "v",
		Group:          "de.bluecolored.bluecommands.brigadier",
		Artifact:       "bluecommands-brigadier",
		Format:         string(domain.FormatText),
		LogLevel:       "info",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.WorkDir == "" {
		return fmt.Errorf("work_dir cannot be empty")
	}
	switch c.Backend {
	case BackendExec, BackendGoGit:
	default:
		return fmt.Errorf("invalid backend: %s (expected %s or %s)", c.Backend, BackendExec, BackendGoGit)
	}
	if c.CommandTimeout <= 0 {
		return fmt.Errorf("command_timeout must be positive")
	}
	if c.TagPrefix == "" {
		return fmt.Errorf("tag_prefix cannot be empty")
	}
	if _, err := domain.ParseOutputFormat(c.Format); err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	// Check for path traversal in output file
	if strings.Contains(c.Output, "..") {
		return fmt.Errorf("output contains invalid path traversal")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}

// LoadConfig reads .gitversion.yaml from the current directory and GITVERSION_* env vars.
func LoadConfig() (*Config, error) {
	return loadConfig(viper.New(), ".")
}

func loadConfig(v *viper.Viper, configPath string) (*Config, error) {
	v.SetConfigName(".gitversion")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	// Configure environment variables
	v.SetEnvPrefix("GITVERSION")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Set defaults
	defaults := DefaultConfig()
	v.SetDefault("work_dir", defaults.WorkDir)
	v.SetDefault("backend", defaults.Backend)
	v.SetDefault("command_timeout", defaults.CommandTimeout)
	v.SetDefault("strict_stderr", defaults.StrictStderr)
	v.SetDefault("tag_prefix", defaults.TagPrefix)
	v.SetDefault("group", defaults.Group)
	v.SetDefault("artifact", defaults.Artifact)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("log_level", defaults.LogLevel)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
