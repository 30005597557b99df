package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// Directory of sample.<id> files that replaces the embedded fixtures.
	FixturesDir     string `mapstructure:"fixtures_dir" yaml:"fixtures_dir"`
	DefaultLanguage string `mapstructure:"default_language" yaml:"default_language"`
	CheckWorkers    int    `mapstructure:"check_workers" yaml:"check_workers"`
	ExportDir       string `mapstructure:"export_dir" yaml:"export_dir"`
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".sampledeck"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.sampledeck/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("SAMPLEDECK")
	v.AutomaticEnv()

	v.SetDefault("fixtures_dir", "")
	v.SetDefault("default_language", "json")
	v.SetDefault("check_workers", 4)
	v.SetDefault("export_dir", ".")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read; a missing file is fine, a malformed one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.CheckWorkers < 1 {
		c.CheckWorkers = 1
	}
	return &c, nil
}
