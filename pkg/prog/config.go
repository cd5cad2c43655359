package prog

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"src.repoman.dev/pkg/cli/histutil"
	"src.repoman.dev/pkg/env"
	"src.repoman.dev/pkg/fsutil"
)

// Config keeps settings of the REPL read from the config file.
type Config struct {
	Prompt string `yaml:"prompt"`
	// Directory whose subdirectories are completed as repository names.
	ReposDir string        `yaml:"repos-dir"`
	History  HistoryConfig `yaml:"history"`
}

// HistoryConfig keeps settings of the command history.
type HistoryConfig struct {
	Path string `yaml:"path"`
	// When non-empty, history is kept in this database instead of Path.
	DB           string `yaml:"db"`
	MaxEntries   int    `yaml:"max-entries"`
	RestoreDraft bool   `yaml:"restore-draft"`
}

// DefaultConfig returns the config used when there is no config file.
// Empty paths are resolved by the shell.
func DefaultConfig() *Config {
	return &Config{
		Prompt:  "> ",
		History: HistoryConfig{MaxEntries: histutil.DefaultMaxEntries},
	}
}

// DefaultConfigPath returns the path of the config file:
// $XDG_CONFIG_HOME/repoman/repl.yaml, or ~/.config/repoman/repl.yaml when
// $XDG_CONFIG_HOME is not set.
func DefaultConfigPath() (string, error) {
	if dir := os.Getenv(env.XDG_CONFIG_HOME); dir != "" {
		return filepath.Join(dir, "repoman", "repl.yaml"), nil
	}
	home, err := fsutil.GetHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "repoman", "repl.yaml"), nil
}

// LoadConfig reads the config file at path on top of DefaultConfig. A missing
// file is not an error. Unknown keys are.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.History.MaxEntries <= 0 {
		cfg.History.MaxEntries = histutil.DefaultMaxEntries
	}
	return cfg, nil
}

// LoadConfigForFlags loads the config file named by -config, or the one at
// DefaultConfigPath, and applies the overrides from the other flags. A file
// named by -config must exist.
func LoadConfigForFlags(f *Flags) (*Config, error) {
	var cfg *Config
	if f.Config != "" {
		if _, err := os.Stat(f.Config); err != nil {
			return nil, err
		}
		var err error
		cfg, err = LoadConfig(f.Config)
		if err != nil {
			return nil, err
		}
	} else {
		path, err := DefaultConfigPath()
		if err != nil {
			logger.Println("can't locate config file, using defaults:", err)
			cfg = DefaultConfig()
		} else if cfg, err = LoadConfig(path); err != nil {
			return nil, err
		}
	}

	if f.History != "" {
		cfg.History.Path = f.History
	}
	if f.DB != "" {
		cfg.History.DB = f.DB
	}
	return cfg, nil
}
