package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	trkerr "github.com/Vinillian/daily-tracker/internal/errors"
)

const (
	configFile = "config.toml"
	envKeyName = "DAILY_TRACKER_HOME"
)

// Config holds all tracker configuration. Paths not set in the config
// file are derived from the storage root.
type Config struct {
	Storage StorageConfig `toml:"storage"`
}

// StorageConfig locates the document stores on disk.
type StorageConfig struct {
	Root         string `toml:"root"`
	TemplatesDir string `toml:"templates_dir"`
}

// Load resolves the storage root and reads <root>/config.toml if it
// exists. Precedence for the root: explicit argument, the
// DAILY_TRACKER_HOME environment variable, then ~/.daily-tracker.
func Load(root string) (Config, error) {
	if root == "" {
		root = os.Getenv(envKeyName)
	}
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, trkerr.WrapConfig("resolving home directory", err).
				WithHint("set " + envKeyName + " to choose a storage location")
		}
		root = filepath.Join(home, ".daily-tracker")
	}

	cfg := Config{Storage: StorageConfig{Root: root}}

	path := filepath.Join(root, configFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, trkerr.WrapConfig("reading config file", err).
			WithHint("check the syntax of " + path)
	}
	if cfg.Storage.Root == "" {
		cfg.Storage.Root = root
	}
	return cfg, nil
}

// DiaryDir is where day documents live.
func (c Config) DiaryDir() string {
	return filepath.Join(c.Storage.Root, "data", "diary")
}

// ProjectsDir is where project documents live.
func (c Config) ProjectsDir() string {
	return filepath.Join(c.Storage.Root, "data", "projects")
}

// TemplatesDir is where day templates live.
func (c Config) TemplatesDir() string {
	if c.Storage.TemplatesDir != "" {
		return c.Storage.TemplatesDir
	}
	return filepath.Join(c.Storage.Root, "templates")
}

// ProjectTemplatesDir is where project templates live.
func (c Config) ProjectTemplatesDir() string {
	return filepath.Join(c.TemplatesDir(), "project_templates")
}

// ConfigDir is where catalog configuration lives.
func (c Config) ConfigDir() string {
	return filepath.Join(c.Storage.Root, "config")
}
