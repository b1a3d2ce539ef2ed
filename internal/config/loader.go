package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "pharmtui"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
	// LogFile is the default diagnostic log file name
	LogFile = "pharmtui.log"
	// DotEnvFile is read from the working directory when present
	DotEnvFile = ".env"
)

// Environment variables consulted after the config file.
const (
	EnvBackendURL = "PHARMTUI_BACKEND_URL"
	EnvTimeoutMs  = "PHARMTUI_TIMEOUT_MS"
	EnvLogLevel   = "PHARMTUI_LOG_LEVEL"
)

// FileSystem abstracts file and environment access for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
	LookupEnv(key string) (string, bool)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (ConfigFileReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs FileSystem
}

// NewLoader creates a production Loader using the real filesystem
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}}
}

// NewLoaderWithFS creates a Loader with a custom filesystem (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// DefaultPath returns ~/.config/pharmtui/config.json, or "" if the home
// directory cannot be determined.
func (l *Loader) DefaultPath() string {
	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", ConfigDir, ConfigFile)
}

// Load reads configuration from ~/.config/pharmtui/config.json,
// merges it with defaults and applies environment overrides.
func (l *Loader) Load() (*Config, error) {
	return l.LoadFrom("")
}

// LoadFrom reads configuration from path (the default dotfile when empty)
// and merges it with defaults. Dotfile values override defaults; .env and
// process environment override the dotfile.
// A missing dotfile is not an error. Parse errors and permission issues are.
// The result is not validated: callers apply their own overrides first and
// then call Validate.
//
// NOTE: This implementation unmarshals JSON keys directly over the default configuration.
// This allows explicit zero values (e.g., 0, "") in the config file to override defaults.
func (l *Loader) LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = l.DefaultPath()
	}

	if path != "" {
		data, err := l.fs.ReadFile(path)
		switch {
		case err == nil:
			// Present keys overwrite defaults (even if zero),
			// missing keys leave the defaults untouched.
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		case os.IsNotExist(err):
			// Use defaults if file doesn't exist
		default:
			return nil, err
		}
	}

	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Log.File == "" {
		if homeDir, err := l.fs.UserHomeDir(); err == nil {
			cfg.Log.File = filepath.Join(homeDir, ".config", ConfigDir, LogFile)
		}
	}

	return cfg, nil
}

// applyEnv overlays .env values and then process environment values.
// Process environment wins, matching godotenv.Load semantics.
func (l *Loader) applyEnv(cfg *Config) error {
	dotenv := map[string]string{}
	if data, err := l.fs.ReadFile(DotEnvFile); err == nil {
		parsed, err := godotenv.Unmarshal(string(data))
		if err != nil {
			return err
		}
		dotenv = parsed
	}

	lookup := func(key string) (string, bool) {
		if v, ok := l.fs.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := lookup(EnvBackendURL); ok {
		cfg.Backend.BaseURL = v
	}
	if v, ok := lookup(EnvTimeoutMs); ok {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return &EnvError{Key: EnvTimeoutMs, Err: err}
		}
		cfg.Backend.TimeoutMs = ms
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	return nil
}

// Load is a convenience function using the default loader. Unlike
// Loader.Load it validates the result.
func Load() (*Config, error) {
	cfg, err := NewLoader().Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
