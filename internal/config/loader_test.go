package config

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFileSystem implements FileSystem for testing.
type MockFileSystem struct {
	HomeDir     string
	HomeDirErr  error
	Files       map[string][]byte
	ReadFileErr error
	Env         map[string]string
}

func (m *MockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (m *MockFileSystem) LookupEnv(key string) (string, bool) {
	v, ok := m.Env[key]
	return v, ok
}

const testConfigPath = "/home/user/.config/pharmtui/config.json"

// --- HAPPY PATH TESTS ---

func TestLoad_NoConfigFile_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files:   map[string][]byte{},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, 4, cfg.Quiz.Count)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout())
	assert.Equal(t, "/home/user/.config/pharmtui/pharmtui.log", cfg.Log.File)
}

func TestLoad_FullOverride_AllValuesReplaced(t *testing.T) {
	configJSON := `{
		"backend": {"base_url": "https://pharm.example.com", "timeout_ms": 5000, "requests_per_second": 2},
		"quiz": {"count": 10},
		"ui": {"tick_interval_ms": 200, "color_primary": "99"},
		"log": {"file": "/tmp/p.log", "level": "debug"}
	}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			testConfigPath: []byte(configJSON),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "https://pharm.example.com", cfg.Backend.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout())
	assert.Equal(t, 2, cfg.Backend.RequestsPerSecond)
	assert.Equal(t, 10, cfg.Quiz.Count)
	assert.Equal(t, 200*time.Millisecond, cfg.TickInterval())
	assert.Equal(t, "99", cfg.UI.ColorPrimary)
	assert.Equal(t, "/tmp/p.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_PartialOverride_MergesWithDefaults(t *testing.T) {
	configJSON := `{"ui": {"color_major": "160"}}`
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			testConfigPath: []byte(configJSON),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "160", cfg.UI.ColorMajor)    // Overridden
	assert.Equal(t, "214", cfg.UI.ColorModerate) // Default preserved
	assert.Equal(t, 300, cfg.UI.TickIntervalMs)  // Default preserved
	assert.Equal(t, 4, cfg.Quiz.Count)           // Other section untouched
}

func TestLoadFrom_ExplicitPath(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			"/etc/pharmtui.json": []byte(`{"quiz": {"count": 6}}`),
			testConfigPath:       []byte(`{"quiz": {"count": 8}}`),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.LoadFrom("/etc/pharmtui.json")

	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Quiz.Count)
}

func TestLoad_ZeroTimeoutExplicit_DisablesTimeout(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			testConfigPath: []byte(`{"backend": {"timeout_ms": 0}}`),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout())
}

// --- ENVIRONMENT TESTS ---

func TestLoad_EnvOverridesFile(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			testConfigPath: []byte(`{"backend": {"base_url": "http://file:1"}}`),
		},
		Env: map[string]string{
			EnvBackendURL: "http://env:2",
			EnvLogLevel:   "warn",
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "http://env:2", cfg.Backend.BaseURL)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_DotEnv_AppliesWhenProcessEnvUnset(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			DotEnvFile: []byte("PHARMTUI_BACKEND_URL=http://dotenv:3\nPHARMTUI_TIMEOUT_MS=1500\n"),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "http://dotenv:3", cfg.Backend.BaseURL)
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout())
}

func TestLoad_ProcessEnvWinsOverDotEnv(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			DotEnvFile: []byte("PHARMTUI_BACKEND_URL=http://dotenv:3\n"),
		},
		Env: map[string]string{EnvBackendURL: "http://env:4"},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "http://env:4", cfg.Backend.BaseURL)
}

func TestLoad_InvalidTimeoutEnv_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Env:     map[string]string{EnvTimeoutMs: "soon"},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	assert.Nil(t, cfg)
	var envErr *EnvError
	require.ErrorAs(t, err, &envErr)
	assert.Equal(t, EnvTimeoutMs, envErr.Key)
}

// --- UNHAPPY PATH TESTS ---

func TestLoad_MalformedJSON_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			testConfigPath: []byte(`{invalid json`),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid")
}

func TestLoad_PermissionDenied_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir:     "/home/user",
		ReadFileErr: os.ErrPermission,
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, os.ErrPermission))
}

func TestLoad_HomeDirError_ReturnsDefaults(t *testing.T) {
	fs := &MockFileSystem{
		HomeDirErr: errors.New("homeless"),
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Quiz.Count)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad_WrongJSONType_ReturnsError(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			testConfigPath: []byte(`["not", "an", "object"]`),
		},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidValues_LeftForValidate(t *testing.T) {
	fs := &MockFileSystem{
		HomeDir: "/home/user",
		Files: map[string][]byte{
			testConfigPath: []byte(`{"backend": {"base_url": ""}}`),
		},
		Env: map[string]string{EnvLogLevel: "loud"},
	}
	loader := NewLoaderWithFS(fs)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Empty(t, cfg.Backend.BaseURL)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url")
	assert.Contains(t, err.Error(), "log.level")

	// An override applied after loading makes the config valid again.
	cfg.Backend.BaseURL = "http://localhost:9000"
	cfg.Log.Level = "info"
	assert.NoError(t, cfg.Validate())
}
