// Package config holds the bootstrap's settings: embedded TOML defaults
// with optional page-provided overrides.
package config

import (
	"bytes"
	_ "embed"
	"path"
	"time"

	"github.com/hack-pad/gameboot/internal/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

//go:embed defaults.toml
var defaultsTOML []byte

const (
	BackendHackpadFS = "hackpadfs"
	BackendIDBFS     = "idbfs"
)

type Config struct {
	LogLevel        string            `toml:"log_level"`
	DownloadMessage string            `toml:"download_message"`
	Status          Status            `toml:"status"`
	Elements        Elements          `toml:"elements"`
	Storage         Storage           `toml:"storage"`
	Env             map[string]string `toml:"env"`
	WebGL           WebGL             `toml:"webgl"`
}

type Status struct {
	ThrottleMillis int `toml:"throttle_ms"`
}

// Elements are the page's element IDs
type Elements struct {
	Status             string `toml:"status"`
	Progress           string `toml:"progress"`
	Spinner            string `toml:"spinner"`
	Canvas             string `toml:"canvas"`
	CanvasContainer    string `toml:"canvas_container"`
	LogToggle          string `toml:"log_toggle"`
	LogToggleContainer string `toml:"log_toggle_container"`
	LogContainer       string `toml:"log_container"`
	LogOutput          string `toml:"log_output"`
}

type Storage struct {
	Backend           string `toml:"backend"`
	MountPath         string `toml:"mount_path"`
	Database          string `toml:"database"`
	RelaxedDurability bool   `toml:"relaxed_durability"`
	// OpenTimeoutMillis bounds how long a sync waits for storage to open.
	OpenTimeoutMillis int `toml:"open_timeout_ms"`
}

func (s Storage) OpenTimeout() time.Duration {
	return time.Duration(s.OpenTimeoutMillis) * time.Millisecond
}

type WebGL struct {
	Alpha                 bool   `toml:"alpha"`
	Antialias             bool   `toml:"antialias"`
	Depth                 bool   `toml:"depth"`
	PowerPreference       string `toml:"power_preference"`
	PremultipliedAlpha    bool   `toml:"premultiplied_alpha"`
	PreserveDrawingBuffer bool   `toml:"preserve_drawing_buffer"`
	Stencil               bool   `toml:"stencil"`
}

// Attributes returns the WebGLContextAttributes dictionary for getContext.
func (w WebGL) Attributes() map[string]interface{} {
	return map[string]interface{}{
		"alpha":                 w.Alpha,
		"antialias":             w.Antialias,
		"depth":                 w.Depth,
		"powerPreference":       w.PowerPreference,
		"premultipliedAlpha":    w.PremultipliedAlpha,
		"preserveDrawingBuffer": w.PreserveDrawingBuffer,
		"stencil":               w.Stencil,
	}
}

func (c Config) Throttle() time.Duration {
	return time.Duration(c.Status.ThrottleMillis) * time.Millisecond
}

func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.LevelLog
	}
	return level
}

func Default() Config {
	var c Config
	if err := decode(defaultsTOML, &c); err != nil {
		panic(errors.Wrap(err, "embedded defaults are invalid"))
	}
	return c
}

// Load applies TOML overrides on top of the defaults. Env entries are merged key by key.
func Load(overrides []byte) (Config, error) {
	c := Default()
	if len(bytes.TrimSpace(overrides)) == 0 {
		return c, c.Validate()
	}

	defaultEnv := c.Env
	c.Env = nil
	if err := decode(overrides, &c); err != nil {
		return Config{}, errors.Wrap(err, "Failed to parse config overrides")
	}
	if c.Env == nil {
		c.Env = make(map[string]string, len(defaultEnv))
	}
	for key, value := range defaultEnv {
		if _, set := c.Env[key]; !set {
			c.Env[key] = value
		}
	}
	return c, c.Validate()
}

func decode(data []byte, c *Config) error {
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(c)
}

func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Status.ThrottleMillis <= 0 {
		return errors.Errorf("status.throttle_ms must be positive: %d", c.Status.ThrottleMillis)
	}
	switch c.Storage.Backend {
	case BackendHackpadFS, BackendIDBFS:
	default:
		return errors.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if !path.IsAbs(c.Storage.MountPath) || path.Clean(c.Storage.MountPath) == "/" {
		return errors.Errorf("storage.mount_path must be an absolute path below the root: %q", c.Storage.MountPath)
	}
	if c.Storage.Database == "" {
		return errors.New("storage.database is required")
	}
	if c.Storage.OpenTimeoutMillis <= 0 {
		return errors.Errorf("storage.open_timeout_ms must be positive: %d", c.Storage.OpenTimeoutMillis)
	}
	return nil
}
