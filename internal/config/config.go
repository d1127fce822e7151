package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/paulfryers/coronavirus-dashboard/internal/eventbus"
)

// Defaults
const (
	DefaultBreakpoint     = 100
	DefaultTab            = "countries"
	DefaultView           = "chart"
	DefaultExportFormat   = "svg"
	DefaultTimeoutSeconds = 15
	fileName              = "config.toml"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	LogFile    string         `toml:"log_file"`
	Data       DataSettings   `toml:"data"`
	UISettings UISettings     `toml:"ui"`
	Export     ExportSettings `toml:"export"`
}

// DataSettings describes where the dataset comes from. Either Source
// (one combined document) or the four split documents are used.
type DataSettings struct {
	Source         string `toml:"source"`
	Overview       string `toml:"overview"`
	Countries      string `toml:"countries"`
	Regions        string `toml:"regions"`
	Utlas          string `toml:"utlas"`
	Watch          bool   `toml:"watch"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Split reports whether the four split sources are configured.
func (d DataSettings) Split() bool {
	return d.Overview != "" && d.Countries != "" && d.Regions != "" && d.Utlas != ""
}

// UISettings represents UI-related configuration
type UISettings struct {
	Breakpoint  int    `toml:"breakpoint"`
	DefaultTab  string `toml:"default_tab"`
	DefaultView string `toml:"default_view"`
	Mouse       bool   `toml:"mouse"`
}

// ExportSettings controls chart export
type ExportSettings struct {
	Dir    string `toml:"dir"`
	Format string `toml:"format"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "coviddash", fileName),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// NewConfigServiceAt creates a config service bound to an explicit file
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus, filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when
// the file does not exist yet
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Normalize replaces out-of-range values with defaults
func (c *Config) Normalize() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.UISettings.Breakpoint <= 0 {
		c.UISettings.Breakpoint = DefaultBreakpoint
	}
	switch c.UISettings.DefaultTab {
	case "countries", "regions", "local-authorities":
	default:
		c.UISettings.DefaultTab = DefaultTab
	}
	switch c.UISettings.DefaultView {
	case "chart", "table":
	default:
		c.UISettings.DefaultView = DefaultView
	}
	c.Export.Format = strings.ToLower(c.Export.Format)
	if c.Export.Format != "svg" && c.Export.Format != "png" {
		c.Export.Format = DefaultExportFormat
	}
	if c.Export.Dir == "" {
		c.Export.Dir = "."
	}
	if c.Data.TimeoutSeconds <= 0 {
		c.Data.TimeoutSeconds = DefaultTimeoutSeconds
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		LogFile: "coviddash.log",
		Data: DataSettings{
			Source:         "data.json",
			Watch:          true,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		UISettings: UISettings{
			Breakpoint:  DefaultBreakpoint,
			DefaultTab:  DefaultTab,
			DefaultView: DefaultView,
			Mouse:       true,
		},
		Export: ExportSettings{
			Dir:    ".",
			Format: DefaultExportFormat,
		},
	}
}
