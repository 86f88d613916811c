package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
	"github.com/pelletier/go-toml/v2"

	"mirrsearch/internal/domain"
	"mirrsearch/internal/eventbus"
)

// Selection policies for the agency and CFR part filters
const (
	PolicyMulti  = "multi"
	PolicySingle = "single"
)

const (
	DefaultBaseURL      = "http://localhost:80"
	DefaultTimeout      = "30s"
	DefaultVisibleCap   = 5
	DefaultCfrPartCount = 200
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Search     SearchSettings `toml:"search"`
	Filters    FilterSettings `toml:"filters"`
	Agencies   []AgencyEntry  `toml:"agencies,omitempty"` // replaces the built-in directory when set
	UISettings UISettings     `toml:"ui"`
}

// SearchSettings describes the search endpoint
type SearchSettings struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"` // Go duration; "0" disables the timeout
}

// FilterSettings configures the filter sidebar
type FilterSettings struct {
	SelectionPolicy string   `toml:"selection_policy"`
	VisibleCap      int      `toml:"visible_cap"`
	CfrPartCount    int      `toml:"cfr_part_count"`
	DocketTypes     []string `toml:"docket_types"`
	Statuses        []string `toml:"statuses"`
	CountDocketType bool     `toml:"count_docket_type"`
}

// AgencyEntry is one agency directory entry
type AgencyEntry struct {
	Code string `toml:"code"`
	Name string `toml:"name"`
	Top  bool   `toml:"top"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	HidePayload bool `toml:"hide_payload"` // hide the advanced filter echo above results
}

// SearchTimeout returns the parsed transport timeout
func (c *Config) SearchTimeout() time.Duration {
	d, err := time.ParseDuration(c.Search.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// AgencyList converts the configured agencies into domain values.
// The second slice holds the codes marked as top agencies.
func (c *Config) AgencyList() ([]domain.Agency, []string) {
	all := make([]domain.Agency, 0, len(c.Agencies))
	var top []string
	for _, a := range c.Agencies {
		all = append(all, domain.Agency{Code: a.Code, Name: a.Name})
		if a.Top {
			top = append(top, a.Code)
		}
	}
	return all, top
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

// NewConfigService creates a config service for the given file.
// An empty path selects config.toml in the user's config directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns the default location of the config file
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "mirrsearch", "config.toml")
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the file is absent
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:    cs.filePath,
			BaseURL: cfg.Search.BaseURL,
		})
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
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalize fills zero values with defaults and rejects settings that cannot be used
func (c *Config) normalize() error {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Search.BaseURL == "" {
		c.Search.BaseURL = DefaultBaseURL
	}
	if c.Search.Timeout == "" {
		c.Search.Timeout = DefaultTimeout
	}
	if _, err := time.ParseDuration(c.Search.Timeout); err != nil {
		return fmt.Errorf("search.timeout: %w", err)
	}

	switch c.Filters.SelectionPolicy {
	case "":
		c.Filters.SelectionPolicy = PolicyMulti
	case PolicyMulti, PolicySingle:
	default:
		return fmt.Errorf("filters.selection_policy must be %q or %q, got %q",
			PolicyMulti, PolicySingle, c.Filters.SelectionPolicy)
	}

	if c.Filters.VisibleCap <= 0 {
		c.Filters.VisibleCap = DefaultVisibleCap
	}
	if c.Filters.CfrPartCount <= 0 {
		c.Filters.CfrPartCount = DefaultCfrPartCount
	}
	if len(c.Filters.DocketTypes) == 0 {
		c.Filters.DocketTypes = append([]string(nil), domain.DefaultDocketTypes...)
	}
	if len(c.Filters.Statuses) == 0 {
		c.Filters.Statuses = append([]string(nil), domain.DefaultStatuses...)
	}

	for i, a := range c.Agencies {
		if a.Code == "" {
			return fmt.Errorf("agencies[%d]: code is required", i)
		}
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Version: 1,
		Search: SearchSettings{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		Filters: FilterSettings{
			SelectionPolicy: PolicyMulti,
			VisibleCap:      DefaultVisibleCap,
			CfrPartCount:    DefaultCfrPartCount,
		},
	}
	_ = cfg.normalize()
	return cfg
}
