package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skilllink-dev/skilllink/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "skilllink.json"

	// DefaultPort is the default gateway port.
	DefaultPort = 8080

	// DefaultHost is the default gateway host.
	DefaultHost = "localhost"

	// DefaultDataDir is the default directory for persisted state.
	DefaultDataDir = "data"

	// DefaultLanguage is the language used when nothing else resolves.
	DefaultLanguage = "en"
)

// Config represents the complete skilllink.json configuration.
type Config struct {
	// Name is the application name.
	Name string `json:"name,omitempty"`

	// Version is the application version.
	Version string `json:"version,omitempty"`

	// Language is the fallback UI language code.
	Language string `json:"language,omitempty"`

	// DataDir is the directory for persisted client state.
	DataDir string `json:"dataDir,omitempty"`

	// Gateway contains HTTP gateway configuration.
	Gateway GatewayConfig `json:"gateway,omitempty"`

	// Backend contains auth backend configuration.
	Backend BackendConfig `json:"backend,omitempty"`

	// Avatar contains avatar storage configuration.
	Avatar AvatarConfig `json:"avatar,omitempty"`

	// Jobs contains job feed configuration.
	Jobs JobsConfig `json:"jobs,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// GatewayConfig contains HTTP gateway settings.
type GatewayConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// MetricsEnabled exposes Prometheus metrics on /metrics.
	MetricsEnabled bool `json:"metrics,omitempty"`
}

// Addr returns the host:port listen address.
func (g GatewayConfig) Addr() string {
	return fmt.Sprintf("%s:%d", g.Host, g.Port)
}

// BackendConfig contains auth backend settings.
type BackendConfig struct {
	// LatencyMS is the simulated backend latency in milliseconds.
	LatencyMS int `json:"latencyMs,omitempty"`
}

// AvatarConfig contains avatar storage settings.
type AvatarConfig struct {
	// Dir is the local directory for avatar files.
	Dir string `json:"dir,omitempty"`

	// BaseURL is the public prefix avatars are served under.
	BaseURL string `json:"baseUrl,omitempty"`

	// MaxSizeMB is the upload size limit in megabytes.
	MaxSizeMB int `json:"maxSizeMb,omitempty"`

	// S3Bucket switches storage to S3 when set.
	S3Bucket string `json:"s3Bucket,omitempty"`

	// S3Prefix is the key prefix inside the bucket.
	S3Prefix string `json:"s3Prefix,omitempty"`
}

// JobsConfig contains job feed settings.
type JobsConfig struct {
	// SourceURL is the base URL of the job feed API. Empty means the
	// built-in fixtures are used.
	SourceURL string `json:"sourceUrl,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Name:     "skilllink",
		Version:  "0.1.0",
		Language: DefaultLanguage,
		DataDir:  DefaultDataDir,
		Gateway: GatewayConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Backend: BackendConfig{
			LatencyMS: 500,
		},
		Avatar: AvatarConfig{
			Dir:       "data/avatars",
			BaseURL:   "/avatars",
			MaxSizeMB: 5,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for skilllink.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No skilllink.json found in " + filepath.Dir(path)).
				WithSuggestion("Create skilllink.json or run 'skilllink serve' from the project directory")
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse skilllink.json: " + err.Error()).
			WithSuggestion("Check that skilllink.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E101").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E101").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "skilllink"
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.Gateway.Host == "" {
		c.Gateway.Host = DefaultHost
	}
	if c.Gateway.Port == 0 {
		c.Gateway.Port = DefaultPort
	}
	if c.Backend.LatencyMS == 0 {
		c.Backend.LatencyMS = 500
	}
	if c.Avatar.Dir == "" {
		c.Avatar.Dir = filepath.Join(c.DataDir, "avatars")
	}
	if c.Avatar.BaseURL == "" {
		c.Avatar.BaseURL = "/avatars"
	}
	if c.Avatar.MaxSizeMB == 0 {
		c.Avatar.MaxSizeMB = 5
	}
}

// validate rejects values outside their allowed ranges.
func (c *Config) validate() error {
	if c.Gateway.Port < 1 || c.Gateway.Port > 65535 {
		return errors.New("E102").
			WithDetail(fmt.Sprintf("gateway.port %d is outside 1-65535", c.Gateway.Port))
	}
	if c.Backend.LatencyMS < 0 {
		return errors.New("E102").
			WithDetail(fmt.Sprintf("backend.latencyMs %d is negative", c.Backend.LatencyMS))
	}
	if c.Avatar.MaxSizeMB < 0 {
		return errors.New("E102").
			WithDetail(fmt.Sprintf("avatar.maxSizeMb %d is negative", c.Avatar.MaxSizeMB))
	}
	return nil
}
