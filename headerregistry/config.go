package headerregistry

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"
)

// HeaderDefault declares one default header installed at construction time.
type HeaderDefault struct {
	// Name is the header name (stored trimmed, matched case-sensitively)
	Name string `json:"name" yaml:"name"`
	// Values is the ordered value list; the first value is the primary one
	Values []string `json:"values" yaml:"values"`
	// Override replaces any prior values instead of appending
	Override bool `json:"override" yaml:"override"`
}

// Config holds the configuration for a Registry
type Config struct {
	// Defaults are installed on top of the built-in default trio
	Defaults []HeaderDefault `json:"defaults" yaml:"defaults"`
	// SkipBuiltinDefaults disables the Accept/Accept-Encoding/User-Agent trio
	SkipBuiltinDefaults bool `json:"skip_builtin_defaults" yaml:"skip_builtin_defaults"`
	// Debug enables debug logging of mutations
	Debug bool `json:"debug" yaml:"debug"`
	// Transforms maps header names to value transforms applied on write
	Transforms map[string]TransformFunc `json:"-" yaml:"-"`
	// Transport receives the compatibility flags; nil targets http.DefaultTransport
	Transport *http.Transport `json:"-" yaml:"-"`
}

// LoadConfigFromFile loads configuration from a file (JSON or YAML)
func LoadConfigFromFile(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config

	// Try YAML first, then JSON
	if err := yaml.Unmarshal(data, &config); err != nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file as YAML or JSON: %w", err)
		}
	}

	return &config, nil
}

// SaveConfigToFile saves configuration to a file
func SaveConfigToFile(config *Config, filename string, format string) error {
	var data []byte
	var err error

	switch format {
	case "yaml", "yml":
		data, err = yaml.Marshal(config)
	case "json":
		data, err = json.MarshalIndent(config, "", "  ")
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(filename, data, 0644)
}

// ConfigBuilder helps build configurations programmatically
type ConfigBuilder struct {
	config *Config
}

// NewConfigBuilder creates a new configuration builder
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		config: &Config{
			Defaults: make([]HeaderDefault, 0),
		},
	}
}

// WithDefaults sets the declarative default headers
func (cb *ConfigBuilder) WithDefaults(defaults []HeaderDefault) *ConfigBuilder {
	cb.config.Defaults = defaults
	return cb
}

// AddDefault adds a single default header entry
func (cb *ConfigBuilder) AddDefault(d HeaderDefault) *ConfigBuilder {
	cb.config.Defaults = append(cb.config.Defaults, d)
	return cb
}

// WithSkipBuiltinDefaults disables the built-in default trio
func (cb *ConfigBuilder) WithSkipBuiltinDefaults(skip bool) *ConfigBuilder {
	cb.config.SkipBuiltinDefaults = skip
	return cb
}

// WithTransport sets the transport receiving the compatibility flags
func (cb *ConfigBuilder) WithTransport(transport *http.Transport) *ConfigBuilder {
	cb.config.Transport = transport
	return cb
}

// WithDebug sets debug mode
func (cb *ConfigBuilder) WithDebug(debug bool) *ConfigBuilder {
	cb.config.Debug = debug
	return cb
}

// Build returns the built configuration
func (cb *ConfigBuilder) Build() *Config {
	return cb.config
}

// ValidateConfig performs comprehensive configuration validation
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration is nil")
	}

	overridden := make(map[string]int)
	for i, d := range config.Defaults {
		if d.Name == "" {
			return fmt.Errorf("default %d: Name cannot be empty", i)
		}
		if len(d.Values) == 0 {
			return fmt.Errorf("default %d (%s): Values cannot be empty", i, d.Name)
		}

		if d.Override {
			if prev, exists := overridden[d.Name]; exists {
				return fmt.Errorf("duplicate override for %s (entries %d, %d)", d.Name, prev, i)
			}
			overridden[d.Name] = i
		}
	}

	return nil
}
