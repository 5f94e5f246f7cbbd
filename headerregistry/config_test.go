package headerregistry

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigFromFile(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "headers.yaml")
		content := `
defaults:
  - name: X-Client
    values: ["billing-worker"]
    override: true
  - name: X-Flags
    values: ["compact", "verbose"]
skip_builtin_defaults: true
debug: true
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		config, err := LoadConfigFromFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFromFile() error = %v", err)
		}
		if len(config.Defaults) != 2 {
			t.Fatalf("got %d defaults, want 2", len(config.Defaults))
		}
		if config.Defaults[0].Name != "X-Client" || !config.Defaults[0].Override {
			t.Errorf("first default = %+v", config.Defaults[0])
		}
		if !config.SkipBuiltinDefaults || !config.Debug {
			t.Errorf("flags not parsed: %+v", config)
		}

		r := New(config)
		if got, _ := r.Values("X-Flags"); !reflect.DeepEqual(got, []string{"compact", "verbose"}) {
			t.Errorf("X-Flags = %v, want [compact verbose]", got)
		}
		if _, ok := r.First("Accept"); ok {
			t.Error("builtin defaults installed despite skip flag")
		}
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "headers.json")
		content := `{"defaults":[{"name":"X-Client","values":["api"],"override":true}]}`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write config: %v", err)
		}

		config, err := LoadConfigFromFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFromFile() error = %v", err)
		}
		if len(config.Defaults) != 1 || config.Defaults[0].Name != "X-Client" {
			t.Errorf("defaults = %+v", config.Defaults)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestSaveConfigToFile(t *testing.T) {
	config := NewConfigBuilder().
		AddDefault(HeaderDefault{Name: "X-Client", Values: []string{"api"}, Override: true}).
		WithSkipBuiltinDefaults(true).
		Build()

	for _, format := range []string{"yaml", "json"} {
		t.Run(format, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "headers."+format)
			if err := SaveConfigToFile(config, path, format); err != nil {
				t.Fatalf("SaveConfigToFile() error = %v", err)
			}

			loaded, err := LoadConfigFromFile(path)
			if err != nil {
				t.Fatalf("LoadConfigFromFile() error = %v", err)
			}
			if !reflect.DeepEqual(loaded.Defaults, config.Defaults) {
				t.Errorf("round trip defaults = %+v, want %+v", loaded.Defaults, config.Defaults)
			}
		})
	}

	t.Run("unsupported format", func(t *testing.T) {
		if err := SaveConfigToFile(config, filepath.Join(t.TempDir(), "h.toml"), "toml"); err == nil {
			t.Error("expected error for unsupported format")
		}
	})
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "nil config",
			config:  nil,
			wantErr: true,
		},
		{
			name: "empty name",
			config: &Config{
				Defaults: []HeaderDefault{{Name: "", Values: []string{"v"}}},
			},
			wantErr: true,
		},
		{
			name: "empty values",
			config: &Config{
				Defaults: []HeaderDefault{{Name: "X-Test"}},
			},
			wantErr: true,
		},
		{
			name: "duplicate override",
			config: &Config{
				Defaults: []HeaderDefault{
					{Name: "X-Test", Values: []string{"a"}, Override: true},
					{Name: "X-Test", Values: []string{"b"}, Override: true},
				},
			},
			wantErr: true,
		},
		{
			name: "duplicate append is fine",
			config: &Config{
				Defaults: []HeaderDefault{
					{Name: "X-Test", Values: []string{"a"}},
					{Name: "X-Test", Values: []string{"b"}},
				},
			},
			wantErr: false,
		},
		{
			name: "valid config",
			config: NewConfigBuilder().
				AddDefault(HeaderDefault{Name: "X-Test", Values: []string{"a"}, Override: true}).
				Build(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPredefinedDefaults(t *testing.T) {
	tests := []struct {
		name     string
		defaults func() []HeaderDefault
		minCount int
	}{
		{"BrowserDefaults", BrowserDefaults, 4},
		{"JSONAPIDefaults", JSONAPIDefaults, 2},
		{"TracingDefaults", TracingDefaults, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defaults := tt.defaults()
			if len(defaults) < tt.minCount {
				t.Fatalf("got %d defaults, want at least %d", len(defaults), tt.minCount)
			}
			for i, d := range defaults {
				if d.Name == "" {
					t.Errorf("default %d has empty Name", i)
				}
				if len(d.Values) == 0 {
					t.Errorf("default %d (%s) has no values", i, d.Name)
				}
			}
			if err := ValidateConfig(&Config{Defaults: defaults}); err != nil {
				t.Errorf("predefined set fails validation: %v", err)
			}
		})
	}
}

func TestJSONAPIDefaultsApplied(t *testing.T) {
	r := New(&Config{
		SkipBuiltinDefaults: true,
		Defaults:            JSONAPIDefaults(),
	})
	if got, _ := r.First("Accept"); got != "application/json" {
		t.Errorf("Accept = %q, want application/json", got)
	}
}
