// Package headerregistry provides a process-wide registry of default HTTP
// headers shared by every outgoing request of a client application.
package headerregistry

import (
	"strings"
	"sync"
)

// Built-in defaults installed by InstallDefaults. The Accept value matches
// what common API tooling sends; a browser-style Accept breaks some servers.
const (
	DefaultAccept         = "*/*"
	DefaultAcceptEncoding = "gzip, deflate"
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/75.0.3770.142 Safari/537.36 headerregistry/1.0"
)

// Registry is a concurrency-safe store mapping header names to ordered value
// lists. One Registry is typically constructed at the application's
// composition root and handed to every component that issues requests.
//
// Names and values are stored trimmed of surrounding whitespace. Name
// matching is exact after trimming; there is no case folding. Invalid input
// (blank names, nil maps) is silently ignored: a stray header call from
// unrelated code must never take down a request path.
type Registry struct {
	mu      sync.RWMutex
	headers map[string][]string
	compat  bool

	config     *Config
	transforms map[string]TransformFunc
	logger     Logger
}

// Logger interface for logging (can be implemented by any logger)
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
}

// NoOpLogger is a no-operation logger
type NoOpLogger struct{}

func (n NoOpLogger) Debug(args ...interface{}) {}
func (n NoOpLogger) Info(args ...interface{})  {}
func (n NoOpLogger) Warn(args ...interface{})  {}
func (n NoOpLogger) Error(args ...interface{}) {}

// New creates a Registry from the given configuration. A nil config is
// treated as an empty one. Unless the config disables them, the built-in
// defaults are installed first; declarative defaults from the config are
// applied on top of them.
func New(config *Config) *Registry {
	if config == nil {
		config = &Config{}
	}

	transforms := make(map[string]TransformFunc, len(config.Transforms))
	for name, transform := range config.Transforms {
		transforms[strings.TrimSpace(name)] = transform
	}

	r := &Registry{
		headers:    make(map[string][]string),
		config:     config,
		transforms: transforms,
		logger:     NoOpLogger{},
	}

	if !config.SkipBuiltinDefaults {
		r.InstallDefaults(false)
	}
	for _, d := range config.Defaults {
		override := d.Override
		for _, value := range d.Values {
			r.Set(d.Name, value, override)
			// Subsequent values of the same entry extend the list.
			override = false
		}
	}
	return r
}

// SetLogger sets a custom logger
func (r *Registry) SetLogger(logger Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if logger != nil {
		r.logger = logger
	}
}

// InstallDefaults installs the built-in default headers using override
// semantics. When reset is true all stored headers, custom ones included,
// are dropped first.
//
// Every call also applies the process-wide transport compatibility flags
// described in compat.go, regardless of reset. That side effect is visible
// to any HTTP client sharing the configured transport.
func (r *Registry) InstallDefaults(reset bool) {
	applyCompatFlags(r.config.Transport)

	r.mu.Lock()
	r.compat = true
	if reset {
		r.headers = make(map[string][]string)
	}
	r.mu.Unlock()

	r.Set("Accept", DefaultAccept, true)
	r.Set("Accept-Encoding", DefaultAcceptEncoding, true)
	r.Set("User-Agent", DefaultUserAgent, true)
}

// First returns the primary (first) value stored under name. The second
// return is false when the name is blank or unknown.
func (r *Registry) First(name string) (string, bool) {
	values, ok := r.Values(name)
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Values returns a copy of the full ordered value list for name, or false
// when the name is blank or unknown. Mutating the returned slice does not
// affect the registry.
func (r *Registry) Values(name string) ([]string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	values, ok := r.headers[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(values))
	copy(out, values)
	return out, true
}

// Set stores a single header value and is the sole mutation entry point;
// Merge and the config defaults route through it. A blank name is a silent
// no-op. With override true, or when no prior values exist, the stored list
// is replaced by the single trimmed value; otherwise the value is appended
// in order.
func (r *Registry) Set(name, value string, override bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	value = strings.TrimSpace(value)

	r.mu.Lock()
	defer r.mu.Unlock()

	if transform := r.transforms[name]; transform != nil {
		value = transform(value)
	}

	existing := r.headers[name]
	if override || len(existing) == 0 {
		r.headers[name] = []string{value}
	} else {
		r.headers[name] = append(existing, value)
	}

	if r.config.Debug {
		r.logger.Debug("set header:", name, "=", value, "override:", override)
	}
}

// Merge folds a caller-supplied header map into the registry with append
// semantics, so existing state is never clobbered. An empty or nil map is a
// no-op. Empty-string values are appended as empty strings. http.Header is
// assignable to the parameter type.
func (r *Registry) Merge(headers map[string][]string) {
	if len(headers) == 0 {
		return
	}
	for name, values := range headers {
		for _, value := range values {
			r.Set(name, value, false)
		}
	}
}

// Remove deletes the entry for the trimmed name. Blank or unknown names are
// no-ops.
func (r *Registry) Remove(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.headers, name)

	if r.config.Debug {
		r.logger.Debug("removed header:", name)
	}
}

// Snapshot returns a deep copy of the current state. The copy is consistent
// at call time and detached from the registry.
func (r *Registry) Snapshot() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]string, len(r.headers))
	for name, values := range r.headers {
		copied := make([]string, len(values))
		copy(copied, values)
		out[name] = copied
	}
	return out
}

// Clear removes all entries, built-in defaults included. Defaults are not
// reinstalled until InstallDefaults is called again.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.headers = make(map[string][]string)

	if r.config.Debug {
		r.logger.Debug("cleared all headers")
	}
}

// Len returns the number of distinct header names currently stored.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.headers)
}

func (r *Registry) compatApplied() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.compat
}

// Builder provides a fluent API for assembling Registry configurations

// Builder helps build Registry configurations
type Builder struct {
	config *Config
}

// NewBuilder creates a new configuration builder
func NewBuilder() *Builder {
	return &Builder{
		config: &Config{
			Defaults:   make([]HeaderDefault, 0),
			Transforms: make(map[string]TransformFunc),
		},
	}
}

// AddDefault adds a default header installed with override semantics
func (b *Builder) AddDefault(name, value string) *Builder {
	b.config.Defaults = append(b.config.Defaults, HeaderDefault{
		Name:     name,
		Values:   []string{value},
		Override: true,
	})
	return b
}

// AppendDefault adds a default header value appended to any existing list
func (b *Builder) AppendDefault(name, value string) *Builder {
	b.config.Defaults = append(b.config.Defaults, HeaderDefault{
		Name:   name,
		Values: []string{value},
	})
	return b
}

// WithValues sets the full value list for the last added default
func (b *Builder) WithValues(values ...string) *Builder {
	if len(b.config.Defaults) > 0 {
		b.config.Defaults[len(b.config.Defaults)-1].Values = values
	}
	return b
}

// WithTransform registers a value transform applied on every write to name
func (b *Builder) WithTransform(name string, transform TransformFunc) *Builder {
	b.config.Transforms[name] = transform
	return b
}

// SkipBuiltinDefaults disables installation of the built-in default trio
func (b *Builder) SkipBuiltinDefaults(skip bool) *Builder {
	b.config.SkipBuiltinDefaults = skip
	return b
}

// Debug enables debug logging of mutations
func (b *Builder) Debug(debug bool) *Builder {
	b.config.Debug = debug
	return b
}

// Build creates the Registry
func (b *Builder) Build() *Registry {
	return New(b.config)
}
