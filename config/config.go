// Package config loads YAML and TOML documents into a flat table of
// Variants keyed by dotted path, so settings can be read back as any kind.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/SethHamilton/var/trace"
	"github.com/SethHamilton/var/types"
)

// ErrUnsupportedFormat is returned for files that are neither YAML nor TOML
var ErrUnsupportedFormat = errors.New("config: unsupported format")

// Format identifies a config document syntax
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Config is a flat table of scalar settings.
// Nested tables become dotted keys ("server.port"). Leaves that are not
// scalars (lists, nulls, empty tables) are not stored; their keys are kept
// in Skipped. A dotted key that collides with a nested path keeps the value
// that sorts first and lists the other under Skipped.
type Config struct {
	values  map[string]types.Variant
	skipped []string
}

// New creates an empty Config
func New() *Config {
	return &Config{values: make(map[string]types.Variant)}
}

// Load reads and parses a .yaml, .yml or .toml file
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a document in the given format
func Parse(data []byte, format Format) (*Config, error) {
	doc := make(map[string]interface{})

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	c := New()
	c.flatten("", doc)
	sort.Strings(c.skipped)
	return c, nil
}

// flatten walks tables in sorted key order, so when a dotted key and a
// nested path name the same leaf the first one visited always wins.
func (c *Config) flatten(prefix string, node interface{}) {
	switch n := node.(type) {
	case map[string]interface{}:
		c.flattenTable(prefix, n)
	case map[interface{}]interface{}:
		table := make(map[string]interface{}, len(n))
		for k, v := range n {
			table[fmt.Sprint(k)] = v
		}
		c.flattenTable(prefix, table)
	case time.Time:
		c.store(prefix, types.NewString(n.Format(time.RFC3339Nano)))
	case nil:
		c.skip(prefix, "null")
	default:
		v, ok := types.Of(n)
		if !ok {
			c.skip(prefix, fmt.Sprintf("%T is not a scalar", n))
			return
		}
		c.store(prefix, v)
	}
}

func (c *Config) flattenTable(prefix string, table map[string]interface{}) {
	if len(table) == 0 {
		if prefix != "" {
			c.skip(prefix, "empty table")
		}
		return
	}

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		c.flatten(join(prefix, k), table[k])
	}
}

// store keeps the first value loaded for key; later ones are skipped
func (c *Config) store(key string, v types.Variant) {
	if _, ok := c.values[key]; ok {
		c.skip(key, "duplicate key")
		return
	}
	c.Set(key, v)
}

func (c *Config) skip(key, reason string) {
	trace.ConfigSkip(key, reason)
	c.skipped = append(c.skipped, key)
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Set stores v under key, replacing any previous value
func (c *Config) Set(key string, v types.Variant) {
	trace.ConfigKey(key, v)
	c.values[key] = v
}

// Get returns the Variant stored under key
func (c *Config) Get(key string) (types.Variant, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Len returns the number of stored keys
func (c *Config) Len() int {
	return len(c.values)
}

// Keys returns all stored keys in sorted order
func (c *Config) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Skipped returns the sorted keys of leaves that were not stored
func (c *Config) Skipped() []string {
	return c.skipped
}

// Typed getters coerce the stored value to the requested kind and fall
// back to def only when the key is absent.

func (c *Config) Int32(key string, def int32) int32 {
	if v, ok := c.values[key]; ok {
		return v.Int32()
	}
	return def
}

func (c *Config) Int64(key string, def int64) int64 {
	if v, ok := c.values[key]; ok {
		return v.Int64()
	}
	return def
}

func (c *Config) Float32(key string, def float32) float32 {
	if v, ok := c.values[key]; ok {
		return v.Float32()
	}
	return def
}

func (c *Config) Float64(key string, def float64) float64 {
	if v, ok := c.values[key]; ok {
		return v.Float64()
	}
	return def
}

func (c *Config) Bool(key string, def bool) bool {
	if v, ok := c.values[key]; ok {
		return v.Bool()
	}
	return def
}

func (c *Config) String(key string, def string) string {
	if v, ok := c.values[key]; ok {
		return v.String()
	}
	return def
}
