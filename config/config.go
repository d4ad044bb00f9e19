// Package config loads lvroute settings from, in rising priority: built-in
// defaults, an optional TOML file, LVROUTE_* environment variables and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	// DefaultFile is read when no --config flag is given. A missing file is not an error.
	DefaultFile = "lvroute.toml"
	// EnvPrefix introduces environment overrides; LVROUTE_LOG_LEVEL maps to log.level.
	EnvPrefix = "LVROUTE_"
)

// Graph file formats accepted by the format setting.
const (
	FormatAuto = "auto"
	FormatDOT  = "dot"
	FormatYAML = "yaml"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds all lvroute settings.
type Config struct {
	Graph    string `koanf:"graph"`    // path of the graph file to serve
	Format   string `koanf:"format"`   // auto, dot or yaml
	Addr     string `koanf:"addr"`     // HTTP listen address
	Watch    bool   `koanf:"watch"`    // reload the graph when its file changes
	Capacity int    `koanf:"capacity"` // initial node registry capacity
	Log      Log    `koanf:"log"`
}

// Log configures the process logger.
type Log struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

var defaults = map[string]interface{}{
	"graph":     "campus.dot",
	"format":    FormatAuto,
	"addr":      ":8080",
	"watch":     false,
	"capacity":  64,
	"log.level": "info",
	"log.json":  false,
}

// Flags returns a FlagSet whose flag names match the configuration keys.
func Flags(name string) *pflag.FlagSet {
	f := pflag.NewFlagSet(name, pflag.ContinueOnError)
	f.String("config", DefaultFile, "path of the TOML configuration file")
	f.String("graph", "campus.dot", "graph file to load (.dot, .gv, .yaml, .yml)")
	f.String("format", FormatAuto, "graph file format: auto, dot or yaml")
	f.String("addr", ":8080", "HTTP listen address")
	f.Bool("watch", false, "reload the graph when the file changes")
	f.Int("capacity", 64, "initial node registry capacity")
	f.String("log.level", "info", "log level: debug, info, warn, error")
	f.Bool("log.json", false, "emit JSON log records")

	return f
}

// Load resolves the configuration. f may be nil; when it defines a "config"
// flag, that path replaces DefaultFile.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(mapProvider(defaults), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path := DefaultFile
	if f != nil {
		if p, err := f.GetString("config"); err == nil && p != "" {
			path = p
		}
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges. Errors wrap ErrInvalid.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case FormatAuto, FormatDOT, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q (want auto, dot or yaml)", ErrInvalid, c.Format)
	}
	if c.Graph == "" {
		return fmt.Errorf("%w: graph path is empty", ErrInvalid)
	}
	if c.Addr == "" {
		return fmt.Errorf("%w: addr is empty", ErrInvalid)
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity %d must be positive", ErrInvalid, c.Capacity)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}

	return nil
}

// mapProvider feeds a flat dotted-key map into koanf.
type mapProvider map[string]interface{}

func (p mapProvider) Read() (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(p))
	for k, v := range p {
		out[k] = v
	}

	return unflatten(out), nil
}

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("config: mapProvider does not support ReadBytes")
}

// unflatten turns {"log.level": x} into {"log": {"level": x}}.
func unflatten(flat map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	for key, v := range flat {
		parts := strings.Split(key, ".")
		cur := out
		for _, p := range parts[:len(parts)-1] {
			next, ok := cur[p].(map[string]interface{})
			if !ok {
				next = make(map[string]interface{})
				cur[p] = next
			}
			cur = next
		}
		cur[parts[len(parts)-1]] = v
	}

	return out
}
