// Package config holds the runtime settings of the visualiser: playback
// pacing, narration, logging, the HTTP listener and authoring bounds.
//
// Settings come from an optional YAML file layered over Default(); command
// line flags are applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KunjBhawsar/Graph-Algorithm-Visualiser/core"
)

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root configuration document.
type Config struct {
	Playback  Playback  `yaml:"playback"`
	Narration Narration `yaml:"narration"`
	Log       Log       `yaml:"log"`
	Server    Server    `yaml:"server"`
	Graph     Graph     `yaml:"graph"`
}

// Playback controls timer-driven autoplay.
type Playback struct {
	Interval time.Duration `yaml:"interval"`
}

// Narration controls spoken (or printed) descriptions.
type Narration struct {
	Enabled bool `yaml:"enabled"`
	// WordsPerMinute is the base speaking pace at Rate 1.0.
	WordsPerMinute int `yaml:"words_per_minute"`
	// Rate scales WordsPerMinute; 0.5 is half speed.
	Rate float64 `yaml:"rate"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Server is the HTTP listener used by `serve`.
type Server struct {
	Listen string `yaml:"listen"`
}

// Graph bounds authored graphs.
type Graph struct {
	MaxNodes int `yaml:"max_nodes"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Playback:  Playback{Interval: time.Second},
		Narration: Narration{Enabled: true, WordsPerMinute: 150, Rate: 0.5},
		Log:       Log{Level: "info", Format: "text"},
		Server:    Server{Listen: "127.0.0.1:3000"},
		Graph:     Graph{MaxNodes: core.MaxVertices},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.decode(data); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse decodes YAML bytes over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config yaml: %w", err)
	}

	return nil
}

// Validate checks every field and reports the first bad one.
func (c Config) Validate() error {
	switch {
	case c.Playback.Interval <= 0:
		return fmt.Errorf("%w: playback.interval %s must be positive", ErrInvalid, c.Playback.Interval)
	case c.Narration.WordsPerMinute <= 0:
		return fmt.Errorf("%w: narration.words_per_minute %d must be positive", ErrInvalid, c.Narration.WordsPerMinute)
	case c.Narration.Rate <= 0:
		return fmt.Errorf("%w: narration.rate %g must be positive", ErrInvalid, c.Narration.Rate)
	case c.Graph.MaxNodes < core.MinVertices || c.Graph.MaxNodes > core.MaxVertices:
		return fmt.Errorf("%w: graph.max_nodes %d not in [%d,%d]", ErrInvalid, c.Graph.MaxNodes, core.MinVertices, core.MaxVertices)
	case c.Server.Listen == "":
		return fmt.Errorf("%w: server.listen is empty", ErrInvalid)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q must be 'text' or 'json'", ErrInvalid, c.Log.Format)
	}

	return nil
}

// ParseLevel maps "debug", "info", "warn" and "error" onto slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: log.level %q must be debug, info, warn or error", ErrInvalid, s)
	}
}

// NewLogger builds a logger writing to w with the configured handler.
// It does not touch slog.Default.
func (l Log) NewLogger(w io.Writer) *slog.Logger {
	level, _ := ParseLevel(l.Level)
	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(l.Format) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
