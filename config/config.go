// Package config loads the stepwalk process configuration from TOML.
//
//	[log]
//	level = "info"
//
//	[server]
//	addr = ":8420"
//	rate_limit = 50.0
//	burst = 10
//	max_vertices = 5000
//
//	[remote]
//	url = "http://localhost:8420"
//	timeout = "30s"
//
//	[play]
//	interval = "600ms"
//
// Missing keys keep their defaults. Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// ErrInvalid wraps validation failures.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full process configuration.
type Config struct {
	Log    Log    `toml:"log"`
	Server Server `toml:"server"`
	Remote Remote `toml:"remote"`
	Play   Play   `toml:"play"`
}

// Log configures the process logger.
type Log struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

// Server configures `stepwalk serve`.
type Server struct {
	Addr         string  `toml:"addr" validate:"required"`
	RateLimit    float64 `toml:"rate_limit" validate:"gte=0"`
	Burst        int     `toml:"burst" validate:"gte=1"`
	MaxVertices  int     `toml:"max_vertices" validate:"gte=0"`
	MaxEdges     int     `toml:"max_edges" validate:"gte=0"`
	MaxBodyBytes int64   `toml:"max_body_bytes" validate:"gte=0"`
}

// Remote configures the Dijkstra remote client. An empty URL computes locally.
type Remote struct {
	URL     string        `toml:"url" validate:"omitempty,url"`
	Timeout time.Duration `toml:"timeout" validate:"gt=0"`
}

// Play configures the terminal player.
type Play struct {
	// Interval is the autoplay step delay.
	Interval time.Duration `toml:"interval" validate:"gt=0"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    Log{Level: "info"},
		Server: Server{Addr: ":8420", Burst: 1, MaxBodyBytes: 8 << 20},
		Remote: Remote{Timeout: 30 * time.Second},
		Play:   Play{Interval: 600 * time.Millisecond},
	}
}

var validate = validator.New()

// Validate checks every section.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	return Parse(data)
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
