// Package config loads the server configuration.
//
// The file is TOML. Every key is optional; missing keys keep the defaults
// from [Default]. A handful of environment variables override the file so
// containers can inject addresses and secrets without rewriting it:
//
//	SALONSITE_ADDR        listen address
//	SALONSITE_BASE_URL    public site URL
//	SALONSITE_REDIS_ADDR  Redis address for storage and cache
//	SALONSITE_MONGO_URI   MongoDB connection string
//
// The merged result is validated with go-playground/validator; failures
// carry the INVALID_CONFIG code.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the server configuration.
type Config struct {
	Addr         string `toml:"addr" json:"addr" validate:"required,hostname_port"`
	BaseURL      string `toml:"base_url" json:"base_url" validate:"required,url"`
	ContentFile  string `toml:"content_file" json:"content_file,omitempty"`
	WatchContent bool   `toml:"watch_content" json:"watch_content"`
	Strict       bool   `toml:"strict" json:"strict"`
	LogLevel     string `toml:"log_level" json:"log_level" validate:"oneof=debug info warn error"`

	Storage  Storage  `toml:"storage" json:"storage"`
	Cache    Cache    `toml:"cache" json:"cache"`
	Sections Sections `toml:"sections" json:"sections"`
	Cookie   Cookie   `toml:"cookie" json:"cookie"`
}

// Storage selects where visitor preferences live.
type Storage struct {
	Backend string `toml:"backend" json:"backend" validate:"oneof=memory file redis mongo"`
	Dir     string `toml:"dir" json:"dir,omitempty"`

	RedisAddr     string `toml:"redis_addr" json:"redis_addr,omitempty" validate:"required_if=Backend redis"`
	RedisPassword string `toml:"redis_password" json:"-"`
	RedisDB       int    `toml:"redis_db" json:"redis_db" validate:"min=0,max=15"`

	MongoURI        string `toml:"mongo_uri" json:"-" validate:"required_if=Backend mongo"`
	MongoDatabase   string `toml:"mongo_database" json:"mongo_database,omitempty"`
	MongoCollection string `toml:"mongo_collection" json:"mongo_collection,omitempty"`

	// TTL expires idle preferences on backends that support it.
	TTL Duration `toml:"ttl" json:"ttl"`
}

// Cache selects the rendered-page cache.
type Cache struct {
	Backend   string   `toml:"backend" json:"backend" validate:"oneof=none file redis"`
	Dir       string   `toml:"dir" json:"dir,omitempty"`
	RedisAddr string   `toml:"redis_addr" json:"redis_addr,omitempty" validate:"required_if=Backend redis"`
	Namespace string   `toml:"namespace" json:"namespace,omitempty"`
	// Prefix scopes every page key, so several deployments can share one
	// backend without serving each other's pages.
	Prefix string   `toml:"prefix" json:"prefix,omitempty" validate:"omitempty,max=64,key_prefix"`
	TTL    Duration `toml:"ttl" json:"ttl"`
}

// Sections enables the optional page sections.
type Sections struct {
	FAQ     bool `toml:"faq" json:"faq"`
	Pricing bool `toml:"pricing" json:"pricing"`
}

// Cookie configures the visitor id cookie.
type Cookie struct {
	Name   string   `toml:"name" json:"name" validate:"required,cookie_name"`
	Secure bool     `toml:"secure" json:"secure"`
	MaxAge Duration `toml:"max_age" json:"max_age"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:     ":8080",
		BaseURL:  "https://petspa2.ro",
		LogLevel: "info",
		Storage: Storage{
			Backend: "memory",
			TTL:     Duration(90 * 24 * time.Hour),
		},
		Cache: Cache{
			Backend: "none",
			TTL:     Duration(time.Hour),
		},
		Cookie: Cookie{
			Name:   "salonsite_visitor",
			MaxAge: Duration(365 * 24 * time.Hour),
		},
	}
}

// Dir returns the per-user configuration directory (~/.config/salonsite).
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "salonsite"), nil
}

// Duration is a time.Duration that reads and writes Go duration strings
// such as "90m" or "720h".
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) String() string { return time.Duration(d).String() }

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", b, err)
	}
	if v < 0 {
		return fmt.Errorf("invalid duration %q: negative", b)
	}
	*d = Duration(v)
	return nil
}
