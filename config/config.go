// Package config provides configuration for alfredflow.
//
// Configuration is read from YAML or TOML, chosen by file extension. Every
// field has a default so a missing file is not an error.
package config

import (
	"fmt"
	"time"

	"alfredflow/workflow"
)

// Config is the top-level configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server" toml:"server"`
	Output     OutputConfig     `yaml:"output" toml:"output"`
	Calculator CalculatorConfig `yaml:"calculator" toml:"calculator"`
	Bookmarks  BookmarksConfig  `yaml:"bookmarks" toml:"bookmarks"`
	NoResults  NoResultsConfig  `yaml:"no_results" toml:"no_results"`
}

// ServerConfig configures the HTTP receiver started by `alfredflow serve`.
type ServerConfig struct {
	Addr           string        `yaml:"addr" toml:"addr"`
	ReadTimeout    time.Duration `yaml:"read_timeout" toml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout" toml:"write_timeout"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" toml:"idle_timeout"`
	RequestTimeout time.Duration `yaml:"request_timeout" toml:"request_timeout"`

	// CacheTTL is how long a rendered document is served for a repeated query.
	// Zero disables the cache.
	CacheTTL time.Duration `yaml:"cache_ttl" toml:"cache_ttl"`

	// RateLimit is the sustained number of requests per second; RateBurst the
	// bucket size. A zero RateLimit disables limiting.
	RateLimit float64 `yaml:"rate_limit" toml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst" toml:"rate_burst"`
}

// OutputConfig controls the ordering of the emitted document.
type OutputConfig struct {
	// SortDirection is "asc" or "desc".
	SortDirection string `yaml:"sort_direction" toml:"sort_direction"`
	SortField     string `yaml:"sort_field" toml:"sort_field"`

	// Sorted disables sorting when false; items then keep module order.
	Sorted bool `yaml:"sorted" toml:"sorted"`

	// Strict rejects sort and filter fields that items cannot be compared on.
	Strict bool `yaml:"strict" toml:"strict"`
}

type CalculatorConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Icon    string `yaml:"icon" toml:"icon"`
}

// BookmarksConfig lists static entries matched against the query.
type BookmarksConfig struct {
	Enabled     bool       `yaml:"enabled" toml:"enabled"`
	Icon        string     `yaml:"icon" toml:"icon"`
	FilterField string     `yaml:"filter_field" toml:"filter_field"`
	Entries     []Bookmark `yaml:"entries" toml:"entries"`
}

// Bookmark is one configured entry. URL is used as arg and quicklook URL.
type Bookmark struct {
	Title    string `yaml:"title" toml:"title"`
	Subtitle string `yaml:"subtitle" toml:"subtitle"`
	URL      string `yaml:"url" toml:"url"`
	UID      string `yaml:"uid" toml:"uid"`
	Icon     string `yaml:"icon" toml:"icon"`
	Type     string `yaml:"type" toml:"type"`

	// SkipCheck stops the host from verifying a file entry exists.
	SkipCheck bool `yaml:"skip_check" toml:"skip_check"`
}

// NoResultsConfig is the placeholder item shown when nothing matched.
type NoResultsConfig struct {
	Title    string `yaml:"title" toml:"title"`
	Subtitle string `yaml:"subtitle" toml:"subtitle"`
	Icon     string `yaml:"icon" toml:"icon"`
}

const defaultIcon = "https://img.icons8.com/badges/100/decision.png"

// DefaultConfig returns a config with all default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           ":8080",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   10 * time.Second,
			IdleTimeout:    120 * time.Second,
			RequestTimeout: 5 * time.Second,
			CacheTTL:       30 * time.Second,
			RateLimit:      20,
			RateBurst:      40,
		},
		Output: OutputConfig{
			SortDirection: string(workflow.Asc),
			SortField:     workflow.DefaultField,
			Sorted:        false,
		},
		Calculator: CalculatorConfig{
			Enabled: true,
			Icon:    "https://img.icons8.com/badges/100/calculator.png",
		},
		Bookmarks: BookmarksConfig{
			Enabled:     true,
			Icon:        "https://img.icons8.com/badges/100/bookmark.png",
			FilterField: workflow.FieldTitle,
		},
		NoResults: NoResultsConfig{
			Title:    "No results found",
			Subtitle: "Please try a different query.",
			Icon:     defaultIcon,
		},
	}
}

// Validate checks the config for values the receiver or the workflow would reject.
func (c *Config) Validate() error {
	if _, err := workflow.ParseDirection(c.Output.SortDirection); err != nil {
		return fmt.Errorf("output.sort_direction: %w", err)
	}
	if c.Output.Strict {
		if c.Output.SortField != "" && !workflow.KnownField(c.Output.SortField) {
			return fmt.Errorf("output.sort_field: %w", &workflow.FieldError{Field: c.Output.SortField, Err: workflow.ErrInvalidField})
		}
		if c.Bookmarks.FilterField != "" && !workflow.KnownField(c.Bookmarks.FilterField) {
			return fmt.Errorf("bookmarks.filter_field: %w", &workflow.FieldError{Field: c.Bookmarks.FilterField, Err: workflow.ErrInvalidField})
		}
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	durations := map[string]time.Duration{
		"server.read_timeout":    c.Server.ReadTimeout,
		"server.write_timeout":   c.Server.WriteTimeout,
		"server.idle_timeout":    c.Server.IdleTimeout,
		"server.request_timeout": c.Server.RequestTimeout,
	}
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	if c.Server.CacheTTL < 0 {
		return fmt.Errorf("server.cache_ttl must not be negative, got %s", c.Server.CacheTTL)
	}
	if c.Server.RateLimit < 0 || c.Server.RateBurst < 0 {
		return fmt.Errorf("server.rate_limit and server.rate_burst must not be negative")
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst == 0 {
		return fmt.Errorf("server.rate_burst must be positive when rate_limit is set")
	}

	for i, b := range c.Bookmarks.Entries {
		if b.Title == "" {
			return fmt.Errorf("bookmarks.entries[%d]: title is required", i)
		}
	}
	return nil
}

// Options returns the workflow options implied by the config.
func (c *Config) Options() []workflow.Option {
	if c.Output.Strict {
		return []workflow.Option{workflow.WithStrictFields()}
	}
	return nil
}
