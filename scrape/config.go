package scrape

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultItemLimit caps extracted items per source when a source does not
// configure its own limit.
const DefaultItemLimit = 12

// Fallback selectors for the optional fields, matching what news pages
// usually nest inside an item container.
const (
	defaultDescriptionSelector = "p"
	defaultLinkSelector        = "a"
	defaultImageSelector       = "img"
)

// Selectors enumerates the CSS selectors that locate article fields inside a
// page. Container bounds one candidate item; the remaining selectors are
// evaluated relative to it.
type Selectors struct {
	Container   string `yaml:"container"`
	Headline    string `yaml:"headline"`
	Description string `yaml:"description"`
	Link        string `yaml:"link"`
	Image       string `yaml:"image"`
}

// Source is the per-site scraping configuration. Adding a news source means
// adding a config entry, never new code.
type Source struct {
	Name      string    `yaml:"name"`
	URL       string    `yaml:"url"`
	Selectors Selectors `yaml:"selectors"`
	Limit     int       `yaml:"limit"`
}

// Config is the full source configuration, ordered as listed in the file.
type Config struct {
	Sources []Source `yaml:"sources"`
}

// LoadConfig reads and validates a YAML source configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse source config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every source for the required fields and applies defaults
// for the optional ones. Missing required selectors are a configuration
// error; they must fail loading, not mid-run.
func (c *Config) Validate() error {
	if len(c.Sources) == 0 {
		return fmt.Errorf("source config: no sources defined")
	}

	for i := range c.Sources {
		src := &c.Sources[i]
		if src.Name == "" {
			return fmt.Errorf("source config: source %d has no name", i)
		}
		if src.URL == "" {
			return fmt.Errorf("source config: source %q has no url", src.Name)
		}
		if src.Selectors.Container == "" {
			return fmt.Errorf("source config: source %q is missing the container selector", src.Name)
		}
		if src.Selectors.Headline == "" {
			return fmt.Errorf("source config: source %q is missing the headline selector", src.Name)
		}

		if src.Selectors.Description == "" {
			src.Selectors.Description = defaultDescriptionSelector
		}
		if src.Selectors.Link == "" {
			src.Selectors.Link = defaultLinkSelector
		}
		if src.Selectors.Image == "" {
			src.Selectors.Image = defaultImageSelector
		}
		if src.Limit <= 0 {
			src.Limit = DefaultItemLimit
		}
	}
	return nil
}
