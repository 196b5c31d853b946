package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. Nested keys use a double
// underscore: SHOWCASE_SERVER__PORT -> server.port.
const EnvPrefix = "SHOWCASE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SHOWCASE_*). A missing file is not an
// error; the shipped defaults are used.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.applyDefaults(k.Exists)

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// reservedKeys are category keys taken by the "all" filter and by the
// directories an export writes next to the category pages.
var reservedKeys = map[string]bool{
	"all":    true,
	"static": true,
	"blog":   true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("catalog.page_size must be positive")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if !strings.Contains(c.Site.RegistrarURL, DomainPlaceholder) {
		return fmt.Errorf("site.registrar_url must contain %s", DomainPlaceholder)
	}

	seen := make(map[string]bool, len(c.Catalog.Domains))
	for i, d := range c.Catalog.Domains {
		name := strings.ToLower(strings.TrimSpace(d.Name))
		if name == "" {
			return fmt.Errorf("catalog.domains[%d]: name is required", i)
		}
		if seen[name] {
			return fmt.Errorf("catalog.domains[%d]: duplicate domain %q", i, name)
		}
		seen[name] = true
	}

	keys := make(map[string]bool, len(c.Catalog.Categories))
	for i, cat := range c.Catalog.Categories {
		if cat.Key == "" {
			return fmt.Errorf("catalog.categories[%d]: key is required", i)
		}
		if reservedKeys[cat.Key] {
			return fmt.Errorf("catalog.categories[%d]: %q is reserved", i, cat.Key)
		}
		if strings.ContainsAny(cat.Key, `/\`) || strings.Contains(cat.Key, "..") || cat.Key == "." {
			return fmt.Errorf("catalog.categories[%d]: key %q must not contain path separators or \"..\"", i, cat.Key)
		}
		if keys[cat.Key] {
			return fmt.Errorf("catalog.categories[%d]: duplicate key %q", i, cat.Key)
		}
		keys[cat.Key] = true
		for _, entry := range cat.Domains {
			if !doublestar.ValidatePattern(entry) {
				return fmt.Errorf("category %s: invalid pattern %q", cat.Key, entry)
			}
		}
	}

	if c.Contact.RatePerMinute < 0 || c.Contact.Burst < 0 {
		return fmt.Errorf("contact rate limits must be non-negative")
	}
	if c.Contact.Retain <= 0 {
		return fmt.Errorf("contact.retain must be positive")
	}
	if c.Contact.MaxMessage <= 0 {
		return fmt.Errorf("contact.max_message must be positive")
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	return nil
}

// RegistrarLink returns the purchase URL for a domain.
func (s SiteConfig) RegistrarLink(domain string) string {
	return strings.ReplaceAll(s.RegistrarURL, DomainPlaceholder, url.QueryEscape(strings.ToLower(domain)))
}
