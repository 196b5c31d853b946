package config

// Config is the top-level showcase configuration, corresponding to .showcase.yml.
type Config struct {
	Site       SiteConfig    `yaml:"site" koanf:"site"`
	Catalog    CatalogConfig `yaml:"catalog" koanf:"catalog"`
	Server     ServerConfig  `yaml:"server" koanf:"server"`
	Contact    ContactConfig `yaml:"contact" koanf:"contact"`
	ContentDir string        `yaml:"content_dir,omitempty" koanf:"content_dir"`
	OutputDir  string        `yaml:"output_dir" koanf:"output_dir"`
}

// SiteConfig holds the landing page chrome.
type SiteConfig struct {
	Title   string `yaml:"title" koanf:"title"`
	Tagline string `yaml:"tagline" koanf:"tagline"`
	// RegistrarURL is the purchase link template; {domain} is replaced
	// with the lowercased domain name.
	RegistrarURL string `yaml:"registrar_url" koanf:"registrar_url"`
	DefaultPrice string `yaml:"default_price" koanf:"default_price"`
}

// CatalogConfig is the domain portfolio and its category lists.
type CatalogConfig struct {
	PageSize   int              `yaml:"page_size" koanf:"page_size"`
	Domains    []DomainConfig   `yaml:"domains" koanf:"domains"`
	Categories []CategoryConfig `yaml:"categories" koanf:"categories"`
}

// DomainConfig is one card. Domains appear on the page in list order.
type DomainConfig struct {
	Name        string `yaml:"name" koanf:"name"`
	Price       string `yaml:"price,omitempty" koanf:"price"`
	Description string `yaml:"description,omitempty" koanf:"description"`
}

// CategoryConfig is one filter button. Domains may hold literal names or
// doublestar patterns such as "*.info".
type CategoryConfig struct {
	Key     string   `yaml:"key" koanf:"key"`
	Label   string   `yaml:"label" koanf:"label"`
	Domains []string `yaml:"domains" koanf:"domains"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// ContactConfig bounds the contact form.
type ContactConfig struct {
	// RatePerMinute is the sustained number of submissions accepted per
	// minute. An explicit 0 disables limiting; leaving it out uses the default.
	RatePerMinute int `yaml:"rate_per_minute" koanf:"rate_per_minute"`
	Burst         int `yaml:"burst" koanf:"burst"`
	// Retain is how many recent messages are kept in memory.
	Retain     int `yaml:"retain" koanf:"retain"`
	MaxMessage int `yaml:"max_message" koanf:"max_message"`
}
