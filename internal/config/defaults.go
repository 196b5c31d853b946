package config

const (
	// DefaultPageSize is the number of cards revealed per "load more".
	DefaultPageSize = 9
	// DefaultConfigFile is the config path used when --config is not given.
	DefaultConfigFile = ".showcase.yml"
	// DomainPlaceholder is substituted into Site.RegistrarURL.
	DomainPlaceholder = "{domain}"
)

// DefaultConfig returns a Config carrying the shipped portfolio.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:        "Premium Domains for Sale",
			Tagline:      "Short, brandable names ready for your next project.",
			RegistrarURL: "https://www.spaceship.com/domain-search/?query={domain}&beast=false&tab=domains",
			DefaultPrice: "Make an offer",
		},
		Catalog: CatalogConfig{
			PageSize:   DefaultPageSize,
			Domains:    DefaultDomains(),
			Categories: DefaultCategories(),
		},
		Server: ServerConfig{
			Port: 8080,
		},
		Contact: ContactConfig{
			RatePerMinute: 6,
			Burst:         3,
			Retain:        200,
			MaxMessage:    4000,
		},
		OutputDir: "public",
	}
}

// DefaultDomains returns a fresh copy of the shipped domain cards.
func DefaultDomains() []DomainConfig {
	out := make([]DomainConfig, len(defaultDomains))
	for i, name := range defaultDomains {
		out[i] = DomainConfig{Name: name}
	}
	return out
}

// DefaultCategories returns a deep copy of the shipped category lists.
func DefaultCategories() []CategoryConfig {
	out := make([]CategoryConfig, len(defaultCategories))
	for i, c := range defaultCategories {
		out[i] = CategoryConfig{
			Key:     c.Key,
			Label:   c.Label,
			Domains: append([]string(nil), c.Domains...),
		}
	}
	return out
}

// applyDefaults fills every unset field from DefaultConfig. Catalog lists
// are replaced wholesale rather than merged. isSet reports whether a key
// was given explicitly; contact.rate_per_minute keeps an explicit 0.
func (c *Config) applyDefaults(isSet func(key string) bool) {
	d := DefaultConfig()
	if c.Site.Title == "" {
		c.Site.Title = d.Site.Title
	}
	if c.Site.Tagline == "" {
		c.Site.Tagline = d.Site.Tagline
	}
	if c.Site.RegistrarURL == "" {
		c.Site.RegistrarURL = d.Site.RegistrarURL
	}
	if c.Site.DefaultPrice == "" {
		c.Site.DefaultPrice = d.Site.DefaultPrice
	}
	if c.Catalog.PageSize == 0 {
		c.Catalog.PageSize = d.Catalog.PageSize
	}
	if len(c.Catalog.Domains) == 0 {
		c.Catalog.Domains = d.Catalog.Domains
	}
	if len(c.Catalog.Categories) == 0 {
		c.Catalog.Categories = d.Catalog.Categories
	}
	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if c.Contact.RatePerMinute == 0 && !isSet("contact.rate_per_minute") {
		c.Contact.RatePerMinute = d.Contact.RatePerMinute
	}
	if c.Contact.Burst == 0 {
		c.Contact.Burst = d.Contact.Burst
	}
	if c.Contact.Retain == 0 {
		c.Contact.Retain = d.Contact.Retain
	}
	if c.Contact.MaxMessage == 0 {
		c.Contact.MaxMessage = d.Contact.MaxMessage
	}
	if c.OutputDir == "" {
		c.OutputDir = d.OutputDir
	}
}
