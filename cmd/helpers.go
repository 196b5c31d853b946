package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ziadkadry99/domain-showcase/internal/catalog"
	"github.com/ziadkadry99/domain-showcase/internal/config"
	"github.com/ziadkadry99/domain-showcase/internal/content"
	"github.com/ziadkadry99/domain-showcase/internal/web"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `showcase init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// site is what every command builds from the config.
type site struct {
	cfg      *config.Config
	index    *catalog.Index
	labels   map[string]string
	renderer *web.Renderer
}

// loadSite loads the config and builds the catalog index, content and
// page renderer from it. A relative content_dir is resolved against the
// config file's directory.
func loadSite() (*site, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	contentDir := cfg.ContentDir
	if contentDir != "" && !filepath.IsAbs(contentDir) {
		contentDir = filepath.Join(filepath.Dir(cfgFile), contentDir)
	}
	c, err := loadContent(contentDir)
	if err != nil {
		return nil, err
	}

	index := cfg.Catalog.Index()
	labels := cfg.Catalog.Labels()
	renderer, err := web.NewRenderer(cfg.Site, index, labels, c)
	if err != nil {
		return nil, err
	}
	return &site{cfg: cfg, index: index, labels: labels, renderer: renderer}, nil
}

// loadContent reads the FAQ and blog from dir, or the embedded defaults
// when dir is empty.
func loadContent(dir string) (*content.Content, error) {
	if dir == "" {
		return content.Default()
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("content_dir: %w", err)
	}
	c, err := content.Load(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("loading content from %s: %w", dir, err)
	}
	return c, nil
}
