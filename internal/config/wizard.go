package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard asks for the site settings interactively and saves the
// resulting Config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to showcase! Let's set up your landing page.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site copy.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Site.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.Site.Title = strings.TrimSpace(title)

	taglinePrompt := promptui.Prompt{
		Label:   "Tagline",
		Default: cfg.Site.Tagline,
	}
	tagline, err := taglinePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("tagline: %w", err)
	}
	cfg.Site.Tagline = strings.TrimSpace(tagline)

	// 2. Where "Next" sends buyers.
	registrarPrompt := promptui.Prompt{
		Label:    "Registrar search URL",
		Default:  cfg.Site.RegistrarURL,
		Validate: validateRegistrarURL,
	}
	registrar, err := registrarPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("registrar url: %w", err)
	}
	cfg.Site.RegistrarURL = strings.TrimSpace(registrar)

	pricePrompt := promptui.Prompt{
		Label:   "Price shown for domains without one",
		Default: cfg.Site.DefaultPrice,
	}
	price, err := pricePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("default price: %w", err)
	}
	cfg.Site.DefaultPrice = strings.TrimSpace(price)

	// 3. Paging and serving.
	pageSizePrompt := promptui.Prompt{
		Label:    "Cards per page",
		Default:  strconv.Itoa(cfg.Catalog.PageSize),
		Validate: validatePositive,
	}
	pageSize, err := pageSizePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("page size: %w", err)
	}
	cfg.Catalog.PageSize, _ = strconv.Atoi(strings.TrimSpace(pageSize))

	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	port, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(strings.TrimSpace(port))

	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static export",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = strings.TrimSpace(outputDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateRegistrarURL(s string) error {
	if !strings.Contains(s, DomainPlaceholder) {
		return fmt.Errorf("must contain %s", DomainPlaceholder)
	}
	return nil
}

func validatePositive(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return errors.New("must be a positive number")
	}
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 65535 {
		return errors.New("must be a port between 1 and 65535")
	}
	return nil
}
