package config

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed site.yaml
var defaultSiteYAML []byte

// SiteConfig holds the public site metadata and navigation.
type SiteConfig struct {
	Site Site `yaml:"site"`
}

// Site is the metadata shown in page heads, the feed and the navigation bar.
type Site struct {
	Name        string            `yaml:"name" json:"name"`
	Logo        string            `yaml:"logo" json:"logo"`
	Description string            `yaml:"description" json:"description"`
	Keywords    string            `yaml:"keywords" json:"keywords"`
	Language    string            `yaml:"language" json:"language"`
	URL         string            `yaml:"url" json:"url"`
	OGImage     string            `yaml:"og_image" json:"og_image"`
	Links       map[string]string `yaml:"links" json:"links"`
	Navigation  []NavItem         `yaml:"navigation" json:"navigation"`
}

// NavItem is one entry of the navigation bar. Href is a site path or an
// absolute external URL.
type NavItem struct {
	Href           string `yaml:"href" json:"href"`
	Label          string `yaml:"label" json:"label"`
	TranslationKey string `yaml:"translation_key" json:"translation_key"`
}

// DefaultSiteConfig returns the embedded site configuration.
func DefaultSiteConfig() *SiteConfig {
	cfg, err := ParseSiteConfig(defaultSiteYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded site config is invalid: %v", err))
	}
	return cfg
}

// LoadSiteConfig loads site configuration from a YAML file. An empty path
// returns the embedded default.
// The path is expected to come from the operator (SITE_CONFIG_PATH).
func LoadSiteConfig(path string) (*SiteConfig, error) {
	if path == "" {
		return DefaultSiteConfig(), nil
	}

	// #nosec G304 -- path is provided by the operator, not by request input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site config: %w", err)
	}
	return ParseSiteConfig(data)
}

// ParseSiteConfig decodes and validates site configuration YAML.
func ParseSiteConfig(data []byte) (*SiteConfig, error) {
	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse site config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("site config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks required fields and URL formats.
func (c *SiteConfig) Validate() error {
	s := c.Site
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("site name is required")
	}
	if err := validateAbsoluteURL("site url", s.URL); err != nil {
		return err
	}
	if s.OGImage != "" {
		if err := validateAbsoluteURL("og_image", s.OGImage); err != nil {
			return err
		}
	}
	for i, item := range s.Navigation {
		if item.Href == "" || item.Label == "" {
			return fmt.Errorf("navigation[%d]: href and label are required", i)
		}
	}
	return nil
}

// URLFor joins a site-relative path onto the site URL.
func (s Site) URLFor(path string) string {
	return strings.TrimSuffix(s.URL, "/") + "/" + strings.TrimPrefix(path, "/")
}

func validateAbsoluteURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", field, raw)
	}
	return nil
}
