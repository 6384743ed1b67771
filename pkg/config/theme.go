package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// defaultThemeVersion is assigned to manifests that declare no version.
const defaultThemeVersion = "0.0.0"

// ThemeRegistry registers the inline manifests and the manifests listed in
// ThemeFiles into a go-theme registry.
func (c Config) ThemeRegistry() (*theme.MemoryRegistry, error) {
	registry := theme.NewRegistry()
	for idx := range c.Themes {
		manifest := c.Themes[idx]
		if err := registerManifest(registry, &manifest); err != nil {
			return nil, fmt.Errorf("config: theme at index %d: %w", idx, err)
		}
	}
	for _, path := range c.ThemeFiles {
		manifest, err := loadManifest(path)
		if err != nil {
			return nil, err
		}
		if err := registerManifest(registry, manifest); err != nil {
			return nil, fmt.Errorf("config: theme file %s: %w", path, err)
		}
	}
	return registry, nil
}

// ThemeSelector returns a go-theme selector over ThemeRegistry that defaults
// to the configured theme and variant.
func (c Config) ThemeSelector() (theme.Selector, error) {
	registry, err := c.ThemeRegistry()
	if err != nil {
		return theme.Selector{}, err
	}
	return theme.Selector{
		Registry:       registry,
		DefaultTheme:   strings.TrimSpace(c.Theme.Name),
		DefaultVariant: strings.TrimSpace(c.Theme.Variant),
	}, nil
}

func registerManifest(registry *theme.MemoryRegistry, manifest *theme.Manifest) error {
	manifest.Name = strings.TrimSpace(manifest.Name)
	if strings.TrimSpace(manifest.Version) == "" {
		manifest.Version = defaultThemeVersion
	}
	return registry.Register(manifest)
}

func loadManifest(path string) (*theme.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read theme %s: %w", path, err)
	}
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	manifest, err := theme.LoadBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("config: decode theme %s: %w", path, err)
	}
	return manifest, nil
}
