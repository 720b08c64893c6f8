package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigDir  = "config"
	DefaultConfigFile = "foods.yaml"
	DefaultConfigPath = DefaultConfigDir + "/" + DefaultConfigFile
)

//go:embed foods.yaml
var embeddedFoods []byte

// SourceEmbedded is reported by LoadAuto when the built-in catalog is used
const SourceEmbedded = "embedded"

// fileConfig mirrors the on-disk layout of a catalog file
type fileConfig struct {
	Foods []foodConfig `yaml:"foods"`
}

type foodConfig struct {
	ID    string `yaml:"id,omitempty"`
	Name  string `yaml:"name"`
	Image string `yaml:"image,omitempty"`
	Good  bool   `yaml:"good"`
}

// Parse decodes a YAML catalog and validates it
func Parse(data []byte) (*Catalog, error) {
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	items := make([]Item, 0, len(cfg.Foods))
	for _, f := range cfg.Foods {
		items = append(items, Item{
			ID:           f.ID,
			Name:         f.Name,
			ImageRef:     f.Image,
			IsBeneficial: f.Good,
		})
	}
	return New(items)
}

// Default returns the built-in catalog
func Default() (*Catalog, error) {
	return Parse(embeddedFoods)
}

// LoadFromPath reads and parses a catalog file
func LoadFromPath(p string) (*Catalog, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", path.Base(p), err)
	}
	return c, nil
}

// LoadAuto loads the catalog with priority: customPath > DefaultConfigPath > embedded
// The second return value names the source that was used
func LoadAuto(customPath string) (*Catalog, string, error) {
	// Priority 1: Custom path from CLI
	if customPath != "" {
		c, err := LoadFromPath(customPath)
		return c, customPath, err
	}

	// Priority 2: Default external config
	if fileExists(DefaultConfigPath) {
		c, err := LoadFromPath(DefaultConfigPath)
		return c, DefaultConfigPath, err
	}

	// Priority 3: Embedded fallback
	c, err := Default()
	return c, SourceEmbedded, err
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
