package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ThemeSeed is one theme entry in the seed file loaded on first start
type ThemeSeed struct {
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Keywords    map[string]float64 `yaml:"keywords"`
	Goals       []string           `yaml:"goals"`
	Parent      string             `yaml:"parent"`
}

// themesFile is the top-level shape of the seed file
type themesFile struct {
	Themes []ThemeSeed `yaml:"themes"`
}

// LoadThemes reads and validates the theme seed file. A malformed keyword
// weight is a hard error, a theme scoring against a bad weight table would
// silently classify everything wrong.
func LoadThemes(path string) ([]ThemeSeed, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from config
	if err != nil {
		return nil, fmt.Errorf("read themes file: %w", err)
	}

	var f themesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse themes file: %w", err)
	}
	if len(f.Themes) == 0 {
		return nil, fmt.Errorf("themes file %s defines no themes", path)
	}

	seen := make(map[string]struct{}, len(f.Themes))
	for _, th := range f.Themes {
		if th.Name == "" {
			return nil, fmt.Errorf("theme with empty name in %s", path)
		}
		if _, ok := seen[th.Name]; ok {
			return nil, fmt.Errorf("duplicate theme %q in %s", th.Name, path)
		}
		seen[th.Name] = struct{}{}

		if len(th.Keywords) == 0 {
			return nil, fmt.Errorf("theme %q has no keywords", th.Name)
		}
		for kw, weight := range th.Keywords {
			if kw == "" {
				return nil, fmt.Errorf("theme %q has an empty keyword", th.Name)
			}
			if weight <= 0 || weight > 1 {
				return nil, fmt.Errorf("theme %q keyword %q has weight %v, must be in (0, 1]", th.Name, kw, weight)
			}
		}
		if len(th.Goals) == 0 {
			return nil, fmt.Errorf("theme %q serves no research goals", th.Name)
		}
	}
	return f.Themes, nil
}
