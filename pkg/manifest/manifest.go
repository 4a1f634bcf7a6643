// Package manifest holds the asset manifest compiled into the binary.
package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dtnitsch/skincheck/models"
	"gopkg.in/yaml.v3"
)

// DefaultPriorityLimit caps the priority list when the manifest leaves it unset.
const DefaultPriorityLimit = 10

// ErrInvalidManifest is wrapped by every validation failure.
var ErrInvalidManifest = errors.New("invalid manifest")

//go:embed default_skin.yaml
var defaultSkinYAML []byte

var (
	defaultOnce     sync.Once
	defaultManifest *models.AssetManifest
	defaultErr      error
)

// Default returns the embedded default-skin manifest. It is parsed once;
// callers must not modify the result.
func Default() (*models.AssetManifest, error) {
	defaultOnce.Do(func() {
		defaultManifest, defaultErr = Parse(defaultSkinYAML)
	})
	return defaultManifest, defaultErr
}

// Parse decodes and validates a manifest document.
func Parse(data []byte) (*models.AssetManifest, error) {
	var m models.AssetManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("error unmarshalling manifest: %w", err)
	}
	if m.PriorityLimit == 0 {
		m.PriorityLimit = DefaultPriorityLimit
	}
	if err := Validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the structural rules the inventory code relies on:
// a non-empty required group, unique non-empty category names, non-empty
// filenames, and critical/priority entries that name required categories.
func Validate(m *models.AssetManifest) error {
	if len(m.Required) == 0 {
		return fmt.Errorf("%w: no required categories", ErrInvalidManifest)
	}
	if m.PriorityLimit < 0 {
		return fmt.Errorf("%w: negative priority_limit %d", ErrInvalidManifest, m.PriorityLimit)
	}

	seen := make(map[string]bool)
	for _, group := range [][]models.Category{m.Required, m.Optional} {
		for _, c := range group {
			if strings.TrimSpace(c.Name) == "" {
				return fmt.Errorf("%w: category with empty name", ErrInvalidManifest)
			}
			if seen[c.Name] {
				return fmt.Errorf("%w: duplicate category %q", ErrInvalidManifest, c.Name)
			}
			seen[c.Name] = true
			for _, f := range c.Files {
				if strings.TrimSpace(f) == "" {
					return fmt.Errorf("%w: empty filename in %q", ErrInvalidManifest, c.Name)
				}
			}
		}
	}

	for _, name := range m.Critical {
		if _, ok := m.RequiredCategory(name); !ok {
			return fmt.Errorf("%w: critical category %q is not a required category", ErrInvalidManifest, name)
		}
	}
	for _, name := range m.Priority {
		if _, ok := m.RequiredCategory(name); !ok {
			return fmt.Errorf("%w: priority category %q is not a required category", ErrInvalidManifest, name)
		}
	}
	return nil
}
