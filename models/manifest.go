package models

import "strings"

// Category is one named group of expected asset filenames.
// Files keep their declaration order; reports follow it.
type Category struct {
	Name  string   `yaml:"name" json:"name"`
	Files []string `yaml:"files" json:"files"`
}

// AssetManifest is the static list of assets a skin directory is checked against.
type AssetManifest struct {
	TargetDir     string     `yaml:"target_dir"`
	Required      []Category `yaml:"required"`
	Optional      []Category `yaml:"optional"`
	Critical      []string   `yaml:"critical"`      // required categories needed for a basic preview
	Priority      []string   `yaml:"priority"`      // required categories to fill first, in order
	PriorityLimit int        `yaml:"priority_limit"`
	Documentation []string   `yaml:"documentation"` // non-asset files that may live beside the assets
}

// IsCritical reports whether the named category is one of the critical ones.
func (m *AssetManifest) IsCritical(category string) bool {
	for _, c := range m.Critical {
		if c == category {
			return true
		}
	}
	return false
}

// RequiredCategory returns the required category with the given name.
func (m *AssetManifest) RequiredCategory(name string) (Category, bool) {
	for _, c := range m.Required {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// KnownNames returns the lower-cased union of every required and optional
// filename plus the documentation allow-list.
func (m *AssetManifest) KnownNames() map[string]struct{} {
	known := make(map[string]struct{})
	for _, group := range [][]Category{m.Required, m.Optional} {
		for _, c := range group {
			for _, f := range c.Files {
				known[strings.ToLower(f)] = struct{}{}
			}
		}
	}
	for _, doc := range m.Documentation {
		known[strings.ToLower(doc)] = struct{}{}
	}
	return known
}
