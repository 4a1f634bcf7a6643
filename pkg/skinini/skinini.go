// Package skinini reads the descriptive parts of a skin's skin.ini.
package skinini

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnitsch/skincheck/pkg/storage"
	"github.com/go-ini/ini"
)

// FileName is matched case-insensitively inside the skin directory.
const FileName = "skin.ini"

// Colour is one combo colour, each channel clamped to 0-255.
type Colour struct {
	R int `yaml:"r" json:"r"`
	G int `yaml:"g" json:"g"`
	B int `yaml:"b" json:"b"`
}

func (c Colour) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Metadata is what the report shows about a skin besides its files.
type Metadata struct {
	Name         string   `yaml:"name,omitempty" json:"name,omitempty"`
	Author       string   `yaml:"author,omitempty" json:"author,omitempty"`
	Version      string   `yaml:"version,omitempty" json:"version,omitempty"`
	ComboColours []Colour `yaml:"combo_colours,omitempty" json:"combo_colours,omitempty"`
}

// Load reads skin.ini from dir. It returns nil, nil when there is none.
func Load(s *storage.Storage, dir string) (*Metadata, error) {
	path, ok := s.FindFold(dir, FileName)
	if !ok {
		return nil, nil
	}
	data, err := s.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes skin.ini content. Keys and sections are case-insensitive,
// both "Key: value" and "Key = value" are accepted, and lines that are
// neither (including // comments) are skipped.
func Parse(data []byte) (*Metadata, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		Insensitive:             true,
		SkipUnrecognizableLines: true,
		IgnoreInlineComment:     true,
	}, data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", FileName, err)
	}

	meta := &Metadata{}
	if general, err := f.GetSection("general"); err == nil {
		meta.Name = general.Key("name").String()
		meta.Author = general.Key("author").String()
		meta.Version = general.Key("version").String()
	}

	for _, section := range []string{"colours", "colors"} {
		sec, err := f.GetSection(section)
		if err != nil {
			continue
		}
		for _, key := range sec.Keys() {
			if !strings.HasPrefix(key.Name(), "combo") {
				continue
			}
			if c, ok := parseColour(key.String()); ok {
				meta.ComboColours = append(meta.ComboColours, c)
			}
		}
	}
	return meta, nil
}

// parseColour accepts "R,G,B" with optional spaces.
func parseColour(value string) (Colour, bool) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return Colour{}, false
	}
	var rgb [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Colour{}, false
		}
		rgb[i] = min(max(n, 0), 255)
	}
	return Colour{R: rgb[0], G: rgb[1], B: rgb[2]}, true
}
