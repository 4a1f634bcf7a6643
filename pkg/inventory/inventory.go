// Package inventory compares a Directory Snapshot with the asset manifest.
// Everything here is pure; scanning and printing live elsewhere.
package inventory

import (
	"path/filepath"
	"strings"

	"github.com/dtnitsch/skincheck/models"
	"github.com/dtnitsch/skincheck/pkg/storage"
)

// Status is the three-way state of a category, used to pick a glyph.
type Status int

const (
	StatusEmpty    Status = iota // nothing found
	StatusPartial                // some found, some missing
	StatusComplete               // nothing missing
)

func (s Status) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusPartial:
		return "partial"
	default:
		return "empty"
	}
}

// MarshalText lets yaml and json encode a Status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ClassifyStatus maps found/total counts to a Status. An empty category
// has nothing missing and so counts as complete.
func ClassifyStatus(found, total int) Status {
	switch {
	case found >= total:
		return StatusComplete
	case found > 0:
		return StatusPartial
	default:
		return StatusEmpty
	}
}

// CheckCategory splits files into found and missing, keeping manifest order.
func CheckCategory(files []string, existing storage.Snapshot) (found, missing []string) {
	found = []string{}
	missing = []string{}
	for _, f := range files {
		if existing.Has(f) {
			found = append(found, f)
		} else {
			missing = append(missing, f)
		}
	}
	return found, missing
}

// CategoryResult is the outcome of checking one manifest category.
type CategoryResult struct {
	Name    string   `yaml:"name" json:"name"`
	Status  Status   `yaml:"status" json:"status"`
	Total   int      `yaml:"total" json:"total"`
	Found   []string `yaml:"found" json:"found"`
	Missing []string `yaml:"missing" json:"missing"`
}

// CheckCategories runs CheckCategory over every category in order.
func CheckCategories(categories []models.Category, existing storage.Snapshot) []CategoryResult {
	results := make([]CategoryResult, 0, len(categories))
	for _, c := range categories {
		found, missing := CheckCategory(c.Files, existing)
		results = append(results, CategoryResult{
			Name:    c.Name,
			Status:  ClassifyStatus(len(found), len(c.Files)),
			Total:   len(c.Files),
			Found:   found,
			Missing: missing,
		})
	}
	return results
}

// Totals sums found and expected counts across categories.
type Totals struct {
	Found int `yaml:"found" json:"found"`
	Total int `yaml:"total" json:"total"`
}

// Percent is the truncated percentage of found files; 0 when nothing is expected.
func (t Totals) Percent() int {
	if t.Total == 0 {
		return 0
	}
	return t.Found * 100 / t.Total
}

// Aggregate sums the per-category counts.
func Aggregate(results []CategoryResult) Totals {
	var t Totals
	for _, r := range results {
		t.Found += len(r.Found)
		t.Total += r.Total
	}
	return t
}

// CriticalMissing collects the missing files of the manifest's critical
// categories, in manifest declaration order.
func CriticalMissing(m *models.AssetManifest, required []CategoryResult) []string {
	critical := []string{}
	for _, r := range required {
		if m.IsCritical(r.Name) {
			critical = append(critical, r.Missing...)
		}
	}
	return critical
}

// ExtraFiles returns snapshot entries that are neither manifest assets nor
// allow-listed documentation, sorted.
func ExtraFiles(m *models.AssetManifest, existing storage.Snapshot) []string {
	known := m.KnownNames()
	extra := []string{}
	for _, name := range existing.Sorted() {
		if _, ok := known[name]; !ok {
			extra = append(extra, name)
		}
	}
	return extra
}

// PriorityRecommendations walks the priority categories in order and collects
// their missing files until the manifest's priority limit is reached.
func PriorityRecommendations(m *models.AssetManifest, existing storage.Snapshot) []string {
	limit := m.PriorityLimit
	picks := []string{}
	for _, name := range m.Priority {
		c, ok := m.RequiredCategory(name)
		if !ok {
			continue
		}
		for _, f := range c.Files {
			if existing.Has(f) {
				continue
			}
			picks = append(picks, f)
			if len(picks) >= limit {
				break
			}
		}
		if len(picks) >= limit {
			break
		}
	}
	if len(picks) > limit {
		picks = picks[:limit]
	}
	return picks
}

// HDSuffix marks a double-resolution variant, as in hitcircle@2x.png.
const HDSuffix = "@2x"

// HDName returns the @2x variant name of an asset filename.
func HDName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + HDSuffix + ext
}

// HDVariants lists the required and optional assets, in manifest order, whose
// @2x variant is in the snapshot. It is informational only: the variants stay
// out of found and still count as extra files.
func HDVariants(m *models.AssetManifest, existing storage.Snapshot) []string {
	variants := []string{}
	for _, group := range [][]models.Category{m.Required, m.Optional} {
		for _, c := range group {
			for _, f := range c.Files {
				if existing.Has(HDName(f)) {
					variants = append(variants, f)
				}
			}
		}
	}
	return variants
}
