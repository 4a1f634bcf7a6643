package inventory

import (
	"github.com/dtnitsch/skincheck/models"
	"github.com/dtnitsch/skincheck/pkg/skinini"
	"github.com/dtnitsch/skincheck/pkg/storage"
)

// Report is everything a renderer needs, derived from one manifest and one snapshot.
type Report struct {
	Dir             string            `yaml:"dir" json:"dir"`
	Skin            *skinini.Metadata `yaml:"skin,omitempty" json:"skin,omitempty"` // from skin.ini, set by the caller
	PNGFiles        int               `yaml:"png_files" json:"png_files"`
	Required        []CategoryResult  `yaml:"required" json:"required"`
	Optional        []CategoryResult  `yaml:"optional" json:"optional"`
	RequiredTotals  Totals            `yaml:"required_totals" json:"required_totals"`
	OptionalTotals  Totals            `yaml:"optional_totals" json:"optional_totals"`
	RequiredPercent int               `yaml:"required_percent" json:"required_percent"`
	Extra           []string          `yaml:"extra" json:"extra"`
	CriticalMissing []string          `yaml:"critical_missing" json:"critical_missing"`
	Priority        []string          `yaml:"priority" json:"priority"`
	HDVariants      []string          `yaml:"hd_variants" json:"hd_variants"`
}

// Complete reports whether every required asset is present.
func (r *Report) Complete() bool {
	return r.RequiredTotals.Found >= r.RequiredTotals.Total
}

// Build checks the snapshot taken from dir against the manifest.
func Build(m *models.AssetManifest, dir string, existing storage.Snapshot) *Report {
	required := CheckCategories(m.Required, existing)
	optional := CheckCategories(m.Optional, existing)
	requiredTotals := Aggregate(required)

	r := &Report{
		Dir:             dir,
		PNGFiles:        len(existing),
		Required:        required,
		Optional:        optional,
		RequiredTotals:  requiredTotals,
		OptionalTotals:  Aggregate(optional),
		RequiredPercent: requiredTotals.Percent(),
		Extra:           ExtraFiles(m, existing),
		CriticalMissing: CriticalMissing(m, required),
		Priority:        []string{},
		HDVariants:      HDVariants(m, existing),
	}
	if !r.Complete() {
		r.Priority = PriorityRecommendations(m, existing)
	}
	return r
}
