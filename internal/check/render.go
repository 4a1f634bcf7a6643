package check

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dtnitsch/skincheck/internal/common"
	"github.com/dtnitsch/skincheck/models"
	"github.com/dtnitsch/skincheck/pkg/inventory"
	"github.com/dtnitsch/skincheck/pkg/skinini"
	"gopkg.in/yaml.v3"
)

var (
	wideRule   = strings.Repeat("=", 60)
	mediumRule = strings.Repeat("=", 40)
	thinRule   = strings.Repeat("-", 40)
)

// Styles for the text report. They come from a renderer bound to the
// output writer, so anything that is not a terminal gets plain text.
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Good    lipgloss.Style
	Warn    lipgloss.Style
	Bad     lipgloss.Style
	Muted   lipgloss.Style
}

// NewStyles builds the report styles for w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:   r.NewStyle().Bold(true),
		Section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Good:    r.NewStyle().Foreground(lipgloss.Color("10")),
		Warn:    r.NewStyle().Foreground(lipgloss.Color("11")),
		Bad:     r.NewStyle().Foreground(lipgloss.Color("9")),
		Muted:   r.NewStyle().Faint(true),
	}
}

func requiredGlyph(s inventory.Status) string {
	switch s {
	case inventory.StatusComplete:
		return "✅"
	case inventory.StatusPartial:
		return "⚠️"
	default:
		return "❌"
	}
}

func optionalGlyph(s inventory.Status) string {
	switch s {
	case inventory.StatusComplete:
		return "✅"
	case inventory.StatusPartial:
		return "📦"
	default:
		return "⭕"
	}
}

func (st Styles) forStatus(s inventory.Status) lipgloss.Style {
	switch s {
	case inventory.StatusComplete:
		return st.Good
	case inventory.StatusPartial:
		return st.Warn
	default:
		return st.Bad
	}
}

// RenderNotFound writes the single line reported for a missing target directory.
func RenderNotFound(w io.Writer, dir string) error {
	_, err := fmt.Fprintf(w, "❌ Directory not found: %s\n", dir)
	return err
}

// Render writes r to w in the requested format.
func Render(w io.Writer, r *inventory.Report, format models.OutputFormat, fields string) error {
	switch format {
	case models.FormatYAML:
		return renderYAML(w, r, fields)
	case models.FormatJSON:
		return renderJSON(w, r, fields)
	default:
		return RenderText(w, r)
	}
}

func structured(r *inventory.Report, fields string) (interface{}, error) {
	if fields == "" {
		return r, nil
	}
	filtered, err := common.FilterResultFields(r, fields)
	if err != nil {
		return nil, fmt.Errorf("invalid --fields: %w", err)
	}
	return filtered, nil
}

func renderYAML(w io.Writer, r *inventory.Report, fields string) error {
	doc, err := structured(r, fields)
	if err != nil {
		return err
	}
	yamlBytes, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal report to YAML: %w", err)
	}
	_, err = w.Write(yamlBytes)
	return err
}

func renderJSON(w io.Writer, r *inventory.Report, fields string) error {
	doc, err := structured(r, fields)
	if err != nil {
		return err
	}
	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonData))
	return err
}

// skinLine describes a skin as "Name by Author (version V)", leaving out
// whatever skin.ini did not set.
func skinLine(meta *skinini.Metadata) string {
	if meta == nil || (meta.Name == "" && meta.Author == "" && meta.Version == "") {
		return ""
	}
	name := meta.Name
	if name == "" {
		name = "(unnamed)"
	}
	if meta.Author != "" {
		name += " by " + meta.Author
	}
	if meta.Version != "" {
		name += " (version " + meta.Version + ")"
	}
	return name
}

// RenderText writes the console report: required, optional, extra,
// summary, critical and priority sections, in that order.
func RenderText(w io.Writer, r *inventory.Report) error {
	st := NewStyles(w)
	var b strings.Builder

	line := func(format string, args ...interface{}) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	line("%s", wideRule)
	line("%s", st.Title.Render("DEFAULT SKIN ELEMENTS CHECK"))
	line("%s", wideRule)
	line("Directory: %s", r.Dir)
	if skin := skinLine(r.Skin); skin != "" {
		line("Skin: %s", skin)
	}
	if r.Skin != nil && len(r.Skin.ComboColours) > 0 {
		colours := make([]string, 0, len(r.Skin.ComboColours))
		for _, c := range r.Skin.ComboColours {
			colours = append(colours, c.String())
		}
		line("Combo colours: %s", strings.Join(colours, " | "))
	}
	line("Total PNG files found: %d", r.PNGFiles)
	line("")

	line("%s", st.Section.Render("REQUIRED ELEMENTS:"))
	line("%s", thinRule)
	for _, c := range r.Required {
		line("")
		line("%s %s:", st.forStatus(c.Status).Render(requiredGlyph(c.Status)), c.Name)
		line("   Found: %d/%d", len(c.Found), c.Total)
		if len(c.Missing) > 0 {
			line("   Missing: %s", strings.Join(c.Missing, ", "))
		}
	}

	line("")
	line("%s", mediumRule)
	line("%s", st.Section.Render("OPTIONAL ELEMENTS:"))
	line("%s", thinRule)
	for _, c := range r.Optional {
		line("")
		line("%s %s:", st.forStatus(c.Status).Render(optionalGlyph(c.Status)), c.Name)
		line("   Found: %d/%d", len(c.Found), c.Total)
	}

	if len(r.Extra) > 0 {
		line("")
		line("%s", mediumRule)
		line("%s", st.Section.Render("ADDITIONAL FILES FOUND (not in standard list):"))
		line("%s", thinRule)
		for _, f := range r.Extra {
			line("   📄 %s", st.Muted.Render(f))
		}
	}

	line("")
	line("%s", wideRule)
	line("%s", st.Section.Render("SUMMARY:"))
	line("%s", thinRule)
	line("Required elements: %d/%d (%d%%)", r.RequiredTotals.Found, r.RequiredTotals.Total, r.RequiredPercent)
	line("Optional elements: %d/%d", r.OptionalTotals.Found, r.OptionalTotals.Total)
	if len(r.HDVariants) > 0 {
		line("HD (@2x) variants: %d of %d expected elements", len(r.HDVariants),
			r.RequiredTotals.Total+r.OptionalTotals.Total)
	}

	if len(r.CriticalMissing) > 0 {
		line("")
		line("%s", st.Bad.Render("⚠️  CRITICAL MISSING FILES (needed for basic preview):"))
		for _, f := range r.CriticalMissing {
			line("   - %s", f)
		}
	}

	line("")
	if r.Complete() {
		line("%s", st.Good.Render("✅ All required elements are present!"))
	} else {
		line("%s", st.Warn.Render("📋 PRIORITY FILES TO ADD:"))
		for i, f := range r.Priority {
			line("   %d. %s", i+1, f)
		}
	}

	line("")
	line("%s", wideRule)

	_, err := io.WriteString(w, b.String())
	return err
}
