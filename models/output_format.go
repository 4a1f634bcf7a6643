package models

import (
	"fmt"
	"strings"
)

// OutputFormat selects how a report is rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text" // Human-readable console report
	FormatYAML OutputFormat = "yaml"
	FormatJSON OutputFormat = "json"
)

// ParseOutputFormat resolves a --format flag value. An empty value means text.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, yaml or json)", s)
}
