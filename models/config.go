// Package models defines data structures for configuration and the asset manifest.
package models

// CheckConfig holds runtime configuration for the check command.
// All values come from CLI flags, not external config files.
type CheckConfig struct {
	Dir        string
	Format     OutputFormat
	OutputPath string // empty means stdout
	Fields     string // comma-separated top-level keys for yaml/json output
	Strict     bool   // non-zero exit on missing directory or missing required assets
}
