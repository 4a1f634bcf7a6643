package models

import "testing"

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{" YAML ", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsCritical(t *testing.T) {
	m := &AssetManifest{Critical: []string{"Cursor Elements"}}
	if !m.IsCritical("Cursor Elements") {
		t.Error("IsCritical(\"Cursor Elements\") = false, want true")
	}
	if m.IsCritical("cursor elements") {
		t.Error("IsCritical is case-sensitive on category names")
	}
}
