package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "src/main/resources/default-skin", m.TargetDir)
	require.Len(t, m.Required, 8)
	require.Len(t, m.Optional, 2)
	assert.Equal(t, "Essential Hit Circle Elements", m.Required[0].Name)
	assert.Equal(t, "Score Numbers", m.Required[7].Name)
	assert.Equal(t, []string{"hitcircle.png", "hitcircleoverlay.png", "approachcircle.png"}, m.Required[0].Files)

	total := 0
	for _, c := range m.Required {
		total += len(c.Files)
	}
	assert.Equal(t, 55, total)

	assert.Equal(t, []string{"Essential Hit Circle Elements", "Combo Numbers (default)"}, m.Critical)
	assert.Equal(t, []string{
		"Essential Hit Circle Elements",
		"Combo Numbers (default)",
		"Cursor Elements",
		"Hit Burst Animations",
	}, m.Priority)
	assert.Equal(t, 10, m.PriorityLimit)
	assert.Equal(t, []string{"readme.md", "required_elements.md"}, m.Documentation)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, m, again)
}

func TestKnownNames(t *testing.T) {
	m, err := Default()
	require.NoError(t, err)

	known := m.KnownNames()
	assert.Len(t, known, 55+8+2)
	assert.Contains(t, known, "hitcircle.png")
	assert.Contains(t, known, "particle300.png")
	assert.Contains(t, known, "readme.md")
}

func TestParse(t *testing.T) {
	t.Run("defaults priority limit", func(t *testing.T) {
		m, err := Parse([]byte(`
required:
  - name: Cursor
    files: [cursor.png]
priority: [Cursor]
`))
		require.NoError(t, err)
		assert.Equal(t, DefaultPriorityLimit, m.PriorityLimit)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse([]byte("required: [unclosed"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidManifest)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no required categories", `optional: [{name: A, files: [a.png]}]`},
		{"empty category name", `required: [{name: "", files: [a.png]}]`},
		{"duplicate category", `
required: [{name: A, files: [a.png]}]
optional: [{name: A, files: [b.png]}]`},
		{"empty filename", `required: [{name: A, files: ["  "]}]`},
		{"unknown critical category", `
required: [{name: A, files: [a.png]}]
critical: [B]`},
		{"priority names an optional category", `
required: [{name: A, files: [a.png]}]
optional: [{name: B, files: [b.png]}]
priority: [A, B]`},
		{"negative limit", `
required: [{name: A, files: [a.png]}]
priority_limit: -1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrInvalidManifest)
		})
	}
}
