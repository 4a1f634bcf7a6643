package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func runApp(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	app := newApp()
	var out, errOut bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &errOut
	app.ExitErrHandler = func(*cli.Context, error) {}

	err = app.Run(append([]string{"skincheck"}, args...))
	return out.String(), errOut.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)
	return exitErr.ExitCode()
}

func TestDefaultDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, _, err := runApp(t)
	require.NoError(t, err)
	assert.Equal(t, "❌ Directory not found: src/main/resources/default-skin\n", out)

	require.NoError(t, os.MkdirAll(filepath.Join("src", "main", "resources", "default-skin"), 0755))
	out, _, err = runApp(t, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Required elements: 0/55 (0%)")
}

func TestDirectorySelection(t *testing.T) {
	withCursor := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(withCursor, "cursor.png"), nil, 0644))
	empty := t.TempDir()

	t.Run("positional argument", func(t *testing.T) {
		out, _, err := runApp(t, withCursor)
		require.NoError(t, err)
		assert.Contains(t, out, "Required elements: 1/55 (1%)")
	})

	t.Run("check command with flag", func(t *testing.T) {
		out, _, err := runApp(t, "check", "--dir", withCursor)
		require.NoError(t, err)
		assert.Contains(t, out, "Required elements: 1/55 (1%)")
	})

	t.Run("argument wins over flag", func(t *testing.T) {
		out, _, err := runApp(t, "--dir", withCursor, empty)
		require.NoError(t, err)
		assert.Contains(t, out, "Required elements: 0/55 (0%)")
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv("SKINCHECK_DIR", withCursor)
		out, _, err := runApp(t, "check")
		require.NoError(t, err)
		assert.Contains(t, out, "Required elements: 1/55 (1%)")
	})
}

func TestStrictExitCodes(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	out, _, err := runApp(t, "--strict", missing)
	assert.Equal(t, 2, exitCode(t, err))
	assert.Equal(t, "❌ Directory not found: "+missing+"\n", out)

	_, _, err = runApp(t, "check", "--strict", t.TempDir())
	assert.Equal(t, 1, exitCode(t, err))

	_, _, err = runApp(t, missing)
	assert.NoError(t, err)

	file := filepath.Join(t.TempDir(), "skin.txt")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	underFile := filepath.Join(file, "default-skin")
	out, _, err = runApp(t, "--strict", underFile)
	assert.Equal(t, 2, exitCode(t, err))
	assert.Equal(t, "❌ Directory not found: "+underFile+"\n", out)
}

func TestQuietSuppressesInfoLogs(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := runApp(t, dir)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"check complete"`)

	_, stderr, err = runApp(t, "--quiet", dir)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := runApp(t, "--format", "xml", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output format "xml"`)
}

func TestColdstart(t *testing.T) {
	out, _, err := runApp(t, "coldstart")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Contains(t, doc, "commands")
	assert.Contains(t, doc, "exit_codes")
}
