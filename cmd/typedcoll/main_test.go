package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/typedcoll"
)

const validManifest = `
collections:
  - name: scores
    type: int
    items: [3, 1, 2]
dictionaries:
  - name: labels
    key_type: string
    value_type: string
    entries:
      - {key: b, value: beta}
      - {key: a, value: alpha}
`

const brokenManifest = `
collections:
  - name: scores
    type: int
    items: [3, 1, 2]
  - name: mixed
    type: int
    items: [1, "two"]
`

// execute runs the root command with args, capturing stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		_ = checkCmd.Flags().Set("metrics", "false")
		_ = rootCmd.PersistentFlags().Set("log-level", "warn")
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeManifest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCheck_Valid(t *testing.T) {
	path := writeManifest(t, "ok.yaml", validManifest)

	out, _, err := execute(t, "check", path)
	require.NoError(t, err)

	assert.Contains(t, out, "✓ collection scores (integer, 3 elements)")
	assert.Contains(t, out, "✓ dictionary labels (string => string, 2 entries)")
	assert.Contains(t, out, "All 2 containers are valid!")
}

func TestCheck_ReportsFailures(t *testing.T) {
	path := writeManifest(t, "broken.yaml", brokenManifest)

	out, stderr, err := execute(t, "check", path, "--log-level", "info")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 containers failed")

	assert.Contains(t, out, "✓ collection scores")
	assert.Contains(t, out, "✗ collection mixed: element 1: value is not of type integer (got string)")
	assert.NotContains(t, out, "All")
	assert.Contains(t, stderr, "reason=type_mismatch")
}

func TestCheck_Metrics(t *testing.T) {
	path := writeManifest(t, "broken.yaml", brokenManifest)

	out, _, err := execute(t, "check", "--metrics", path)
	require.Error(t, err)

	assert.Contains(t, out, `typedcoll_container_checks_total{kind="collection",result="ok"} 1`)
	assert.Contains(t, out, `typedcoll_container_checks_total{kind="collection",result="failed"} 1`)
	assert.Contains(t, out, `typedcoll_validation_failures_total{reason="type_mismatch"} 1`)
}

func TestCheck_InvalidInput(t *testing.T) {
	_, _, err := execute(t, "check", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeManifest(t, "bad.json", `{"collections": [{"type": "int"}]}`)
	_, _, err = execute(t, "check", path)
	assert.ErrorContains(t, err, "invalid manifest")

	_, _, err = execute(t, "check", path, "--log-level", "loud")
	assert.Error(t, err)
}

func TestInspect(t *testing.T) {
	path := writeManifest(t, "ok.yaml", validManifest)

	out, _, err := execute(t, "inspect", path)
	require.NoError(t, err)

	assert.Contains(t, out, "# ok.yaml")
	assert.Contains(t, out, "## scores")
	assert.Contains(t, out, "| 0 | 3 |")
	assert.Contains(t, out, "## labels")
	assert.Contains(t, out, "| b | beta |")
}

func TestInspect_SkipsBrokenContainers(t *testing.T) {
	path := writeManifest(t, "broken.yaml", brokenManifest)

	out, _, err := execute(t, "inspect", path)
	require.Error(t, err)
	assert.Contains(t, out, "## scores")
	assert.NotContains(t, out, "## mixed")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "typedcoll version "+typedcoll.Version+"\n", out)
}
