package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--data", dataDir}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestTapThenSummary(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	out, err := run(t, dir, "tap", "--times", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "ॐ नमः शिवाय: 3 counts")

	out, err = run(t, dir, "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "today:    3 counts, 0.0 malas")
	assert.Contains(t, out, "lifetime: 3 counts")

	out, err = run(t, dir, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "ॐ नमः शिवाय")
}

func TestClearRequiresYes(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	_, err := run(t, dir, "tap")
	require.NoError(t, err)

	_, err = run(t, dir, "clear")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")

	out, err := run(t, dir, "clear", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "history cleared")
}

func TestSettingsLanguageResetsChant(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	out, err := run(t, dir, "settings", "language", "hi")
	require.NoError(t, err)
	assert.Contains(t, out, "(hi)")
	assert.Contains(t, out, "(hi-1)")

	out, err = run(t, dir, "settings", "goal", "--type", "weekly", "--value", "700")
	require.NoError(t, err)
	assert.Contains(t, out, "goal:     weekly 700")

	_, err = run(t, dir, "settings", "chant", "sa-1")
	require.Error(t, err)
}

func TestExportWritesJournal(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	_, err := run(t, dir, "tap")
	require.NoError(t, err)

	out, err := run(t, dir, "export", filepath.Join(dir, "notes"))
	require.NoError(t, err)
	assert.Contains(t, out, "exported 1 day(s)")
}
