package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_WritesFile(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "changelog.yaml")
	out := filepath.Join(dir, "report.html")

	_, err := execute(t, nil, "add", "Shipped the widget", "--store", store)
	require.NoError(t, err)

	output, err := execute(t, nil, "report", "-o", out, "--store", store)
	require.NoError(t, err)
	assert.Contains(t, output, "Report written to")
	assert.Contains(t, output, "1 entries")

	html, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Shipped the widget")
	assert.Contains(t, string(html), "Created")
}

func TestReport_Stdout(t *testing.T) {
	store := storePath(t)

	_, err := execute(t, nil, "add", "Visible in preview", "--store", store)
	require.NoError(t, err)

	output, err := execute(t, nil, "report", "--stdout", "--store", store)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(output, "<!DOCTYPE html>"), "expected HTML document, got: %.60s", output)
	assert.Contains(t, output, "Visible in preview")
}

func TestReport_TitleOverride(t *testing.T) {
	store := storePath(t)

	output, err := execute(t, nil, "report", "--stdout", "--title", "Release Notes", "--store", store)
	require.NoError(t, err)
	assert.Contains(t, output, "<h1>Release Notes</h1>")
}

func TestReport_EmptyStoreStillRenders(t *testing.T) {
	store := storePath(t)

	output, err := execute(t, nil, "report", "--stdout", "--store", store)
	require.NoError(t, err)
	assert.Contains(t, output, "No entries recorded yet")
}
