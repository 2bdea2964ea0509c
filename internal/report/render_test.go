package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry(id string, ct changelog.ChangeType, text string, ts time.Time) changelog.Entry {
	return changelog.Entry{ID: id, ChangeType: ct, Description: text, Timestamp: ts}
}

func TestRender(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.Local)
	entries := []changelog.Entry{
		validEntry("aaaa1111", changelog.ChangeCreated, "add login form", now),
	}

	html, err := Render(entries, Options{})
	require.NoError(t, err)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "<title>Project Changelog</title>")
	assert.Contains(t, html, `class="tag created"`)
	assert.Contains(t, html, ">Created<")
	assert.Contains(t, html, "add login form")
	assert.Contains(t, html, "2025-06-15 10:30:00")
}

func TestRender_EscapesUserText(t *testing.T) {
	t.Parallel()

	entries := []changelog.Entry{
		validEntry("aaaa1111", changelog.ChangeCreated, `<script>alert(1)</script>`, time.Now()),
	}

	html, err := Render(entries, Options{})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;alert(1)&lt;/script&gt;")
}

func TestRender_EmptyListIsValidReport(t *testing.T) {
	t.Parallel()

	html, err := Render(nil, Options{})
	require.NoError(t, err)

	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, "</html>")
	assert.Contains(t, html, "No entries recorded yet.")
	assert.NotContains(t, html, `class="entry"`)
}

func TestRender_NewestFirst(t *testing.T) {
	t.Parallel()

	now := time.Now()
	entries := []changelog.Entry{
		validEntry("old00000", changelog.ChangeCreated, "older entry", now.Add(-time.Hour)),
		validEntry("new00000", changelog.ChangeEdited, "newer entry", now),
	}

	html, err := Render(entries, Options{})
	require.NoError(t, err)

	assert.Less(t, strings.Index(html, "newer entry"), strings.Index(html, "older entry"))
}

func TestRender_Deterministic(t *testing.T) {
	t.Parallel()

	now := time.Now()
	entries := []changelog.Entry{
		validEntry("aaaa1111", changelog.ChangeCreated, "one", now.Add(-time.Minute)),
		validEntry("bbbb2222", changelog.ChangeDeleted, "two", now),
	}

	first, err := Render(entries, Options{Title: "My Project"})
	require.NoError(t, err)
	second, err := Render(entries, Options{Title: "My Project"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "<title>My Project</title>")
}

func TestRender_MalformedEntry(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		entry changelog.Entry
	}{
		"missing id": {entry: changelog.Entry{
			ChangeType: changelog.ChangeCreated, Description: "x", Timestamp: time.Now(),
		}},
		"invalid change type": {entry: changelog.Entry{
			ID: "aaaa1111", ChangeType: "Bogus", Description: "x", Timestamp: time.Now(),
		}},
		"blank description": {entry: changelog.Entry{
			ID: "aaaa1111", ChangeType: changelog.ChangeCreated, Description: " ", Timestamp: time.Now(),
		}},
		"zero timestamp": {entry: changelog.Entry{
			ID: "aaaa1111", ChangeType: changelog.ChangeCreated, Description: "x",
		}},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Render([]changelog.Entry{tc.entry}, Options{})
			var rErr *RenderError
			assert.ErrorAs(t, err, &rErr)
		})
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "changelog.html")
	entries := []changelog.Entry{
		validEntry("aaaa1111", changelog.ChangeCreated, "add login form", time.Now()),
	}

	require.NoError(t, WriteFile(path, entries, Options{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "add login form")

	_, statErr := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteFile_RenderErrorLeavesNoFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "changelog.html")
	bad := []changelog.Entry{{ID: "aaaa1111"}}

	err := WriteFile(path, bad, Options{})
	var rErr *RenderError
	require.ErrorAs(t, err, &rErr)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
