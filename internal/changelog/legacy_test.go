package changelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLegacyFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "changelog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLegacyJSON(t *testing.T) {
	t.Parallel()

	path := writeLegacyFile(t, `[
		{"timestamp": "2024-03-01T10:30:00.123456", "operation": "Created", "text": "add login form"},
		{"timestamp": "2024-03-02T08:00:00", "operation": "Edited", "text": "tweak copy"},
		{"timestamp": "2024-03-03T09:15:00", "operation": "Deleted", "text": "drop legacy page"}
	]`)

	entries, err := LoadLegacyJSON(path)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, ChangeCreated, entries[0].ChangeType)
	assert.Equal(t, "add login form", entries[0].Description)
	assert.Equal(t, 2024, entries[0].Timestamp.Year())
	assert.Empty(t, entries[0].ID, "IDs are assigned on import, not load")

	assert.Equal(t, ChangeEdited, entries[1].ChangeType)
	assert.Equal(t, ChangeDeleted, entries[2].ChangeType)
}

func TestLoadLegacyJSON_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content string
	}{
		"not json":          {content: "entries:"},
		"unknown operation": {content: `[{"timestamp": "2024-03-01T10:30:00", "operation": "Renamed", "text": "x"}]`},
		"bad timestamp":     {content: `[{"timestamp": "yesterday", "operation": "Created", "text": "x"}]`},
	}

	for name, tc := range tests {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadLegacyJSON(writeLegacyFile(t, tc.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadLegacyJSON_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadLegacyJSON(filepath.Join(t.TempDir(), "changelog.json"))
	var sErr *StorageError
	assert.ErrorAs(t, err, &sErr)
}

func TestStore_ImportLegacy(t *testing.T) {
	t.Parallel()

	path := writeLegacyFile(t, `[
		{"timestamp": "2024-03-01T10:30:00", "operation": "Created", "text": "imported one"},
		{"timestamp": "2024-03-02T11:00:00", "operation": "Edited", "text": "imported two"}
	]`)

	legacy, err := LoadLegacyJSON(path)
	require.NoError(t, err)

	storePath := filepath.Join(t.TempDir(), "changelog.yaml")
	s, err := Open(storePath)
	require.NoError(t, err)
	_, err = s.Add(ChangeCreated, "already here")
	require.NoError(t, err)

	n, err := s.ImportLegacy(legacy)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, s.Len())

	// Imported entries got IDs and kept their original timestamps.
	entries := s.List()
	assert.NotEmpty(t, entries[1].ID)
	assert.Equal(t, "imported one", entries[1].Description)
	assert.Equal(t, 1, entries[1].Timestamp.Day())

	// Persisted: a reload sees all three.
	reloaded, err := Open(storePath)
	require.NoError(t, err)
	assert.Equal(t, 3, reloaded.Len())
}

func TestStore_ImportLegacy_Empty(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	n, err := s.ImportLegacy(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
