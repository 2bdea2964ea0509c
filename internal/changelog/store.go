package changelog

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// DefaultStorePath is the project-local store file used when no
// configuration overrides it.
const DefaultStorePath = ".chlog/changelog.yaml"

// storeFile is the on-disk document wrapping the ordered entry list.
type storeFile struct {
	Entries []Entry `yaml:"entries"`
}

// Store is the file-backed collection of changelog entries. It exclusively
// owns the entry list; every mutating operation writes through to disk
// immediately. It is not safe for concurrent use, matching the single-user
// single-process scope of the tool.
type Store struct {
	path    string
	entries []Entry
}

// Update names the mutable fields of an entry for Edit. Zero values mean
// "leave unchanged"; at least one field must be set.
type Update struct {
	ChangeType  ChangeType
	Description string
}

// Open loads the store at path, starting empty if the file does not exist.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, &StorageError{Path: path, Op: "reading", Err: err}
	}

	var doc storeFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &StorageError{Path: path, Op: "parsing", Err: err}
	}

	s.entries = doc.Entries
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// List returns a snapshot copy of all entries in insertion order.
func (s *Store) List() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get returns the entry with the given ID, or a NotFoundError.
func (s *Store) Get(id string) (Entry, error) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, &NotFoundError{ID: id}
}

// Add validates the fields, assigns a fresh ID and timestamp, appends the
// entry, and persists. Returns the stored entry.
func (s *Store) Add(changeType ChangeType, description string) (Entry, error) {
	entry := Entry{
		ID:          s.generateID(),
		ChangeType:  changeType,
		Description: strings.TrimSpace(description),
		Timestamp:   time.Now(),
	}

	if err := entry.Validate(); err != nil {
		return Entry{}, err
	}

	s.entries = append(s.entries, entry)
	if err := s.save(); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		return Entry{}, err
	}

	return entry, nil
}

// Edit updates the mutable fields of the entry with the given ID, refreshes
// its timestamp, and persists. The store is unchanged if anything fails.
func (s *Store) Edit(id string, upd Update) (Entry, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Entry{}, &NotFoundError{ID: id}
	}
	if upd.ChangeType == "" && strings.TrimSpace(upd.Description) == "" {
		return Entry{}, &ValidationError{Field: "update", Message: "nothing to change"}
	}

	updated := s.entries[idx]
	if upd.ChangeType != "" {
		updated.ChangeType = upd.ChangeType
	}
	if strings.TrimSpace(upd.Description) != "" {
		updated.Description = strings.TrimSpace(upd.Description)
	}
	updated.Timestamp = time.Now()

	if err := updated.Validate(); err != nil {
		return Entry{}, err
	}

	previous := s.entries[idx]
	s.entries[idx] = updated
	if err := s.save(); err != nil {
		s.entries[idx] = previous
		return Entry{}, err
	}

	return updated, nil
}

// Remove physically deletes the entry with the given ID and persists.
// Tagging a change as Deleted does not go through here; Remove is the
// explicit "forget this record" operation.
func (s *Store) Remove(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return &NotFoundError{ID: id}
	}

	removed := s.entries[idx]
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
	if err := s.save(); err != nil {
		s.entries = append(s.entries[:idx], append([]Entry{removed}, s.entries[idx:]...)...)
		return err
	}

	return nil
}

// indexOf returns the position of the entry with the given ID, or -1.
func (s *Store) indexOf(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}

// generateID creates a short unique entry ID (8-char uuid prefix).
// Regenerates on collision so ID uniqueness holds across the store.
func (s *Store) generateID() string {
	for {
		id := uuid.New().String()[:8]
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

// save writes the store to disk atomically using the temp file + rename
// pattern. A failed write leaves the previous file intact.
func (s *Store) save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &StorageError{Path: s.path, Op: "preparing directory for", Err: err}
	}

	data, err := yaml.Marshal(storeFile{Entries: s.entries})
	if err != nil {
		return &StorageError{Path: s.path, Op: "encoding", Err: err}
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return &StorageError{Path: s.path, Op: "writing", Err: err}
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath) // Best effort cleanup
		return &StorageError{Path: s.path, Op: "replacing", Err: err}
	}

	return nil
}
