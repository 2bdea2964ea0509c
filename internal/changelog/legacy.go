package changelog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DefaultLegacyPath is where the legacy JSON changelog lived.
const DefaultLegacyPath = "changelog.json"

// legacyEntry matches the legacy changelog.json record shape: a flat
// array of {timestamp, operation, text} objects with ISO-8601 timestamps.
type legacyEntry struct {
	Timestamp string `json:"timestamp"`
	Operation string `json:"operation"`
	Text      string `json:"text"`
}

// LoadLegacyJSON reads a legacy changelog.json file and converts its
// records to entries, oldest first. Converted entries have no IDs;
// ImportLegacy assigns them on insertion.
func LoadLegacyJSON(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "reading", Err: err}
	}

	var records []legacyEntry
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &StorageError{Path: path, Op: "parsing", Err: err}
	}

	entries := make([]Entry, 0, len(records))
	for i, rec := range records {
		changeType, err := ParseChangeType(rec.Operation)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		ts, err := parseLegacyTimestamp(rec.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		entries = append(entries, Entry{
			ChangeType:  changeType,
			Description: rec.Text,
			Timestamp:   ts,
		})
	}

	return entries, nil
}

// ImportLegacy appends the converted legacy entries to the store with fresh
// IDs, preserving their original timestamps, and persists once at the end.
// Returns the number of entries imported.
func (s *Store) ImportLegacy(entries []Entry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	added := 0
	for _, e := range entries {
		e.ID = s.generateID()
		if err := e.Validate(); err != nil {
			s.entries = s.entries[:len(s.entries)-added]
			return 0, err
		}
		s.entries = append(s.entries, e)
		added++
	}

	if err := s.save(); err != nil {
		s.entries = s.entries[:len(s.entries)-added]
		return 0, err
	}

	return added, nil
}

// parseLegacyTimestamp accepts the ISO-8601 variants found in legacy
// files (with or without fractional seconds, with or without a zone).
func parseLegacyTimestamp(s string) (time.Time, error) {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, &ValidationError{Field: "timestamp", Message: "unrecognized timestamp format", Value: s}
}
