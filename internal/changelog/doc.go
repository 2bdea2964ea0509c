// Package changelog provides the entry model and file-backed store for chlog.
//
// This package implements:
//   - The Entry record with its closed ChangeType enumeration
//   - A write-through YAML store with CRUD access
//   - Legacy JSON import from the old changelog.json format
//   - Terminal formatting for CLI display
//
// The store file (default .chlog/changelog.yaml) is the single source of
// truth for all recorded entries. The HTML report is generated from it by
// the report package.
package changelog
