package changelog

import (
	"strings"
	"time"
)

// ChangeType classifies what happened to the code a note describes.
type ChangeType string

const (
	// ChangeCreated indicates something new was added.
	ChangeCreated ChangeType = "Created"
	// ChangeEdited indicates existing code was modified.
	ChangeEdited ChangeType = "Edited"
	// ChangeDeleted indicates code was removed. This is a historical tag on
	// the entry, not a request to remove the entry itself.
	ChangeDeleted ChangeType = "Deleted"
)

// Entry is a single recorded change note.
type Entry struct {
	// ID is the unique identifier, assigned at creation and immutable.
	ID string `yaml:"id"`
	// ChangeType is one of Created, Edited, Deleted.
	ChangeType ChangeType `yaml:"change_type"`
	// Description is the free-text note supplied by the user.
	Description string `yaml:"description"`
	// Timestamp is the creation time, refreshed whenever the entry is edited.
	Timestamp time.Time `yaml:"timestamp"`
}

// ValidChangeTypes returns the closed set of change types in display order.
func ValidChangeTypes() []ChangeType {
	return []ChangeType{ChangeCreated, ChangeEdited, ChangeDeleted}
}

// IsValid reports whether t is one of the three recognized change types.
func (t ChangeType) IsValid() bool {
	switch t {
	case ChangeCreated, ChangeEdited, ChangeDeleted:
		return true
	}
	return false
}

// ParseChangeType normalizes user input ("created", "Edited", "DELETED")
// to a ChangeType. Returns a ValidationError for anything outside the set.
func ParseChangeType(s string) (ChangeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "created":
		return ChangeCreated, nil
	case "edited":
		return ChangeEdited, nil
	case "deleted":
		return ChangeDeleted, nil
	}
	return "", &ValidationError{Field: "change_type", Message: "must be one of: created, edited, deleted", Value: s}
}

// Validate checks that the entry satisfies the store invariants.
func (e Entry) Validate() error {
	if e.ID == "" {
		return &ValidationError{Field: "id", Message: "must not be empty"}
	}
	if !e.ChangeType.IsValid() {
		return &ValidationError{Field: "change_type", Message: "must be one of: created, edited, deleted", Value: string(e.ChangeType)}
	}
	if strings.TrimSpace(e.Description) == "" {
		return &ValidationError{Field: "description", Message: "must not be blank"}
	}
	if e.Timestamp.IsZero() {
		return &ValidationError{Field: "timestamp", Message: "must be set"}
	}
	return nil
}
