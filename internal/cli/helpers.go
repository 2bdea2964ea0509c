package cli

import (
	"errors"

	"github.com/ariel-frischer/chlog/internal/changelog"
	clierrors "github.com/ariel-frischer/chlog/internal/errors"
)

// mapStoreError converts changelog package errors into structured CLI
// errors so they print with category and remediation.
func mapStoreError(err error, storePath string) error {
	if err == nil {
		return nil
	}

	var notFound *changelog.NotFoundError
	if errors.As(err, &notFound) {
		return clierrors.EntryNotFound(notFound.ID)
	}

	var validation *changelog.ValidationError
	if errors.As(err, &validation) {
		if validation.Field == "change_type" {
			return clierrors.InvalidChangeType(validation.Value)
		}
		if validation.Field == "description" {
			return clierrors.BlankDescription()
		}
		return clierrors.NewArgumentError(validation.Error())
	}

	var storage *changelog.StorageError
	if errors.As(err, &storage) {
		return clierrors.StoreUnwritable(storePath, err)
	}

	return clierrors.Wrap(err, clierrors.Runtime)
}

// parseChangeTypeFlag converts the --type flag value, mapping parse
// failures to a structured argument error. Empty input yields the default.
func parseChangeTypeFlag(value string, fallback changelog.ChangeType) (changelog.ChangeType, error) {
	if value == "" {
		return fallback, nil
	}
	changeType, err := changelog.ParseChangeType(value)
	if err != nil {
		return "", clierrors.InvalidChangeType(value)
	}
	return changeType, nil
}
