package errors

import "fmt"

// Common error messages for the chlog CLI.
// These templates ensure consistent, actionable error messages.

// MissingDescription creates an error for a missing entry description argument.
func MissingDescription() *CLIError {
	return NewArgumentErrorWithUsage(
		"entry description is required",
		"chlog add \"<description>\" [--type created|edited|deleted]",
		"Provide a description of the change in quotes",
		"Example: chlog add \"Reworked the importer\" --type edited",
	)
}

// BlankDescription creates an error for a whitespace-only description.
func BlankDescription() *CLIError {
	return NewArgumentError(
		"entry description must not be blank",
		"Describe what changed, e.g. chlog add \"Fixed date parsing\"",
	)
}

// InvalidChangeType creates an error for an unrecognized change type.
func InvalidChangeType(provided string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid change type: %s", provided),
		"chlog add \"<description>\" --type created|edited|deleted",
		"Valid types: created, edited, deleted",
	)
}

// EntryNotFound creates an error when an entry ID does not exist in the store.
func EntryNotFound(id string) *CLIError {
	return NewNotFoundError(
		fmt.Sprintf("entry not found: %s", id),
		"Check available entry IDs with: chlog list",
		"IDs are the short codes in the first column",
	)
}

// NothingToChange creates an error when an edit specifies no changes.
func NothingToChange() *CLIError {
	return NewArgumentErrorWithUsage(
		"nothing to change",
		"chlog edit <id> [\"<new description>\"] [--type created|edited|deleted]",
		"Provide a new description, a new --type, or both",
	)
}

// StoreUnreadable creates an error when the changelog store cannot be loaded.
func StoreUnreadable(path string, err error) *CLIError {
	return WrapWithMessage(err, Storage,
		fmt.Sprintf("cannot read changelog store: %s", path),
		"Check file permissions: ls -la "+path,
		"If the file is corrupt, restore it from version control or a backup",
	)
}

// StoreUnwritable creates an error when the changelog store cannot be saved.
func StoreUnwritable(path string, err error) *CLIError {
	return WrapWithMessage(err, Storage,
		fmt.Sprintf("cannot write changelog store: %s", path),
		"Ensure the parent directory exists and is writable",
		"Check free disk space",
	)
}

// ReportFailed creates an error when HTML report generation fails.
func ReportFailed(path string, err error) *CLIError {
	return WrapWithMessage(err, Render,
		fmt.Sprintf("failed to generate report: %s", path),
		"Ensure the output directory exists and is writable",
		"Run 'chlog list' to verify the store is readable",
	)
}

// ConfigFileNotFound creates an error for a missing config file.
func ConfigFileNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("config file not found: %s", path),
		"Run 'chlog config init' to create default configuration",
		"Or create the file manually with the keys you need",
	)
}

// LegacyFileNotFound creates an error when the JSON file to migrate is missing.
func LegacyFileNotFound(path string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("legacy changelog not found: %s", path),
		"Point at the JSON file with: chlog migrate --from <path>",
		"The old tool stored its data in changelog.json",
	)
}
