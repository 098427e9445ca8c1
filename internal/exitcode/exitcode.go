// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown ref, section full).
	UserError = 1

	// StorageError indicates the data directory could not be opened.
	StorageError = 2
)
