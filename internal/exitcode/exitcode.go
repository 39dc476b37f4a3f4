// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, no active note).
	UserError = 1

	// ConfigError indicates a missing or unreadable setting.
	ConfigError = 2

	// BackendError indicates a tracker API or network error.
	BackendError = 3
)
