package commands

import (
	"fmt"
	"io"

	pullerrors "pulljira/internal/errors"
	"pulljira/internal/exitcode"
)

// reportError prints err and returns the matching exit code. Missing settings
// have already been reported by the resolver's notification.
func reportError(errOut io.Writer, err error) int {
	switch {
	case pullerrors.IsMissingConfiguration(err):
		return exitcode.ConfigError
	case pullerrors.IsNoActiveNote(err):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case pullerrors.IsHTTP(err), pullerrors.IsTransport(err):
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
}
