package cli

import (
	"errors"

	lexerrors "lexpr.dev/lexpr/internal/errors"
)

// Exit codes, part of the CLI compatibility contract:
// 0 success, 1 invalid plan, 2 unknown dependency, 3 cycle detected.
const (
	ExitOK                = 0
	ExitInvalidPlan       = 1
	ExitUnknownDependency = 2
	ExitCycle             = 3
)

// ExitCode maps a command error to its process exit code. Unrecognized
// errors (I/O failures, bad flags) map to 1.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, lexerrors.ErrUnknownDependency):
		return ExitUnknownDependency
	case errors.Is(err, lexerrors.ErrCycle):
		return ExitCycle
	case errors.Is(err, lexerrors.ErrInvalidPlan):
		return ExitInvalidPlan
	default:
		return 1
	}
}
