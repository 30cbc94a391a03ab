package repositories

import (
	"context"

	"github.com/rios0rios0/unbox/internal/domain/entities"
)

// RunOptions adjusts how a single command is executed.
type RunOptions struct {
	// PathOverride replaces the PATH environment variable of the
	// spawned process, e.g. to put an environment's bin directory
	// first. Empty means inherit.
	PathOverride string

	// AppendArgs are extra tokens appended after the command's own,
	// e.g. the staged filename for hooks_modified checks.
	AppendArgs []string
}

// CommandRunner executes a single configured command synchronously and
// reports a non-zero exit (or a failure to spawn) as an error. Remote
// script commands are fetched to a temporary file first; the file is
// removed again regardless of the command's outcome.
type CommandRunner interface {
	Run(ctx context.Context, command entities.Command, opts RunOptions) error
}
