//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"os"

	"github.com/rios0rios0/unbox/internal/domain/entities"
	"github.com/rios0rios0/unbox/internal/domain/repositories"
)

// RunCall records one Run invocation: the normalized argument vector
// (appended args included), the PATH override, and the directory the
// runner was invoked from.
type RunCall struct {
	Argv         []string
	PathOverride string
	Dir          string
}

// StubCommandRunner is a stub implementation of repositories.CommandRunner.
// FailOn maps a command key (see entities.Command.Key) to the error its
// execution should report.
type StubCommandRunner struct {
	Calls  []RunCall
	FailOn map[string]error
}

var _ repositories.CommandRunner = (*StubCommandRunner)(nil)

func (s *StubCommandRunner) Run(
	_ context.Context,
	command entities.Command,
	opts repositories.RunOptions,
) error {
	tokens, err := command.Tokens()
	if err != nil {
		return err
	}
	argv := append(append([]string{}, tokens...), opts.AppendArgs...)
	dir, _ := os.Getwd()
	s.Calls = append(s.Calls, RunCall{
		Argv:         argv,
		PathOverride: opts.PathOverride,
		Dir:          dir,
	})
	if failErr, ok := s.FailOn[command.Key()]; ok {
		return failErr
	}
	return nil
}

// Argvs flattens the recorded calls to their argument vectors.
func (s *StubCommandRunner) Argvs() [][]string {
	argvs := make([][]string, 0, len(s.Calls))
	for _, call := range s.Calls {
		argvs = append(argvs, call.Argv)
	}
	return argvs
}
