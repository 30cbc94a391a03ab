//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/unbox/internal/domain/commands"
	"github.com/rios0rios0/unbox/internal/domain/entities"
)

// HookExecuteCall records one hook-runner invocation.
type HookExecuteCall struct {
	All          []entities.Command
	Modified     []entities.PatternCommand
	Files        []string
	PathOverride string
}

// StubHookCommand is a stub implementation of commands.Hook.
type StubHookCommand struct {
	Calls  []HookExecuteCall
	Result int
}

var _ commands.Hook = (*StubHookCommand)(nil)

func (s *StubHookCommand) Execute(
	_ context.Context,
	all []entities.Command,
	modified []entities.PatternCommand,
	files []string,
	pathOverride string,
) int {
	s.Calls = append(s.Calls, HookExecuteCall{
		All:          all,
		Modified:     modified,
		Files:        files,
		PathOverride: pathOverride,
	})
	return s.Result
}
