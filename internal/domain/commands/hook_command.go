package commands

import (
	"context"
	"path"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/unbox/internal/domain/entities"
	"github.com/rios0rios0/unbox/internal/domain/repositories"
)

// Hook is the interface for the pre-commit check runner.
type Hook interface {
	Execute(
		ctx context.Context,
		all []entities.Command,
		modified []entities.PatternCommand,
		files []string,
		pathOverride string,
	) int
}

// HookCommand decides whether a commit should be allowed. It runs every
// configured check and aggregates the exit statuses into one verdict:
// there is no short-circuiting, so a single run surfaces every
// violation at once.
type HookCommand struct {
	runner repositories.CommandRunner
}

// NewHookCommand creates a new HookCommand.
func NewHookCommand(runner repositories.CommandRunner) *HookCommand {
	return &HookCommand{runner: runner}
}

var _ Hook = (*HookCommand)(nil)

// Execute runs the unconditional checks plus, per staged file whose
// basename matches a pattern, the pattern-scoped checks with the
// filename appended. The result is zero only when every check passed.
// A check that cannot be spawned counts as failed, never as a crash,
// and so does a malformed pattern.
func (it *HookCommand) Execute(
	ctx context.Context,
	all []entities.Command,
	modified []entities.PatternCommand,
	files []string,
	pathOverride string,
) int {
	exitCode := 0

	for _, command := range all {
		opts := repositories.RunOptions{PathOverride: pathOverride}
		if err := it.runner.Run(ctx, command, opts); err != nil {
			logger.Errorf("Check failed: %v", err)
			exitCode = 1
		}
	}

	for _, hook := range modified {
		for _, file := range files {
			matched, err := path.Match(hook.Pattern, filepath.Base(file))
			if err != nil {
				// A typo in a pattern must not let the commit through.
				logger.Errorf("Bad hook pattern %q: %v", hook.Pattern, err)
				exitCode = 1
				break
			}
			if !matched {
				continue
			}
			opts := repositories.RunOptions{
				PathOverride: pathOverride,
				AppendArgs:   []string{file},
			}
			if runErr := it.runner.Run(ctx, hook.Command, opts); runErr != nil {
				logger.Errorf("Check failed on %s: %v", file, runErr)
				exitCode = 1
			}
		}
	}

	return exitCode
}
