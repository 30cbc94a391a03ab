package controllers

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/unbox/config"
	"github.com/rios0rios0/unbox/internal/domain/commands"
	"github.com/rios0rios0/unbox/internal/domain/entities"
	"github.com/rios0rios0/unbox/internal/domain/repositories"
)

// ErrChecksFailed is returned when at least one pre-commit check fails;
// the process then exits non-zero and git blocks the commit.
var ErrChecksFailed = errors.New("pre-commit checks failed")

// HookController handles the run-hooks command invoked by the installed
// git pre-commit hook from the repository root.
type HookController struct {
	command commands.Hook
	git     repositories.GitRepository
}

// NewHookController creates a new HookController.
func NewHookController(command commands.Hook, git repositories.GitRepository) *HookController {
	return &HookController{command: command, git: git}
}

var _ entities.Controller = (*HookController)(nil)

// GetBind returns the Cobra command metadata for the hook controller.
func (it *HookController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run-hooks [file...]",
		Short: "Run the configured pre-commit checks",
		Long: `Run the configured pre-commit checks against the given files, or
against the files staged for commit when no files are given. Exits
non-zero when any check fails, which blocks the commit.`,
	}
}

// Execute runs the checks and maps the aggregate verdict to an error.
func (it *HookController) Execute(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	files := args
	if len(files) == 0 {
		var err error
		files, err = it.git.StagedFiles(".")
		if err != nil {
			return err
		}
	}

	conf, err := config.LoadRepo(".")
	if err != nil {
		return err
	}

	pathOverride := ""
	if conf.Env != nil {
		pathOverride = filepath.Join(conf.Env.Path, "bin") +
			string(os.PathListSeparator) + os.Getenv("PATH")
	}

	if code := it.command.Execute(ctx, conf.HooksAll, conf.ModifiedHooks(), files, pathOverride); code != 0 {
		return ErrChecksFailed
	}
	return nil
}
