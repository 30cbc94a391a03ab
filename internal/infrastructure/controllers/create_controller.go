package controllers

import (
	"context"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/unbox/internal/domain/commands"
	"github.com/rios0rios0/unbox/internal/domain/entities"
)

// CreateController handles the create command: an interactive flow that
// writes the provisioning record and hook scaffolding into a repository.
type CreateController struct {
	command commands.Create
}

// NewCreateController creates a new CreateController.
func NewCreateController(command commands.Create) *CreateController {
	return &CreateController{command: command}
}

var _ entities.Controller = (*CreateController)(nil)

// GetBind returns the Cobra command metadata for the create controller.
func (it *CreateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "create <repository>",
		Short: "Set up a repository with an unbox config and hooks",
		Long: `Interactively set up a repository: write its .unbox.conf record,
create the git_hooks directory with an executable pre-commit file, and
apply an optional language preset.`,
	}
}

// AddFlags registers the authoring flags on the Cobra command.
func (it *CreateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("language", "l", commands.LanguageAuto,
		"Language preset (auto, python, none)")
}

// Execute prompts for the configuration choices and applies them.
func (it *CreateController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	repo := args[0]
	language, _ := cmd.Flags().GetString("language")
	if language == commands.LanguageAuto {
		language = detectLanguage(repo)
	}

	opts, err := promptOptions(repo, language)
	if err != nil {
		return err
	}
	return it.command.Execute(ctx, opts)
}

// promptOptions collects the authoring answers. The python questions
// only show up for python repositories.
func promptOptions(repo, language string) (commands.CreateOptions, error) {
	opts := commands.CreateOptions{
		Repo:            repo,
		Language:        language,
		CheckWhitespace: true,
		EnvPath:         "venv",
		Pylint:          true,
		Pep8:            true,
	}

	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewConfirm().
				Title("Prohibit trailing whitespace?").
				Value(&opts.CheckWhitespace),
		),
	}
	if language == commands.LanguagePython {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("Path of virtualenv (relative to repository root)").
				Value(&opts.EnvPath),
			huh.NewConfirm().
				Title("Run pylint on commit?").
				Value(&opts.Pylint),
			huh.NewConfirm().
				Title("Run pep8 on commit?").
				Value(&opts.Pep8),
			huh.NewConfirm().
				Title("Run pyflakes on commit?").
				Value(&opts.Pyflakes),
		))
	}

	if err := huh.NewForm(groups...).Run(); err != nil {
		return commands.CreateOptions{}, err
	}
	return opts, nil
}

func detectLanguage(repo string) string {
	if _, err := os.Stat(filepath.Join(repo, "setup.py")); err == nil {
		return commands.LanguagePython
	}
	return commands.LanguageNone
}
