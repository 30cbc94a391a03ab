package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/unbox/config"
	"github.com/rios0rios0/unbox/internal/domain/commands"
	"github.com/rios0rios0/unbox/internal/domain/entities"
)

// UnboxController handles the root command: clone and set up a
// repository for development.
type UnboxController struct {
	command commands.Unbox
}

// NewUnboxController creates a new UnboxController.
func NewUnboxController(command commands.Unbox) *UnboxController {
	return &UnboxController{command: command}
}

var _ entities.Controller = (*UnboxController)(nil)

// GetBind returns the Cobra command metadata for the unbox controller.
func (it *UnboxController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "unbox <repository> [dest]",
		Short: "Clone and set up a developer repository",
		Long: `Clone a repository (or reuse an existing checkout), link its git hooks,
create or share an isolated environment, run its configured setup
commands, and do the same for every declared dependency repository.

Repeated runs are safe: existing clones, hook links, and environments
are reused as-is.`,
	}
}

// AddFlags registers the provisioning flags on the Cobra command.
func (it *UnboxController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("no-deps", false,
		"Do not clone and set up the dependency repositories")
	cmd.Flags().String("venv-bin", "",
		"Environment creation tool (default from config, then 'virtualenv')")
}

// Execute runs the provisioning flow.
func (it *UnboxController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	noDeps, _ := cmd.Flags().GetBool("no-deps")
	venvBin, _ := cmd.Flags().GetString("venv-bin")
	if venvBin == "" {
		venvBin = config.LoadDefault().VenvBin
	}

	dest := ""
	if len(args) > 1 {
		dest = args[1]
	}

	return it.command.Execute(ctx, args[0], commands.UnboxOptions{
		Dest:    dest,
		NoDeps:  noDeps,
		VenvBin: venvBin,
	})
}
