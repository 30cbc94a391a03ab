package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/unbox/internal/domain/commands"
	"github.com/rios0rios0/unbox/internal/domain/entities"
)

// VersionController handles the version command: print the version
// string derived from the repository's git tags.
type VersionController struct {
	command commands.Version
}

// NewVersionController creates a new VersionController.
func NewVersionController(command commands.Version) *VersionController {
	return &VersionController{command: command}
}

var _ entities.Controller = (*VersionController)(nil)

// GetBind returns the Cobra command metadata for the version controller.
func (it *VersionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "version [path]",
		Short: "Derive a version string from git tags",
		Long: `Derive a distribution version string for the repository at the given
path (default: the current directory) from its git tags: the tag itself
on a tagged commit, the full git-describe output otherwise.`,
	}
}

// Execute prints the derived version string.
func (it *VersionController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	version, err := it.command.Execute(ctx, dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), version)
	return nil
}
