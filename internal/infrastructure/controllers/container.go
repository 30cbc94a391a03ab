package controllers

import (
	"github.com/rios0rios0/unbox/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewUnboxController); err != nil {
		return err
	}
	if err := container.Provide(NewHookController); err != nil {
		return err
	}
	if err := container.Provide(NewCreateController); err != nil {
		return err
	}
	if err := container.Provide(NewVersionController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers into a slice for
// the AppInternal. The unbox controller is bound to the root command
// directly and therefore not part of this list.
func NewControllers(
	hookController *HookController,
	createController *CreateController,
	versionController *VersionController,
) *[]entities.Controller {
	return &[]entities.Controller{
		hookController,
		createController,
		versionController,
	}
}
