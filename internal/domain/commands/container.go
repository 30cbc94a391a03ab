package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewUnboxCommand); err != nil {
		return err
	}
	if err := container.Provide(NewHookCommand); err != nil {
		return err
	}
	if err := container.Provide(NewCreateCommand); err != nil {
		return err
	}
	if err := container.Provide(NewVersionCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *UnboxCommand) Unbox {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *HookCommand) Hook {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *CreateCommand) Create {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *VersionCommand) Version {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
