package internal

import (
	"github.com/rios0rios0/unbox/internal/domain/entities"
)

// AppInternal aggregates the wired subcommand controllers.
type AppInternal struct {
	controllers *[]entities.Controller
}

// NewAppInternal creates a new AppInternal.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: controllers}
}

// GetControllers returns the subcommand controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return *it.controllers
}
