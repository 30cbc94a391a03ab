package repositories

import (
	domainRepos "github.com/rios0rios0/unbox/internal/domain/repositories"
	gitRepo "github.com/rios0rios0/unbox/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/unbox/internal/infrastructure/repositories/shell"
	"github.com/rios0rios0/unbox/internal/infrastructure/repositories/venv"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(shell.NewLocalRunner); err != nil {
		return err
	}
	if err := container.Provide(gitRepo.NewExecGitRepository); err != nil {
		return err
	}
	if err := container.Provide(venv.NewLocalEnvRepository); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *shell.LocalRunner) domainRepos.CommandRunner {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *gitRepo.ExecGitRepository) domainRepos.GitRepository {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *venv.LocalEnvRepository) domainRepos.EnvRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
