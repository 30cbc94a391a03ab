package venv

import (
	"context"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/unbox/config"
	"github.com/rios0rios0/unbox/internal/domain/entities"
	"github.com/rios0rios0/unbox/internal/domain/repositories"
)

// LocalEnvRepository creates or links virtualenv-style environments on
// the local filesystem. Creation shells out to the configured
// environment tool through the command runner.
type LocalEnvRepository struct {
	runner repositories.CommandRunner
}

// NewLocalEnvRepository creates a new LocalEnvRepository.
func NewLocalEnvRepository(runner repositories.CommandRunner) *LocalEnvRepository {
	return &LocalEnvRepository{runner: runner}
}

var _ repositories.EnvRepository = (*LocalEnvRepository)(nil)

// Ensure resolves the environment for the repository at the current
// working directory and returns its absolute path. An existing path is
// never touched, which makes repeated provisioning runs idempotent.
func (it *LocalEnvRepository) Ensure(
	ctx context.Context,
	env *entities.Environment,
	venvBin, parentEnv, parentRepo string,
) (string, error) {
	if env == nil {
		return "", nil
	}

	// Installed as a dependency: share the depending repo's environment.
	if parentEnv != "" && !pathExists(env.Path) {
		logger.Infof("Linking environment %q -> %q", env.Path, parentEnv)
		if err := os.Symlink(parentEnv, env.Path); err != nil {
			return "", &entities.EnvError{Path: env.Path, Err: err}
		}
	}

	// A declared parent is looked up as a sibling directory. This is
	// the one place that encodes the peer-repos-are-siblings contract.
	if parentRepo != "" && !pathExists(env.Path) {
		if err := it.linkToPeer(env, parentRepo); err != nil {
			return "", err
		}
	}

	if !pathExists(env.Path) {
		logger.Infof("Creating environment %q", env.Path)
		tokens := append([]string{venvBin}, env.Args...)
		tokens = append(tokens, env.Path)
		command := entities.NewCommand(tokens...)
		if err := it.runner.Run(ctx, command, repositories.RunOptions{}); err != nil {
			return "", &entities.EnvError{Path: env.Path, Err: err}
		}
	}

	abs, err := filepath.Abs(env.Path)
	if err != nil {
		return "", &entities.EnvError{Path: env.Path, Err: err}
	}
	return abs, nil
}

// linkToPeer symlinks to the parent repository's environment when both
// the peer directory and its environment path exist.
func (it *LocalEnvRepository) linkToPeer(env *entities.Environment, parentRepo string) error {
	peer := filepath.Join("..", parentRepo)
	if !pathExists(peer) {
		return nil
	}

	peerConf, err := config.LoadRepo(peer)
	if err != nil || peerConf.Env == nil {
		return nil
	}

	peerEnv := filepath.Join(peer, peerConf.Env.Path)
	if !pathExists(peerEnv) {
		return nil
	}

	logger.Infof("Linking environment %q -> %q", env.Path, peerEnv)
	if linkErr := os.Symlink(peerEnv, env.Path); linkErr != nil {
		return &entities.EnvError{Path: env.Path, Err: linkErr}
	}
	return nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
