package commands

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/unbox/config"
	"github.com/rios0rios0/unbox/internal/domain/entities"
	"github.com/rios0rios0/unbox/internal/domain/repositories"
	"github.com/rios0rios0/unbox/internal/workdir"
)

// Unbox is the interface for the provisioning command.
type Unbox interface {
	Execute(ctx context.Context, repo string, opts UnboxOptions) error
}

// UnboxOptions holds runtime options for one provisioning run.
type UnboxOptions struct {
	// Dest is the directory to clone into; empty derives it from the
	// repository URL.
	Dest string

	// NoDeps skips provisioning of declared dependency repositories.
	NoDeps bool

	// VenvBin is the environment creation tool.
	VenvBin string

	// ParentEnv is the absolute environment path handed down when
	// this repository is provisioned as a dependency of another.
	ParentEnv string
}

// UnboxCommand brings one repository, and recursively its declared
// dependencies, to a fully set-up state. Every step is idempotent:
// an existing clone is reused, an installed hook link is kept, and an
// existing environment is never recreated.
type UnboxCommand struct {
	git    repositories.GitRepository
	runner repositories.CommandRunner
	envs   repositories.EnvRepository
}

// NewUnboxCommand creates a new UnboxCommand.
func NewUnboxCommand(
	git repositories.GitRepository,
	runner repositories.CommandRunner,
	envs repositories.EnvRepository,
) *UnboxCommand {
	return &UnboxCommand{git: git, runner: runner, envs: envs}
}

var _ Unbox = (*UnboxCommand)(nil)

// Execute provisions the repository given as a git URL or a local path.
// Dependencies are fully provisioned before this repository's
// post_setup commands run, so setup commands can rely on them.
func (it *UnboxCommand) Execute(ctx context.Context, repo string, opts UnboxOptions) error {
	dest := opts.Dest
	if pathExists(repo) && dest == "" {
		// repo is a local path, not a URL
		dest = repo
	} else if dest == "" {
		dest = repoNameFromURL(repo)
	}

	if !pathExists(dest) {
		logger.Infof("Cloning %s", repo)
		if err := it.git.Clone(ctx, repo, dest); err != nil {
			return err
		}
	}

	var conf *entities.RepoConfig
	var envPath string
	err := workdir.In(dest, func() error {
		it.updateRepo(ctx, repo)

		var loadErr error
		conf, loadErr = config.LoadRepo(".")
		if loadErr != nil {
			return loadErr
		}

		for _, command := range conf.PreSetup {
			if runErr := it.runner.Run(ctx, command, repositories.RunOptions{}); runErr != nil {
				return runErr
			}
		}

		if hookErr := it.git.InstallHooks(); hookErr != nil {
			return hookErr
		}

		if conf.Env != nil {
			var envErr error
			envPath, envErr = it.envs.Ensure(ctx, conf.Env, opts.VenvBin, opts.ParentEnv, conf.Parent)
			return envErr
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Dependencies are cloned as siblings of dest, which is what the
	// parent-environment peer lookup relies on. A repo without an
	// environment of its own passes the inherited one through, so a
	// shared environment survives env-less intermediates in the chain.
	depEnv := envPath
	if depEnv == "" {
		depEnv = opts.ParentEnv
	}
	if !opts.NoDeps {
		for _, dep := range conf.Dependencies {
			depOpts := UnboxOptions{VenvBin: opts.VenvBin, ParentEnv: depEnv}
			if depErr := it.Execute(ctx, dep, depOpts); depErr != nil {
				return depErr
			}
		}
	}

	return workdir.In(dest, func() error {
		runOpts := repositories.RunOptions{}
		if envPath != "" {
			runOpts.PathOverride = filepath.Join(envPath, "bin") + string(os.PathListSeparator) + os.Getenv("PATH")
		}
		for _, command := range conf.PostSetup {
			if runErr := it.runner.Run(ctx, command, runOpts); runErr != nil {
				return runErr
			}
		}
		return nil
	})
}

// updateRepo fast-forwards the working copy and its submodules. Both
// are best effort: a dirty or diverged checkout must not block
// provisioning.
func (it *UnboxCommand) updateRepo(ctx context.Context, repo string) {
	logger.Infof("Updating %s", repo)
	if err := it.git.Pull(ctx); err != nil {
		logger.Warnf("Update failed: %v", err)
	}
	if err := it.git.UpdateSubmodules(ctx); err != nil {
		logger.Warnf("Submodule update failed: %v", err)
	}
}

var repoNamePattern = regexp.MustCompile(`[A-Za-z0-9_\-]+`)

// repoNameFromURL derives the clone destination from a repository URL:
// the last path-like token, with a trailing .git suffix stripped.
func repoNameFromURL(url string) string {
	words := repoNamePattern.FindAllString(url, -1)
	if len(words) == 0 {
		return url
	}
	if len(words) > 1 && words[len(words)-1] == "git" && strings.HasSuffix(url, ".git") {
		words = words[:len(words)-1]
	}
	return words[len(words)-1]
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
