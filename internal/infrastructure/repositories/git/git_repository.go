package git

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	"github.com/rios0rios0/unbox/internal/domain/entities"
	"github.com/rios0rios0/unbox/internal/domain/repositories"
)

const (
	// HooksSourceDir is the in-repo directory that .git/hooks is
	// symlinked to when present.
	HooksSourceDir = "git_hooks"

	gitHooksPath = ".git/hooks"
	hooksLink    = "../" + HooksSourceDir
)

// ExecGitRepository drives the git command-line tool for clone, update,
// and describe, and go-git for reading the index. Pull, submodule, and
// hook operations act on the current working directory because the
// provisioner scopes it per repository.
type ExecGitRepository struct{}

// NewExecGitRepository creates a new ExecGitRepository.
func NewExecGitRepository() *ExecGitRepository {
	return &ExecGitRepository{}
}

var _ repositories.GitRepository = (*ExecGitRepository)(nil)

// Clone clones repo into dest. A non-zero exit from git is fatal to the
// provisioning run.
func (it *ExecGitRepository) Clone(ctx context.Context, repo, dest string) error {
	cmd := exec.CommandContext(ctx, "git", "clone", repo, dest)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return &entities.CloneError{Repo: repo, Err: err}
	}
	return nil
}

// Pull fast-forwards the working copy. Diverged history fails here
// rather than discarding local changes; callers treat it as advisory.
func (it *ExecGitRepository) Pull(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "git", "pull", "--ff-only")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git pull: %w\n%s", err, out)
	}
	return nil
}

// UpdateSubmodules initializes and updates submodules recursively.
func (it *ExecGitRepository) UpdateSubmodules(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, "git", "submodule", "update", "--init", "--recursive")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git submodule update: %w\n%s", err, out)
	}
	return nil
}

// InstallHooks replaces .git/hooks with a symlink to the repository's
// git_hooks directory. A .git/hooks that is already a symlink is left
// alone, so reruns never relink and a hand-made setup survives.
func (it *ExecGitRepository) InstallHooks() error {
	if _, err := os.Stat(HooksSourceDir); err != nil {
		return nil // repo ships no hooks
	}
	if info, err := os.Lstat(gitHooksPath); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return nil
	}

	if err := os.RemoveAll(gitHooksPath); err != nil {
		return fmt.Errorf("removing %s: %w", gitHooksPath, err)
	}
	if err := os.Symlink(hooksLink, gitHooksPath); err != nil {
		return fmt.Errorf("linking %s: %w", gitHooksPath, err)
	}
	return nil
}

// Describe returns the git-describe string (nearest tag, commit count,
// short SHA, dirty marker) for the repository at dir.
func (it *ExecGitRepository) Describe(ctx context.Context, dir string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "describe", "--tags", "--dirty")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git describe: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// StagedFiles returns the paths staged for commit in the repository
// containing dir, read from the index via go-git.
func (it *ExecGitRepository) StagedFiles(dir string) ([]string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %q: %w", dir, err)
	}
	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("resolving worktree: %w", err)
	}
	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("reading status: %w", err)
	}

	var staged []string
	for path, fileStatus := range status {
		switch fileStatus.Staging {
		case gogit.Added, gogit.Modified, gogit.Renamed, gogit.Copied:
			staged = append(staged, path)
		}
	}
	sort.Strings(staged) // status is a map; checks need a stable order
	return staged, nil
}
