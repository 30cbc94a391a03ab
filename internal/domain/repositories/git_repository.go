package repositories

import "context"

// GitRepository abstracts the version-control operations the provisioner
// and hook runner need. Pull, UpdateSubmodules, and InstallHooks operate
// on the current working directory because the provisioner scopes the
// working directory per repository while recursing.
type GitRepository interface {
	// Clone clones repo into dest.
	Clone(ctx context.Context, repo, dest string) error

	// Pull fast-forwards the working copy. Diverged history is the
	// caller's problem; a failure must not block provisioning.
	Pull(ctx context.Context) error

	// UpdateSubmodules initializes and updates submodules recursively.
	UpdateSubmodules(ctx context.Context) error

	// InstallHooks replaces .git/hooks with a symlink to the
	// repository's git_hooks directory when one exists. A .git/hooks
	// that is already a symlink is left alone.
	InstallHooks() error

	// StagedFiles returns the paths staged for commit in the
	// repository containing dir.
	StagedFiles(dir string) ([]string, error)

	// Describe returns the git-describe string (tags, dirty marker)
	// for the repository at dir.
	Describe(ctx context.Context, dir string) (string, error)
}
