//go:build unit

package git_test

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/unbox/internal/infrastructure/repositories/git"
)

func TestExecGitRepository_InstallHooks(t *testing.T) {
	t.Run("should do nothing when the repo ships no hooks directory", func(t *testing.T) {
		// given
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.MkdirAll(".git/hooks", 0o755))
		repo := git.NewExecGitRepository()

		// when
		err := repo.InstallHooks()

		// then
		require.NoError(t, err)
		info, statErr := os.Lstat(".git/hooks")
		require.NoError(t, statErr)
		assert.True(t, info.IsDir())
	})

	t.Run("should replace the hooks directory with a symlink", func(t *testing.T) {
		// given
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.MkdirAll(".git/hooks", 0o755))
		require.NoError(t, os.Mkdir(git.HooksSourceDir, 0o755))
		repo := git.NewExecGitRepository()

		// when
		err := repo.InstallHooks()

		// then
		require.NoError(t, err)
		target, readErr := os.Readlink(filepath.Join(".git", "hooks"))
		require.NoError(t, readErr)
		assert.Equal(t, filepath.Join("..", git.HooksSourceDir), target)
	})

	t.Run("should leave an existing symlink alone on reruns", func(t *testing.T) {
		// given
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.Mkdir(".git", 0o755))
		require.NoError(t, os.Mkdir(git.HooksSourceDir, 0o755))
		require.NoError(t, os.Symlink("custom-hooks", ".git/hooks"))
		repo := git.NewExecGitRepository()

		// when
		err := repo.InstallHooks()

		// then
		require.NoError(t, err)
		target, readErr := os.Readlink(".git/hooks")
		require.NoError(t, readErr)
		assert.Equal(t, "custom-hooks", target)
	})
}

func TestExecGitRepository_StagedFiles(t *testing.T) {
	t.Parallel()

	t.Run("should list staged paths in a stable order", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		gitRepo, err := gogit.PlainInit(dir, false)
		require.NoError(t, err)
		worktree, err := gitRepo.Worktree()
		require.NoError(t, err)
		for _, name := range []string{"zeta.py", "alpha.py"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("pass\n"), 0o644))
			_, addErr := worktree.Add(name)
			require.NoError(t, addErr)
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, "untracked.txt"), []byte("x\n"), 0o644))
		repo := git.NewExecGitRepository()

		// when
		staged, err := repo.StagedFiles(dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha.py", "zeta.py"}, staged)
	})

	t.Run("should fail outside a repository", func(t *testing.T) {
		t.Parallel()

		// given
		repo := git.NewExecGitRepository()

		// when
		_, err := repo.StagedFiles(t.TempDir())

		// then
		require.Error(t, err)
	})
}
