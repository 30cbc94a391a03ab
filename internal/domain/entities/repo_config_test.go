//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/unbox/internal/domain/entities"
	"github.com/rios0rios0/unbox/test/domain/entitybuilders"
)

func TestRepoConfig_ModifiedHooks(t *testing.T) {
	t.Parallel()

	t.Run("should order patterns lexically and commands by declaration", func(t *testing.T) {
		t.Parallel()

		// given
		conf := entitybuilders.NewRepoConfigBuilder().
			WithModifiedHook("*.txt", entities.NewRawCommand("spellcheck")).
			WithModifiedHook("*.py", entities.NewRawCommand("pylint")).
			WithModifiedHook("*.py", entities.NewRawCommand("pep8")).
			BuildRepoConfig()

		// when
		hooks := conf.ModifiedHooks()

		// then
		require.Len(t, hooks, 3)
		assert.Equal(t, "*.py", hooks[0].Pattern)
		assert.Equal(t, "pylint", hooks[0].Command.Key())
		assert.Equal(t, "*.py", hooks[1].Pattern)
		assert.Equal(t, "pep8", hooks[1].Command.Key())
		assert.Equal(t, "*.txt", hooks[2].Pattern)
	})

	t.Run("should return nothing for an empty config", func(t *testing.T) {
		t.Parallel()

		// given
		conf := &entities.RepoConfig{}

		// when
		hooks := conf.ModifiedHooks()

		// then
		assert.Empty(t, hooks)
	})
}

func TestRepoConfig_DedupeHooks(t *testing.T) {
	t.Parallel()

	t.Run("should suppress duplicates in hooks_all and per pattern", func(t *testing.T) {
		t.Parallel()

		// given
		conf := entitybuilders.NewRepoConfigBuilder().
			WithHooksAll(
				entities.NewRawCommand("make lint"),
				entities.NewRawCommand("make lint"),
			).
			WithModifiedHook("*.py", entities.NewRawCommand("pylint")).
			BuildRepoConfig()
		conf.HooksModified["*.py"] = append(conf.HooksModified["*.py"], entities.NewRawCommand("pylint"))

		// when
		conf.DedupeHooks()

		// then
		assert.Len(t, conf.HooksAll, 1)
		assert.Len(t, conf.HooksModified["*.py"], 1)
	})
}

func TestRepoConfig_AddModifiedHook(t *testing.T) {
	t.Parallel()

	t.Run("should not register the same command twice for a pattern", func(t *testing.T) {
		t.Parallel()

		// given
		conf := &entities.RepoConfig{}

		// when
		conf.AddModifiedHook("*.py", entities.NewRawCommand("pylint"))
		conf.AddModifiedHook("*.py", entities.NewRawCommand("pylint"))
		conf.AddModifiedHook("*.py", entities.NewRawCommand("pep8"))

		// then
		assert.Len(t, conf.HooksModified["*.py"], 2)
	})
}

func TestRepoConfig_AddPostSetup(t *testing.T) {
	t.Parallel()

	t.Run("should not register the same post-setup command twice", func(t *testing.T) {
		t.Parallel()

		// given
		conf := &entities.RepoConfig{}

		// when
		conf.AddPostSetup(entities.NewRawCommand("pip install -e ."))
		conf.AddPostSetup(entities.NewRawCommand("pip install -e ."))

		// then
		assert.Len(t, conf.PostSetup, 1)
	})
}
