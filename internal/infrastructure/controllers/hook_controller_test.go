//go:build unit

package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/unbox/config"
	"github.com/rios0rios0/unbox/internal/domain/entities"
	"github.com/rios0rios0/unbox/internal/infrastructure/controllers"
	"github.com/rios0rios0/unbox/test/domain/commanddoubles"
	"github.com/rios0rios0/unbox/test/domain/repositorydoubles"
)

func TestHookController_Execute(t *testing.T) {
	t.Run("should run the checks against the staged files", func(t *testing.T) {
		// given
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, config.SaveRepo(".", &entities.RepoConfig{
			HooksAll:      []entities.Command{entities.NewRawCommand("make lint")},
			HooksModified: map[string][]entities.Command{"*.py": {entities.NewRawCommand("pylint")}},
		}))
		hook := &commanddoubles.StubHookCommand{}
		git := &repositorydoubles.StubGitRepository{StagedResult: []string{"main.py"}}
		controller := controllers.NewHookController(hook, git)

		// when
		err := controller.Execute(nil, nil)

		// then
		require.NoError(t, err)
		require.Len(t, hook.Calls, 1)
		assert.Equal(t, []string{"main.py"}, hook.Calls[0].Files)
		assert.Len(t, hook.Calls[0].All, 1)
		assert.Len(t, hook.Calls[0].Modified, 1)
	})

	t.Run("should prefer explicitly given files over the index", func(t *testing.T) {
		// given
		t.Chdir(t.TempDir())
		hook := &commanddoubles.StubHookCommand{}
		git := &repositorydoubles.StubGitRepository{StagedResult: []string{"ignored.py"}}
		controller := controllers.NewHookController(hook, git)

		// when
		err := controller.Execute(nil, []string{"a.py", "b.py"})

		// then
		require.NoError(t, err)
		require.Len(t, hook.Calls, 1)
		assert.Equal(t, []string{"a.py", "b.py"}, hook.Calls[0].Files)
	})

	t.Run("should hand the environment PATH to the checks", func(t *testing.T) {
		// given
		t.Chdir(t.TempDir())
		require.NoError(t, config.SaveRepo(".", &entities.RepoConfig{
			Env: &entities.Environment{Path: "venv"},
		}))
		hook := &commanddoubles.StubHookCommand{}
		controller := controllers.NewHookController(hook, &repositorydoubles.StubGitRepository{})

		// when
		err := controller.Execute(nil, []string{"a.py"})

		// then
		require.NoError(t, err)
		require.Len(t, hook.Calls, 1)
		assert.Contains(t, hook.Calls[0].PathOverride, "venv")
	})

	t.Run("should map a failing verdict to an error", func(t *testing.T) {
		// given
		t.Chdir(t.TempDir())
		hook := &commanddoubles.StubHookCommand{Result: 1}
		controller := controllers.NewHookController(hook, &repositorydoubles.StubGitRepository{})

		// when
		err := controller.Execute(nil, []string{"a.py"})

		// then
		require.ErrorIs(t, err, controllers.ErrChecksFailed)
	})
}
