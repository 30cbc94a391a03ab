//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/unbox/internal/domain/commands"
	"github.com/rios0rios0/unbox/internal/domain/entities"
	"github.com/rios0rios0/unbox/test/domain/repositorydoubles"
)

func TestHookCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should pass when every check passes", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &repositorydoubles.StubCommandRunner{}
		command := commands.NewHookCommand(runner)
		all := []entities.Command{entities.NewRawCommand("make lint")}
		modified := []entities.PatternCommand{
			{Pattern: "*.py", Command: entities.NewRawCommand("pylint")},
		}

		// when
		code := command.Execute(context.Background(), all, modified, []string{"main.py"}, "")

		// then
		assert.Zero(t, code)
		assert.Equal(t, [][]string{
			{"make", "lint"},
			{"pylint", "main.py"},
		}, runner.Argvs())
	})

	t.Run("should run pattern checks once per matching file with the filename appended", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &repositorydoubles.StubCommandRunner{}
		command := commands.NewHookCommand(runner)
		modified := []entities.PatternCommand{
			{Pattern: "*.py", Command: entities.NewCommand("pylint", "--rcfile=.pylintrc")},
		}
		files := []string{"pkg/a.py", "README.md", "b.py"}

		// when
		code := command.Execute(context.Background(), nil, modified, files, "")

		// then
		assert.Zero(t, code)
		assert.Equal(t, [][]string{
			{"pylint", "--rcfile=.pylintrc", "pkg/a.py"},
			{"pylint", "--rcfile=.pylintrc", "b.py"},
		}, runner.Argvs())
	})

	t.Run("should match patterns against the basename only", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &repositorydoubles.StubCommandRunner{}
		command := commands.NewHookCommand(runner)
		modified := []entities.PatternCommand{
			{Pattern: "*.py", Command: entities.NewRawCommand("pylint")},
		}

		// when
		code := command.Execute(context.Background(), nil, modified, []string{"deep/nested/mod.py"}, "")

		// then
		assert.Zero(t, code)
		assert.Equal(t, [][]string{{"pylint", "deep/nested/mod.py"}}, runner.Argvs())
	})

	t.Run("should run every check even after one fails", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &repositorydoubles.StubCommandRunner{
			FailOn: map[string]error{"make lint": errors.New("exit 1")},
		}
		command := commands.NewHookCommand(runner)
		all := []entities.Command{
			entities.NewRawCommand("make lint"),
			entities.NewRawCommand("make vet"),
		}
		modified := []entities.PatternCommand{
			{Pattern: "*.py", Command: entities.NewRawCommand("pylint")},
		}

		// when
		code := command.Execute(context.Background(), all, modified, []string{"main.py"}, "")

		// then
		assert.Equal(t, 1, code)
		assert.Len(t, runner.Calls, 3)
	})

	t.Run("should fail the verdict when a pattern check fails", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &repositorydoubles.StubCommandRunner{
			FailOn: map[string]error{"pylint": errors.New("exit 2")},
		}
		command := commands.NewHookCommand(runner)
		modified := []entities.PatternCommand{
			{Pattern: "*.py", Command: entities.NewRawCommand("pylint")},
			{Pattern: "*.py", Command: entities.NewRawCommand("pep8")},
		}

		// when
		code := command.Execute(context.Background(), nil, modified, []string{"main.py"}, "")

		// then
		assert.Equal(t, 1, code)
		assert.Len(t, runner.Calls, 2)
	})

	t.Run("should hand the environment PATH to every check", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &repositorydoubles.StubCommandRunner{}
		command := commands.NewHookCommand(runner)
		all := []entities.Command{entities.NewRawCommand("make lint")}
		modified := []entities.PatternCommand{
			{Pattern: "*", Command: entities.NewRawCommand("check")},
		}

		// when
		command.Execute(context.Background(), all, modified, []string{"any.file"}, "/env/bin:/usr/bin")

		// then
		for _, call := range runner.Calls {
			assert.Equal(t, "/env/bin:/usr/bin", call.PathOverride)
		}
	})

	t.Run("should fail the verdict on a malformed pattern and keep checking", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &repositorydoubles.StubCommandRunner{}
		command := commands.NewHookCommand(runner)
		modified := []entities.PatternCommand{
			{Pattern: "[unclosed", Command: entities.NewRawCommand("never")},
			{Pattern: "*.py", Command: entities.NewRawCommand("pylint")},
		}

		// when
		code := command.Execute(context.Background(), nil, modified, []string{"main.py"}, "")

		// then
		assert.Equal(t, 1, code)
		assert.Equal(t, [][]string{{"pylint", "main.py"}}, runner.Argvs())
	})

	t.Run("should pass with nothing configured", func(t *testing.T) {
		t.Parallel()

		// given
		runner := &repositorydoubles.StubCommandRunner{}
		command := commands.NewHookCommand(runner)

		// when
		code := command.Execute(context.Background(), nil, nil, nil, "")

		// then
		assert.Zero(t, code)
		assert.Empty(t, runner.Calls)
	})
}
