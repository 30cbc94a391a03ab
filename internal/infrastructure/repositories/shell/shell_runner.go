package shell

import (
	"context"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/unbox/internal/domain/entities"
	"github.com/rios0rios0/unbox/internal/domain/repositories"
)

// LocalRunner executes configured commands as local subprocesses with
// stdout and stderr passed through. Remote script commands are fetched
// to a temporary file first and the file is removed again afterwards,
// also when the script exits non-zero.
type LocalRunner struct {
	fetcher *scriptFetcher
}

// NewLocalRunner creates a new LocalRunner.
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{fetcher: newScriptFetcher()}
}

var _ repositories.CommandRunner = (*LocalRunner)(nil)

// Run executes one command synchronously. A non-zero exit or a failure
// to spawn is reported as a CommandError.
func (it *LocalRunner) Run(
	ctx context.Context,
	command entities.Command,
	opts repositories.RunOptions,
) error {
	tokens, err := command.Tokens()
	if err != nil {
		return &entities.CommandError{Command: command.String(), Err: err}
	}
	if len(tokens) == 0 {
		return nil
	}

	if url, ok := command.RemoteURL(); ok {
		return it.runRemote(ctx, url, tokens[1:], opts)
	}
	return it.spawn(ctx, tokens, opts)
}

// runRemote downloads the script behind url, runs it with the remaining
// tokens, and deletes the downloaded file regardless of the outcome.
func (it *LocalRunner) runRemote(
	ctx context.Context,
	url string,
	rest []string,
	opts repositories.RunOptions,
) error {
	local, err := it.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}
	defer func() {
		if removeErr := os.Remove(local); removeErr != nil {
			logger.Warnf("Failed to remove downloaded script %q: %v", local, removeErr)
		}
	}()

	tokens := append([]string{local}, rest...)
	return it.spawn(ctx, tokens, opts)
}

func (it *LocalRunner) spawn(
	ctx context.Context,
	tokens []string,
	opts repositories.RunOptions,
) error {
	argv := tokens
	if len(opts.AppendArgs) > 0 {
		argv = make([]string, 0, len(tokens)+len(opts.AppendArgs))
		argv = append(argv, tokens...)
		argv = append(argv, opts.AppendArgs...)
	}

	logger.Debugf("Running: %s", strings.Join(argv, " "))

	//nolint:gosec // running user-configured commands is the whole point
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if opts.PathOverride != "" {
		// Duplicate keys in Env resolve to the last value, so
		// appending PATH overrides the inherited one.
		cmd.Env = append(os.Environ(), "PATH="+opts.PathOverride)
	}

	if err := cmd.Run(); err != nil {
		return &entities.CommandError{Command: strings.Join(argv, " "), Err: err}
	}
	return nil
}
