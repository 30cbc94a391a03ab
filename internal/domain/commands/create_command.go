package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/unbox/config"
	"github.com/rios0rios0/unbox/internal/domain/entities"
)

const (
	// LanguageAuto picks python when a setup.py is present.
	LanguageAuto   = "auto"
	LanguagePython = "python"
	LanguageNone   = "none"

	hooksDir       = "git_hooks"
	preCommitFile  = "pre-commit"
	whitespaceHook = "git diff-index --check --cached HEAD --"
	hookRunnerCmd  = "unbox run-hooks"
)

// Create is the interface for the authoring command that equips a
// repository with an unbox config and a pre-commit hook.
type Create interface {
	Execute(ctx context.Context, opts CreateOptions) error
}

// CreateOptions carries the answers of the interactive authoring flow.
type CreateOptions struct {
	Repo     string
	Language string

	// CheckWhitespace adds the git trailing-whitespace check to the
	// unconditional hooks.
	CheckWhitespace bool

	// Python preset answers.
	EnvPath  string
	Pylint   bool
	Pep8     bool
	Pyflakes bool
}

// CreateCommand writes the provisioning record and hook scaffolding
// into a repository. Running it again on a configured repository only
// adds what is missing: commands are deduplicated, existing files are
// appended to rather than overwritten.
type CreateCommand struct{}

// NewCreateCommand creates a new CreateCommand.
func NewCreateCommand() *CreateCommand {
	return &CreateCommand{}
}

var _ Create = (*CreateCommand)(nil)

// Execute sets up the repository at opts.Repo.
func (it *CreateCommand) Execute(_ context.Context, opts CreateOptions) error {
	if err := os.MkdirAll(opts.Repo, 0o755); err != nil {
		return fmt.Errorf("creating %q: %w", opts.Repo, err)
	}

	conf, err := config.LoadRepo(opts.Repo)
	if err != nil {
		return err
	}

	if opts.CheckWhitespace {
		conf.HooksAll = append(conf.HooksAll, entities.NewRawCommand(whitespaceHook))
	}

	language := opts.Language
	if language == "" || language == LanguageAuto {
		language = detectLanguage(opts.Repo)
		logger.Infof("Detected language: %s", language)
	}
	if language == LanguagePython {
		if pyErr := it.configurePython(opts.Repo, conf, opts); pyErr != nil {
			return pyErr
		}
	}

	if hookErr := it.writePreCommitHook(opts.Repo); hookErr != nil {
		return hookErr
	}

	conf.DedupeHooks()
	return config.SaveRepo(opts.Repo, conf)
}

// configurePython applies the python preset: a virtualenv descriptor,
// lint hooks on *.py files, and post-setup commands that install the
// development requirements and the package itself.
func (it *CreateCommand) configurePython(repo string, conf *entities.RepoConfig, opts CreateOptions) error {
	envPath := opts.EnvPath
	if envPath == "" {
		envPath = "venv"
	}
	if conf.Env == nil {
		conf.Env = &entities.Environment{Path: envPath, Args: []string{}}
	}

	var requirements []string
	if opts.Pylint {
		conf.AddModifiedHook("*.py", entities.NewCommand("pylint", "--rcfile=.pylintrc"))
		requirements = append(requirements, "pylint")
	}
	if opts.Pep8 {
		conf.AddModifiedHook("*.py", entities.NewCommand("pep8", "--config=.pep8.ini"))
		requirements = append(requirements, "pep8")
	}
	if opts.Pyflakes {
		conf.AddModifiedHook("*.py", entities.NewCommand("pyflakes"))
		requirements = append(requirements, "pyflakes")
	}

	if len(requirements) > 0 {
		reqFile := filepath.Join(repo, "requirements_dev.txt")
		if err := appendLines(requirements, reqFile); err != nil {
			return err
		}
		conf.AddPostSetup(entities.NewRawCommand("pip install -r requirements_dev.txt"))
	}
	conf.AddPostSetup(entities.NewRawCommand("pip install -e ."))

	// The environment directory must never be committed.
	return appendLines([]string{conf.Env.Path}, filepath.Join(repo, ".gitignore"))
}

// writePreCommitHook creates git_hooks/pre-commit invoking the hook
// runner. The provisioner later symlinks .git/hooks to git_hooks.
func (it *CreateCommand) writePreCommitHook(repo string) error {
	dir := filepath.Join(repo, hooksDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %q: %w", dir, err)
	}

	hookFile := filepath.Join(dir, preCommitFile)
	lines := []string{hookRunnerCmd}
	if !fileExists(hookFile) {
		lines = append([]string{"#!/bin/bash -e"}, lines...)
	}
	if err := appendLines(lines, hookFile); err != nil {
		return err
	}

	info, err := os.Stat(hookFile)
	if err != nil {
		return err
	}
	return os.Chmod(hookFile, info.Mode()|0o111)
}

// detectLanguage sniffs the repository contents for a language preset.
func detectLanguage(repo string) string {
	if fileExists(filepath.Join(repo, "setup.py")) {
		return LanguagePython
	}
	return LanguageNone
}

// appendLines appends the lines that are not already present in the
// file, creating it when missing. Existing content is left untouched; a
// newline is inserted first when the file does not end with one.
func appendLines(lines []string, filename string) error {
	existing := make(map[string]bool)
	prependNewline := false
	if data, err := os.ReadFile(filename); err == nil {
		text := string(data)
		if text != "" && !strings.HasSuffix(text, "\n") {
			prependNewline = true
		}
		for _, line := range strings.Split(text, "\n") {
			existing[line] = true
		}
	}

	var missing []string
	for _, line := range lines {
		if !existing[line] {
			missing = append(missing, line)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %q: %w", filename, err)
	}
	defer file.Close()

	if prependNewline {
		if _, writeErr := file.WriteString("\n"); writeErr != nil {
			return writeErr
		}
	}
	for _, line := range missing {
		if _, writeErr := file.WriteString(line + "\n"); writeErr != nil {
			return writeErr
		}
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
