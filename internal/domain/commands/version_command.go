package commands

import (
	"context"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/unbox/internal/domain/repositories"
)

// Version is the interface for the tag-derived version command.
type Version interface {
	Execute(ctx context.Context, dir string) (string, error)
}

// devBuildPattern matches the commit-count/SHA suffix git-describe adds
// between tagged releases, e.g. "1.2.3-4-gdeadbee".
var devBuildPattern = regexp.MustCompile(`-[0-9]+-g[0-9a-f]+`)

// VersionCommand derives a distribution version string from
// source-control tags: the tag itself on a tagged commit, the full
// describe output (tag, commit count, SHA, dirty marker) otherwise.
type VersionCommand struct {
	git repositories.GitRepository
}

// NewVersionCommand creates a new VersionCommand.
func NewVersionCommand(git repositories.GitRepository) *VersionCommand {
	return &VersionCommand{git: git}
}

var _ Version = (*VersionCommand)(nil)

// Execute returns the version string for the repository at dir.
func (it *VersionCommand) Execute(ctx context.Context, dir string) (string, error) {
	description, err := it.git.Describe(ctx, dir)
	if err != nil {
		return "", err
	}

	tag := releaseTag(description)
	if !semver.IsValid(normalizeTag(tag)) {
		logger.Warnf("Tag %q is not a semantic version", tag)
	}
	if isDevBuild(description) {
		logger.Debugf("Developer build of %s", tag)
	}
	return description, nil
}

// releaseTag strips the dev-build suffix and dirty marker from a
// describe string, leaving the nearest tag.
func releaseTag(description string) string {
	tag := strings.TrimSuffix(description, "-dirty")
	return devBuildPattern.ReplaceAllString(tag, "")
}

func isDevBuild(description string) bool {
	return devBuildPattern.MatchString(description)
}

// normalizeTag prefixes "v" when absent so tags like "1.2.3" validate.
func normalizeTag(tag string) string {
	if strings.HasPrefix(tag, "v") {
		return tag
	}
	return "v" + tag
}
