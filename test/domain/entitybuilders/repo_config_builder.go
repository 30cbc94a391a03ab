//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/unbox/internal/domain/entities"
)

// RepoConfigBuilder helps create test repo configs with a fluent interface.
type RepoConfigBuilder struct {
	*testkit.BaseBuilder
	dependencies  []string
	preSetup      []entities.Command
	postSetup     []entities.Command
	env           *entities.Environment
	hooksAll      []entities.Command
	hooksModified map[string][]entities.Command
	parent        string
}

// NewRepoConfigBuilder creates a new repo config builder with an empty config.
func NewRepoConfigBuilder() *RepoConfigBuilder {
	return &RepoConfigBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		hooksModified: map[string][]entities.Command{},
	}
}

// WithDependencies sets the dependency repository references.
func (b *RepoConfigBuilder) WithDependencies(deps ...string) *RepoConfigBuilder {
	b.dependencies = deps
	return b
}

// WithPreSetup adds pre-setup commands.
func (b *RepoConfigBuilder) WithPreSetup(commands ...entities.Command) *RepoConfigBuilder {
	b.preSetup = append(b.preSetup, commands...)
	return b
}

// WithPostSetup adds post-setup commands.
func (b *RepoConfigBuilder) WithPostSetup(commands ...entities.Command) *RepoConfigBuilder {
	b.postSetup = append(b.postSetup, commands...)
	return b
}

// WithEnv sets the environment descriptor.
func (b *RepoConfigBuilder) WithEnv(path string, args ...string) *RepoConfigBuilder {
	b.env = &entities.Environment{Path: path, Args: args}
	return b
}

// WithHooksAll adds unconditional pre-commit commands.
func (b *RepoConfigBuilder) WithHooksAll(commands ...entities.Command) *RepoConfigBuilder {
	b.hooksAll = append(b.hooksAll, commands...)
	return b
}

// WithModifiedHook adds a pattern-scoped pre-commit command.
func (b *RepoConfigBuilder) WithModifiedHook(pattern string, command entities.Command) *RepoConfigBuilder {
	b.hooksModified[pattern] = append(b.hooksModified[pattern], command)
	return b
}

// WithParent sets the peer repository whose environment is reused.
func (b *RepoConfigBuilder) WithParent(parent string) *RepoConfigBuilder {
	b.parent = parent
	return b
}

// Build creates the repo config (satisfies testkit.Builder interface).
func (b *RepoConfigBuilder) Build() interface{} {
	return b.BuildRepoConfig()
}

// BuildRepoConfig creates the repo config with the configured values.
func (b *RepoConfigBuilder) BuildRepoConfig() *entities.RepoConfig {
	return &entities.RepoConfig{
		Dependencies:  b.dependencies,
		PreSetup:      b.preSetup,
		PostSetup:     b.postSetup,
		Env:           b.env,
		HooksAll:      b.hooksAll,
		HooksModified: b.hooksModified,
		Parent:        b.parent,
	}
}
