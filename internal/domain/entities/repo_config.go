package entities

import "sort"

// Environment describes the isolated runtime of one repository, e.g. a
// virtualenv. Path is resolved against the repository root when it is
// relative. Args are extra flags passed to the creation tool.
type Environment struct {
	Path string   `json:"path"`
	Args []string `json:"args"`
}

// PatternCommand pairs a basename glob pattern with the command to run
// against each staged file matching it.
type PatternCommand struct {
	Pattern string
	Command Command
}

// RepoConfig is the persisted per-repository provisioning record. It is
// loaded once per run and treated as immutable afterwards; only the
// interactive authoring flow mutates and re-saves it.
type RepoConfig struct {
	// Dependencies lists repository URLs or local paths that are
	// provisioned before this repository's post_setup commands run.
	Dependencies []string `json:"dependencies,omitempty"`

	// PreSetup commands run before the environment is created.
	PreSetup []Command `json:"pre_setup,omitempty"`

	// PostSetup commands run last, with the environment's bin
	// directory prepended to PATH when an environment exists.
	PostSetup []Command `json:"post_setup,omitempty"`

	// Env describes the isolated runtime, or nil for none.
	Env *Environment `json:"env,omitempty"`

	// HooksAll commands run unconditionally during pre-commit.
	HooksAll []Command `json:"hooks_all,omitempty"`

	// HooksModified maps basename glob patterns to commands invoked
	// once per matching staged file, filename appended.
	HooksModified map[string][]Command `json:"hooks_modified,omitempty"`

	// Parent names a peer repository (a sibling directory) whose
	// environment is reused instead of creating a new one.
	Parent string `json:"parent,omitempty"`
}

// ModifiedHooks flattens hooks_modified into a deterministic sequence:
// patterns in lexical order, commands in declaration order within each
// pattern.
func (c *RepoConfig) ModifiedHooks() []PatternCommand {
	patterns := make([]string, 0, len(c.HooksModified))
	for pattern := range c.HooksModified {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)

	var result []PatternCommand
	for _, pattern := range patterns {
		for _, command := range c.HooksModified[pattern] {
			result = append(result, PatternCommand{Pattern: pattern, Command: command})
		}
	}
	return result
}

// DedupeHooks suppresses structurally equal duplicate commands within
// hooks_all and each hooks_modified list. Used by the authoring flow so
// repeated configuration never stacks the same check twice.
func (c *RepoConfig) DedupeHooks() {
	c.HooksAll = DedupeCommands(c.HooksAll)
	for pattern, commands := range c.HooksModified {
		c.HooksModified[pattern] = DedupeCommands(commands)
	}
}

// AddModifiedHook appends a command for the given pattern unless an
// equal command is already registered for it.
func (c *RepoConfig) AddModifiedHook(pattern string, command Command) {
	if c.HooksModified == nil {
		c.HooksModified = make(map[string][]Command)
	}
	for _, existing := range c.HooksModified[pattern] {
		if existing.Key() == command.Key() {
			return
		}
	}
	c.HooksModified[pattern] = append(c.HooksModified[pattern], command)
}

// AddPostSetup appends a post_setup command unless an equal one exists.
func (c *RepoConfig) AddPostSetup(command Command) {
	for _, existing := range c.PostSetup {
		if existing.Key() == command.Key() {
			return
		}
	}
	c.PostSetup = append(c.PostSetup, command)
}
