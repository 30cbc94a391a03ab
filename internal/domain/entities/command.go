package entities

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// remoteSchemes are the URL schemes that mark a command as a remote
// script command: the first token is fetched to a local temporary file
// before execution.
var remoteSchemes = []string{"http://", "https://", "ftp://"}

// Command is a single executable step from a repository config. It is
// either an explicit list of argument tokens or a raw string that is
// split with shell word rules (quoting respected) when the tokens are
// first needed. Both shapes are accepted in the persisted JSON record.
type Command struct {
	tokens []string
	raw    string
}

// NewCommand creates a Command from an explicit token list.
func NewCommand(tokens ...string) Command {
	return Command{tokens: tokens}
}

// NewRawCommand creates a Command from a raw shell-like string.
func NewRawCommand(raw string) Command {
	return Command{raw: raw}
}

// Tokens normalizes the command to its argument vector. Raw strings are
// split once with shell word rules.
func (c Command) Tokens() ([]string, error) {
	if c.tokens != nil {
		return c.tokens, nil
	}
	tokens, err := shlex.Split(c.raw)
	if err != nil {
		return nil, fmt.Errorf("splitting command %q: %w", c.raw, err)
	}
	return tokens, nil
}

// IsZero returns true for a command with no tokens and no raw string.
func (c Command) IsZero() bool {
	return c.tokens == nil && c.raw == ""
}

// RemoteURL returns the command's first token and true when it is a
// remote script URL (http, https, or ftp).
func (c Command) RemoteURL() (string, bool) {
	tokens, err := c.Tokens()
	if err != nil || len(tokens) == 0 {
		return "", false
	}
	for _, scheme := range remoteSchemes {
		if strings.HasPrefix(tokens[0], scheme) {
			return tokens[0], true
		}
	}
	return "", false
}

// Key returns the identity used for duplicate suppression. Token lists
// and raw strings that describe the same invocation share a key.
func (c Command) Key() string {
	if c.tokens != nil {
		return strings.Join(c.tokens, " ")
	}
	return c.raw
}

// String renders the command for log output.
func (c Command) String() string {
	return c.Key()
}

// UnmarshalJSON accepts either a JSON string or a JSON array of strings.
func (c *Command) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		*c = Command{raw: raw}
		return nil
	}
	var tokens []string
	if err := json.Unmarshal(data, &tokens); err != nil {
		return fmt.Errorf("command must be a string or a list of strings: %w", err)
	}
	*c = Command{tokens: tokens}
	return nil
}

// MarshalJSON writes the command back in the shape it was authored in.
func (c Command) MarshalJSON() ([]byte, error) {
	if c.tokens != nil {
		return json.Marshal(c.tokens)
	}
	return json.Marshal(c.raw)
}

// DedupeCommands removes structurally equal duplicates from a command
// list, keeping the first occurrence of each. Order is preserved.
func DedupeCommands(commands []Command) []Command {
	seen := make(map[string]bool, len(commands))
	result := make([]Command, 0, len(commands))
	for _, command := range commands {
		key := command.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, command)
	}
	return result
}
