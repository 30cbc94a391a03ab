package entities

import "fmt"

// CloneError reports a failed clone of a repository. Clone failures are
// always fatal to the provisioning run.
type CloneError struct {
	Repo string
	Err  error
}

func (e *CloneError) Error() string {
	return fmt.Sprintf("cloning %q: %v", e.Repo, e.Err)
}

func (e *CloneError) Unwrap() error { return e.Err }

// CommandError reports a setup or hook command that exited non-zero or
// could not be spawned.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// FetchError reports a remote script that could not be downloaded. The
// command cannot run without its content, so fetch failures propagate.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %q: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// EnvError reports a failed environment creation or link.
type EnvError struct {
	Path string
	Err  error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("environment %q: %v", e.Path, e.Err)
}

func (e *EnvError) Unwrap() error { return e.Err }
