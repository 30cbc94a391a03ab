package shell

// NewScriptFetcher exports newScriptFetcher for testing.
var NewScriptFetcher = newScriptFetcher //nolint:gochecknoglobals // test export
