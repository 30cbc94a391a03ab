package commands

// RepoNameFromURL exports repoNameFromURL for testing.
var RepoNameFromURL = repoNameFromURL //nolint:gochecknoglobals // test export

// AppendLines exports appendLines for testing.
var AppendLines = appendLines //nolint:gochecknoglobals // test export

// DetectLanguage exports detectLanguage for testing.
var DetectLanguage = detectLanguage //nolint:gochecknoglobals // test export

// ReleaseTag exports releaseTag for testing.
var ReleaseTag = releaseTag //nolint:gochecknoglobals // test export

// IsDevBuild exports isDevBuild for testing.
var IsDevBuild = isDevBuild //nolint:gochecknoglobals // test export
