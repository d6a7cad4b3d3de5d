package version

import (
	"fmt"
)

// These vars set by `goreleaser`:
var (
	// Version is the current Git tag (the v prefix is stripped) or the name of the snapshot, if you’re using the --snapshot flag
	Version = "0.0.0-dev"
	// Commit is the current git commit SHA
	Commit = "dirty-local-tree"
)

// UserAgent returns the user agent that should be user for external requests.
// GitHub rejects API requests that do not carry one.
func UserAgent() string {
	return fmt.Sprintf("repo-browser/%s+%s", Version, Commit)
}

// String is the short form printed by the version command.
func String() string {
	return fmt.Sprintf("%s+%s", Version, Commit)
}
