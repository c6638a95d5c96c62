// Package constants contains names shared across commitlint packages.
package constants

const (
	// AppName is the application name used for XDG directories and the hook marker.
	AppName = "commitlint"

	// LogFilename is the log file name inside the data directory.
	LogFilename = "commitlint.log"

	// DatabaseFilename is the history database file name inside the data directory.
	DatabaseFilename = "commitlint.db"

	// GitDir is the directory or gitdir pointer file marking a repository.
	GitDir = ".git"

	// HooksDir is the hooks directory inside the git directory.
	HooksDir = "hooks"

	// CommitMsgHook is the git hook that receives the commit message file.
	CommitMsgHook = "commit-msg"

	// EnvPrefix is the prefix for environment overrides.
	EnvPrefix = "COMMITLINT"
)

// ConfigFilenames are searched in order in the project root.
var ConfigFilenames = []string{
	"commitlint.yml",
	"commitlint.yaml",
	".commitlint.yml",
	".commitlint.yaml",
}
