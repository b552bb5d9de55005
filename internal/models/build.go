package models

import "fmt"

// BuildInformation is set at build time with linker flags.
type BuildInformation struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"buildDate"`
}

const shortCommitLength = 7

// VersionString returns the version, suffixed with the short commit
// hash for builds of the latest branch.
func (b BuildInformation) VersionString() string {
	if b.Version != "latest" || len(b.Commit) < shortCommitLength {
		return b.Version
	}
	return b.Version + "-" + b.Commit[:shortCommitLength]
}

func (b BuildInformation) String() string {
	return fmt.Sprintf("routerlogin %s built on %s", b.VersionString(), b.Date)
}
