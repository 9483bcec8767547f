// Package build describes the running workbench binary.
package build

import "fmt"

// Info is filled from ldflags in main.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Short renders "version (commit)", dropping an unknown commit.
func (i Info) Short() string {
	if i.Commit == "" || i.Commit == "unknown" {
		return i.Version
	}
	return fmt.Sprintf("%s (%s)", i.Version, i.Commit)
}
