// Package version exposes build metadata injected via ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Short returns only the version number.
func Short() string {
	return Version
}

// Info returns the full multi-line version report.
func Info() string {
	return fmt.Sprintf("gemchat %s\ncommit: %s\nbuilt: %s\ngo: %s",
		Version, Commit, BuildTime, runtime.Version())
}
