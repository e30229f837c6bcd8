package version

import (
	"fmt"
	"runtime"
	"time"
)

var (
	Version   = "dev"                           // ex: v0.1.0
	Commit    = "none"                          // ex: abcd123
	BuildDate = time.Now().Format(time.RFC3339) // ex: 2026-03-02T09:15:00Z
	GoVersion = runtime.Version()               // go version
)

// String renders the build metadata on one line for start-up logs.
func String() string {
	return fmt.Sprintf("folio %s (commit=%s, built=%s, go=%s)", Version, Commit, BuildDate, GoVersion)
}
