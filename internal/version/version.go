package version

import "runtime"

// Overridden at build time with -ldflags "-X ...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
	GoVersion = runtime.Version()
)
