package build

import "fmt"

// Overridden at build time via -ldflags.
var (
	Version   = "devel"
	ShortHash = "unknown"
)

var LongVersion = fmt.Sprintf("%s (%s)", Version, ShortHash)
