package arbor

import _ "embed"

// Version is the release of the arbor module and CLI.
//
//go:embed VERSION
var Version string
