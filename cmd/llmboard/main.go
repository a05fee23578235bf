// cmd/llmboard/main.go
package main

import (
	"github.com/mwiater/llmboard/internal/cli"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	setVersionInfo = cli.SetVersionInfo
	executeCmd     = cli.Execute
)

// main injects the build metadata and hands control to the cobra root
// command.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
