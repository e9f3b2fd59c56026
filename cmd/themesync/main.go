package main

import (
	"runtime"
	"runtime/debug"

	"github.com/bnema/themesync/internal/cli/cmd"
	"github.com/bnema/themesync/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = ""
	buildDate = "unknown"
)

func main() {
	debug.SetTraceback("crash")

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	cmd.Execute()
}
