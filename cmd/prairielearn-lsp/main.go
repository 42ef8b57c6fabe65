package main

import (
	"github.com/tebeka/atexit"
	"github.com/tliron/kutil/terminal"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		terminal.Eprintln(terminal.StderrStylist.Error(err.Error()))
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
