package main

import (
	"os"

	"github.com/pwalczyk/jobtrack/cmd"
	"github.com/pwalczyk/jobtrack/internal/version"
)

// Build metadata injected by goreleaser or makefile
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func main() {
	version.Version = buildVersion
	version.Commit = buildCommit
	version.Date = buildDate

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
