// Package main is the entrypoint for the fitadmin CLI.
package main

import (
	"cmp"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/fitlab/fitadmin/internal/cli"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Printf("fitadmin %s (built %s)\n", cmp.Or(version, "dev"), cmp.Or(buildDate, "unknown"))
		return
	}

	// A local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()

	cli.Execute()
}
