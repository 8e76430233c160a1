package main

import (
	"fmt"
	"os"

	"shipit.dev/shipit/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		if code, ok := cli.IsExitError(err); ok {
			os.Exit(code)
		}
		fmt.Fprintf(os.Stderr, "shipit: %v\n", err)
		os.Exit(1)
	}
}
