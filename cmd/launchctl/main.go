// Command launchctl is the entry point for the dashboard CLI binary.
package main

import (
	"os"

	"launchdash/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
