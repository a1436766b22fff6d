// Command maketree prints a random tree of named nodes as JSON, for use as sample data.
package main

import (
	"os"

	"github.com/NielsdaWheelz/maketree/internal/cli"
	"github.com/NielsdaWheelz/maketree/internal/errors"
)

func main() {
	err := cli.Run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
