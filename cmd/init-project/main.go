package main

import (
	"os"

	"github.com/jakoblorz/init-project/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
