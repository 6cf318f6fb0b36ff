package main

import (
	"os"

	"github.com/vslice-dev/vslice/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
