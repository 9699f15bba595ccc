package main

import (
	"os"

	"github.com/kiss2smiles/wdqa/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
