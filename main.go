package main

import (
	"os"

	"github.com/jhalilaj/my-ai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
