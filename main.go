package main

import (
	"os"

	"github.com/ravyz/matcher/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
