package main

import (
	"os"

	"github.com/cwbudde/go-brio/cmd/brio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
