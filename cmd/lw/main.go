package main

import (
	"os"

	"github.com/mlvx/limitwatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
