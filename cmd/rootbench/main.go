package main

import (
	"os"

	"github.com/alexshd/rootbench/cmd/rootbench/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
