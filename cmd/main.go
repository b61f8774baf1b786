package main

import (
	"os"

	"github.com/scholargraph/teamgraph/cmd/teamgraph"
)

func main() {
	if err := teamgraph.Execute(); err != nil {
		os.Exit(1)
	}
}
