// Command cardpreview renders card documents to images and prints their
// node trees.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/cardview/cmd/cardpreview/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
