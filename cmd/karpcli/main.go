// Command karpcli is a small demonstration front-end around the mmc
// minimum-mean-cycle engine: it reads a declarative graph description,
// runs the engine, and prints the winning cycle, or reports the graph is
// acyclic.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
