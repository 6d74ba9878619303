// Command bfsroute runs a breadth-first search over the built-in city graph
// and prints the path found and its length.
//
//	bfsroute                      # [1 2 7 11] / 798
//	bfsroute --start 1 --goal 21  # None / +Inf
//	bfsroute reach --start 21
//	bfsroute components
//	bfsroute dot --format svg -o route.svg
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
