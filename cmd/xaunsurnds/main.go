// Package main provides the xaunsurnds binary: a workload runner and
// inspection tool for the xaunsurnds collection packages.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
