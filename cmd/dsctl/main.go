// Command dsctl inspects a misleading chart QA dataset from the command
// line: listing the catalog, checking companion files, and dumping samples.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
