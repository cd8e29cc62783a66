package main

import (
	"fmt"
	"os"
)

// exitFunc is swapped out by tests
var exitFunc = os.Exit

func main() {
	if err := newRootCmd(defaultDependencies).Execute(); err != nil {
		logAndExit(err)
	}
}

// logAndExit reports err on stderr and exits non-zero; nil is a no-op
func logAndExit(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "tilegrid: %v\n", err)
		exitFunc(1)
	}
}
