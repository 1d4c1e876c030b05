// Command json2cfg converts JSON training sets into MLIP cfg files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "json2cfg:", err)
		os.Exit(1)
	}
}
