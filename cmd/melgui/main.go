// Command melgui is a development tool for control declaration files: it
// prints their inferred control trees, rewrites them in canonical form, lints
// them against the known control vocabulary, and generates Go source that
// rebuilds them.
package main

import (
	"fmt"
	"os"

	"github.com/awforsythe/melgui/cmd/melgui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
