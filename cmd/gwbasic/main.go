// Command gwbasic runs the line-numbered BASIC interpreter (§6 CLI
// surface), grounded on the teacher's cmd/dwscript entrypoint shape: a
// thin main wrapping a cobra root command.
package main

import (
	"fmt"
	"os"

	"github.com/rgwbasic/gwbasic/cmd/gwbasic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
