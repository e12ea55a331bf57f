// Package cmd wires the gwbasic cobra command tree.
//
// Grounded on the teacher's cmd/dwscript/cmd/root.go: a root command
// carrying a persistent --verbose flag and version metadata, with
// subcommands registered from their own files' init().
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; unset in a `go run`/dev build.
	Version = "0.1.0-dev"

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gwbasic",
	Short: "A line-numbered BASIC interpreter",
	Long: `gwbasic runs programs written in a 1980s-style line-numbered BASIC
dialect: numeric line labels, GOTO/GOSUB control flow, FOR/NEXT and
WHILE/WEND loops, DATA/READ, and PRINT USING formatting.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("gwbasic version %s\n", Version))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log instruction dispatch to stderr")
}
