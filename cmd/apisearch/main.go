// Command apisearch is the CLI front end over package engine: load one
// or more catalogs and either search them once, cache them to a
// binary catalog, or serve them over MCP. Subcommands are
// github.com/spf13/cobra commands registered onto a shared rootCmd.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "apisearch",
	Short: "Search library APIs by name, type signature, or shape",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
