package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typesig/apisearch/catalogio"
)

var loadCmd = &cobra.Command{
	Use:   "load <catalog.json> <catalog.cache>",
	Short: "Parse a JSON catalog and write it as a binary cache",
	Long: `Reads a JSON catalog, validates it the same way the search path does,
and writes a mus-format binary cache other commands can load faster.`,
	Args: cobra.ExactArgs(2),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	dict, err := catalogio.NewLoader().LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("load %s: %w", args[0], err)
	}
	if err := catalogio.SaveCache(dict, args[1]); err != nil {
		return fmt.Errorf("save %s: %w", args[1], err)
	}
	cmd.Printf("wrote %s (%d apis)\n", args[1], len(dict.Apis))
	return nil
}
