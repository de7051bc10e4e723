package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typesig/apisearch/mcpserver"
	"github.com/typesig/apisearch/query"
)

var (
	serveCatalogs  []string
	serveHTTPAddr  string
	serveSecondary bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve loaded catalogs as an MCP tool server",
	Long: `Starts an MCP server exposing search_api and search_builder tools over
the loaded catalogs. Runs over stdio unless --http is given.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringSliceVarP(&serveCatalogs, "catalog", "c", nil, "catalog file to serve (repeatable)")
	serveCmd.Flags().StringVar(&serveHTTPAddr, "http", "", "serve over HTTP at this address instead of stdio")
	serveCmd.Flags().BoolVar(&serveSecondary, "secondary", false, "use the secondary-dialect strategy")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if len(serveCatalogs) == 0 {
		return fmt.Errorf("at least one --catalog is required")
	}
	dicts, err := loadCatalogs(serveCatalogs)
	if err != nil {
		return err
	}

	srv := mcpserver.NewServer(dicts, query.DefaultOptions(), strategyFor(serveSecondary))
	if serveHTTPAddr != "" {
		return srv.RunHTTP(cmd.Context(), serveHTTPAddr)
	}
	return srv.Run(cmd.Context())
}
