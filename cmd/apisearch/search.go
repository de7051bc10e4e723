package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/typesig/apisearch/engine"
	"github.com/typesig/apisearch/prefilter"
	"github.com/typesig/apisearch/printer"
	"github.com/typesig/apisearch/query"
	"github.com/typesig/apisearch/queryparse"
)

var (
	searchCatalogs  []string
	searchLimit     int
	searchColor     bool
	searchSecondary bool
	searchParallel  bool
	searchPrefilter bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search loaded catalogs for APIs matching a query",
	Long: `Searches one or more catalogs by name, type signature, active-pattern
shape, or computation-expression builder.

Examples:
  apisearch search -c core.json "List.length"
  apisearch search -c core.json "'a list -> int"
  apisearch search -c core.json "cexpr<Async<'a>>{let!,for}"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVarP(&searchCatalogs, "catalog", "c", nil, "catalog file to search (repeatable)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchColor, "color", false, "colorize output")
	searchCmd.Flags().BoolVar(&searchSecondary, "secondary", false, "use the secondary-dialect strategy")
	searchCmd.Flags().BoolVar(&searchParallel, "parallel", false, "scan catalogs concurrently")
	searchCmd.Flags().BoolVar(&searchPrefilter, "prefilter", false, "run a full-text prefilter before the structural matcher")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(searchCatalogs) == 0 {
		return fmt.Errorf("at least one --catalog is required")
	}

	dicts, err := loadCatalogs(searchCatalogs)
	if err != nil {
		return err
	}

	q, err := queryparse.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parse query: %w", err)
	}

	if searchPrefilter {
		idx, err := prefilter.Build(dicts)
		if err != nil {
			return fmt.Errorf("build prefilter: %w", err)
		}
		dicts, err = idx.Filter(prefilterText(q))
		if err != nil {
			return fmt.Errorf("run prefilter: %w", err)
		}
	}

	opts := query.DefaultOptions()
	if searchParallel {
		opts.Parallel = query.Enabled
	}

	seq, err := engine.Search(cmd.Context(), dicts, opts, strategyFor(searchSecondary), q)
	if err != nil {
		return err
	}

	var results []engine.Result
	for r := range seq {
		if len(results) >= searchLimit {
			break
		}
		results = append(results, r)
	}

	if searchColor {
		return printer.NewStyled(os.Stdout).Print(results)
	}
	return printer.Plain{Out: os.Stdout}.Print(results)
}

// prefilterText picks the text a ByName query's first segment carries
// as the prefilter's search term; other method kinds have no literal
// text to filter on, so the prefilter is a no-op for them.
func prefilterText(q query.Query) string {
	if q.Method.Kind != query.ByName || len(q.Method.Names) == 0 {
		return ""
	}
	return q.Method.Names[len(q.Method.Names)-1].Expected
}
