package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/richardanaya/news-search/internal/config"
	"github.com/richardanaya/news-search/internal/logger"
	"github.com/richardanaya/news-search/internal/render"
	"github.com/richardanaya/news-search/internal/search"
	"github.com/richardanaya/news-search/internal/xapi"
	"github.com/richardanaya/news-search/pkg/types"
)

var (
	searchQueries []string
	searchDays    int
	searchMax     int
	searchLang    string
	searchRaw     bool
	searchPosts   bool
	searchJSON    bool
	searchVerbose bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search news stories and posts for one or more terms",
	Example: `  newsgrep search -q "quantum computing"
  newsgrep search -q golang -q rustlang --days 3 --max 25
  newsgrep search -q "openai" --posts --json | jq .posts`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	flags := searchCmd.Flags()
	flags.StringArrayVarP(&searchQueries, "query", "q", nil, "search term (repeatable, required)")
	flags.IntVarP(&searchDays, "days", "d", 1, "lookback window in days (1-7)")
	flags.IntVarP(&searchMax, "max", "n", 10, "maximum results per endpoint (1-100)")
	flags.StringVarP(&searchLang, "lang", "l", "en", "language code for the post quality filter")
	flags.BoolVar(&searchRaw, "raw", false, "disable quality filters on post search")
	flags.BoolVarP(&searchPosts, "posts", "p", false, "run post search even when news stories are found")
	flags.BoolVarP(&searchJSON, "json", "j", false, "output results as JSON")
	flags.BoolVarP(&searchVerbose, "verbose", "v", false, "enable debug logging")
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger.Setup(searchVerbose)

	if len(searchQueries) == 0 {
		return fmt.Errorf("at least one --query is required")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	params := types.SearchParams{
		Queries: searchQueries,
		Days:    searchDays,
		Max:     searchMax,
		Lang:    searchLang,
		Raw:     searchRaw,
		Posts:   searchPosts,
	}

	client := xapi.NewHTTPClient(cfg.BearerToken)
	result := search.Run(context.Background(), client, params)

	if searchJSON {
		if err := render.JSON(os.Stdout, result); err != nil {
			return err
		}
	} else {
		render.Text(os.Stdout, result)
	}

	// A run that produced nothing but errors is a failure; partial results
	// alongside errors still exit clean.
	if len(result.Errors) > 0 && len(result.News) == 0 && len(result.Posts) == 0 {
		return fmt.Errorf("search completed with errors and no results")
	}

	return nil
}
