package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fred-engine/internal/fred"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search FRED series by text, tags, and filters",
	Long: `Search queries the FRED series search endpoint. Unset flags are left out of
the request. The result carries the total match count, the page shown, and a
summary per series with notes cut to 200 characters.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		content, err := svc.SeriesSearch(cmd.Context(), searchOptionsFromFlags(cmd))
		if err != nil {
			return err
		}
		return writeContent(cmd.OutOrStdout(), content)
	},
}

func searchOptionsFromFlags(cmd *cobra.Command) fred.SearchOptions {
	f := cmd.Flags()
	text, _ := f.GetString("query")
	searchType, _ := f.GetString("type")
	tags, _ := f.GetStringSlice("tags")
	excludeTags, _ := f.GetStringSlice("exclude-tags")
	limit, _ := f.GetInt("limit")
	offset, _ := f.GetInt("offset")
	orderBy, _ := f.GetString("order-by")
	sortOrder, _ := f.GetString("sort-order")
	filterVariable, _ := f.GetString("filter-variable")
	filterValue, _ := f.GetString("filter-value")

	return fred.SearchOptions{
		SearchText:      text,
		SearchType:      searchType,
		TagNames:        strings.Join(tags, ","),
		ExcludeTagNames: strings.Join(excludeTags, ","),
		Limit:           limit,
		Offset:          offset,
		OrderBy:         orderBy,
		SortOrder:       sortOrder,
		FilterVariable:  filterVariable,
		FilterValue:     filterValue,
	}
}

func init() {
	searchCmd.Flags().String("query", "", "free-text search words")
	searchCmd.Flags().String("type", "", "search type: full_text or series_id")
	searchCmd.Flags().StringSlice("tags", nil, "only series with all of these tags")
	searchCmd.Flags().StringSlice("exclude-tags", nil, "drop series with any of these tags")
	searchCmd.Flags().Int("limit", 0, "maximum number of series to return (1-1000)")
	searchCmd.Flags().Int("offset", 0, "number of series to skip")
	searchCmd.Flags().String("order-by", "", "sort field, e.g. search_rank, popularity, last_updated")
	searchCmd.Flags().String("sort-order", "", "asc or desc")
	searchCmd.Flags().String("filter-variable", "", "filter on frequency, units, or seasonal_adjustment")
	searchCmd.Flags().String("filter-value", "", "value for --filter-variable, e.g. Monthly")

	rootCmd.AddCommand(searchCmd)
}
