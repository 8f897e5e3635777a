package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/fred-engine/internal/fred"
)

var indicatorsCmd = &cobra.Command{
	Use:   "indicators",
	Short: "Rank the most popular daily and weekly series",
	Long: `Indicators fetches the most popular Daily and Weekly series concurrently,
half of --limit (rounded up) from each, merges them by popularity, and keeps
the top --limit.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("limit")
		svc, err := newService()
		if err != nil {
			return err
		}
		content, err := svc.HighFrequencyIndicators(cmd.Context(), n)
		if err != nil {
			return err
		}
		return writeContent(cmd.OutOrStdout(), content)
	},
}

func init() {
	indicatorsCmd.Flags().Int("limit", fred.DefaultIndicatorCount, "number of indicators to return")

	rootCmd.AddCommand(indicatorsCmd)
}
