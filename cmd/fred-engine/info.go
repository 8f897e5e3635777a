package main

import (
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <series-id>",
	Short: "Show the full detail of one series",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		content, err := svc.SeriesInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeContent(cmd.OutOrStdout(), content)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
