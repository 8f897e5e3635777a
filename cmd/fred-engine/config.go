package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fred-engine/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect fred-engine settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings as yaml with the API key masked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.Render(cfg)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
