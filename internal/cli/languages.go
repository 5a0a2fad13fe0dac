package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"topwords/internal/adapter/analyzer"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the languages available for stemming",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, lang := range analyzer.Languages() {
			fmt.Fprintln(cmd.OutOrStdout(), lang)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
