package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-war-stats/internal/report"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Describe the report columns",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		report.PrintColumns(os.Stdout)
	},
}
