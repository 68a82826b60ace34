package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-war-stats/internal/charts"
)

var chartOut string

var chartCmd = &cobra.Command{
	Use:   "chart [log-file|-]",
	Short: "Write an HTML bar chart of kills, losses and troops gained per player",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().StringVarP(&chartOut, "out", "o", "warstats.html", "output HTML file")
	chartCmd.Flags().BoolVar(&reportClipboard, "clipboard", false, "read the log from the system clipboard")
}

func runChart(cmd *cobra.Command, args []string) error {
	rep, err := loadReport(args)
	if err != nil {
		return err
	}

	cc := charts.DefaultChartConfig()
	if cfg.Chart.Title != "" {
		cc.Title = cfg.Chart.Title
	}
	if cfg.Chart.Width != "" {
		cc.Width = cfg.Chart.Width
	}
	if cfg.Chart.Height != "" {
		cc.Height = cfg.Chart.Height
	}
	if cfg.Chart.Theme != "" {
		cc.Theme = cfg.Chart.Theme
	}
	cc.Subtitle = fmt.Sprintf("%d players, %d combat lines", len(rep.Rows), rep.Lines.Combat)

	if err := charts.RenderPlayerBarFile(chartOut, rep.Rows, cc); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", chartOut)
	return nil
}
