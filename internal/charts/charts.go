package charts

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pable/go-war-stats/internal/model"
)

// ChartConfig holds configuration for charts.
type ChartConfig struct {
	Title    string   // Chart title
	Subtitle string   // Chart subtitle
	Width    string   // Chart width (e.g., "900px")
	Height   string   // Chart height (e.g., "500px")
	Theme    string   // Chart theme
	Colors   []string // Series colors, in Killed/Lost/Gained order
}

// DefaultChartConfig returns default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Title:  "Troops per player",
		Width:  "900px",
		Height: "500px",
		Theme:  "light",
		Colors: []string{"#91CC75", "#EE6666", "#5470C6"},
	}
}

// NewPlayerBar builds a grouped bar chart with Killed, Lost and Troops Gained per player.
func NewPlayerBar(rows []model.DisplayRow, config ChartConfig) *charts.Bar {
	bar := charts.NewBar()

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithColorsOpts(opts.Colors(config.Colors)),
	)

	names := make([]string, len(rows))
	killed := make([]opts.BarData, len(rows))
	lost := make([]opts.BarData, len(rows))
	gained := make([]opts.BarData, len(rows))
	for i, r := range rows {
		names[i] = r.Name
		killed[i] = opts.BarData{Value: r.TotalKilled}
		lost[i] = opts.BarData{Value: r.TotalLost}
		gained[i] = opts.BarData{Value: r.Gained}
	}

	bar.SetXAxis(names).
		AddSeries("Killed", killed).
		AddSeries("Lost", lost).
		AddSeries("Troops Gained", gained).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
		)
	return bar
}

// RenderPlayerBar writes the chart page as HTML to w.
func RenderPlayerBar(w io.Writer, rows []model.DisplayRow, config ChartConfig) error {
	if len(rows) == 0 {
		return fmt.Errorf("no players to chart")
	}
	if err := NewPlayerBar(rows, config).Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// RenderPlayerBarFile writes the chart page to outputPath.
func RenderPlayerBarFile(outputPath string, rows []model.DisplayRow, config ChartConfig) (err error) {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return RenderPlayerBar(f, rows, config)
}
