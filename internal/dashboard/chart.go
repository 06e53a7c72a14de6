package dashboard

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const chartHeight = "320px"

type ChartOptions struct {
	Title      string
	Series     string
	Theme      string
	AssetsHost string
}

// SalesChart renders the daily sales as a standalone ECharts HTML page.
func SalesChart(days []DailySale, o ChartOptions) (string, error) {
	if o.Theme == "" {
		o.Theme = types.ThemeWesteros
	}
	if o.Series == "" {
		o.Series = "Revenue"
	}

	initOpts := opts.Initialization{
		Theme:  o.Theme,
		Width:  "100%",
		Height: chartHeight,
	}
	if o.AssetsHost != "" {
		initOpts.AssetsHost = o.AssetsHost
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: o.Title}),
		charts.WithInitializationOpts(initOpts),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	xAxis := make([]string, len(days))
	data := make([]opts.LineData, len(days))
	for i, d := range days {
		xAxis[i] = d.Date
		data[i] = opts.LineData{Name: d.Date, Value: d.Total}
	}
	line.SetXAxis(xAxis).AddSeries(o.Series, data)
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", fmt.Errorf("render sales chart: %w", err)
	}
	return buf.String(), nil
}
