package web

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type bar struct {
	Label string
	Value float64
}

func renderBarChart(w io.Writer, title, series string, bars []bar) error {
	chart := charts.NewBar()
	chart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "500px",
			Height: "600px",
		}),
	)

	labels := make([]string, len(bars))
	data := make([]opts.BarData, len(bars))
	for i, b := range bars {
		labels[i] = b.Label
		data[i] = opts.BarData{Value: b.Value}
	}
	chart.SetXAxis(labels).AddSeries(series, data)

	err := chart.Render(w)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
