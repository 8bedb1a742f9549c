package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	plotBackground = drawing.Color{R: 24, G: 24, B: 30, A: 255}
	plotAxis       = drawing.Color{R: 200, G: 200, B: 210, A: 255}
	plotLine       = drawing.Color{R: 90, G: 200, B: 120, A: 255}
)

// PlotUtilization renders utilization samples (percent, oldest first) as a
// line chart with the y axis fixed to [0,100]. It returns a nil image when
// there are fewer than two samples to draw.
func PlotUtilization(samples []float64, width, height int) (image.Image, error) {
	if len(samples) < 2 {
		return nil, nil
	}
	xs := make([]float64, len(samples))
	for i := range xs {
		xs[i] = float64(i)
	}
	axisStyle := chart.Style{FontColor: plotAxis, StrokeColor: plotAxis, FontSize: 8}

	graph := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{FillColor: plotBackground, Padding: chart.Box{Top: 12, Left: 8, Right: 12, Bottom: 8}},
		Canvas:     chart.Style{FillColor: plotBackground},
		XAxis: chart.XAxis{
			Style: axisStyle,
			Range: &chart.ContinuousRange{Min: 0, Max: float64(len(samples) - 1)},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%d", int(f))
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			Name:      "Utilization",
			NameStyle: axisStyle,
			Style:     axisStyle,
			Range:     &chart.ContinuousRange{Min: 0, Max: 100},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Usage",
				XValues: xs,
				YValues: samples,
				Style:   chart.Style{StrokeColor: plotLine, StrokeWidth: 2},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("rendering utilization chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decoding utilization chart: %w", err)
	}
	return img, nil
}
