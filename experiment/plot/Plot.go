// Package plot renders learning curves as interactive HTML charts
package plot

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Series is a named sequence of per-episode values
type Series struct {
	Name   string
	Values []float64
}

// LearningCurve writes an HTML page to w holding a line chart of every
// series against the episode number. If window is above 1, each series
// is accompanied by its moving average over window episodes.
func LearningCurve(w io.Writer, title string, window int,
	series ...Series) error {
	episodes := 0
	for _, s := range series {
		if len(s.Values) > episodes {
			episodes = len(s.Values)
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Theme:     "shine",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Episode"}),
	)

	steps := make([]string, episodes)
	for i := range steps {
		steps[i] = strconv.Itoa(i + 1)
	}
	line = line.SetXAxis(steps)

	for _, s := range series {
		line.AddSeries(s.Name, lineData(s.Values))
		if window > 1 && len(s.Values) > 0 {
			name := fmt.Sprintf("%v (mean of %d)", s.Name, window)
			line.AddSeries(name, lineData(MovingAverage(s.Values, window)))
		}
	}

	page := components.NewPage()
	page.AddCharts(
		line,
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("learningCurve: could not render chart: %v", err)
	}
	return nil
}

// SaveLearningCurve writes a learning curve page to filename
func SaveLearningCurve(filename, title string, window int,
	series ...Series) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("saveLearningCurve: could not create file: %v", err)
	}
	defer f.Close()

	if err := LearningCurve(f, title, window, series...); err != nil {
		return fmt.Errorf("saveLearningCurve: %v", err)
	}
	return f.Close()
}

// MovingAverage returns the trailing mean of values over window
// entries. Entries before a full window is available average over the
// values seen so far.
func MovingAverage(values []float64, window int) []float64 {
	if window < 1 {
		panic(fmt.Sprintf("movingAverage: window must be positive, have %d",
			window))
	}

	averages := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		averages[i] = sum / float64(n)
	}
	return averages
}

func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}
