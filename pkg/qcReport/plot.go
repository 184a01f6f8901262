package qcReport

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// missing bar in echarts
const noBar = "-"

func round(f float64, decimals int) float64 {
	var p = math.Pow(10, float64(decimals))
	return math.Round(f*p) / p
}

// label of series i: the data label if configured, the header title otherwise
func (b *BarGraph) label(i int) string {
	if i < len(b.Config.DataLabels) {
		return b.Config.DataLabels[i]
	}
	return b.Series[i].Header.Title
}

// Samples returns the samples of all series in first-seen order.
func (b *BarGraph) Samples() []string {
	var (
		seen    = make(map[string]bool)
		samples []string
	)
	for _, s := range b.Series {
		for _, sample := range s.Data.Samples() {
			if !seen[sample] {
				seen[sample] = true
				samples = append(samples, sample)
			}
		}
	}
	return samples
}

// Values returns the bar heights of series i, NaN for samples without a numeric value.
func (b *BarGraph) Values(i int, samples []string) []float64 {
	var (
		s      = b.Series[i]
		values = make([]float64, len(samples))
	)
	for j, sample := range samples {
		values[j] = math.NaN()
		if m, ok := s.Data.Get(sample); ok {
			if f, ok := m.Float(s.Key); ok {
				values[j] = f
			}
		}
	}
	return values
}

// GenerateBarItems converts bar heights into echarts items.
func GenerateBarItems(samples []string, values []float64, decimals int) []opts.BarData {
	var items = make([]opts.BarData, 0, len(values))
	for i, v := range values {
		var item = opts.BarData{Name: samples[i], Value: noBar}
		if !math.IsNaN(v) {
			item.Value = round(v, decimals)
		}
		items = append(items, item)
	}
	return items
}

// chartID turns an anchor into an identifier usable in the page script.
func chartID(anchor string) string {
	return strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(anchor)
}

// Chart builds the echarts bar chart of a bar section of m.
func (m *Module) Chart(s *Section) *charts.Bar {
	var (
		b        = s.Bar
		cfg      = b.Config
		bar      = charts.NewBar()
		samples  = b.Samples()
		yAxis    = opts.YAxis{Name: cfg.YLab}
		subtitle = s.Name
	)
	if cfg.YMin != nil {
		yAxis.Min = *cfg.YMin
	}
	if cfg.YMax != nil {
		yAxis.Max = *cfg.YMax
	}
	if cfg.Suffix != "" {
		yAxis.AxisLabel = &opts.AxisLabel{Show: true, Formatter: "{value}" + cfg.Suffix}
	}
	if text := s.DescriptionText(); text != "" {
		subtitle += "\n" + text
	}
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros, ChartID: chartID(s.Anchor)}),
		charts.WithTitleOpts(opts.Title{
			Title:    cfg.Title,
			Link:     m.Href,
			Subtitle: subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{Show: cfg.UseLegend, Right: "5%"}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      true,
			Trigger:   "item",
			Formatter: "{a}<br/>{b}: {c}" + cfg.Suffix,
		}),
		charts.WithYAxisOpts(yAxis),
	)

	bar.SetXAxis(samples)
	for i := range b.Series {
		bar.AddSeries(b.label(i), GenerateBarItems(samples, b.Values(i, samples), cfg.Decimals))
	}
	return bar
}

// PlotBars renders all bar sections of m as one HTML page.
func (m *Module) PlotBars(w io.Writer) (int, error) {
	var (
		page  = components.NewPage()
		count = 0
	)
	for _, s := range m.Sections {
		if s.Bar == nil || len(s.Bar.Series) == 0 {
			continue
		}
		page.AddCharts(m.Chart(s))
		count++
	}
	if count == 0 {
		return 0, nil
	}
	return count, page.Render(w)
}

// suffixTicks labels the default ticks with a unit suffix.
type suffixTicks string

func (suffix suffixTicks) Ticks(min, max float64) []plot.Tick {
	var ticks = plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label += string(suffix)
		}
	}
	return ticks
}

// Plot draws a bar section with gonum, series side by side.
func (s *Section) Plot() (*plot.Plot, error) {
	var (
		b       = s.Bar
		cfg     = b.Config
		p       = plot.New()
		samples = b.Samples()
		width   = vg.Points(40) / vg.Length(max(len(b.Series), 1))
	)
	p.Title.Text = cfg.Title
	p.Y.Label.Text = cfg.YLab
	if cfg.YMin != nil {
		p.Y.Min = *cfg.YMin
	}
	if cfg.YMax != nil {
		p.Y.Max = *cfg.YMax
	}
	if cfg.Suffix != "" {
		p.Y.Tick.Marker = suffixTicks(cfg.Suffix)
	}

	for i := range b.Series {
		var values = plotter.Values(b.Values(i, samples))
		for j, v := range values {
			if math.IsNaN(v) {
				values[j] = 0
			}
		}
		var bars, err = plotter.NewBarChart(values, width)
		if err != nil {
			return nil, fmt.Errorf("plot %s: %w", cfg.ID, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = width * vg.Length(i-len(b.Series)/2)
		p.Add(bars)
		if cfg.UseLegend {
			p.Legend.Add(b.label(i), bars)
		}
	}
	p.Legend.Top = true
	p.NominalX(samples...)
	return p, nil
}

// SavePNG exports a bar section as a static image.
func (s *Section) SavePNG(path string) error {
	var p, err = s.Plot()
	if err != nil {
		return err
	}
	var w = vg.Length(max(len(s.Bar.Samples()), 4)) * vg.Centimeter * 2
	if err = p.Save(w, 12*vg.Centimeter, path); err != nil {
		return fmt.Errorf("plot %s: %w", s.Bar.Config.ID, err)
	}
	return nil
}
