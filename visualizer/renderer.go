// Copyright 2026 GregTheMadMonk
// This file is part of edu-28, a detector pulse overlap simulator.
//
// edu-28 is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// edu-28 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with edu-28. If not, see <http://www.gnu.org/licenses/>.

package visualizer

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/GregTheMadMonk/edu-28/report"
)

// HTML references for the served pages.
const integralRef = "integral"
const offsetRef = "offset"
const amp1Ref = "amp1"
const amp2Ref = "amp2"
const ecdfRef = "ecdf"

// MainHtml is the index page of the served run.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Overlap Simulator</title>
  </head>
  <body>
    <h1>Overlap Simulator</h1>
    <ul>
    <li> <h3> <a href="/` + integralRef + `"> Integral Distribution </a> </h3> </li>
    <li> <h3> <a href="/` + offsetRef + `"> Second Peak Offset Distribution </a> </h3> </li>
    <li> <h3> <a href="/` + amp1Ref + `"> First Peak Amplitude Distribution </a> </h3> </li>
    <li> <h3> <a href="/` + amp2Ref + `"> Second Peak Amplitude Distribution </a> </h3> </li>
    <li> <h3> <a href="/` + ecdfRef + `"> Integral eCDF </a> </h3> </li>
    </ul>
</body>
</html>
`

// convertHistData converts histogram counts to chart points.
func convertHistData(h report.Histogram) []opts.BarData {
	items := []opts.BarData{}
	for _, n := range h.Counts {
		items = append(items, opts.BarData{Value: n})
	}
	return items
}

// convertHistLabels produces the bin center labels of a histogram.
func convertHistLabels(h report.Histogram) []string {
	items := []string{}
	for _, x := range h.Centers() {
		items = append(items, fmt.Sprintf("%.4g", x))
	}
	return items
}

// convertECDFData converts CDF points to chart points.
func convertECDFData(data [][2]float64) []opts.LineData {
	items := []opts.LineData{}
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// newHistChart creates a bar chart for a binned distribution.
func newHistChart(title string, series string, h report.Histogram) *charts.Bar {
	chart := charts.NewBar()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))
	chart.SetXAxis(convertHistLabels(h)).AddSeries(series, convertHistData(h))
	return chart
}

// newECDFChart creates a line chart for the compressed integral eCDF.
func newECDFChart(title string, ecdf [][2]float64) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}))
	chart.AddSeries("eCDF", convertECDFData(ecdf))
	return chart
}

// chartSet builds the charts of the view: the full 2x2 of a
// double-overlap run or the lone integral histogram of a single run,
// plus the integral eCDF.
func (v View) chartSet() []components.Charter {
	out := []components.Charter{
		newHistChart(v.Title+": integral distribution", "Integral", v.Integral),
	}
	if v.Double {
		out = append(out,
			newHistChart(v.Title+" - second peak offset distribution", "Offset", v.Offset),
			newHistChart(v.Title+" - first peak amplitude distribution", "Amplitude", v.Amp1),
			newHistChart(v.Title+" - second peak amplitude distribution", "Amplitude", v.Amp2),
		)
	}
	if ecdf := v.Integral.ToECDF(); ecdf != nil {
		out = append(out, newECDFChart(v.Title+": integral eCDF", ecdf))
	}
	return out
}

// RenderHTML writes all charts of the view into a single HTML page.
func (v View) RenderHTML(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create chart file %s", path)
	}
	defer file.Close()

	page := components.NewPage()
	page.PageTitle = "Overlap Simulator"
	page.AddCharts(v.chartSet()...)
	if err := page.Render(file); err != nil {
		return errors.Wrapf(err, "could not render chart file %s", path)
	}
	return nil
}

// renderableChart is a chart that can be both added to a page and
// rendered directly to a writer.
type renderableChart interface {
	components.Charter
	Render(w io.Writer) error
}

// renderChart serves one chart of the view.
func (v View) renderChart(pick func(View) renderableChart) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = pick(v).Render(w)
	}
}

// FireUpWeb visualizes the view with a local web server.
func (v View) FireUpWeb(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprint(w, MainHtml)
	})
	mux.HandleFunc("/"+integralRef, v.renderChart(func(v View) renderableChart {
		return newHistChart(v.Title+": integral distribution", "Integral", v.Integral)
	}))
	mux.HandleFunc("/"+offsetRef, v.renderChart(func(v View) renderableChart {
		return newHistChart(v.Title+" - second peak offset distribution", "Offset", v.Offset)
	}))
	mux.HandleFunc("/"+amp1Ref, v.renderChart(func(v View) renderableChart {
		return newHistChart(v.Title+" - first peak amplitude distribution", "Amplitude", v.Amp1)
	}))
	mux.HandleFunc("/"+amp2Ref, v.renderChart(func(v View) renderableChart {
		return newHistChart(v.Title+" - second peak amplitude distribution", "Amplitude", v.Amp2)
	}))
	mux.HandleFunc("/"+ecdfRef, v.renderChart(func(v View) renderableChart {
		return newECDFChart(v.Title+": integral eCDF", v.Integral.ToECDF())
	}))
	return http.ListenAndServe(":"+addr, mux)
}
