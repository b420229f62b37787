// Package chart renders frequency-response charts as PNG files.
package chart

import (
	"fmt"
	"image/color"
	"os"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Bode writes a two-panel chart, magnitude on the left and phase in
// degrees on the right, both over a log frequency axis.
func Bode(path, title, magLabel string, freqs, mag, phase []float64, logMag bool) error {
	magPlot := newPanel(title, magLabel, logMag)
	if err := addLine(magPlot, freqs, mag, color.Black); err != nil {
		return fmt.Errorf("chart %s: %v", title, err)
	}

	phasePlot := newPanel(title, "Phase [deg]", false)
	if err := addLine(phasePlot, freqs, phase, color.Black); err != nil {
		return fmt.Errorf("chart %s: %v", title, err)
	}

	return save(path, magPlot, phasePlot)
}

// Overlay writes magnitude and phase panels with one line per named
// series, for comparing responses on a shared sweep.
func Overlay(path, title, magLabel string, freqs []float64, mag, phase map[string][]float64) error {
	names := make([]string, 0, len(mag))
	for name := range mag {
		names = append(names, name)
	}
	sort.Strings(names)

	magPlot := newPanel(title, magLabel, false)
	phasePlot := newPanel(title, "Phase [deg]", false)

	for i, name := range names {
		c := plotutil.Color(i)

		magLine, err := plotter.NewLine(points(freqs, mag[name]))
		if err != nil {
			return fmt.Errorf("chart %s: %v", title, err)
		}
		magLine.Color = c
		magPlot.Add(magLine)
		magPlot.Legend.Add(name, magLine)

		phaseLine, err := plotter.NewLine(points(freqs, phase[name]))
		if err != nil {
			return fmt.Errorf("chart %s: %v", title, err)
		}
		phaseLine.Color = c
		phasePlot.Add(phaseLine)
	}

	return save(path, magPlot, phasePlot)
}

func newPanel(title, yLabel string, logY bool) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frequency [Hz]"
	p.Y.Label.Text = yLabel
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	if logY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())
	return p
}

func addLine(p *plot.Plot, freqs, values []float64, c color.Color) error {
	if len(freqs) != len(values) {
		return fmt.Errorf("%d frequencies but %d values", len(freqs), len(values))
	}
	line, err := plotter.NewLine(points(freqs, values))
	if err != nil {
		return err
	}
	line.Color = c
	p.Add(line)
	return nil
}

func points(freqs, values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(freqs))
	for i := range pts {
		pts[i].X = freqs[i]
		pts[i].Y = values[i]
	}
	return pts
}

func save(path string, left, right *plot.Plot) error {
	img := vgimg.New(10*vg.Inch, 5*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 1, Cols: 2, PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4}

	canvases := plot.Align([][]*plot.Plot{{left, right}}, tiles, dc)
	left.Draw(canvases[0][0])
	right.Draw(canvases[0][1])

	w, err := os.Create(path)
	if err != nil {
		return err
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
