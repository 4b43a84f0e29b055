// Package chart draws a classified series: the values in ascending order
// with one dashed line per class boundary, to eyeball how well the breaks
// follow the gaps in the data.
package chart

import (
	"context"
	"fmt"
	"image/color"
	"sort"

	"github.com/uyouii/natural-breaks-csv/model"
	"github.com/uyouii/natural-breaks-csv/utils"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 6 * vg.Inch
)

var (
	valueColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	breakDash  = []vg.Length{vg.Points(6), vg.Points(4)}
)

// NewThresholdPlot plots values sorted ascending against their rank and a
// dashed horizontal line at every break, minimum and maximum included.
func NewThresholdPlot(values []float64, breaks model.Breaks, field string) (*plot.Plot, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no values to plot")
	}

	sorted := append(make([]float64, 0, len(values)), values...)
	sort.Float64s(sorted)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Natural breaks of %s (%d classes)", field, breaks.NumClasses())
	p.X.Label.Text = "rank"
	p.Y.Label.Text = field

	pts := make(plotter.XYs, len(sorted))
	for i, v := range sorted {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	valueLine, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("values line: %w", err)
	}
	valueLine.Color = valueColor
	valueLine.Width = vg.Points(1.5)

	lastRank := float64(len(sorted) - 1)
	for i, b := range breaks {
		breakLine, err := plotter.NewLine(plotter.XYs{{X: 0, Y: b}, {X: lastRank, Y: b}})
		if err != nil {
			return nil, fmt.Errorf("break %d line: %w", i, err)
		}
		breakLine.Color = color.Black
		breakLine.Dashes = breakDash
		p.Add(breakLine)
		if i == 0 {
			p.Legend.Add("breaks", breakLine)
		}
	}

	p.Add(valueLine)
	p.Legend.Add(field, valueLine)
	p.Legend.Top = true
	p.Legend.Left = true

	return p, nil
}

// SaveThresholds renders the threshold plot to path. The image format
// follows the extension: png, jpg, svg, pdf, eps or tiff.
func SaveThresholds(ctx context.Context, path string, values []float64, breaks model.Breaks, field string) error {
	logger := utils.GetLogger(ctx)

	p, err := NewThresholdPlot(values, breaks, field)
	if err != nil {
		return err
	}
	if err := p.Save(DefaultWidth, DefaultHeight, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}

	logger.Info("saved plot", zap.String("path", path), zap.Int("breakCount", len(breaks)))
	return nil
}
