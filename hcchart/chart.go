// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hcchart renders the aggregated benchmark comparison as PNG
// chart artifacts.
//
// Each routine scopes its own figure: it creates a fresh plot,
// populates it, writes one PNG, and holds no state afterwards, so no
// figure ever leaks into another. All charts are written at print
// resolution (300 DPI on a 20×15 cm canvas).
package hcchart

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/hcindex/hcbench/hcproc"
	"github.com/hcindex/hcbench/hcstat"
)

// Fixed artifact names, written to the working directory.
const (
	QPSFile         = "fig_qps_vs_mode.png"
	NodesFile       = "fig_nodes_vs_mode.png"
	HotFractionFile = "fig_hot_fraction_vs_theta.png"
)

func baselineColor(alpha uint8) color.Color {
	return color.NRGBA{0x1F, 0x77, 0xB4, alpha}
}

func hctreeColor(alpha uint8) color.Color {
	return color.NRGBA{0xFF, 0x7F, 0x0E, alpha}
}

// QPS renders the throughput comparison chart: one pair of bars per
// usable group, baseline beside hctree, in aggregation order.
func QPS(g *hcproc.Grouping, path string) error {
	return barComparison(g, path,
		"Throughput comparison: Baseline vs HCIndex",
		"Throughput (queries/sec)",
		func(c hcstat.Comparison) (base, hctree float64) {
			return c.QPSBaseline, c.QPSHCTree
		})
}

// Nodes renders the traversal-cost comparison chart: average node
// visits per query, baseline beside hctree, in aggregation order.
func Nodes(g *hcproc.Grouping, path string) error {
	return barComparison(g, path,
		"Logical work per query: Baseline vs HCIndex",
		"Avg. B-tree node visits / query",
		func(c hcstat.Comparison) (base, hctree float64) {
			return c.NodesBaseline, c.NodesHCTree
		})
}

func barComparison(g *hcproc.Grouping, path, title, yLabel string, value func(hcstat.Comparison) (base, hctree float64)) error {
	comps := hcstat.Comparisons(g)

	labels := make([]string, 0, len(comps))
	baseVals := make(plotter.Values, 0, len(comps))
	hcVals := make(plotter.Values, 0, len(comps))
	for _, c := range comps {
		b, h := value(c)
		labels = append(labels, fmt.Sprintf("%s-θ=%.1f", c.Key.Workload, c.Key.Theta.Float()))
		baseVals = append(baseVals, b)
		hcVals = append(hcVals, h)
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	w := vg.Points(18)
	baseBars, err := plotter.NewBarChart(baseVals, w)
	if err != nil {
		return err
	}
	baseBars.Color = baselineColor(0xFF)
	baseBars.Offset = -w / 2
	hcBars, err := plotter.NewBarChart(hcVals, w)
	if err != nil {
		return err
	}
	hcBars.Color = hctreeColor(0xFF)
	hcBars.Offset = w / 2

	p.Add(baseBars, hcBars)
	p.Legend.Add("Baseline", baseBars)
	p.Legend.Add("HCIndex", hcBars)
	p.Legend.Top = true
	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = -math.Pi / 6
	p.X.Tick.Label.YAlign = draw.YTop
	p.X.Tick.Label.XAlign = draw.XLeft

	return savePNG(p, path)
}

// HotFraction renders hot-tier utilization against Zipf skew: hot-key
// fraction and hot-hit fraction as line series over ascending theta,
// for zipf groups holding an hctree record. It reports whether an
// artifact was written; with no such groups it writes nothing and
// returns (false, nil).
func HotFraction(g *hcproc.Grouping, path string) (wrote bool, err error) {
	utils := hcstat.HotUtilizations(g)
	if len(utils) == 0 {
		return false, nil
	}

	keys := make(plotter.XYs, len(utils))
	hits := make(plotter.XYs, len(utils))
	for i, u := range utils {
		keys[i] = plotter.XY{X: u.Theta, Y: u.HotKeysFrac}
		hits[i] = plotter.XY{X: u.Theta, Y: u.HotHitsFrac}
	}

	p := plot.New()
	p.Title.Text = "Hot tier utilization vs Zipf skew (HCIndex)"
	p.X.Label.Text = "Zipf exponent θ"
	p.Y.Label.Text = "Fraction"

	keysLine, keysPts, err := plotter.NewLinePoints(keys)
	if err != nil {
		return false, err
	}
	keysLine.Color = baselineColor(0xFF)
	keysPts.Color = baselineColor(0xFF)
	keysPts.Shape = draw.CircleGlyph{}

	hitsLine, hitsPts, err := plotter.NewLinePoints(hits)
	if err != nil {
		return false, err
	}
	hitsLine.Color = hctreeColor(0xFF)
	hitsPts.Color = hctreeColor(0xFF)
	hitsPts.Shape = draw.BoxGlyph{}

	p.Add(keysLine, keysPts, hitsLine, hitsPts)
	p.Legend.Add("Hot key fraction", keysLine, keysPts)
	p.Legend.Add("Fraction of queries hitting hot", hitsLine, hitsPts)
	p.Legend.Top = true

	if err := savePNG(p, path); err != nil {
		return false, err
	}
	return true, nil
}

// savePNG writes p to path as a 300 DPI PNG on a white 20×15 cm
// canvas. The file is closed before returning on every path.
func savePNG(p *plot.Plot, path string) error {
	png := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(20*vg.Centimeter, 15*vg.Centimeter),
		vgimg.UseDPI(300),
		vgimg.UseBackgroundColor(color.White),
	)}
	p.Draw(draw.New(png))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
