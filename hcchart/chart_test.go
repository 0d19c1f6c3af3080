// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hcchart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hcindex/hcbench/hcfmt"
	"github.com/hcindex/hcbench/hcproc"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func requirePNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err, "chart artifact missing")
	require.GreaterOrEqual(t, len(data), len(pngMagic))
	assert.Equal(t, pngMagic, data[:len(pngMagic)], "artifact is not a PNG")
}

func sampleGrouping() *hcproc.Grouping {
	base := &hcfmt.Record{
		Workload: hcfmt.WorkloadZipf, Mode: hcfmt.ModeBaseline,
		Theta: hcfmt.Float(0.9), NKeys: hcfmt.Float(1000), NQueries: hcfmt.Float(500),
		QPS: hcfmt.Float(1000), AvgColdNodesPerQ: hcfmt.Float(10),
	}
	hc := &hcfmt.Record{
		Workload: hcfmt.WorkloadZipf, Mode: hcfmt.ModeHCTree,
		Theta: hcfmt.Float(0.9), NKeys: hcfmt.Float(1000), NQueries: hcfmt.Float(500),
		QPS:     hcfmt.Float(4000),
		HotHits: hcfmt.Float(400), HotKeys: hcfmt.Float(50),
		AvgHotNodesPerQ: hcfmt.Float(2), AvgColdNodesPerQ: hcfmt.Float(1),
	}
	return hcproc.Aggregate([]*hcfmt.Record{base, hc})
}

func TestQPSChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), QPSFile)
	require.NoError(t, QPS(sampleGrouping(), path))
	requirePNG(t, path)
}

func TestNodesChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), NodesFile)
	require.NoError(t, Nodes(sampleGrouping(), path))
	requirePNG(t, path)
}

func TestHotFractionChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), HotFractionFile)
	wrote, err := HotFraction(sampleGrouping(), path)
	require.NoError(t, err)
	assert.True(t, wrote)
	requirePNG(t, path)
}

func TestHotFractionChartNoZipf(t *testing.T) {
	// No zipf groups: a guarded no-op, no artifact, no error.
	g := hcproc.Aggregate([]*hcfmt.Record{
		{Workload: "uniform", Mode: hcfmt.ModeHCTree, NKeys: hcfmt.Float(1000)},
	})
	path := filepath.Join(t.TempDir(), HotFractionFile)
	wrote, err := HotFraction(g, path)
	require.NoError(t, err)
	assert.False(t, wrote)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no-op must not create an artifact")
}

func TestBarChartsEmptyGrouping(t *testing.T) {
	// Header-only input still renders the bar charts, just with no
	// bars.
	g := hcproc.Aggregate(nil)
	dir := t.TempDir()

	qps := filepath.Join(dir, QPSFile)
	require.NoError(t, QPS(g, qps))
	requirePNG(t, qps)

	nodes := filepath.Join(dir, NodesFile)
	require.NoError(t, Nodes(g, nodes))
	requirePNG(t, nodes)
}

func TestBarChartsExcludeIncompleteGroups(t *testing.T) {
	// A baseline-only group contributes zero bars; rendering must
	// still succeed.
	g := hcproc.Aggregate([]*hcfmt.Record{
		{Workload: hcfmt.WorkloadZipf, Mode: hcfmt.ModeBaseline,
			Theta: hcfmt.Float(0.9), QPS: hcfmt.Float(1000)},
	})
	path := filepath.Join(t.TempDir(), QPSFile)
	require.NoError(t, QPS(g, path))
	requirePNG(t, path)
}
