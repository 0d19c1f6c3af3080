// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Hcbench analyzes the results of the hctree key-value index
// benchmark.
//
// Usage:
//
//	hcbench
//
// Hcbench reads results.csv from the working directory, as written by
// the benchmark harness: one CSV row per run, grouped by the
// (workload, theta, nkeys, nqueries) configuration and compared
// between the baseline index and the hot/cold-aware hctree index.
//
// It prints a comparison table to standard output, one line per
// configuration measured under both modes, and writes three chart
// artifacts to the working directory:
//
//	fig_qps_vs_mode.png            throughput, baseline vs hctree
//	fig_nodes_vs_mode.png          node visits per query, baseline vs hctree
//	fig_hot_fraction_vs_theta.png  hot-tier utilization vs Zipf skew
//
// The last chart is only written when the input holds zipf-workload
// runs of the hctree index. Diagnostics go to standard error;
// standard output carries only the table and the final artifact list.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hcindex/hcbench/hcchart"
	"github.com/hcindex/hcbench/hcfmt"
	"github.com/hcindex/hcbench/hcproc"
	"github.com/hcindex/hcbench/hcstat"
)

// resultsFile is the fixed input name written by the benchmark
// harness.
const resultsFile = "results.csv"

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()
	if err := run(resultsFile, ".", os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}
}

// run executes the pipeline: load resultsPath, aggregate, print the
// comparison table to stdout, and render the chart artifacts into
// outDir.
func run(resultsPath, outDir string, stdout io.Writer, log zerolog.Logger) error {
	recs, err := hcfmt.ReadFile(resultsPath)
	if err != nil {
		return err
	}
	g := hcproc.Aggregate(recs)
	log.Info().
		Int("records", len(recs)).
		Int("configurations", g.Len()).
		Msg("aggregated results")

	comps := hcstat.Comparisons(g)
	fmt.Fprintln(stdout, "\n=== Comparison summary (baseline vs hctree) ===")
	if err := hcstat.WriteTable(stdout, comps); err != nil {
		return err
	}
	if gm, ok := hcstat.GeomeanSpeedup(comps); ok {
		log.Info().Float64("geomean_qps_speedup", gm).Msg("hctree throughput speedup")
	}

	var artifacts []string
	if err := hcchart.QPS(g, filepath.Join(outDir, hcchart.QPSFile)); err != nil {
		return fmt.Errorf("rendering %s: %w", hcchart.QPSFile, err)
	}
	artifacts = append(artifacts, hcchart.QPSFile)

	if err := hcchart.Nodes(g, filepath.Join(outDir, hcchart.NodesFile)); err != nil {
		return fmt.Errorf("rendering %s: %w", hcchart.NodesFile, err)
	}
	artifacts = append(artifacts, hcchart.NodesFile)

	wrote, err := hcchart.HotFraction(g, filepath.Join(outDir, hcchart.HotFractionFile))
	if err != nil {
		return fmt.Errorf("rendering %s: %w", hcchart.HotFractionFile, err)
	}
	if wrote {
		artifacts = append(artifacts, hcchart.HotFractionFile)
	} else {
		log.Info().Msg("no zipf hctree runs; skipping hot-fraction chart")
	}

	fmt.Fprintf(stdout, "\nGenerated: %s\n", strings.Join(artifacts, ", "))
	return nil
}
