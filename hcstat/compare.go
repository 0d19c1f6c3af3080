// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hcstat derives comparison metrics between the baseline index
// and the hot/cold-aware index for each experimental configuration,
// and renders them as a comparison table.
package hcstat

import (
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/hcindex/hcbench/hcfmt"
	"github.com/hcindex/hcbench/hcproc"
)

// A Comparison holds the derived metrics for one usable configuration
// group.
type Comparison struct {
	Key hcproc.Key

	// Throughput of each mode, queries per second.
	QPSBaseline float64
	QPSHCTree   float64

	// Average node visits per query. The baseline has no hot tier,
	// so its cold-tier visits are its total traversal cost; the
	// hctree cost is the hot and cold tiers summed.
	NodesBaseline float64
	NodesHCTree   float64

	// HotKeysFrac is hot_keys/nkeys and HotHitsFrac is
	// hot_hits/nqueries, both from the hctree record. Each is 0 when
	// its denominator is zero or unset.
	HotKeysFrac float64
	HotHitsFrac float64
}

// frac returns num/den, or 0 when den is unset or not positive.
// Defining 0/0 as 0 here is a policy choice: an empty keyspace or
// query stream has no meaningful hot fraction.
func frac(num, den hcfmt.Num) float64 {
	if den.Float() <= 0 {
		return 0
	}
	return num.Float() / den.Float()
}

// Compare derives the comparison metrics for the group g under key.
// It reports false if the group is missing either mode; such groups
// are excluded from all comparison output.
func Compare(key hcproc.Key, g hcproc.Group) (Comparison, bool) {
	base, okB := g.Baseline()
	hc, okH := g.HCTree()
	if !okB || !okH {
		return Comparison{}, false
	}
	return Comparison{
		Key:           key,
		QPSBaseline:   base.QPS.Float(),
		QPSHCTree:     hc.QPS.Float(),
		NodesBaseline: base.AvgColdNodesPerQ.Float(),
		NodesHCTree:   hc.AvgHotNodesPerQ.Float() + hc.AvgColdNodesPerQ.Float(),
		HotKeysFrac:   frac(hc.HotKeys, hc.NKeys),
		HotHitsFrac:   frac(hc.HotHits, hc.NQueries),
	}, true
}

// Comparisons derives metrics for every usable group in g, in the
// grouping's first-seen key order.
func Comparisons(g *hcproc.Grouping) []Comparison {
	var out []Comparison
	for _, k := range g.Keys() {
		if c, ok := Compare(k, g.Group(k)); ok {
			out = append(out, c)
		}
	}
	return out
}

// A HotUtilization is one zipf configuration's hot-tier utilization
// under the hctree index.
type HotUtilization struct {
	Theta       float64
	HotKeysFrac float64
	HotHitsFrac float64
}

// HotUtilizations derives hot-tier utilization for every zipf-workload
// group holding an hctree record. Unlike Comparisons, a missing
// baseline record does not exclude a group here: utilization is a
// property of the hctree index alone.
//
// The result is sorted by ascending theta, the order the utilization
// curve is plotted in.
func HotUtilizations(g *hcproc.Grouping) []HotUtilization {
	var out []HotUtilization
	for _, k := range g.Keys() {
		if k.Workload != hcfmt.WorkloadZipf {
			continue
		}
		hc, ok := g.Group(k).HCTree()
		if !ok {
			continue
		}
		out = append(out, HotUtilization{
			Theta:       k.Theta.Float(),
			HotKeysFrac: frac(hc.HotKeys, hc.NKeys),
			HotHitsFrac: frac(hc.HotHits, hc.NQueries),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Theta < out[j].Theta })
	return out
}

// GeomeanSpeedup returns the geometric mean of the per-group
// qps_hctree/qps_baseline ratios. Groups without a positive
// throughput on both sides are skipped; it reports false if no ratio
// is defined.
func GeomeanSpeedup(comps []Comparison) (float64, bool) {
	var ratios []float64
	for _, c := range comps {
		if c.QPSBaseline > 0 && c.QPSHCTree > 0 {
			ratios = append(ratios, c.QPSHCTree/c.QPSBaseline)
		}
	}
	if len(ratios) == 0 {
		return 0, false
	}
	return stats.GeoMean(ratios), true
}
