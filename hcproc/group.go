// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hcproc groups benchmark result records by experimental
// configuration.
//
// A configuration is the (workload, theta, nkeys, nqueries) tuple; two
// records with equal tuples measure the same experiment under
// different index modes. Grouping preserves the input's first-seen
// ordering of configurations, so downstream tables and charts follow
// the order of the benchmark run.
package hcproc

import (
	"fmt"

	"github.com/hcindex/hcbench/hcfmt"
)

// A Key identifies a single controlled experiment, varied only by
// mode.
//
// Key fields compare exactly as parsed: equality is structural over
// the four fields, with no rounding or tolerance, and an unset field
// is distinct from a zero one. Callers must not derive key fields
// arithmetically; the parse-once, compare-as-parsed contract is what
// makes exact float equality sound here.
type Key struct {
	Workload string
	Theta    hcfmt.Num
	NKeys    hcfmt.Num
	NQueries hcfmt.Num
}

// KeyOf returns the configuration key of r.
func KeyOf(r *hcfmt.Record) Key {
	return Key{
		Workload: r.Workload,
		Theta:    r.Theta,
		NKeys:    r.NKeys,
		NQueries: r.NQueries,
	}
}

// String returns a compact diagnostic form of the key. It is not part
// of any output format.
func (k Key) String() string {
	return fmt.Sprintf("%s/θ=%v/keys=%v/queries=%v",
		k.Workload, k.Theta.Float(), k.NKeys.Float(), k.NQueries.Float())
}

// A Group maps mode to the record observed for that mode within one
// configuration.
type Group map[string]*hcfmt.Record

// Baseline returns the group's baseline-mode record, if present.
func (g Group) Baseline() (*hcfmt.Record, bool) {
	r, ok := g[hcfmt.ModeBaseline]
	return r, ok
}

// HCTree returns the group's hctree-mode record, if present.
func (g Group) HCTree() (*hcfmt.Record, bool) {
	r, ok := g[hcfmt.ModeHCTree]
	return r, ok
}

// Usable reports whether the group holds records for both modes and
// can therefore be compared. Groups missing either mode are silently
// excluded from comparison outputs; a partial benchmark run is not an
// error.
func (g Group) Usable() bool {
	_, okB := g.Baseline()
	_, okH := g.HCTree()
	return okB && okH
}

// A Grouping is the aggregated view of a result file: configuration
// keys in first-seen order, each with its per-mode record group.
//
// Consumers treat a Grouping as immutable once built.
type Grouping struct {
	order  []Key
	groups map[Key]Group
}

// Aggregate groups recs by configuration key and indexes each group by
// mode. When a (key, mode) pair repeats, the later record wins;
// duplicates are not an error.
func Aggregate(recs []*hcfmt.Record) *Grouping {
	g := &Grouping{groups: make(map[Key]Group)}
	for _, r := range recs {
		k := KeyOf(r)
		grp, ok := g.groups[k]
		if !ok {
			grp = make(Group)
			g.groups[k] = grp
			g.order = append(g.order, k)
		}
		grp[r.Mode] = r
	}
	return g
}

// Keys returns the configuration keys in first-seen input order. The
// returned slice is owned by the Grouping; callers must not modify it.
func (g *Grouping) Keys() []Key {
	return g.order
}

// Group returns the per-mode records for k, or nil if k was never
// observed.
func (g *Grouping) Group(k Key) Group {
	return g.groups[k]
}

// Len returns the number of distinct configuration keys.
func (g *Grouping) Len() int {
	return len(g.order)
}
