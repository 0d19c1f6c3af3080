// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hcstat

import (
	"fmt"
	"io"
)

// TableHeader names the ten comparison-table columns, in output order.
const TableHeader = "workload,theta,nkeys,nqueries," +
	"qps_baseline,qps_hctree," +
	"nodes_baseline,nodes_hctree," +
	"hot_keys_frac,hc_hot_hits_frac"

// WriteTable writes the comparison table to w: the header line, then
// one comma-separated line per comparison in the order given.
//
// The formatting is fixed: theta to 3 decimals, nkeys/nqueries
// truncated to integers, qps to 1 decimal, node counts to 3 decimals,
// fractions to 4 decimals.
func WriteTable(w io.Writer, comps []Comparison) error {
	if _, err := fmt.Fprintln(w, TableHeader); err != nil {
		return err
	}
	for _, c := range comps {
		_, err := fmt.Fprintf(w, "%s,%.3f,%d,%d,%.1f,%.1f,%.3f,%.3f,%.4f,%.4f\n",
			c.Key.Workload, c.Key.Theta.Float(),
			c.Key.NKeys.Int(), c.Key.NQueries.Int(),
			c.QPSBaseline, c.QPSHCTree,
			c.NodesBaseline, c.NodesHCTree,
			c.HotKeysFrac, c.HotHitsFrac)
		if err != nil {
			return err
		}
	}
	return nil
}
