// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hcfmt provides a reader for the CSV result format written by
// the hctree benchmark harness.
//
// The reader is structured as a streaming operation modeled on
// bufio.Scanner, so callers can process results row by row without
// dictating a data model beyond Record. Numeric fields are represented
// as explicit optional values (Num) so that a field that is absent from
// a row remains distinguishable from a field measured as zero.
package hcfmt

// Modes of the index under measurement. Every result row carries
// exactly one of these in its "mode" column.
const (
	ModeBaseline = "baseline"
	ModeHCTree   = "hctree"
)

// WorkloadZipf is the skewed access-pattern workload; theta is only
// meaningful for records in this category.
const WorkloadZipf = "zipf"

// A Num is an optional numeric measurement. The zero Num is unset.
//
// The distinction between unset and zero matters throughout the
// pipeline: a baseline row legitimately omits the hot-tier columns,
// while an hctree row may legitimately measure zero hot hits.
type Num struct {
	val float64
	set bool
}

// Float returns n wrapped as a set Num.
func Float(v float64) Num {
	return Num{val: v, set: true}
}

// Float returns the numeric value, or 0 if n is unset.
func (n Num) Float() float64 { return n.val }

// IsSet reports whether n holds a parsed value.
func (n Num) IsSet() bool { return n.set }

// Int returns the value truncated toward zero, or 0 if n is unset.
func (n Num) Int() int { return int(n.val) }

// Equal reports whether two Nums are both unset or hold exactly the
// same value. Comparison is exact, not approximate: Nums are used as
// grouping keys and must compare the way they were parsed.
func (n Num) Equal(o Num) bool { return n == o }

// A Record is a single benchmark run's measurements, one CSV row.
//
// Workload and Mode are the categorical columns and are required on
// every row. All remaining fields are optional per row; an unset Num
// means the column was absent or empty in the input.
type Record struct {
	Workload string // access-pattern generator, e.g. "zipf"
	Mode     string // ModeBaseline or ModeHCTree

	// Experimental configuration.
	Theta    Num // Zipf skew exponent
	NKeys    Num
	NQueries Num

	// hctree tuning parameters; absent on baseline rows.
	HotThreshold Num
	DecayAlpha   Num
	HotFraction  Num
	Seed         Num

	// Measurements.
	ElapsedSec Num
	QPS        Num

	// Query outcome counts.
	HotHits  Num
	ColdHits Num
	NotFound Num

	// Key tier classification counts.
	HotKeys  Num
	ColdKeys Num

	// Average node visits per query, split by tier.
	AvgHotNodesPerQ  Num
	AvgColdNodesPerQ Num

	// fileName and line record where this Record was read from.
	fileName string
	line     int
}

// Pos returns the file name and line number of a Record that was read
// by a Reader. For Records that were not read from a file, it returns
// "", 0.
func (r *Record) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// Clone makes a copy of Record that shares no state with r.
func (r *Record) Clone() *Record {
	r2 := *r
	return &r2
}
