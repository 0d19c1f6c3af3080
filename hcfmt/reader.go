// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hcfmt

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// A Reader reads the hctree benchmark CSV format.
//
// Its API is modeled on bufio.Scanner. The Reader retains ownership of
// the Record it returns; a caller that needs to retain a Record across
// calls to Scan must Clone it.
type Reader struct {
	cr       *csv.Reader
	fileName string
	err      error // first I/O or syntax error

	// header maps column name to field index, built from the first
	// row of the input. nil until the header has been read.
	header map[string]int

	line   int // 1-based line of the current record; the header is line 1
	result Record
}

// A SyntaxError represents a malformed row in a benchmark results
// file: a required categorical column that is missing or empty, or a
// numeric column holding non-numeric text.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// numFields maps the declared-numeric column names to their Record
// field. Columns not listed here and not "workload"/"mode" are
// ignored.
var numFields = map[string]func(*Record) *Num{
	"theta":                func(r *Record) *Num { return &r.Theta },
	"nkeys":                func(r *Record) *Num { return &r.NKeys },
	"nqueries":             func(r *Record) *Num { return &r.NQueries },
	"hot_threshold":        func(r *Record) *Num { return &r.HotThreshold },
	"decay_alpha":          func(r *Record) *Num { return &r.DecayAlpha },
	"hot_fraction":         func(r *Record) *Num { return &r.HotFraction },
	"seed":                 func(r *Record) *Num { return &r.Seed },
	"elapsed_sec":          func(r *Record) *Num { return &r.ElapsedSec },
	"qps":                  func(r *Record) *Num { return &r.QPS },
	"hot_hits":             func(r *Record) *Num { return &r.HotHits },
	"cold_hits":            func(r *Record) *Num { return &r.ColdHits },
	"not_found":            func(r *Record) *Num { return &r.NotFound },
	"hot_keys":             func(r *Record) *Num { return &r.HotKeys },
	"cold_keys":            func(r *Record) *Num { return &r.ColdKeys },
	"avg_hot_nodes_per_q":  func(r *Record) *Num { return &r.AvgHotNodesPerQ },
	"avg_cold_nodes_per_q": func(r *Record) *Num { return &r.AvgColdNodesPerQ },
}

// NewReader constructs a reader to parse the hctree CSV format from r.
// fileName is used in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	cr := csv.NewReader(r)
	// Rows may legitimately be shorter than the header when trailing
	// optional columns are omitted.
	cr.FieldsPerRecord = -1
	if fileName == "" {
		fileName = "<unknown>"
	}
	return &Reader{cr: cr, fileName: fileName}
}

// newSyntaxError returns a *SyntaxError at the Reader's current row.
func (r *Reader) newSyntaxError(format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{r.fileName, r.line, fmt.Sprintf(format, args...)}
}

// readHeader consumes the header row and builds the column index.
func (r *Reader) readHeader() error {
	row, err := r.cr.Read()
	if err == io.EOF {
		return &SyntaxError{r.fileName, 1, "missing header row"}
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", r.fileName, err)
	}
	r.line = 1
	r.header = make(map[string]int, len(row))
	for i, name := range row {
		r.header[name] = i
	}
	for _, required := range []string{"workload", "mode"} {
		if _, ok := r.header[required]; !ok {
			return &SyntaxError{r.fileName, 1, fmt.Sprintf("missing required column %q", required)}
		}
	}
	return nil
}

// Scan advances the reader to the next result row and reports whether
// one was read. The caller should use the Result method to get the
// parsed Record. If Scan reaches EOF or any error occurs, it returns
// false, in which case the caller should use the Err method to
// distinguish EOF from failure.
//
// A single malformed row stops the scan: partial results from dirty
// benchmark data are worse than a hard stop.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if r.header == nil {
		if err := r.readHeader(); err != nil {
			r.err = err
			return false
		}
	}

	row, err := r.cr.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		r.err = fmt.Errorf("reading %s: %w", r.fileName, err)
		return false
	}
	r.line++

	r.result = Record{fileName: r.fileName, line: r.line}
	field := func(name string) string {
		i, ok := r.header[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	r.result.Workload = field("workload")
	r.result.Mode = field("mode")
	if r.result.Workload == "" {
		r.err = r.newSyntaxError("missing required field %q", "workload")
		return false
	}
	if r.result.Mode == "" {
		r.err = r.newSyntaxError("missing required field %q", "mode")
		return false
	}

	for name, fieldOf := range numFields {
		s := field(name)
		if s == "" {
			// Absent or empty stays unset; it is not a zero.
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			r.err = r.newSyntaxError("field %q: cannot parse %q as a number", name, s)
			return false
		}
		*fieldOf(&r.result) = Float(v)
	}
	return true
}

// Result returns the record read by the most recent call to Scan. The
// Reader owns the returned Record; it remains valid only until the
// next call to Scan.
func (r *Reader) Result() *Record {
	return &r.result
}

// Err returns the first error encountered by the Reader, other than
// io.EOF.
func (r *Reader) Err() error {
	return r.err
}
