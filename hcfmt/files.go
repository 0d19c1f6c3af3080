// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hcfmt

import (
	"fmt"
	"os"
)

// ReadFile parses the named results file and returns its records in
// input order.
//
// The file is opened read-only and closed before ReadFile returns, on
// every path. ReadFile fails on the first malformed row; the returned
// error identifies the offending row and field.
func ReadFile(path string) ([]*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening results: %w", err)
	}
	defer f.Close()

	r := NewReader(f, path)
	var recs []*Record
	for r.Scan() {
		recs = append(recs, r.Result().Clone())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}
