// Copyright (c) 2024, Intel Corporation.
// SPDX-License-Identifier: BSD-3-Clause

package frequency

import (
	"bufio"
	"fmt"
	"io"
)

// ReadError reports that the input stream failed before its end.
// No counts are returned alongside it.
type ReadError struct {
	Offset int64 // bytes consumed before the failure
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("frequency: read failed at offset %d: %v", e.Offset, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// FromReader counts every character read from r line by line until io.EOF.
// Any other read failure is returned as a *ReadError.
func FromReader(r io.Reader) (Map, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	var (
		agg    Aggregator
		offset int64
	)
	for {
		line, err := br.ReadString('\n')
		agg.AddString(line)
		offset += int64(len(line))
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ReadError{Offset: offset, Err: err}
		}
	}
	return agg.Map(), nil
}
