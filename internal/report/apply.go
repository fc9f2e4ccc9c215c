// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"
)

var (
	// ErrOverlap is returned when two edits touch the same range of the source.
	ErrOverlap = errors.New("overlapping edits")

	// ErrInvalidRange is returned for edits outside the source.
	ErrInvalidRange = errors.New("invalid edit range")
)

// Apply applies edits to the source of file, returning the rewritten source.
//
// Edits are applied in position order, insertions before replacements at the same offset.
func Apply(file *token.File, src []byte, edits []analysis.TextEdit) ([]byte, error) {
	type edit struct {
		start, end int
		text       []byte
	}

	sorted := make([]edit, 0, len(edits))
	for _, e := range edits {
		end := e.End
		if !end.IsValid() {
			end = e.Pos
		}

		start, stop := file.Offset(e.Pos), file.Offset(end)
		if stop < start || stop > len(src) {
			return nil, fmt.Errorf("edit %d-%d: %w", start, stop, ErrInvalidRange)
		}

		sorted = append(sorted, edit{start: start, end: stop, text: e.NewText})
	}

	slices.SortStableFunc(sorted, func(a, b edit) int {
		if c := cmp.Compare(a.start, b.start); c != 0 {
			return c
		}

		return cmp.Compare(a.end, b.end)
	})

	var buf bytes.Buffer
	buf.Grow(len(src))

	last := 0
	for _, e := range sorted {
		if e.start < last {
			return nil, fmt.Errorf("edit at offset %d: %w", e.start, ErrOverlap)
		}

		buf.Write(src[last:e.start]) // ignore error
		buf.Write(e.text)            // ignore error
		last = e.end
	}

	buf.Write(src[last:]) // ignore error

	return buf.Bytes(), nil
}
