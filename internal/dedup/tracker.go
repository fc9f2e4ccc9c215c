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

package dedup

import "fillmore-labs.com/strdedup/internal/astutil"

// Host provides the tree services the pass needs from its environment.
type Host interface {
	// UniqueName returns a fresh identifier that collides with no binding visible from,
	// or declared inside, block. Subsequent calls for the same block never repeat a name.
	UniqueName(block astutil.NodeIndex) string

	// Replace substitutes a reference to name for the literal at site.
	Replace(site astutil.NodeIndex, name string)

	// Prepend inserts one declaration holding all declarators as the first statement of block.
	Prepend(block astutil.NodeIndex, declarators []Declarator)
}

// notActive is the depth outside any processed scope.
const notActive = -1

// Tracker receives traversal events and drives the deduplication pass.
//
// EnterBlock and ExitBlock calls must be balanced, which the host traversal guarantees.
// Only the outermost block of a nesting run opens a processed scope, nested blocks
// contribute their literals to the enclosing one.
type Tracker struct {
	host  Host
	depth int
	scope *processedScope
}

// NewTracker creates a [Tracker] reporting to host.
func NewTracker(host Host) *Tracker {
	return &Tracker{host: host, depth: notActive}
}

// EnterBlock records entering a block.
func (t *Tracker) EnterBlock(block astutil.NodeIndex) {
	t.depth++

	if t.depth > 0 {
		return // nested block, collect into the active scope
	}

	t.scope = newProcessedScope(block)
}

// ExitBlock records leaving a block and finalizes the processed scope when it was the outermost one.
func (t *Tracker) ExitBlock() {
	t.depth--

	if t.depth > notActive {
		return // wait until leaving the outermost block
	}

	s := t.scope
	t.scope = nil

	finalize(t.host, s)
}

// Literal records a string literal occurrence.
func (t *Tracker) Literal(site astutil.NodeIndex, value string, ctx Context) {
	if t.scope == nil {
		return // not in a block
	}

	if !Eligible(ctx) {
		return
	}

	t.scope.add(site, value)
}

// Active reports whether a processed scope is open.
func (t *Tracker) Active() bool {
	return t.scope != nil
}
