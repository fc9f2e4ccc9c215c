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

// Group holds all eligible occurrences of one literal value within a processed scope.
type Group struct {
	Value string              // The literal value
	Sites []astutil.NodeIndex // Occurrences in traversal order
}

// processedScope is the collection window of one outermost block.
//
// It is created when the block is entered and consumed when the block is left.
type processedScope struct {
	block  astutil.NodeIndex // The outermost block, receives the declaration
	groups []*Group          // Candidate groups in order of first sighting
	index  map[string]*Group // Candidate groups by value
}

// newProcessedScope opens a collection window for the given block.
func newProcessedScope(block astutil.NodeIndex) *processedScope {
	return &processedScope{
		block: block,
		index: make(map[string]*Group),
	}
}

// add appends an occurrence to the group for value, creating the group on first sighting.
func (s *processedScope) add(site astutil.NodeIndex, value string) {
	g, ok := s.index[value]
	if !ok {
		g = &Group{Value: value}
		s.index[value] = g
		s.groups = append(s.groups, g)
	}

	g.Sites = append(g.Sites, site)
}
