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

import (
	"cmp"
	"slices"
)

// Declarator binds a generated identifier to a literal value.
type Declarator struct {
	Name  string
	Value string
}

// finalize decides which groups of a closed scope are worth extracting and rewrites them.
func finalize(host Host, s *processedScope) {
	if s == nil || len(s.groups) == 0 {
		return // no strings to deduplicate
	}

	// Shortest values first, ties keep the order of first sighting.
	groups := slices.Clone(s.groups)
	slices.SortStableFunc(groups, func(a, b *Group) int { return cmp.Compare(length(a.Value), length(b.Value)) })

	var (
		declarators []Declarator
		pending     string // allocated but not yet used identifier
	)

	for _, g := range groups {
		if len(g.Sites) == 1 {
			continue // never extract a single occurrence
		}

		if pending == "" {
			pending = host.UniqueName(s.block)
		}

		if !WorthExtracting(length(g.Value), len(g.Sites), length(pending)) {
			continue // keep pending for the next group
		}

		declarators = append(declarators, Declarator{Name: pending, Value: g.Value})

		for _, site := range g.Sites {
			host.Replace(site, pending)
		}

		pending = ""
	}

	if len(declarators) > 0 {
		host.Prepend(s.block, declarators)
	}
}
