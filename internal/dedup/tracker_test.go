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

package dedup_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/strdedup/internal/astutil"
	. "fillmore-labs.com/strdedup/internal/dedup"
)

// call records one interaction of the pass with its host.
type call struct {
	Op    string
	Node  astutil.NodeIndex
	Name  string
	Decls []Declarator
}

// fakeHost hands out names from a fixed list and records all calls.
type fakeHost struct {
	names []string
	next  int
	calls []call
}

func newFakeHost(names ...string) *fakeHost {
	if len(names) == 0 {
		names = []string{"_s", "_s2", "_s3", "_s4"}
	}

	return &fakeHost{names: names}
}

func (h *fakeHost) UniqueName(block astutil.NodeIndex) string {
	name := h.names[h.next]
	h.next++
	h.calls = append(h.calls, call{Op: "name", Node: block, Name: name})

	return name
}

func (h *fakeHost) Replace(site astutil.NodeIndex, name string) {
	h.calls = append(h.calls, call{Op: "replace", Node: site, Name: name})
}

func (h *fakeHost) Prepend(block astutil.NodeIndex, declarators []Declarator) {
	h.calls = append(h.calls, call{Op: "prepend", Node: block, Decls: declarators})
}

// event is a synthetic traversal event.
type event struct {
	kind  byte // '{', '}' or 'l'
	node  astutil.NodeIndex
	value string
	ctx   Context
}

func enter(n astutil.NodeIndex) event { return event{kind: '{', node: n} }

func exit() event { return event{kind: '}'} }

func lit(n astutil.NodeIndex, value string) event { return event{kind: 'l', node: n, value: value} }

func key(n astutil.NodeIndex, value string) event {
	return event{kind: 'l', node: n, value: value, ctx: Context{Role: RoleKey}}
}

func member(n astutil.NodeIndex, value string) event {
	return event{kind: 'l', node: n, value: value, ctx: Context{Role: RoleMember}}
}

func replay(tr *Tracker, events []event) {
	for _, e := range events {
		switch e.kind {
		case '{':
			tr.EnterBlock(e.node)

		case '}':
			tr.ExitBlock()

		case 'l':
			tr.Literal(e.node, e.value, e.ctx)
		}
	}
}

func TestTracker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		names  []string
		events []event
		want   []call
	}{
		{
			name:   "ScenarioA",
			events: []event{enter(1), lit(2, "a"), lit(3, "a"), lit(4, "a"), exit()},
			want:   []call{{Op: "name", Node: 1, Name: "_s"}},
		},
		{
			name:   "ScenarioB",
			events: []event{enter(1), lit(2, "hello world"), lit(3, "hello world"), lit(4, "hello world"), exit()},
			want: []call{
				{Op: "name", Node: 1, Name: "_s"},
				{Op: "replace", Node: 2, Name: "_s"},
				{Op: "replace", Node: 3, Name: "_s"},
				{Op: "replace", Node: 4, Name: "_s"},
				{Op: "prepend", Node: 1, Decls: []Declarator{{Name: "_s", Value: "hello world"}}},
			},
		},
		{
			name: "ScenarioC",
			events: []event{
				enter(1), lit(2, "x"), lit(3, "hello world"), lit(4, "hello world"), lit(5, "hello world"), exit(),
			},
			want: []call{
				{Op: "name", Node: 1, Name: "_s"},
				{Op: "replace", Node: 3, Name: "_s"},
				{Op: "replace", Node: 4, Name: "_s"},
				{Op: "replace", Node: 5, Name: "_s"},
				{Op: "prepend", Node: 1, Decls: []Declarator{{Name: "_s", Value: "hello world"}}},
			},
		},
		{
			name:   "ScenarioD",
			events: []event{enter(1), lit(2, "hello world"), key(3, "hello world"), exit()},
			want:   nil,
		},
		{
			name:   "MemberAccess",
			events: []event{enter(1), member(2, "hello world"), member(3, "hello world"), member(4, "hello world"), exit()},
			want:   nil,
		},
		{
			name: "AssignTarget",
			events: []event{
				enter(1),
				{kind: 'l', node: 2, value: "hello world", ctx: Context{Role: RoleTarget}},
				{kind: 'l', node: 3, value: "hello world", ctx: Context{Role: RoleTarget, ExprStmt: true}},
				lit(4, "hello world"),
				exit(),
			},
			want: []call{
				{Op: "name", Node: 1, Name: "_s"},
				{Op: "replace", Node: 3, Name: "_s"},
				{Op: "replace", Node: 4, Name: "_s"},
				{Op: "prepend", Node: 1, Decls: []Declarator{{Name: "_s", Value: "hello world"}}},
			},
		},
		{
			name: "Nested",
			events: []event{
				enter(1), lit(2, "hello world"), enter(3), lit(4, "hello world"), enter(5), lit(6, "hello world"), exit(), exit(), exit(),
			},
			want: []call{
				{Op: "name", Node: 1, Name: "_s"},
				{Op: "replace", Node: 2, Name: "_s"},
				{Op: "replace", Node: 4, Name: "_s"},
				{Op: "replace", Node: 6, Name: "_s"},
				{Op: "prepend", Node: 1, Decls: []Declarator{{Name: "_s", Value: "hello world"}}},
			},
		},
		{
			name: "Siblings",
			events: []event{
				enter(1), lit(2, "hello world"), exit(),
				enter(3), lit(4, "hello world"), exit(),
			},
			want: nil,
		},
		{
			name:   "Outside",
			events: []event{lit(1, "hello world"), lit(2, "hello world"), enter(3), lit(4, "hello world"), exit(), lit(5, "hello world")},
			want:   nil,
		},
		{
			name: "PendingReuse",
			events: []event{
				enter(1),
				lit(2, "ab"), lit(3, "hello world"),
				lit(4, "ab"), lit(5, "hello world"),
				lit(6, "ab"), lit(7, "hello world"),
				exit(),
			},
			want: []call{
				{Op: "name", Node: 1, Name: "_s"},
				{Op: "replace", Node: 3, Name: "_s"},
				{Op: "replace", Node: 5, Name: "_s"},
				{Op: "replace", Node: 7, Name: "_s"},
				{Op: "prepend", Node: 1, Decls: []Declarator{{Name: "_s", Value: "hello world"}}},
			},
		},
		{
			name: "SortedByLength",
			events: []event{
				enter(1),
				lit(2, "hello world"), lit(3, "abcdefgh"),
				lit(4, "hello world"), lit(5, "abcdefgh"),
				exit(),
			},
			want: []call{
				{Op: "name", Node: 1, Name: "_s"},
				{Op: "replace", Node: 3, Name: "_s"},
				{Op: "replace", Node: 5, Name: "_s"},
				{Op: "name", Node: 1, Name: "_s2"},
				{Op: "replace", Node: 2, Name: "_s2"},
				{Op: "replace", Node: 4, Name: "_s2"},
				{Op: "prepend", Node: 1, Decls: []Declarator{
					{Name: "_s", Value: "abcdefgh"},
					{Name: "_s2", Value: "hello world"},
				}},
			},
		},
		{
			name: "StableTies",
			events: []event{
				enter(1),
				lit(2, "bbbbbbbbbb"), lit(3, "aaaaaaaaaa"),
				lit(4, "bbbbbbbbbb"), lit(5, "aaaaaaaaaa"),
				exit(),
			},
			want: []call{
				{Op: "name", Node: 1, Name: "_s"},
				{Op: "replace", Node: 2, Name: "_s"},
				{Op: "replace", Node: 4, Name: "_s"},
				{Op: "name", Node: 1, Name: "_s2"},
				{Op: "replace", Node: 3, Name: "_s2"},
				{Op: "replace", Node: 5, Name: "_s2"},
				{Op: "prepend", Node: 1, Decls: []Declarator{
					{Name: "_s", Value: "bbbbbbbbbb"},
					{Name: "_s2", Value: "aaaaaaaaaa"},
				}},
			},
		},
		{
			name:   "BoundaryEqual",
			events: []event{enter(1), lit(2, "abcdef"), lit(3, "abcdef"), exit()},
			want:   []call{{Op: "name", Node: 1, Name: "_s"}},
		},
		{
			name:   "BoundaryAbove",
			events: []event{enter(1), lit(2, "abcdefg"), lit(3, "abcdefg"), exit()},
			want: []call{
				{Op: "name", Node: 1, Name: "_s"},
				{Op: "replace", Node: 2, Name: "_s"},
				{Op: "replace", Node: 3, Name: "_s"},
				{Op: "prepend", Node: 1, Decls: []Declarator{{Name: "_s", Value: "abcdefg"}}},
			},
		},
		{
			name:   "NameLengthMatters",
			names:  []string{"_s10"},
			events: []event{enter(1), lit(2, "abcdefg"), lit(3, "abcdefg"), exit()},
			want:   []call{{Op: "name", Node: 1, Name: "_s10"}},
		},
		{
			name: "Runes",
			// 7 characters, 14 bytes: (7+2-2)·2 = 14 vs. 2+4+7 = 13
			events: []event{enter(1), lit(2, "äöüäöüä"), lit(3, "äöüäöüä"), exit()},
			want: []call{
				{Op: "name", Node: 1, Name: "_s"},
				{Op: "replace", Node: 2, Name: "_s"},
				{Op: "replace", Node: 3, Name: "_s"},
				{Op: "prepend", Node: 1, Decls: []Declarator{{Name: "_s", Value: "äöüäöüä"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			host := newFakeHost(tt.names...)
			tr := NewTracker(host)

			replay(tr, tt.events)

			if diff := cmp.Diff(tt.want, host.calls); diff != "" {
				t.Errorf("Host calls mismatch (-want +got):\n%s", diff)
			}

			if tr.Active() {
				t.Error("Processed scope still active after balanced events")
			}
		})
	}
}

func TestTrackerScopeLifecycle(t *testing.T) {
	t.Parallel()

	tr := NewTracker(newFakeHost())

	if tr.Active() {
		t.Fatal("Expected no active scope before the first block")
	}

	tr.EnterBlock(1)
	tr.EnterBlock(2)
	tr.ExitBlock()

	if !tr.Active() {
		t.Fatal("Expected the outer scope to stay active after leaving a nested block")
	}

	tr.ExitBlock()

	if tr.Active() {
		t.Error("Expected no active scope after leaving the outermost block")
	}
}
