// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package scope allocates constant names that are unique in a block's scope hierarchy.
package scope

import (
	"go/ast"
	"go/types"
	"strconv"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/strdedup/internal/astutil"
)

// Of returns the scope introduced by a block.
//
// Function bodies have no scope of their own, they share the scope of the
// function type holding the parameters.
func Of(info *types.Info, block inspector.Cursor) *types.Scope {
	b, ok := block.Node().(*ast.BlockStmt)
	if !ok {
		return nil
	}

	switch kind, _ := block.ParentEdge(); kind {
	case edge.FuncDecl_Body:
		return info.Scopes[block.Parent().Node().(*ast.FuncDecl).Type]

	case edge.FuncLit_Body:
		return info.Scopes[block.Parent().Node().(*ast.FuncLit).Type]

	default:
		return info.Scopes[b]
	}
}

// Namer hands out identifiers of the form prefix, prefix2, prefix3, …
// that are not declared in the block's scope, any enclosing or any nested scope.
type Namer struct {
	info   *types.Info
	in     *inspector.Inspector
	prefix string

	// count tracks the last suffix handed out per block, so names never repeat.
	count map[astutil.NodeIndex]int
}

// NewNamer creates a new [Namer] instance.
func NewNamer(info *types.Info, in *inspector.Inspector, prefix string) *Namer {
	return &Namer{info: info, in: in, prefix: prefix}
}

// UniqueName returns the next unused name for the given block.
func (n *Namer) UniqueName(block astutil.NodeIndex) string {
	scope := Of(n.info, block.Cursor(n.in))

	c := n.count[block]

	for {
		c++
		name := Name(n.prefix, c)

		if scope != nil && (checkParents(scope, name) || checkChildren(scope, name)) {
			continue
		}

		if n.count == nil {
			n.count = make(map[astutil.NodeIndex]int)
		}
		n.count[block] = c

		return name
	}
}

// Name returns the c-th candidate name for prefix. The first candidate carries no suffix.
func Name(prefix string, c int) string {
	if c <= 1 {
		return prefix
	}

	return prefix + strconv.Itoa(c)
}

// checkParents checks if the name is already defined in the scope or any of its parent scopes.
func checkParents(scope *types.Scope, name string) bool {
	for parent := scope; parent != nil; parent = parent.Parent() {
		if parent.Lookup(name) != nil {
			return true
		}
	}

	return false
}

// checkChildren recursively checks if the name is defined in any of the child scopes.
//
// This performs a depth-first search through the scope tree, covering
// declarations in nested blocks and function literals.
func checkChildren(scope *types.Scope, name string) bool {
	for child := range scope.Children() {
		if child.Lookup(name) != nil {
			return true
		}

		if checkChildren(child, name) {
			return true
		}
	}

	return false
}
