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

// Package walk drives the string literal deduplication over a Go syntax tree.
//
// It translates the cursor traversal of one file into the block and literal
// events consumed by [dedup.Tracker].
package walk

import (
	"context"
	"go/ast"
	"go/token"
	"runtime/trace"
	"strconv"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/strdedup/internal/astutil"
	"fillmore-labs.com/strdedup/internal/dedup"
)

// File walks a single file, emitting [dedup.Tracker.EnterBlock] and [dedup.Tracker.ExitBlock]
// around every block and [dedup.Tracker.Literal] for every string literal.
//
// Functions documented with a //nolint:strdedup directive are skipped, as are
// literals on a line ending in one.
func File(ctx context.Context, currentFile astutil.CurrentFile, file inspector.Cursor, tracker *dedup.Tracker) {
	defer trace.StartRegion(ctx, "Collect").End()

	types := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.BlockStmt)(nil),
		(*ast.BasicLit)(nil),
	}

	var visit func(c inspector.Cursor) bool

	visit = func(c inspector.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.FuncDecl:
			return !astutil.NoLintDoc(n.Doc)

		case *ast.BlockStmt:
			tracker.EnterBlock(astutil.NodeIndexOf(c))

			for child := range c.Children() {
				child.Inspect(types, visit)
			}

			tracker.ExitBlock()

			return false

		case *ast.BasicLit:
			if n.Kind != token.STRING || !tracker.Active() || currentFile.NoLintComment(n.Pos()) {
				return false
			}

			value, err := strconv.Unquote(n.Value)
			if err != nil {
				return false
			}

			tracker.Literal(astutil.NodeIndexOf(c), value, Classify(c))
		}

		return true
	}

	file.Inspect(types, visit)
}
