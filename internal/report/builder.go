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

// Package report turns finalized deduplication scopes into text edits and diagnostics.
package report

import (
	"bytes"
	"go/ast"
	"go/printer"
	"go/token"
	"strconv"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/strdedup/internal/astutil"
	"fillmore-labs.com/strdedup/internal/dedup"
	"fillmore-labs.com/strdedup/internal/scope"
)

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// Extraction describes the constants extracted from one processed block.
type Extraction struct {
	// Block is the outermost block receiving the declaration.
	Block astutil.NodeIndex

	// Declarators are the extracted constants, shortest value first.
	Declarators []dedup.Declarator

	// Sites holds the replaced literals per declarator, in source order.
	Sites [][]astutil.NodeIndex

	// Edits inserts the declaration and replaces all sites.
	Edits []analysis.TextEdit

	// Err is set when the declaration could not be rendered.
	Err error
}

// Builder implements [dedup.Host] for a single file, collecting the edits
// of every finalized block as an [Extraction].
type Builder struct {
	*scope.Namer

	fset *token.FileSet
	in   *inspector.Inspector
	src  []byte

	// sites and edits belong to the block currently being finalized.
	sites map[string][]astutil.NodeIndex
	edits []analysis.TextEdit

	extractions []Extraction
}

var _ dedup.Host = (*Builder)(nil)

// NewBuilder creates a new [Builder] instance for the file with content src.
func NewBuilder(fset *token.FileSet, in *inspector.Inspector, src []byte, namer *scope.Namer) *Builder {
	return &Builder{Namer: namer, fset: fset, in: in, src: src}
}

// Replace records an edit replacing the literal at site with name.
func (b *Builder) Replace(site astutil.NodeIndex, name string) {
	lit := site.Node(b.in)

	b.edits = append(b.edits, analysis.TextEdit{Pos: lit.Pos(), End: lit.End(), NewText: []byte(name)})

	if b.sites == nil {
		b.sites = make(map[string][]astutil.NodeIndex)
	}
	b.sites[name] = append(b.sites[name], site)
}

// Prepend completes the [Extraction] of block with the constant declaration.
func (b *Builder) Prepend(block astutil.NodeIndex, declarators []dedup.Declarator) {
	x := Extraction{
		Block:       block,
		Declarators: declarators,
		Sites:       make([][]astutil.NodeIndex, len(declarators)),
	}

	for i, d := range declarators {
		x.Sites[i] = b.sites[d.Name]
	}

	insert, err := b.declaration(x)
	if err != nil {
		x.Err = err
	} else {
		x.Edits = append(make([]analysis.TextEdit, 0, len(b.edits)+1), insert)
		x.Edits = append(x.Edits, b.edits...)
	}

	clear(b.sites)
	b.edits = nil

	b.extractions = append(b.extractions, x)
}

// Extractions returns all extractions recorded so far.
func (b *Builder) Extractions() []Extraction {
	return b.extractions
}

// declaration renders the constant declaration and returns the edit inserting it after the opening brace.
func (b *Builder) declaration(x Extraction) (analysis.TextEdit, error) {
	spec := &ast.ValueSpec{
		Names:  make([]*ast.Ident, 0, len(x.Declarators)),
		Values: make([]ast.Expr, 0, len(x.Declarators)),
	}

	for i, d := range x.Declarators {
		spec.Names = append(spec.Names, ast.NewIdent(d.Name))
		spec.Values = append(spec.Values, b.spelling(x.Sites[i], d.Value))
	}

	decl := &ast.GenDecl{Tok: token.CONST, Specs: []ast.Spec{spec}}

	block := x.Block.Node(b.in).(*ast.BlockStmt)

	var buf bytes.Buffer

	buf.WriteByte('\n')              // ignore error
	buf.WriteString(b.indent(block)) // ignore error

	if err := rawcfg.Fprint(&buf, b.fset, decl); err != nil {
		return analysis.TextEdit{}, err
	}
	buf.WriteByte('\n') // ignore error

	pos := block.Lbrace + 1

	return analysis.TextEdit{Pos: pos, End: pos, NewText: buf.Bytes()}, nil
}

// spelling returns the literal as written at its first site.
func (b *Builder) spelling(sites []astutil.NodeIndex, value string) *ast.BasicLit {
	if len(sites) > 0 {
		if lit, ok := sites[0].Node(b.in).(*ast.BasicLit); ok {
			return &ast.BasicLit{Kind: token.STRING, Value: lit.Value}
		}
	}

	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(value)}
}

// indent copies the whitespace in front of the block's first statement.
// Blocks whose first statement does not start a new line get a single tab.
func (b *Builder) indent(block *ast.BlockStmt) string {
	const fallback = "\t"

	if len(block.List) == 0 || b.src == nil {
		return fallback
	}

	tf := b.fset.File(block.Lbrace)
	if tf == nil {
		return fallback
	}

	first := block.List[0].Pos()

	line := tf.PositionFor(first, false).Line
	if line == tf.PositionFor(block.Lbrace, false).Line {
		return fallback
	}

	start, end := tf.Offset(tf.LineStart(line)), tf.Offset(first)
	if start >= end || end > len(b.src) {
		return fallback
	}

	if ws := b.src[start:end]; len(bytes.Trim(ws, " \t")) == 0 {
		return string(ws)
	}

	return fallback
}
