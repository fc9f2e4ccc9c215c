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

package repl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/strdedup/internal/astutil"
	"fillmore-labs.com/strdedup/internal/config"
	"fillmore-labs.com/strdedup/internal/report"
	"fillmore-labs.com/strdedup/internal/run"
)

// ErrFragment is returned when a rewritten fragment can't be unwrapped.
var ErrFragment = errors.New("malformed fragment")

// Source rewrites a complete Go file, returning the formatted result.
//
// Type errors, as from unresolvable imports, are tolerated. Unchanged sources are
// returned as is.
func Source(ctx context.Context, filename string, src []byte, opts *run.Options) ([]byte, error) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, err
	}

	info := &types.Info{
		Defs:   make(map[*ast.Ident]types.Object),
		Uses:   make(map[*ast.Ident]types.Object),
		Scopes: make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default(), Error: func(error) {}}
	_, _ = conf.Check(f.Name.Name, fset, []*ast.File{f}, info) // partial scope information is sufficient

	currentFile := astutil.NewCurrentFile(fset, f)
	if !currentFile.Valid() {
		return nil, fmt.Errorf("%s: no file information", filename)
	}

	if currentFile.NoLintPackage() || (currentFile.Generated() && !opts.Behavior.Enabled(config.IncludeGenerated)) {
		return src, nil
	}

	var file inspector.Cursor
	for c := range inspector.New([]*ast.File{f}).Root().Children() {
		file = c
	}

	var edits []analysis.TextEdit

	for _, x := range opts.File(ctx, fset, info, currentFile, file, src) {
		if x.Err != nil {
			return nil, x.Err
		}

		edits = append(edits, x.Edits...)
	}

	if len(edits) == 0 {
		return src, nil
	}

	out, err := report.Apply(fset.File(f.FileStart), src, edits)
	if err != nil {
		return nil, err
	}

	return format.Source(out)
}

// Fragment rewrites a list of statements as if they were the body of a function.
func Fragment(ctx context.Context, src string, opts *run.Options) (string, error) {
	const (
		header = "package main\n\nfunc _() {\n"
		footer = "}\n"
	)

	out, err := Source(ctx, "<fragment>", []byte(header+strings.TrimRight(src, "\n")+"\n"+footer), opts)
	if err != nil {
		return "", err
	}

	body, ok := bytes.CutPrefix(out, []byte(header))
	if !ok {
		return "", ErrFragment
	}

	body, ok = bytes.CutSuffix(body, []byte(footer))
	if !ok {
		return "", ErrFragment
	}

	var result strings.Builder

	for line := range strings.SplitAfterSeq(string(body), "\n") {
		result.WriteString(strings.TrimPrefix(line, "\t")) // ignore error
	}

	return result.String(), nil
}
