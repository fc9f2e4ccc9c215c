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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/strdedup/internal/astutil"
	"fillmore-labs.com/strdedup/internal/config"
	"fillmore-labs.com/strdedup/internal/dedup"
	"fillmore-labs.com/strdedup/internal/report"
	"fillmore-labs.com/strdedup/internal/scope"
	"fillmore-labs.com/strdedup/internal/walk"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the strdedup analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("strdedup: %w", err)
	}

	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("strdedup: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "StrDedup")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLintPackage() {
			continue
		}

		var src []byte
		if p.ReadFile != nil {
			if b, err := p.ReadFile(p.Fset.File(file.FileStart).Name()); err == nil {
				src = b
			}
		}

		extractions := r.File(ctx, p.Fset, p.TypesInfo, currentFile, f, src)

		report.ProcessDiagnostics(ctx, p, currentFile, in, extractions, r.Behavior)
	}

	return nil, nil
}

// File deduplicates the string literals of a single file with content src and returns the resulting extractions.
// A nil src indents inserted declarations with a single tab.
func (r *Options) File(
	ctx context.Context, fset *token.FileSet, info *types.Info, currentFile astutil.CurrentFile, file inspector.Cursor, src []byte,
) []report.Extraction {
	in := file.Inspector()

	builder := report.NewBuilder(fset, in, src, scope.NewNamer(info, in, r.Prefix))
	tracker := dedup.NewTracker(builder)

	walk.File(ctx, currentFile, file, tracker)

	return builder.Extractions()
}
