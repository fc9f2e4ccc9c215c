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

package report

import (
	"context"
	"fmt"
	"runtime/trace"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/strdedup/internal/astutil"
	"fillmore-labs.com/strdedup/internal/config"
)

// ProcessDiagnostics emits one diagnostic per [Extraction].
//
// The diagnostic is positioned at the first replaced literal of the shortest
// extracted value, lists every constant as related information and carries the
// complete rewrite of the block as a single suggested fix. Fixes are omitted
// for generated files or when disabled.
func ProcessDiagnostics(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, in *inspector.Inspector, extractions []Extraction, option config.BitMask[config.Config]) {
	if len(extractions) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	fixes := option.Enabled(config.SuggestFixes) && !currentFile.Generated()

	for _, x := range extractions {
		if x.Err != nil {
			astutil.InternalError(p, x.Block.Node(in), "Can't render declaration: %s", x.Err)

			continue
		}

		if len(x.Declarators) == 0 || len(x.Sites[0]) == 0 {
			astutil.InternalError(p, x.Block.Node(in), "Extraction without sites")

			continue
		}

		first := x.Sites[0][0].Node(in)

		diagnostic := analysis.Diagnostic{
			Pos:     first.Pos(),
			End:     first.End(),
			Message: createMessage(x),
			Related: createRelated(in, x),
		}

		if fixes {
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{Message: diagnostic.Message, TextEdits: x.Edits}}
		}

		p.Report(diagnostic)
	}
}

// createMessage constructs the diagnostic message.
func createMessage(x Extraction) string {
	if len(x.Declarators) == 1 {
		d := x.Declarators[0]

		return fmt.Sprintf("String literal %s is used %d times and can be extracted to constant '%s'",
			strconv.Quote(d.Value), len(x.Sites[0]), d.Name)
	}

	names := make([]string, 0, len(x.Declarators))
	for _, d := range x.Declarators {
		names = append(names, d.Name)
	}

	return fmt.Sprintf("%d repeated string literals can be extracted to constants %s", len(names), concatNames(names))
}

// createRelated points to the first use of every extracted value.
func createRelated(in *inspector.Inspector, x Extraction) []analysis.RelatedInformation {
	related := make([]analysis.RelatedInformation, 0, len(x.Declarators))

	for i, d := range x.Declarators {
		if len(x.Sites[i]) == 0 {
			continue
		}

		site := x.Sites[i][0].Node(in)
		related = append(related, analysis.RelatedInformation{
			Pos:     site.Pos(),
			End:     site.End(),
			Message: fmt.Sprintf("Used %d times as '%s'", len(x.Sites[i]), d.Name),
		})
	}

	return related
}

// concatNames formats a list of constant names into a human-readable string (e.g., "'a', 'b' and 'c'").
func concatNames(names []string) string {
	var allNames strings.Builder

	for i, name := range names {
		if i > 0 {
			var separator string
			if i == len(names)-1 {
				separator = " and "
			} else {
				separator = ", "
			}

			allNames.WriteString(separator) // ignore error
		}

		allNames.WriteByte('\'')   // ignore error
		allNames.WriteString(name) // ignore error
		allNames.WriteByte('\'')   // ignore error
	}

	return allNames.String()
}
