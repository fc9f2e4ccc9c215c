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

package walk

import (
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/strdedup/internal/dedup"
)

// Classify determines the syntactic context of the literal at c from its parent edge.
// Parentheses around the literal are looked through.
func Classify(c inspector.Cursor) dedup.Context {
	kind, _ := c.ParentEdge()
	for kind == edge.ParenExpr_X {
		c = c.Parent()
		kind, _ = c.ParentEdge()
	}

	switch kind {
	case edge.KeyValueExpr_Key:
		return dedup.Context{Role: dedup.RoleKey}

	case edge.IndexExpr_X,
		edge.IndexExpr_Index,
		edge.IndexListExpr_X,
		edge.IndexListExpr_Indices,
		edge.SelectorExpr_X:
		return dedup.Context{Role: dedup.RoleMember}

	case edge.AssignStmt_Lhs,
		edge.IncDecStmt_X,
		edge.RangeStmt_Key,
		edge.RangeStmt_Value:
		return dedup.Context{Role: dedup.RoleTarget}

	case edge.Field_Tag,
		edge.ImportSpec_Path:
		return dedup.Context{Role: dedup.RoleFixed}

	case edge.ExprStmt_X:
		return dedup.Context{Role: dedup.RoleValue, ExprStmt: true}

	default:
		return dedup.Context{Role: dedup.RoleValue}
	}
}
