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

// Role describes the structural position of a literal occurrence in its parent.
type Role uint8

//go:generate go tool stringer -type Role -linecomment
const (
	// RoleValue is a plain expression position.
	RoleValue Role = iota // value

	// RoleKey is the key of an element in a map or record literal.
	RoleKey // key

	// RoleMember is the operand of a member access, like a selector or index expression.
	RoleMember // member

	// RoleTarget is a position that is assigned to.
	RoleTarget // target

	// RoleFixed is a position where the grammar requires a literal, like a struct tag.
	RoleFixed // fixed
)

// Context is the structural context of a literal occurrence.
type Context struct {
	// Role is the position of the literal in its parent.
	Role Role

	// ExprStmt is set when the enclosing assignment is a plain expression statement.
	ExprStmt bool
}

// Eligible reports whether an occurrence in the given context may be replaced by an identifier.
func Eligible(ctx Context) bool {
	switch ctx.Role {
	case RoleKey, RoleMember, RoleFixed:
		return false

	case RoleTarget:
		return ctx.ExprStmt

	default:
		return true
	}
}
