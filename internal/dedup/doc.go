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

// Package dedup implements the string literal deduplication pass.
//
// # Overview
//
// Within a processed scope, the outermost block of a nesting run, string literal
// values that occur more than once are replaced by a single constant declared at
// the top of that block, but only when the replacement makes the source shorter.
//
// # Example
//
// Before:
//
//	func greet() {
//	    fmt.Println("hello world")
//	    fmt.Println("hello world")
//	    fmt.Println("hello world")
//	}
//
// After applying the suggested fix:
//
//	func greet() {
//	    const _s = "hello world"
//
//	    fmt.Println(_s)
//	    fmt.Println(_s)
//	    fmt.Println(_s)
//	}
//
// # Architecture
//
// The pass does not own the traversal. A host drives a [Tracker] with three events:
//
//  1. EnterBlock: opens a processed scope when no scope is active
//  2. Literal: collects eligible occurrences into candidate groups keyed by value
//  3. ExitBlock: finalizes the processed scope when its outermost block closes
//
// Finalization sorts the groups by value length, allocates identifiers lazily through
// the [Host], applies the savings model and emits replacements plus one declaration.
//
// # Savings Model
//
// Replacing n occurrences of a literal of length l by an identifier of length k saves
// (l+2-k)·n characters and costs k+4+l characters for the declarator. Groups are only
// extracted when the saving strictly exceeds the cost.
package dedup
