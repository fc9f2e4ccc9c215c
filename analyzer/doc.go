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

// Package analyzer implements the strdedup static analysis pass.
//
// # Overview
//
// strdedup finds string literals repeated within a function and suggests
// replacing them with constants declared at the top of the function body,
// provided the rewrite makes the source shorter.
//
// # Example
//
// Before:
//
//	func greet(w io.Writer) {
//	    fmt.Fprintln(w, "hello world")
//	    fmt.Fprintln(w, "hello world")
//	    fmt.Fprintln(w, "hello world")
//	}
//
// After applying strdedup's suggested fix:
//
//	func greet(w io.Writer) {
//	    const _s = "hello world"
//
//	    fmt.Fprintln(w, _s)
//	    fmt.Fprintln(w, _s)
//	    fmt.Fprintln(w, _s)
//	}
//
// # Cost Model
//
// A value repeated n times with length l is extracted to a name of length k when
//
//	n * (l + 2 - k) > k + 4 + l
//
// Literals used as map keys, as operands of index or selector expressions,
// struct tags and import paths are left alone.
//
// # Suppression
//
// A //nolint:strdedup comment on a line, in the documentation of a function or
// in the package documentation disables the analyzer for that scope.
package analyzer
