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

import "unicode/utf8"

// quotes is the number of delimiter characters around a literal.
const quotes = 2

// declaratorOverhead counts the characters of `name="value",` not covered by name and value.
const declaratorOverhead = 4

// WorthExtracting reports whether replacing occurrences of a literal of literalLength characters
// with an identifier of identifierLength characters saves more than the added declarator costs.
//
// It is only meaningful for occurrences > 1.
func WorthExtracting(literalLength, occurrences, identifierLength int) bool {
	saving := (literalLength + quotes - identifierLength) * occurrences
	overhead := identifierLength + declaratorOverhead + literalLength

	return saving > overhead
}

// length returns the length of a literal value in characters.
func length(value string) int {
	return utf8.RuneCountInString(value)
}
