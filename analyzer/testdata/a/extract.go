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

package a

import "fmt"

func repeated() {
	fmt.Println("hello world") // want `String literal "hello world" is used 3 times and can be extracted to constant '_s'`
	fmt.Println("hello world")
	fmt.Println("hello world")
}

func pendingReuse() {
	fmt.Println("ab", "hello world") // want `String literal "hello world" is used 3 times and can be extracted to constant '_s'`
	fmt.Println("ab", "hello world")
	fmt.Println("ab", "hello world")
}

func multiple() {
	fmt.Println("hello world", "abcdefgh") // want `2 repeated string literals can be extracted to constants '_s' and '_s2'`
	fmt.Println("hello world", "abcdefgh")
}

func nested(b bool) {
	if b {
		fmt.Println("hello world") // want `String literal "hello world" is used 2 times and can be extracted to constant '_s'`
	} else {
		fmt.Println("hello world")
	}
}

func closure() func() string {
	prefix := "hello world" // want `String literal "hello world" is used 2 times and can be extracted to constant '_s'`

	return func() string { return prefix + "hello world" }
}

func boundary() {
	fmt.Println("abcdef", "abcdef")
	fmt.Println("abcdefg", "abcdefg") // want `String literal "abcdefg" is used 2 times and can be extracted to constant '_s'`
}

var literal = func() {
	fmt.Println("hello world") // want `String literal "hello world" is used 2 times and can be extracted to constant '_s'`
	fmt.Println(`hello world`)
}
