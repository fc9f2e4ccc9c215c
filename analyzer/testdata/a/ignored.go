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

var (
	greeting = "hello world"
	farewell = "hello world"
)

type tagged struct {
	A string `json:"hello world"`
	B string `json:"hello world"`
}

func keys(m map[string]int) int {
	n := map[string]int{"hello world": 1}

	return m["hello world"] + n["hello world"] + int("hello world"[0])
}

//nolint:strdedup
func suppressed() {
	fmt.Println("hello world")
	fmt.Println("hello world")
	fmt.Println("hello world")
}

func suppressedLine() {
	fmt.Println("hello world")
	fmt.Println("hello world") //nolint:strdedup
}

func siblingA() { fmt.Println("hello world") }

func siblingB() { fmt.Println("hello world") }

func short() {
	fmt.Println("a", "a", "a", "a")
}

func done() {
	const _s = "hello world"

	fmt.Println(_s)
	fmt.Println(_s)
}
